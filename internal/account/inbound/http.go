package inbound

import (
	"context"

	"github.com/shoplyhq/shoply/internal/account/usecase"
	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Profile(ctx context.Context) (*usecase.ProfileOutput, error)

	OtpVerify(ctx context.Context, in usecase.OtpVerifyInput) (*usecase.OtpVerifyOutput, error)
	OtpResend(ctx context.Context, in usecase.OtpResendInput) (*usecase.OtpResendOutput, error)

	TokenCreate(ctx context.Context, in usecase.TokenCreateInput) (*usecase.TokenCreateOutput, error)
	TokenRefresh(ctx context.Context, in usecase.TokenRefreshInput) (*usecase.TokenRefreshOutput, error)
	TokenVerify(ctx context.Context, in usecase.TokenVerifyInput) error
	Logout(ctx context.Context) (*usecase.LogoutOutput, error)
	ProviderAuth(ctx context.Context, in usecase.ProviderAuthInput) (*usecase.ProviderAuthOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc, cfg config.Config) {
	end := &HTTPEndpoint{uc: uc, cfg: cfg}

	// Registration & profile
	r.POST("/users/", end.Register)
	r.GET("/users/me/", end.Profile) // need authenticated

	// OTP lifecycle
	r.POST("/otp/verify/", end.OtpVerify)
	r.POST("/otp/resend/", end.OtpResend)

	// Sessions
	r.POST("/jwt/create/", end.TokenCreate)
	r.POST("/jwt/refresh/", end.TokenRefresh)
	r.POST("/jwt/verify/", end.TokenVerify)
	r.POST("/logout/", end.Logout)

	// Provider auth passthrough
	r.POST("/o/:provider/", end.ProviderAuth)
}
