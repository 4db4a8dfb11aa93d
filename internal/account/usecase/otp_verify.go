package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

type OtpVerifyInput struct {
	OtpCode  string `validate:"required,otpcode"`
	OtpToken string `validate:"required,opaquetoken"`
}

type OtpVerifyOutput struct {
	AccessToken  string
	RefreshToken string
	Cookies      []*http.Cookie
}

// OtpVerify redeems a code/token pair. The checks run in a fixed order:
// token lookup, then code equality, then expiry. A wrong code against an
// expired record reports the wrong code, not the expiry.
func (s *Usecase) OtpVerify(ctx context.Context, in OtpVerifyInput) (*OtpVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "OtpVerify")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	ou, err := s.repoDB.GetOtpUserByToken(ctx, in.OtpToken)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Invalid or expired OTP token.", goerror.CodeInvalidInput)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get otp record by token", "error", err)
		return nil, goerror.NewServer(err)
	}

	if ou.Code != in.OtpCode {
		return nil, goerror.NewBusiness("Invalid OTP.", goerror.CodeInvalidInput)
	}

	if s.clock.Now().After(ou.ExpiresAt) {
		return nil, goerror.NewBusiness("OTP has expired. Please request a new one.", goerror.CodeInvalidInput)
	}

	// Idempotent: re-running for an already active user is a no-op.
	if err := s.repoDB.ActivateUser(ctx, ou.UserID); err != nil {
		slog.ErrorContext(ctx, "failed to repo activate user", "user_id", ou.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	access, refresh, err := s.issuePair(ou.UserID, ou.UserEmail)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session tokens", "user_id", ou.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &OtpVerifyOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		Cookies:      s.sessionCookies(access, refresh),
	}, nil
}
