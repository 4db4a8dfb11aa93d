package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shoplyhq/shoply/internal/pkg/goerror"
	"github.com/shoplyhq/shoply/internal/pkg/jwt"
)

type TokenRefreshInput struct {
	Refresh string `validate:"required"`
}

type TokenRefreshOutput struct {
	AccessToken string
	Cookies     []*http.Cookie
}

// TokenRefresh mints a new access token from a valid refresh token. The
// refresh token is stateless; nothing is looked up or stored.
func (s *Usecase) TokenRefresh(ctx context.Context, in TokenRefreshInput) (*TokenRefreshOutput, error) {
	ctx, span := s.startSpan(ctx, "TokenRefresh")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	claims, err := s.jwt.Verify(in.Refresh, jwt.KindRefresh)
	if err != nil {
		slog.WarnContext(ctx, "refresh token rejected", "error", err)
		return nil, goerror.NewBusiness("Token is invalid or expired", goerror.CodeUnauthorized)
	}

	access, err := s.jwt.Generate(jwt.KindAccess, claims.UserID, claims.UserEmail)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access token", "user_id", claims.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &TokenRefreshOutput{
		AccessToken: access,
		Cookies:     []*http.Cookie{s.accessCookie(access)},
	}, nil
}
