package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

type TokenCreateInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type TokenCreateOutput struct {
	AccessToken  string
	RefreshToken string
	Cookies      []*http.Cookie
}

// TokenCreate authenticates with email and password. Unknown accounts,
// inactive accounts and wrong passwords all collapse into the same answer.
func (s *Usecase) TokenCreate(ctx context.Context, in TokenCreateInput) (*TokenCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "TokenCreate")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	errNoAccount := goerror.NewBusiness("No active account found with the given credentials", goerror.CodeUnauthorized)

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, errNoAccount
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !user.IsActive || !s.bcrypt.Verify(user.Password, in.Password) {
		return nil, errNoAccount
	}

	access, refresh, err := s.issuePair(user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session tokens", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &TokenCreateOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		Cookies:      s.sessionCookies(access, refresh),
	}, nil
}
