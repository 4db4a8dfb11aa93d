package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shoplyhq/shoply/internal/account/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
	"github.com/shoplyhq/shoply/internal/pkg/jwt"
)

type ProfileOutput struct {
	User entity.User
}

// Profile returns the account behind the presented access token.
func (s *Usecase) Profile(ctx context.Context) (*ProfileOutput, error) {
	ctx, span := s.startSpan(ctx, "Profile")
	defer span.End()

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication credentials were not provided.", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", clm.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProfileOutput{User: *user}, nil
}
