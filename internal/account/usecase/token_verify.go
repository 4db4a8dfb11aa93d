package usecase

import (
	"context"
	"errors"

	"github.com/shoplyhq/shoply/internal/pkg/goerror"
	"github.com/shoplyhq/shoply/internal/pkg/jwt"
)

type TokenVerifyInput struct {
	Token string `validate:"required"`
}

// TokenVerify checks signature and expiry of either token kind.
func (s *Usecase) TokenVerify(ctx context.Context, in TokenVerifyInput) error {
	_, span := s.startSpan(ctx, "TokenVerify")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	_, err := s.jwt.Verify(in.Token, jwt.KindAccess)
	if errors.Is(err, jwt.ErrWrongKind) {
		_, err = s.jwt.Verify(in.Token, jwt.KindRefresh)
	}
	if err != nil {
		return goerror.NewBusiness("Token is invalid or expired", goerror.CodeUnauthorized)
	}

	return nil
}
