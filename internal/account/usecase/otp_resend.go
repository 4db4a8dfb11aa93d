package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shoplyhq/shoply/internal/pkg/goerror"
)

type OtpResendInput struct {
	Email string `validate:"required,email"`
}

type OtpResendOutput struct {
	OtpToken string
}

// OtpResend issues a fresh code/token pair for an unverified account and
// emails it synchronously. Earlier records stay redeemable until their own
// expiry; nothing is invalidated.
func (s *Usecase) OtpResend(ctx context.Context, in OtpResendInput) (*OtpResendOutput, error) {
	ctx, span := s.startSpan(ctx, "OtpResend")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("User not found.", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if user.IsActive {
		return nil, goerror.NewBusiness("User is already verified.", goerror.CodeInvalidInput)
	}

	record, err := s.issueOtp(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue verification code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Unlike registration, the caller is told when the email cannot go out.
	if err := s.repoEmail.SendOtp(ctx, user.Email, user.FirstName, record.Code, record.Token, s.otpTTL()); err != nil {
		slog.ErrorContext(ctx, "failed to send verification email", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &OtpResendOutput{OtpToken: record.Token}, nil
}
