package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shoplyhq/shoply/internal/pkg/mail"
)

const (
	otpEmailSubject = "Your verification code"

	otpEmailBody = `Hi {{.name}},

Your verification code is {{.otp_code}}. It expires in {{.expires_minutes}} minutes.

Verification token: {{.otp_token}}

If you did not request this, you can ignore this email.

{{.company_name}} · {{.support_email}} · {{.year}}
`
)

type ConsumeUserRegisteredInput struct {
	UserID    int64  `validate:"required,gt=0"`
	Email     string `validate:"required,email"`
	FirstName string `validate:"omitempty,max=150"`
	OtpCode   string `validate:"required,otpcode"`
	OtpToken  string `validate:"required,opaquetoken"`
	ExpiresIn int64  `validate:"required,gt=0"` // seconds
}

// ConsumeUserRegistered sends the verification email for a fresh signup.
// The registration has already been committed, so nothing here may fail the
// message: bad payloads and exhausted retries are logged and dropped.
func (s *Usecase) ConsumeUserRegistered(ctx context.Context, in ConsumeUserRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid user registered payload", "user_id", in.UserID, "error", err)
		return nil
	}

	name := in.FirstName
	if name == "" {
		name = "there"
	}

	data := s.baseEmailTemplateData()
	data["name"] = name
	data["otp_code"] = in.OtpCode
	data["otp_token"] = in.OtpToken
	data["expires_minutes"] = in.ExpiresIn / 60

	body, err := s.renderTemplate("otp_email", otpEmailBody, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render verification email", "user_id", in.UserID, "error", err)
		return nil
	}

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.repoMail.Send(ctx, mail.Message{
			To:       []string{in.Email},
			Subject:  otpEmailSubject,
			TextBody: body,
		}); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send verification email", "user_id", in.UserID, "error", err)
	}

	return nil
}
