package email

import (
	"context"
	"fmt"
	"time"

	"github.com/shoplyhq/shoply/internal/pkg/instrument"
	"github.com/shoplyhq/shoply/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

// SendOtp delivers a verification code synchronously. The resend flow uses
// this directly so a delivery failure reaches the caller.
func (m *Mail) SendOtp(ctx context.Context, to, firstName, code, token string, ttl time.Duration) error {
	ctx, span := m.ins.Tracer("account.outbound.email").Start(ctx, "SendOtp")
	defer span.End()

	if err := m.client.Send(ctx, mail.Message{
		To:       []string{to},
		Subject:  "Your verification code",
		TextBody: otpBody(firstName, code, token, ttl),
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func otpBody(firstName, code, token string, ttl time.Duration) string {
	name := firstName
	if name == "" {
		name = "there"
	}

	return fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your verification code is %s. It expires in %d minutes.\n\n"+
			"Verification token: %s\n\n"+
			"If you did not request this, you can ignore this email.\n",
		name, code, int(ttl.Minutes()), token,
	)
}
