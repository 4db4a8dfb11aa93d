package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/instrument"
	"github.com/shoplyhq/shoply/internal/pkg/mail"
	"github.com/shoplyhq/shoply/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
app:
  name: Shoply
modules:
  notification:
    support_email: support@shoply.example
`

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeMail struct {
	sent     []mail.Message
	failures int
}

func (f *fakeMail) Send(_ context.Context, msg mail.Message) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestUsecase(t *testing.T) (*Usecase, *fakeMail) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	repo := &fakeMail{}
	uc := NewNotification(Dependency{
		Config:     cfg,
		Clock:      fixedClock{now: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)},
		Validator:  v10,
		RepoMail:   repo,
		Instrument: instrument.NewNoop(),
	})
	return uc, repo
}

func validInput() ConsumeUserRegisteredInput {
	return ConsumeUserRegisteredInput{
		UserID:    7,
		Email:     "jane.doe@example.com",
		FirstName: "Jane",
		OtpCode:   "042137",
		OtpToken:  "tok_0123456789abcdefghijklmnopqrstu",
		ExpiresIn: 300,
	}
}

func TestConsumeUserRegistered(t *testing.T) {
	t.Run("SendsEmail", func(t *testing.T) {
		uc, repo := newTestUsecase(t)

		require.NoError(t, uc.ConsumeUserRegistered(t.Context(), validInput()))

		require.Len(t, repo.sent, 1)
		msg := repo.sent[0]
		assert.Equal(t, []string{"jane.doe@example.com"}, msg.To)
		assert.Equal(t, "Your verification code", msg.Subject)
		assert.Contains(t, msg.TextBody, "Hi Jane,")
		assert.Contains(t, msg.TextBody, "042137")
		assert.Contains(t, msg.TextBody, "expires in 5 minutes")
		assert.Contains(t, msg.TextBody, "tok_0123456789abcdefghijklmnopqrstu")
		assert.Contains(t, msg.TextBody, "Shoply")
		assert.Contains(t, msg.TextBody, "support@shoply.example")
		assert.Contains(t, msg.TextBody, "2026")
	})

	t.Run("MissingFirstNameFallsBack", func(t *testing.T) {
		uc, repo := newTestUsecase(t)

		in := validInput()
		in.FirstName = ""
		require.NoError(t, uc.ConsumeUserRegistered(t.Context(), in))

		require.Len(t, repo.sent, 1)
		assert.Contains(t, repo.sent[0].TextBody, "Hi there,")
	})

	t.Run("InvalidPayloadDropped", func(t *testing.T) {
		uc, repo := newTestUsecase(t)

		in := validInput()
		in.OtpCode = "12AB56"
		require.NoError(t, uc.ConsumeUserRegistered(t.Context(), in))
		assert.Empty(t, repo.sent)
	})

	t.Run("TransientFailureRetried", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.failures = 1

		require.NoError(t, uc.ConsumeUserRegistered(t.Context(), validInput()))
		assert.Len(t, repo.sent, 1)
	})

	t.Run("ExhaustedRetriesDropped", func(t *testing.T) {
		uc, repo := newTestUsecase(t)
		repo.failures = 10

		// The consumer never fails the message; delivery loss is logged only.
		require.NoError(t, uc.ConsumeUserRegistered(t.Context(), validInput()))
		assert.Empty(t, repo.sent)
	})
}
