package usecase

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpResend(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		_, _, _ = registerUnverified(t, env)

		out, err := env.uc.OtpResend(t.Context(), OtpResendInput{Email: "Jane.Doe@example.com"})
		require.NoError(t, err)
		assert.NotEmpty(t, out.OtpToken)

		// A second record is appended; the first stays redeemable.
		require.Len(t, env.db.records, 2)
		require.Len(t, env.email.sent, 1)
		assert.Equal(t, "jane.doe@example.com", env.email.sent[0].to)
		assert.Equal(t, env.db.records[1].Code, env.email.sent[0].code)
		assert.Equal(t, out.OtpToken, env.email.sent[0].token)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.OtpResend(t.Context(), OtpResendInput{Email: "nobody@example.com"})
		requireBusinessError(t, err, "User not found.", http.StatusNotFound)
	})

	t.Run("AlreadyVerified", func(t *testing.T) {
		env := newTestEnv(t)
		env.db.addUser(activeUser(7, "jane.doe@example.com", "pw"))

		_, err := env.uc.OtpResend(t.Context(), OtpResendInput{Email: "jane.doe@example.com"})
		requireBusinessError(t, err, "User is already verified.", http.StatusBadRequest)
	})

	t.Run("EmailFailure", func(t *testing.T) {
		env := newTestEnv(t)
		_, _, _ = registerUnverified(t, env)
		env.email.err = errors.New("smtp down")

		_, err := env.uc.OtpResend(t.Context(), OtpResendInput{Email: "jane.doe@example.com"})
		require.Error(t, err)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.OtpResend(t.Context(), OtpResendInput{Email: "not-an-email"})
		require.Error(t, err)
		assert.Empty(t, env.email.sent)
	})
}
