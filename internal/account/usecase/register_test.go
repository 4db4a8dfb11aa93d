package usecase

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Email:     "Jane.Doe@Example.COM",
		UserName:  "janedoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "s3cret-password",
	}
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.uc.Register(t.Context(), validRegisterInput())
		require.NoError(t, err)

		assert.Equal(t, "jane.doe@example.com", out.User.Email)
		assert.Equal(t, "customer", out.User.Role)
		assert.False(t, out.User.IsActive)

		require.Len(t, env.db.records, 1)
		rec := env.db.records[0]
		assert.Equal(t, "042137", rec.Code)
		assert.Equal(t, rec.CreatedAt.Add(5*time.Minute), rec.ExpiresAt)

		require.Len(t, env.mq.events, 1)
		assert.Equal(t, out.User.ID, env.mq.events[0].UserID)
		assert.Equal(t, rec.Token, env.mq.events[0].OtpToken)
	})

	t.Run("MissingEmail", func(t *testing.T) {
		env := newTestEnv(t)

		in := validRegisterInput()
		in.Email = ""

		_, err := env.uc.Register(t.Context(), in)
		require.Error(t, err)
		assert.Empty(t, env.db.usersByEmail)
		assert.Empty(t, env.db.records)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		env := newTestEnv(t)
		env.db.addUser(activeUser(99, "jane.doe@example.com", "whatever"))

		_, err := env.uc.Register(t.Context(), validRegisterInput())
		requireBusinessError(t, err, "Validation error", http.StatusBadRequest)
	})

	t.Run("PublishFailureStillSucceeds", func(t *testing.T) {
		env := newTestEnv(t)
		env.mq.err = errors.New("broker down")

		out, err := env.uc.Register(t.Context(), validRegisterInput())
		require.NoError(t, err)
		assert.NotZero(t, out.User.ID)
		assert.Len(t, env.db.records, 1)
	})

	t.Run("OtpIssueFailureStillSucceeds", func(t *testing.T) {
		env := newTestEnv(t)
		env.db.createOtpErr = errors.New("db down")

		out, err := env.uc.Register(t.Context(), validRegisterInput())
		require.NoError(t, err)
		assert.NotZero(t, out.User.ID)
		assert.Empty(t, env.mq.events)
	})
}
