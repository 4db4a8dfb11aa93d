package usecase

import (
	"net/http"
	"testing"
	"time"

	"github.com/shoplyhq/shoply/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUnverified(t *testing.T, env *testEnv) (userID int64, code, token string) {
	t.Helper()

	out, err := env.uc.Register(t.Context(), validRegisterInput())
	require.NoError(t, err)
	require.Len(t, env.db.records, 1)

	rec := env.db.records[0]
	return out.User.ID, rec.Code, rec.Token
}

func TestOtpVerify(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		userID, code, token := registerUnverified(t, env)

		out, err := env.uc.OtpVerify(t.Context(), OtpVerifyInput{OtpCode: code, OtpToken: token})
		require.NoError(t, err)

		assert.Equal(t, []int64{userID}, env.db.activated)
		assert.NotEmpty(t, out.AccessToken)
		assert.NotEmpty(t, out.RefreshToken)

		claims, err := env.jwt.Verify(out.AccessToken, jwt.KindAccess)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)

		require.Len(t, out.Cookies, 2)
		assert.Equal(t, "access", out.Cookies[0].Name)
		assert.Equal(t, out.AccessToken, out.Cookies[0].Value)
		assert.Equal(t, "refresh", out.Cookies[1].Name)
		assert.True(t, out.Cookies[0].HttpOnly)
		assert.True(t, out.Cookies[0].Secure)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.OtpVerify(t.Context(), OtpVerifyInput{
			OtpCode:  "123456",
			OtpToken: "no-such-token-0123456789",
		})
		requireBusinessError(t, err, "Invalid or expired OTP token.", http.StatusBadRequest)
	})

	t.Run("WrongCode", func(t *testing.T) {
		env := newTestEnv(t)
		_, code, token := registerUnverified(t, env)

		wrong := "999999"
		require.NotEqual(t, code, wrong)

		_, err := env.uc.OtpVerify(t.Context(), OtpVerifyInput{OtpCode: wrong, OtpToken: token})
		requireBusinessError(t, err, "Invalid OTP.", http.StatusBadRequest)
		assert.Empty(t, env.db.activated)
	})

	t.Run("WrongCodeOnExpiredRecord", func(t *testing.T) {
		env := newTestEnv(t)
		_, _, token := registerUnverified(t, env)

		env.db.otpByToken[token].ExpiresAt = env.clock.Now().Add(-time.Minute)

		// The code comparison runs before the expiry check.
		_, err := env.uc.OtpVerify(t.Context(), OtpVerifyInput{OtpCode: "999999", OtpToken: token})
		requireBusinessError(t, err, "Invalid OTP.", http.StatusBadRequest)
	})

	t.Run("Expired", func(t *testing.T) {
		env := newTestEnv(t)
		_, code, token := registerUnverified(t, env)

		env.db.otpByToken[token].ExpiresAt = env.clock.Now().Add(-time.Minute)

		_, err := env.uc.OtpVerify(t.Context(), OtpVerifyInput{OtpCode: code, OtpToken: token})
		requireBusinessError(t, err, "OTP has expired. Please request a new one.", http.StatusBadRequest)
		assert.Empty(t, env.db.activated)
	})

	t.Run("DoubleVerifyIsIdempotent", func(t *testing.T) {
		env := newTestEnv(t)
		userID, code, token := registerUnverified(t, env)

		_, err := env.uc.OtpVerify(t.Context(), OtpVerifyInput{OtpCode: code, OtpToken: token})
		require.NoError(t, err)

		_, err = env.uc.OtpVerify(t.Context(), OtpVerifyInput{OtpCode: code, OtpToken: token})
		require.NoError(t, err)
		assert.Equal(t, []int64{userID, userID}, env.db.activated)
	})

	t.Run("MalformedInput", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.OtpVerify(t.Context(), OtpVerifyInput{OtpCode: "12345", OtpToken: "short"})
		require.Error(t, err)
	})
}
