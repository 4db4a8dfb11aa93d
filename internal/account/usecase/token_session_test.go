package usecase

import (
	"net/http"
	"testing"

	"github.com/shoplyhq/shoply/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginTokens(t *testing.T, env *testEnv) *TokenCreateOutput {
	t.Helper()

	env.db.addUser(activeUser(7, "jane.doe@example.com", "s3cret"))
	out, err := env.uc.TokenCreate(t.Context(), TokenCreateInput{
		Email:    "jane.doe@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	return out
}

func TestTokenRefresh(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		pair := loginTokens(t, env)

		out, err := env.uc.TokenRefresh(t.Context(), TokenRefreshInput{Refresh: pair.RefreshToken})
		require.NoError(t, err)

		claims, err := env.jwt.Verify(out.AccessToken, jwt.KindAccess)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)

		require.Len(t, out.Cookies, 1)
		assert.Equal(t, "access", out.Cookies[0].Name)
		assert.Equal(t, out.AccessToken, out.Cookies[0].Value)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		env := newTestEnv(t)
		pair := loginTokens(t, env)

		_, err := env.uc.TokenRefresh(t.Context(), TokenRefreshInput{Refresh: pair.AccessToken})
		requireBusinessError(t, err, "Token is invalid or expired", http.StatusUnauthorized)
	})

	t.Run("Garbage", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.TokenRefresh(t.Context(), TokenRefreshInput{Refresh: "not-a-jwt"})
		requireBusinessError(t, err, "Token is invalid or expired", http.StatusUnauthorized)
	})

	t.Run("Missing", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.TokenRefresh(t.Context(), TokenRefreshInput{})
		require.Error(t, err)
	})
}

func TestTokenVerify(t *testing.T) {
	t.Run("AcceptsBothKinds", func(t *testing.T) {
		env := newTestEnv(t)
		pair := loginTokens(t, env)

		assert.NoError(t, env.uc.TokenVerify(t.Context(), TokenVerifyInput{Token: pair.AccessToken}))
		assert.NoError(t, env.uc.TokenVerify(t.Context(), TokenVerifyInput{Token: pair.RefreshToken}))
	})

	t.Run("Garbage", func(t *testing.T) {
		env := newTestEnv(t)

		err := env.uc.TokenVerify(t.Context(), TokenVerifyInput{Token: "not-a-jwt"})
		requireBusinessError(t, err, "Token is invalid or expired", http.StatusUnauthorized)
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.uc.Logout(t.Context())
	require.NoError(t, err)

	require.Len(t, out.Cookies, 2)
	for _, c := range out.Cookies {
		assert.Equal(t, -1, c.MaxAge)
		assert.Empty(t, c.Value)
	}
	assert.Equal(t, "access", out.Cookies[0].Name)
	assert.Equal(t, "refresh", out.Cookies[1].Name)
}

func TestProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		env := newTestEnv(t)
		env.db.addUser(activeUser(7, "jane.doe@example.com", "s3cret"))

		ctx := jwt.SetAuth(t.Context(), jwt.Claims{UserID: 7, UserEmail: "jane.doe@example.com"})
		out, err := env.uc.Profile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", out.User.Email)
	})

	t.Run("NoClaims", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.uc.Profile(t.Context())
		requireBusinessError(t, err, "Authentication credentials were not provided.", http.StatusUnauthorized)
	})

	t.Run("UserGone", func(t *testing.T) {
		env := newTestEnv(t)

		ctx := jwt.SetAuth(t.Context(), jwt.Claims{UserID: 404, UserEmail: "ghost@example.com"})
		_, err := env.uc.Profile(ctx)
		requireBusinessError(t, err, "User not found.", http.StatusNotFound)
	})
}
