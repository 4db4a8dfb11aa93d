package usecase

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shoplyhq/shoply/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProviderServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.FormValue("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "provider-access",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"email":       "Jane.Doe@Example.COM",
			"given_name":  "Jane",
			"family_name": "Doe",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newProviderEnv(t *testing.T) *testEnv {
	t.Helper()

	srv := newProviderServer(t)
	return newTestEnvWithConfig(t, testConfigYAML+fmt.Sprintf(`
oauth:
  providers:
    google:
      client_id: cid
      client_secret: csecret
      redirect_uri: https://shoply.example/callback
      auth_url: %[1]s/auth
      token_url: %[1]s/token
      userinfo_url: %[1]s/userinfo
`, srv.URL))
}

func TestProviderAuth(t *testing.T) {
	t.Run("CreatesAndSignsInNewUser", func(t *testing.T) {
		env := newProviderEnv(t)

		out, err := env.uc.ProviderAuth(t.Context(), ProviderAuthInput{
			Provider: "google",
			Code:     "good-code",
		})
		require.NoError(t, err)

		user := env.db.usersByEmail["jane.doe@example.com"]
		require.NotNil(t, user)
		assert.Equal(t, "jane.doe", user.UserName)
		assert.Equal(t, "Jane", user.FirstName)
		assert.True(t, user.IsActive)

		claims, err := env.jwt.Verify(out.AccessToken, jwt.KindAccess)
		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", claims.UserEmail)
		assert.Len(t, out.Cookies, 2)
	})

	t.Run("ExistingUserSignsIn", func(t *testing.T) {
		env := newProviderEnv(t)
		env.db.addUser(activeUser(7, "jane.doe@example.com", "pw"))

		out, err := env.uc.ProviderAuth(t.Context(), ProviderAuthInput{
			Provider: "google",
			Code:     "good-code",
		})
		require.NoError(t, err)

		claims, err := env.jwt.Verify(out.AccessToken, jwt.KindAccess)
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
	})

	t.Run("BadCode", func(t *testing.T) {
		env := newProviderEnv(t)

		_, err := env.uc.ProviderAuth(t.Context(), ProviderAuthInput{
			Provider: "google",
			Code:     "bad-code",
		})
		requireBusinessError(t, err, "Failed to authenticate with the provider.", http.StatusUnauthorized)
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		env := newProviderEnv(t)

		_, err := env.uc.ProviderAuth(t.Context(), ProviderAuthInput{
			Provider: "nosuch",
			Code:     "good-code",
		})
		requireBusinessError(t, err, "Unknown authentication provider.", http.StatusNotFound)
	})
}
