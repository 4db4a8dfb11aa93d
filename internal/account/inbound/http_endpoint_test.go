package inbound

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shoplyhq/shoply/internal/account/entity"
	"github.com/shoplyhq/shoply/internal/account/usecase"
	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsecase struct {
	registerIn usecase.RegisterInput
	refreshIn  usecase.TokenRefreshInput
	verifyIn   usecase.TokenVerifyInput
}

func (f *fakeUsecase) Register(_ context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	f.registerIn = in
	return &usecase.RegisterOutput{User: entity.User{
		ID:       7,
		Email:    strings.ToLower(in.Email),
		UserName: in.UserName,
		Role:     "customer",
	}}, nil
}

func (f *fakeUsecase) Profile(context.Context) (*usecase.ProfileOutput, error) {
	return &usecase.ProfileOutput{User: entity.User{ID: 7, Email: "jane.doe@example.com"}}, nil
}

func (f *fakeUsecase) OtpVerify(_ context.Context, in usecase.OtpVerifyInput) (*usecase.OtpVerifyOutput, error) {
	return &usecase.OtpVerifyOutput{
		AccessToken:  "acc",
		RefreshToken: "ref",
		Cookies:      []*http.Cookie{{Name: "access", Value: "acc"}},
	}, nil
}

func (f *fakeUsecase) OtpResend(_ context.Context, in usecase.OtpResendInput) (*usecase.OtpResendOutput, error) {
	return &usecase.OtpResendOutput{OtpToken: "fresh-token"}, nil
}

func (f *fakeUsecase) TokenCreate(_ context.Context, in usecase.TokenCreateInput) (*usecase.TokenCreateOutput, error) {
	return &usecase.TokenCreateOutput{AccessToken: "acc", RefreshToken: "ref"}, nil
}

func (f *fakeUsecase) TokenRefresh(_ context.Context, in usecase.TokenRefreshInput) (*usecase.TokenRefreshOutput, error) {
	f.refreshIn = in
	return &usecase.TokenRefreshOutput{AccessToken: "new-acc"}, nil
}

func (f *fakeUsecase) TokenVerify(_ context.Context, in usecase.TokenVerifyInput) error {
	f.verifyIn = in
	return nil
}

func (f *fakeUsecase) Logout(context.Context) (*usecase.LogoutOutput, error) {
	return &usecase.LogoutOutput{Cookies: []*http.Cookie{
		{Name: "access", MaxAge: -1},
		{Name: "refresh", MaxAge: -1},
	}}, nil
}

func (f *fakeUsecase) ProviderAuth(_ context.Context, in usecase.ProviderAuthInput) (*usecase.ProviderAuthOutput, error) {
	return &usecase.ProviderAuthOutput{AccessToken: "acc", RefreshToken: "ref"}, nil
}

func newTestEndpoint(t *testing.T) (*HTTPEndpoint, *fakeUsecase) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
jwt:
  cookie:
    access_name: access
    refresh_name: refresh
`))
	require.NoError(t, err)

	uc := &fakeUsecase{}
	return &HTTPEndpoint{uc: uc, cfg: cfg}, uc
}

func jsonRequest(method, target, body string) *router.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return &router.Request{Request: req}
}

func TestRegisterEndpoint(t *testing.T) {
	end, uc := newTestEndpoint(t)

	resp, err := end.Register(jsonRequest(http.MethodPost, "/users/", `{
		"email": "Jane.Doe@Example.COM",
		"user_name": "janedoe",
		"first_name": "Jane",
		"last_name": "Doe",
		"password": "s3cret-password"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "Jane.Doe@Example.COM", uc.registerIn.Email)
	out, ok := resp.(RegisterResponse)
	require.True(t, ok)
	assert.Equal(t, http.StatusCreated, out.StatusCode())
	assert.Equal(t, "jane.doe@example.com", out.Email)
}

func TestOtpVerifyEndpoint(t *testing.T) {
	end, _ := newTestEndpoint(t)

	resp, err := end.OtpVerify(jsonRequest(http.MethodPost, "/otp/verify/", `{
		"otp_code": "042137",
		"otp_token": "tok_0123456789abcdefghijklmnopqrstu"
	}`))
	require.NoError(t, err)

	out, ok := resp.(OtpVerifyResponse)
	require.True(t, ok)
	assert.Equal(t, "Email verified successfully!", out.Detail)
	assert.Equal(t, "acc", out.Access)
	assert.NotEmpty(t, out.Cookies())
}

func TestOtpResendEndpoint(t *testing.T) {
	end, _ := newTestEndpoint(t)

	resp, err := end.OtpResend(jsonRequest(http.MethodPost, "/otp/resend/", `{"email": "jane.doe@example.com"}`))
	require.NoError(t, err)

	out, ok := resp.(OtpResendResponse)
	require.True(t, ok)
	assert.Equal(t, "A new OTP has been sent to your email.", out.Detail)
	assert.Equal(t, "fresh-token", out.OtpToken)
}

func TestTokenRefreshEndpoint(t *testing.T) {
	t.Run("FromBody", func(t *testing.T) {
		end, uc := newTestEndpoint(t)

		_, err := end.TokenRefresh(jsonRequest(http.MethodPost, "/jwt/refresh/", `{"refresh": "body-token"}`))
		require.NoError(t, err)
		assert.Equal(t, "body-token", uc.refreshIn.Refresh)
	})

	t.Run("FromCookieOnEmptyBody", func(t *testing.T) {
		end, uc := newTestEndpoint(t)

		req := jsonRequest(http.MethodPost, "/jwt/refresh/", "")
		req.AddCookie(&http.Cookie{Name: "refresh", Value: "cookie-token"})

		_, err := end.TokenRefresh(req)
		require.NoError(t, err)
		assert.Equal(t, "cookie-token", uc.refreshIn.Refresh)
	})

	t.Run("BodyWinsOverCookie", func(t *testing.T) {
		end, uc := newTestEndpoint(t)

		req := jsonRequest(http.MethodPost, "/jwt/refresh/", `{"refresh": "body-token"}`)
		req.AddCookie(&http.Cookie{Name: "refresh", Value: "cookie-token"})

		_, err := end.TokenRefresh(req)
		require.NoError(t, err)
		assert.Equal(t, "body-token", uc.refreshIn.Refresh)
	})
}

func TestTokenVerifyEndpoint(t *testing.T) {
	end, uc := newTestEndpoint(t)

	req := jsonRequest(http.MethodPost, "/jwt/verify/", "")
	req.AddCookie(&http.Cookie{Name: "access", Value: "cookie-access"})

	_, err := end.TokenVerify(req)
	require.NoError(t, err)
	assert.Equal(t, "cookie-access", uc.verifyIn.Token)
}

func TestLogoutEndpoint(t *testing.T) {
	end, _ := newTestEndpoint(t)

	resp, err := end.Logout(jsonRequest(http.MethodPost, "/logout/", ""))
	require.NoError(t, err)

	out, ok := resp.(LogoutResponse)
	require.True(t, ok)
	assert.Equal(t, http.StatusNoContent, out.StatusCode())
	require.Len(t, out.Cookies(), 2)
	assert.Equal(t, -1, out.Cookies()[0].MaxAge)
}
