package inbound

import (
	"github.com/shoplyhq/shoply/internal/account/usecase"
	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for registration, OTP verification and
// session issuance.
type HTTPEndpoint struct {
	uc  uc
	cfg config.Config
}

// Register creates an inactive account and kicks off OTP delivery.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:       req.Email,
		UserName:    req.UserName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{UserResponse: newUserResponse(resp.User)}, nil
}

// Profile returns the account behind the presented access token.
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return newUserResponse(resp.User), nil
}

// OtpVerify redeems a code+token pair, activates the account and opens a session.
func (h *HTTPEndpoint) OtpVerify(r *router.Request) (any, error) {
	var req OtpVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OtpVerify(r.Context(), usecase.OtpVerifyInput{
		OtpCode:  req.OtpCode,
		OtpToken: req.OtpToken,
	})
	if err != nil {
		return nil, err
	}

	return OtpVerifyResponse{
		Detail:  "Email verified successfully!",
		Access:  resp.AccessToken,
		Refresh: resp.RefreshToken,
		cookies: resp.Cookies,
	}, nil
}

// OtpResend issues a fresh code+token pair for an unverified account.
func (h *HTTPEndpoint) OtpResend(r *router.Request) (any, error) {
	var req OtpResendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OtpResend(r.Context(), usecase.OtpResendInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return OtpResendResponse{
		Detail:   "A new OTP has been sent to your email.",
		OtpToken: resp.OtpToken,
	}, nil
}

// TokenCreate authenticates credentials and issues an access/refresh pair.
func (h *HTTPEndpoint) TokenCreate(r *router.Request) (any, error) {
	var req TokenCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.TokenCreate(r.Context(), usecase.TokenCreateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return TokenPairResponse{
		Access:  resp.AccessToken,
		Refresh: resp.RefreshToken,
		cookies: resp.Cookies,
	}, nil
}

// TokenRefresh mints a new access token. The refresh token comes from the
// body or, for cookie-based clients, the refresh cookie.
func (h *HTTPEndpoint) TokenRefresh(r *router.Request) (any, error) {
	var req TokenRefreshRequest
	// Cookie clients may post an empty body.
	if err := r.DecodeBody(&req); err != nil {
		req.Refresh = ""
	}

	if req.Refresh == "" {
		req.Refresh = h.cookieValue(r, "jwt.cookie.refresh_name", "refresh")
	}

	resp, err := h.uc.TokenRefresh(r.Context(), usecase.TokenRefreshInput{Refresh: req.Refresh})
	if err != nil {
		return nil, err
	}

	return TokenRefreshResponse{
		Access:  resp.AccessToken,
		cookies: resp.Cookies,
	}, nil
}

// TokenVerify checks a token from the body or the access cookie.
func (h *HTTPEndpoint) TokenVerify(r *router.Request) (any, error) {
	var req TokenVerifyRequest
	// Cookie clients may post an empty body.
	if err := r.DecodeBody(&req); err != nil {
		req.Token = ""
	}

	if req.Token == "" {
		req.Token = h.cookieValue(r, "jwt.cookie.access_name", "access")
	}

	if err := h.uc.TokenVerify(r.Context(), usecase.TokenVerifyInput{Token: req.Token}); err != nil {
		return nil, err
	}

	return TokenVerifyResponse{}, nil
}

// Logout expires both session cookies.
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	resp, err := h.uc.Logout(r.Context())
	if err != nil {
		return nil, err
	}

	return LogoutResponse{cookies: resp.Cookies}, nil
}

// ProviderAuth exchanges an OAuth authorization code for a local session.
func (h *HTTPEndpoint) ProviderAuth(r *router.Request) (any, error) {
	var req struct {
		Code  string `json:"code"`
		State string `json:"state"`
	}
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.ProviderAuth(r.Context(), usecase.ProviderAuthInput{
		Provider: r.GetParam("provider"),
		Code:     req.Code,
		State:    req.State,
	})
	if err != nil {
		return nil, err
	}

	return ProviderAuthResponse{TokenPairResponse: TokenPairResponse{
		Access:  resp.AccessToken,
		Refresh: resp.RefreshToken,
		cookies: resp.Cookies,
	}}, nil
}

func (h *HTTPEndpoint) cookieValue(r *router.Request, nameKey, fallback string) string {
	name := h.cfg.GetString(nameKey)
	if name == "" {
		name = fallback
	}

	c, err := r.Cookie(name)
	if err != nil || c == nil {
		return ""
	}
	return c.Value
}
