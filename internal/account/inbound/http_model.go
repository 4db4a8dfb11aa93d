package inbound

import (
	"net/http"

	"github.com/shoplyhq/shoply/internal/account/entity"
)

type RegisterRequest struct {
	Email       string `json:"email"`
	UserName    string `json:"user_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type UserResponse struct {
	ID          int64  `json:"id,string"`
	Email       string `json:"email"`
	UserName    string `json:"user_name"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
}

func newUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		UserName:    user.UserName,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
		IsActive:    user.IsActive,
	}
}

type RegisterResponse struct {
	UserResponse
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

type OtpVerifyRequest struct {
	OtpCode  string `json:"otp_code"`
	OtpToken string `json:"otp_token"`
}

type OtpVerifyResponse struct {
	Detail  string `json:"detail"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`

	cookies []*http.Cookie
}

func (r OtpVerifyResponse) Cookies() []*http.Cookie {
	return r.cookies
}

type OtpResendRequest struct {
	Email string `json:"email"`
}

type OtpResendResponse struct {
	Detail   string `json:"detail"`
	OtpToken string `json:"otp_token"`
}

type TokenCreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPairResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`

	cookies []*http.Cookie
}

func (r TokenPairResponse) Cookies() []*http.Cookie {
	return r.cookies
}

type ProviderAuthResponse struct {
	TokenPairResponse
}

func (ProviderAuthResponse) StatusCode() int {
	return http.StatusCreated
}

type TokenRefreshRequest struct {
	Refresh string `json:"refresh"`
}

type TokenRefreshResponse struct {
	Access string `json:"access"`

	cookies []*http.Cookie
}

func (r TokenRefreshResponse) Cookies() []*http.Cookie {
	return r.cookies
}

type TokenVerifyRequest struct {
	Token string `json:"token"`
}

type TokenVerifyResponse struct{}

type LogoutResponse struct {
	cookies []*http.Cookie
}

func (LogoutResponse) StatusCode() int {
	return http.StatusNoContent
}

func (r LogoutResponse) Cookies() []*http.Cookie {
	return r.cookies
}
