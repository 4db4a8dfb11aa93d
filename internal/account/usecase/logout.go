package usecase

import (
	"context"
	"net/http"
)

type LogoutOutput struct {
	Cookies []*http.Cookie
}

// Logout expires both session cookies. Tokens are stateless, so there is no
// server-side session to tear down and no blacklist to write to.
func (s *Usecase) Logout(ctx context.Context) (*LogoutOutput, error) {
	_, span := s.startSpan(ctx, "Logout")
	defer span.End()

	return &LogoutOutput{Cookies: s.expiredSessionCookies()}, nil
}
