package router

import (
	"net/http"
	"strings"

	"github.com/shoplyhq/shoply/internal/pkg/config"
	"github.com/shoplyhq/shoply/internal/pkg/jwt"
)

// middlewareAuthentication guards every route not listed in publicEndpoints.
// Credentials come from the Authorization header or, failing that, the access
// token cookie set at login.
func middlewareAuthentication(verifier jwt.JWT, cfg config.Config, publicEndpoints map[string]map[string]struct{}) Middleware {
	accessCookie := "access"
	if cfg != nil {
		if name := cfg.GetString("jwt.cookie.access_name"); name != "" {
			accessCookie = name
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			var token string
			if p := strings.Fields(r.Header.Get("Authorization")); len(p) == 2 && strings.EqualFold(p[0], "Bearer") {
				token = p[1]
			} else if c, err := r.Cookie(accessCookie); err == nil {
				token = c.Value
			}

			if token == "" {
				writeJSON(w, errorResponse{Detail: "Authentication credentials were not provided."}, http.StatusUnauthorized)
				return
			}

			claims, err := verifier.Verify(token, jwt.KindAccess)
			if err != nil {
				writeJSON(w, errorResponse{Detail: "Given token not valid for any token type"}, http.StatusUnauthorized)
				return
			}

			ctx := jwt.SetAuth(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
