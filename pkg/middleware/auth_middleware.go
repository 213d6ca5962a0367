package middleware

import (
	"errors"
	"net/http"
	"strings"

	"todo-service/pkg/jwtutil"
	"todo-service/pkg/response"
	"todo-service/pkg/xerrors"
)

type AuthMiddleware struct {
	Verifier *jwtutil.Verifier
}

func NewAuthMiddleware(verifier *jwtutil.Verifier) *AuthMiddleware {
	return &AuthMiddleware{Verifier: verifier}
}

func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	if q := r.URL.Query().Get("token"); q != "" {
		return q
	}
	return ""
}

// Require rejects requests without a valid bearer token and loads the
// token claims into the request context.
func (am *AuthMiddleware) Require() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				response.Error(w, http.StatusUnauthorized, "No token provided")
				return
			}

			claims, err := am.Verifier.ParseAndValidate(token)
			if err != nil {
				if errors.Is(err, xerrors.ErrExpiredToken) {
					response.Error(w, http.StatusUnauthorized, "Token expired")
					return
				}
				response.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, setContextValues(r, claims, token))
		})
	}
}
