package httpx

import (
	"net/http"
	"strings"
)

// TokenVerifier turns a bearer token into an authenticated identity.
// The auth package provides the JWT-backed implementation; tests can
// substitute their own.
type TokenVerifier func(token string) (userID, username string, err error)

// AuthMiddleware guards privileged routes. A missing or malformed
// Authorization header is 401; a token that fails signature or expiry
// verification is 403. On success the identity is attached to the
// request context.
func AuthMiddleware(verify TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				Error(w, http.StatusUnauthorized, "Access token required")
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				Error(w, http.StatusUnauthorized, "Access token required")
				return
			}

			userID, username, err := verify(token)
			if err != nil {
				Error(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := ContextWithUser(r.Context(), userID, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
