/*
Package auth provides the HTTP middleware that extracts the caller's auth key
from the Authorization header.

The auth key is an opaque token handed out at registration; this package only
moves it from the wire into the request context. Whether the key is actually
registered is decided by the credential registry, per operation.
*/
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/jazzyjasmine/multipage-group-chat-application/internal/pkg/randx"
)

// contextKey is a private type for context keys defined in this package,
// preventing collisions with keys from other packages.
type contextKey string

// contextAuthKey is the key under which the extracted auth key is stored in the request context.
const contextAuthKey contextKey = "auth_key"

// CredentialExtractor returns a middleware that pulls the bearer auth key out of the
// Authorization header and injects it into the request context. It never interrupts
// the request: a missing, malformed, or sentinel "null" key simply leaves the caller
// anonymous, and each handler decides what anonymity means for its operation.
func CredentialExtractor() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimSpace(parts[1])
			if token == "" || token == randx.NoAuthKey {
				// Browsers that never registered send the literal string "null".
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), contextAuthKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromContext returns the auth key extracted by CredentialExtractor.
// An empty string means the caller is anonymous.
func TokenFromContext(r *http.Request) string {
	token, ok := r.Context().Value(contextAuthKey).(string)
	if !ok {
		return ""
	}
	return token
}
