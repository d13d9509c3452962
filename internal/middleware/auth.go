package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vaultpass/vaultpass-web/internal/crypto"
	"github.com/vaultpass/vaultpass-web/internal/session"
)

// SessionCookie is the name of the cookie holding the browser session token.
const SessionCookie = "vaultpass_session"

type contextKey string

const sessionKey contextKey = "session"

// SessionAuth returns middleware that resolves the browser session from the
// session cookie or a Bearer token and stores it in the request context.
func SessionAuth(secret string, store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "not logged in")
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}

			sess, err := store.Get(claims.SessionID)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "session ended, please log in again")
				return
			}

			ctx := WithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found {
		return ""
	}
	return token
}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext extracts the authenticated session from the request context.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(*session.Session)
	return sess, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
