package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xavierca1/leads-portal/internal/entity"
	"github.com/xavierca1/leads-portal/internal/infra/http/session"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionFromContext returns the session injected by RequireRole.
func SessionFromContext(ctx context.Context) (entity.Session, bool) {
	s, ok := ctx.Value(sessionKey).(entity.Session)
	return s, ok
}

// RequireRole resolves the bearer token against the session manager and
// rejects callers whose role is not in the allow list. The resolved
// session rides the request context for handlers and usecases.
func RequireRole(sessions *session.Manager, roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeAuthError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			sess, ok := sessions.Get(token)
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}
			if len(allowed) > 0 && !allowed[sess.Role] {
				writeAuthError(w, http.StatusForbidden, "role "+sess.Role+" may not access this view")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
