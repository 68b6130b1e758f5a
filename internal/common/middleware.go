package common

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type contextKey string

const userIDKey contextKey = "user_id"

// SessionChecker reports whether a token is the active session for a user.
// Backed by the redis session store; middleware treats it as opaque.
type SessionChecker interface {
	Active(ctx context.Context, userID, token string) (bool, error)
}

// UserIDFromContext returns the authenticated user id injected by the auth
// middleware. Every service call downstream trusts this value.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// WithUserID is used by tests and internal callers to build a pre-authed context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// AuthMiddleware validates the bearer token, checks it is the live session
// and injects the user id into the request context.
func AuthMiddleware(secret []byte, sessions SessionChecker, logger *zap.SugaredLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.Fields(r.Header.Get("Authorization"))
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			claims, err := ValidToken(parts[1], secret)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			if sessions != nil {
				active, err := sessions.Active(r.Context(), claims.UserID, parts[1])
				if err != nil {
					logger.Warnw("session lookup failed", "user_id", claims.UserID, "error", err)
					http.Error(w, "session unavailable", http.StatusUnauthorized)
					return
				}
				if !active {
					http.Error(w, "session revoked", http.StatusUnauthorized)
					return
				}
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
