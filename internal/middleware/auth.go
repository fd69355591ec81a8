package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sharenotes/sharenotes-go/internal/apperr"
	"github.com/sharenotes/sharenotes-go/internal/crypto"
	"github.com/sharenotes/sharenotes-go/internal/model"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	tokenKey    contextKey = "token"
)

const (
	msgTokenRequired = "Access denied. Token required."
	msgInvalidToken  = "Invalid token"
)

// SessionChecker confirms that a verified token is still the user's active session.
type SessionChecker interface {
	CheckSession(ctx context.Context, id model.Identity, token string) error
}

// RequireAuth returns middleware that verifies the bearer token from the
// Authorization header and checks it against the user's active session.
func RequireAuth(secret string, sessions SessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, msgTokenRequired)
				return
			}

			claims, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}

			id := model.Identity{UserID: claims.UserID, Email: claims.Email}
			if err := sessions.CheckSession(r.Context(), id, token); err != nil {
				if apperr.KindOf(err) == apperr.Unauthorized {
					writeJSONError(w, http.StatusUnauthorized, msgInvalidToken)
					return
				}
				slog.ErrorContext(r.Context(), "session lookup failed", "user_id", id.UserID, "error", err)
				writeJSONError(w, http.StatusInternalServerError, apperr.GenericMessage)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, id)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken returns the second space-separated field of the header, so
// "Bearer abc" yields "abc".
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// IdentityFromContext extracts the authenticated identity from the request context.
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	id, ok := ctx.Value(identityKey).(model.Identity)
	return id, ok
}

// TokenFromContext returns the raw bearer token that authenticated the request.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
