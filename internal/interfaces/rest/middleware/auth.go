package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cardpay/gateway/internal/auth"
	"github.com/cardpay/gateway/internal/interfaces/rest"
)

type contextKey string

const merchantIDKey contextKey = "merchant_id"

// TokenVerifier validates a bearer token and returns its claims.
type TokenVerifier interface {
	ParseToken(tokenString string) (*auth.Claims, error)
}

// BearerAuth validates bearer tokens and enforces per-route scopes. The
// merchant identity travels only in the token claims.
type BearerAuth struct {
	tokens TokenVerifier
	logger *slog.Logger
}

func NewBearerAuth(tokens TokenVerifier, logger *slog.Logger) *BearerAuth {
	return &BearerAuth{
		tokens: tokens,
		logger: logger,
	}
}

func (m *BearerAuth) RequireScope(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				rest.RespondWithJSON(w, http.StatusUnauthorized, &rest.APIError{
					Code:    "UNAUTHORIZED",
					Message: "missing authorization header",
				})
				return
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				rest.RespondWithJSON(w, http.StatusUnauthorized, &rest.APIError{
					Code:    "UNAUTHORIZED",
					Message: "invalid authorization format",
				})
				return
			}

			claims, err := m.tokens.ParseToken(tokenString)
			if err != nil {
				m.logger.Info("token validation failed", "error", err)
				rest.RespondWithJSON(w, http.StatusUnauthorized, &rest.APIError{
					Code:    "UNAUTHORIZED",
					Message: "invalid token",
				})
				return
			}

			if !claims.HasScope(scope) {
				rest.RespondWithJSON(w, http.StatusForbidden, &rest.APIError{
					Code:    "FORBIDDEN",
					Message: "token is missing the required scope",
				})
				return
			}

			ctx := context.WithValue(r.Context(), merchantIDKey, claims.MerchantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MerchantIDFromContext returns the authenticated merchant id set by
// RequireScope.
func MerchantIDFromContext(ctx context.Context) (string, bool) {
	merchantID, ok := ctx.Value(merchantIDKey).(string)
	return merchantID, ok
}
