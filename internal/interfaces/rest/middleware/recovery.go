package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/cardpay/gateway/internal/application"
	"github.com/cardpay/gateway/internal/interfaces/rest"
)

// Recovery creates middleware that recovers from panics and returns 500
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error(
						"panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
						"stack", string(debug.Stack()),
					)

					rest.RespondWithJSON(w, http.StatusInternalServerError, &rest.APIError{
						Code:    application.ErrCodeInternal,
						Message: "an unexpected error occurred",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
