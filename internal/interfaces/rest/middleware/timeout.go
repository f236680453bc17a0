package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cardpay/gateway/internal/interfaces/rest"
)

// Timeout bounds how long a request may run before the caller gets a 503
// envelope. The payment path detaches its bank-and-commit leg from this
// deadline, so a slow authorisation still settles even after the response
// has timed out.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body, _ := json.Marshal(rest.APIResponse{
		Success: false,
		Error: &rest.APIError{
			Code:    "TIMEOUT",
			Message: "the request did not complete in time",
		},
	})

	return func(next http.Handler) http.Handler {
		timeoutHandler := http.TimeoutHandler(next, timeout, string(body))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			timeoutHandler.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
