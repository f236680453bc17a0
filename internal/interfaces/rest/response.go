// Package rest holds the shared HTTP response envelope and the mapping from
// core errors to status codes.
package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cardpay/gateway/internal/application"
	"github.com/cardpay/gateway/internal/domain"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func RespondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else {
		if apiErr, ok := data.(*APIError); ok {
			response.Error = apiErr
		}
	}

	_ = json.NewEncoder(w).Encode(response)
}

// EncodeJSON writes data without the envelope, for endpoints whose external
// shape is fixed (the token endpoint follows the OAuth response format).
func EncodeJSON(w io.Writer, data interface{}) {
	_ = json.NewEncoder(w).Encode(data)
}

// RespondDeclined writes the distinct "payment declined" response: the
// projection is still included so the caller can record the stored outcome.
func RespondDeclined(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusPaymentRequired)

	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Data:    data,
		Error: &APIError{
			Code:    "PAYMENT_DECLINED",
			Message: "the payment was declined by the acquiring bank",
		},
	})
}

// WriteError maps core errors to HTTP responses. Validation failures and
// not-found are surfaced with their message; state-machine and store defects
// are masked behind a generic server error.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := application.ErrCodeInternal
	message := "an unexpected error occurred"

	if svcErr, ok := application.IsServiceError(err); ok {
		status = svcErr.HTTPStatus
		code = svcErr.Code
		message = svcErr.Message
	} else {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			switch {
			case domain.IsValidationError(err):
				status = http.StatusBadRequest
				code = domainErr.Code
				message = domainErr.Message
			case domainErr.Code == domain.ErrCodePaymentNotFound:
				status = http.StatusNotFound
				code = domainErr.Code
				message = domainErr.Message
			}
			// INVALID_TRANSITION, INVALID_STATE and DUPLICATE_PAYMENT are
			// defects: keep the generic 500.
		}
	}

	RespondWithJSON(w, status, &APIError{
		Code:    code,
		Message: message,
	})
}
