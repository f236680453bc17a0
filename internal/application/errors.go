package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeAcquirerFailure = "ACQUIRER_FAILURE"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// NewAcquirerFailureError marks a network, protocol or deserialisation
// failure talking to the bank. It is an infrastructure fault, never a
// decline, and is surfaced as a server error.
func NewAcquirerFailureError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeAcquirerFailure,
		Message:    "acquiring bank request failed",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "an internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
