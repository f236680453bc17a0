package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain error codes. The first group is user input, the second group is
// always a programming defect and must never be blamed on the caller.
const (
	ErrCodeInvalidCardNumber   = "INVALID_CARD_NUMBER"
	ErrCodeInvalidCvv          = "INVALID_CVV"
	ErrCodeInvalidExpiryDate   = "INVALID_EXPIRY_DATE"
	ErrCodeInvalidDenomination = "INVALID_DENOMINATION"
	ErrCodePaymentValidation   = "PAYMENT_VALIDATION"

	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeInvalidState      = "INVALID_STATE"
	ErrCodePaymentNotFound   = "PAYMENT_NOT_FOUND"
	ErrCodeDuplicatePayment  = "DUPLICATE_PAYMENT"
)

func NewInvalidCardNumberError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCardNumber,
		Message: message,
	}
}

func NewInvalidCvvError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCvv,
		Message: message,
	}
}

func NewInvalidExpiryDateError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidExpiryDate,
		Message: message,
	}
}

func NewInvalidDenominationError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidDenomination,
		Message: message,
	}
}

// NewPaymentValidationError folds any value-object failure into the single
// validation error kind surfaced by payment construction. The underlying
// message is preserved for diagnostics; the specific field is not encoded in
// the error type.
func NewPaymentValidationError(err error) *DomainError {
	message := err.Error()
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}
	return &DomainError{
		Code:    ErrCodePaymentValidation,
		Message: message,
		Err:     err,
	}
}

func NewInvalidTransitionError(from, to PaymentStatus) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition from %s to %s", from, to),
	}
}

func NewInvalidStateError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidState,
		Message: message,
	}
}

func NewPaymentNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("payment with ID %s not found", id),
	}
}

func NewDuplicatePaymentError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeDuplicatePayment,
		Message: fmt.Sprintf("payment already exists for payment id %s", id),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsValidationError reports whether err is caused by bad user input rather
// than a defect.
func IsValidationError(err error) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	switch domainErr.Code {
	case ErrCodeInvalidCardNumber, ErrCodeInvalidCvv, ErrCodeInvalidExpiryDate,
		ErrCodeInvalidDenomination, ErrCodePaymentValidation:
		return true
	default:
		return false
	}
}
