package acquirer

import (
	"errors"
	"fmt"
)

// AcquirerError is a non-success status from the bank. It is an
// infrastructure failure, never a decline.
type AcquirerError struct {
	StatusCode int
	Body       string
}

func (e *AcquirerError) Error() string {
	return fmt.Sprintf("acquirer returned status %d: %s", e.StatusCode, e.Body)
}

func IsAcquirerError(err error) (*AcquirerError, bool) {
	var acquirerErr *AcquirerError
	ok := errors.As(err, &acquirerErr)
	return acquirerErr, ok
}
