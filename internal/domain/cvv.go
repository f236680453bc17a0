package domain

import "strings"

// Cvv is the card verification value. Unlike card numbers, the input is not
// whitespace-stripped; surrounding whitespace is a format failure.
type Cvv struct {
	value string
}

func NewCvv(raw string) (Cvv, error) {
	if strings.TrimSpace(raw) == "" {
		return Cvv{}, NewInvalidCvvError("CVV is required")
	}
	if !cvvPattern.MatchString(raw) {
		return Cvv{}, NewInvalidCvvError("CVV must be numeric and either 3 or 4 digits")
	}
	return Cvv{value: raw}, nil
}

func (c Cvv) Value() string {
	return c.value
}

func (c Cvv) IsZero() bool {
	return c.value == ""
}
