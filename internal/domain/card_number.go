// Package domain holds the payment aggregate and the value objects that
// validate and normalise raw card input.
package domain

import "strings"

// CardNumber is the full primary account number, spaces stripped. It is kept
// in validated plain form in memory only.
type CardNumber struct {
	value string
}

func NewCardNumber(raw string) (CardNumber, error) {
	sanitized := strings.ReplaceAll(raw, " ", "")
	if strings.TrimSpace(sanitized) == "" {
		return CardNumber{}, NewInvalidCardNumberError("card number is required")
	}
	if !cardNumberPattern.MatchString(sanitized) {
		return CardNumber{}, NewInvalidCardNumberError("card number must be numeric and between 14 and 19 digits")
	}
	return CardNumber{value: sanitized}, nil
}

func (c CardNumber) Value() string {
	return c.value
}

// LastFour returns the last four digits of the card number.
func (c CardNumber) LastFour() string {
	return c.value[len(c.value)-4:]
}

func (c CardNumber) IsZero() bool {
	return c.value == ""
}
