package domain

import (
	"fmt"
	"strconv"
	"time"
)

// ExpiryDate is a card expiry month/year pair, validated entirely at
// construction. Two-digit years are expanded using the current UTC century at
// validation time, so the acceptable window shifts at each century boundary.
type ExpiryDate struct {
	month int
	year  int
}

func NewExpiryDate(expiryMonth, expiryYear string) (ExpiryDate, error) {
	if !expiryMonthPattern.MatchString(expiryMonth) {
		return ExpiryDate{}, NewInvalidExpiryDateError("expiry month must be a number between 1 and 12")
	}
	if !expiryYearPattern.MatchString(expiryYear) {
		return ExpiryDate{}, NewInvalidExpiryDateError("expiry year must be two or four digits")
	}

	month, err := strconv.Atoi(expiryMonth)
	if err != nil {
		return ExpiryDate{}, NewInvalidExpiryDateError("expiry month must be a number between 1 and 12")
	}
	year, err := strconv.Atoi(expiryYear)
	if err != nil {
		return ExpiryDate{}, NewInvalidExpiryDateError("expiry year must be two or four digits")
	}

	now := time.Now().UTC()
	if len(expiryYear) == 2 {
		year += (now.Year() / 100) * 100
	}

	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return ExpiryDate{}, NewInvalidExpiryDateError("the expiry date must be in the future")
	}

	return ExpiryDate{month: month, year: year}, nil
}

// Month returns the expiry month (1-12).
func (e ExpiryDate) Month() int {
	return e.month
}

// Year returns the four-digit expiry year.
func (e ExpiryDate) Year() int {
	return e.year
}

// PaddedMonth returns the month as a zero-padded two-digit string.
func (e ExpiryDate) PaddedMonth() string {
	return fmt.Sprintf("%02d", e.month)
}

func (e ExpiryDate) IsZero() bool {
	return e.month == 0 && e.year == 0
}
