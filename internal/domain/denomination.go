package domain

import (
	"fmt"
	"strings"
)

// Currency is the closed set of currencies the gateway charges in.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyEUR Currency = "EUR"
)

// ParseCurrency resolves a currency code case-insensitively.
func ParseCurrency(code string) (Currency, bool) {
	switch Currency(strings.ToUpper(code)) {
	case CurrencyUSD:
		return CurrencyUSD, true
	case CurrencyGBP:
		return CurrencyGBP, true
	case CurrencyEUR:
		return CurrencyEUR, true
	default:
		return "", false
	}
}

// Denomination is a non-negative amount in minor units paired with a currency.
type Denomination struct {
	amount   int64
	currency Currency
}

func NewDenomination(amount int64, currencyCode string) (Denomination, error) {
	if amount < 0 {
		return Denomination{}, NewInvalidDenominationError("amount cannot be negative")
	}
	currency, ok := ParseCurrency(currencyCode)
	if !ok {
		return Denomination{}, NewInvalidDenominationError(fmt.Sprintf("invalid currency code: %s", currencyCode))
	}
	return Denomination{amount: amount, currency: currency}, nil
}

func (d Denomination) Amount() int64 {
	return d.amount
}

func (d Denomination) Currency() Currency {
	return d.currency
}
