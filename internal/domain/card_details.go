package domain

// CardDetails groups the card number, expiry date and CVV. All three are
// mandatory; it has no lifecycle of its own beyond the owning payment.
type CardDetails struct {
	cardNumber CardNumber
	expiryDate ExpiryDate
	cvv        Cvv
}

func NewCardDetails(cardNumber CardNumber, expiryDate ExpiryDate, cvv Cvv) (CardDetails, error) {
	if cardNumber.IsZero() {
		return CardDetails{}, NewInvalidCardNumberError("card number is required")
	}
	if expiryDate.IsZero() {
		return CardDetails{}, NewInvalidExpiryDateError("expiry date is required")
	}
	if cvv.IsZero() {
		return CardDetails{}, NewInvalidCvvError("CVV is required")
	}
	return CardDetails{cardNumber: cardNumber, expiryDate: expiryDate, cvv: cvv}, nil
}

func (c CardDetails) CardNumber() CardNumber {
	return c.cardNumber
}

func (c CardDetails) ExpiryDate() ExpiryDate {
	return c.expiryDate
}

func (c CardDetails) Cvv() Cvv {
	return c.cvv
}
