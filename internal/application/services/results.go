package services

import (
	"strconv"

	"github.com/cardpay/gateway/internal/domain"
	"github.com/google/uuid"
)

// PaymentResult is the response projection of a committed payment. Expiry
// fields are formatted strings matching the aggregate's padded month
// representation.
type PaymentResult struct {
	ID             uuid.UUID `json:"id"`
	Status         string    `json:"status"`
	LastFourDigits string    `json:"last_four_digits"`
	ExpiryMonth    string    `json:"expiry_month"`
	ExpiryYear     string    `json:"expiry_year"`
	Currency       string    `json:"currency"`
	Amount         int64     `json:"amount"`
}

func newPaymentResult(p *domain.Payment) *PaymentResult {
	expiry := p.CardDetails.ExpiryDate()
	return &PaymentResult{
		ID:             p.ID,
		Status:         string(p.Status),
		LastFourDigits: p.LastFourDigits,
		ExpiryMonth:    expiry.PaddedMonth(),
		ExpiryYear:     strconv.Itoa(expiry.Year()),
		Currency:       string(p.Denomination.Currency()),
		Amount:         p.Denomination.Amount(),
	}
}
