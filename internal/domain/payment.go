package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the current state of a payment in its lifecycle
type PaymentStatus string

const (
	StatusPending    PaymentStatus = "PENDING"
	StatusAuthorised PaymentStatus = "AUTHORISED"
	StatusDeclined   PaymentStatus = "DECLINED"

	// StatusRejected is a response-level classification for requests that
	// fail validation. A rejected payment is never stored, so no persisted
	// aggregate ever carries this status.
	StatusRejected PaymentStatus = "REJECTED"
)

// Payment is the aggregate root for a single charge attempt. It is built
// privately by one in-flight request, mutated at most twice (once to move off
// Pending, once to attach the authorisation code) and then handed to the
// store, after which it is immutable.
type Payment struct {
	ID           uuid.UUID
	MerchantID   string
	CardDetails  CardDetails
	Denomination Denomination

	Status            PaymentStatus
	AuthorisationCode *string
	LastFourDigits    string

	CreatedAt time.Time
}

// NewPayment validates all raw fields and constructs a pending payment with a
// fresh identity. Any value-object failure is folded into a single unified
// validation error; the specific field is recoverable only from the message.
func NewPayment(
	merchantID string,
	cardNumber string,
	expiryMonth string,
	expiryYear string,
	amount int64,
	currency string,
	cvv string,
) (*Payment, error) {
	if strings.TrimSpace(merchantID) == "" {
		return nil, &DomainError{
			Code:    ErrCodePaymentValidation,
			Message: "merchant ID is required",
		}
	}

	denomination, err := NewDenomination(amount, currency)
	if err != nil {
		return nil, NewPaymentValidationError(err)
	}

	cardNumberObj, err := NewCardNumber(cardNumber)
	if err != nil {
		return nil, NewPaymentValidationError(err)
	}
	expiryDateObj, err := NewExpiryDate(expiryMonth, expiryYear)
	if err != nil {
		return nil, NewPaymentValidationError(err)
	}
	cvvObj, err := NewCvv(cvv)
	if err != nil {
		return nil, NewPaymentValidationError(err)
	}

	cardDetails, err := NewCardDetails(cardNumberObj, expiryDateObj, cvvObj)
	if err != nil {
		return nil, NewPaymentValidationError(err)
	}

	return &Payment{
		ID:             uuid.New(),
		MerchantID:     merchantID,
		CardDetails:    cardDetails,
		Denomination:   denomination,
		Status:         StatusPending,
		LastFourDigits: cardNumberObj.LastFour(),
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// Authorise applies the bank's verdict. The only legal transitions are
// Pending to Authorised and Pending to Declined; calling on a non-pending
// payment is a defect, not a user input error.
func (p *Payment) Authorise(authorised bool) error {
	target := StatusDeclined
	if authorised {
		target = StatusAuthorised
	}

	if p.Status != StatusPending {
		return NewInvalidTransitionError(p.Status, target)
	}

	p.Status = target
	return nil
}

// AttachAuthorisationCode stores the bank-supplied code. It must never be
// attached to a declined payment.
func (p *Payment) AttachAuthorisationCode(code string) error {
	if p.Status == StatusDeclined {
		return NewInvalidStateError("authorisation code cannot be set on a declined payment")
	}
	p.AuthorisationCode = &code
	return nil
}

// helper to identify payment statuses that are terminal
func (p *Payment) IsTerminal() bool {
	return p.Status != StatusPending
}
