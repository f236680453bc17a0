// Package application holds the orchestration layer: the ports to the
// acquiring bank and the payment store, and the errors produced while
// coordinating them.
package application

import (
	"context"

	"github.com/cardpay/gateway/internal/domain"
	"github.com/google/uuid"
)

// AcquirerClient is the port for the external acquiring bank. The single
// authorise call is synchronous; retries, if any, are a caller policy.
type AcquirerClient interface {
	AuthorisePayment(ctx context.Context, req AuthorisationRequest) (*AuthorisationResponse, error)
}

// PaymentStore is the port for the shared payment collection. Entries are
// add-only; a successful Add is immediately visible to Get from any caller.
type PaymentStore interface {
	Add(ctx context.Context, payment *domain.Payment) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
}
