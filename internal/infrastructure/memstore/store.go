// Package memstore provides the in-memory payment store shared across
// concurrent requests.
package memstore

import (
	"context"
	"sync"

	"github.com/cardpay/gateway/internal/domain"
	"github.com/google/uuid"
)

// Store is a mutex-guarded map keyed by payment id. Entries are add-only:
// existing keys are never overwritten or removed, and aggregates are fully
// built before they are handed over, so readers never observe a partial
// payment.
type Store struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*domain.Payment
}

func NewStore() *Store {
	return &Store{
		payments: make(map[uuid.UUID]*domain.Payment),
	}
}

// Add stores a payment under its id. A duplicate id is a defect: ids are
// generated fresh per aggregate.
func (s *Store) Add(_ context.Context, payment *domain.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.payments[payment.ID]; exists {
		return domain.NewDuplicatePaymentError(payment.ID.String())
	}
	s.payments[payment.ID] = payment
	return nil
}

func (s *Store) Get(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payment, ok := s.payments[id]
	if !ok {
		return nil, domain.NewPaymentNotFoundError(id.String())
	}
	return payment, nil
}
