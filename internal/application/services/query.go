package services

import (
	"context"

	"github.com/cardpay/gateway/internal/application"
	"github.com/google/uuid"
)

// QueryService is the read path: it projects stored payments into the same
// response shape as processing, with no side effects.
type QueryService struct {
	store application.PaymentStore
}

func NewQueryService(store application.PaymentStore) *QueryService {
	return &QueryService{
		store: store,
	}
}

func (s *QueryService) GetPayment(ctx context.Context, id uuid.UUID) (*PaymentResult, error) {
	payment, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return newPaymentResult(payment), nil
}
