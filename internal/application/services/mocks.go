package services

import (
	"context"
	"sync"

	"github.com/cardpay/gateway/internal/application"
	"github.com/cardpay/gateway/internal/domain"
	"github.com/google/uuid"
)

// MockAcquirerClient
type MockAcquirerClient struct {
	mu    sync.Mutex
	calls []application.AuthorisationRequest

	AuthorisePaymentFn func(ctx context.Context, req application.AuthorisationRequest) (*application.AuthorisationResponse, error)
}

func NewMockAcquirerClient() *MockAcquirerClient {
	return &MockAcquirerClient{}
}

func (m *MockAcquirerClient) AuthorisePayment(ctx context.Context, req application.AuthorisationRequest) (*application.AuthorisationResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.AuthorisePaymentFn != nil {
		return m.AuthorisePaymentFn(ctx, req)
	}
	return &application.AuthorisationResponse{Authorised: true, AuthorisationCode: "AUTH-0000"}, nil
}

func (m *MockAcquirerClient) Calls() []application.AuthorisationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]application.AuthorisationRequest(nil), m.calls...)
}

// MockPaymentStore
type MockPaymentStore struct {
	mu       sync.RWMutex
	payments map[uuid.UUID]*domain.Payment

	AddFn func(ctx context.Context, payment *domain.Payment) error
	GetFn func(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
}

func NewMockPaymentStore() *MockPaymentStore {
	return &MockPaymentStore{
		payments: make(map[uuid.UUID]*domain.Payment),
	}
}

func (m *MockPaymentStore) Add(ctx context.Context, payment *domain.Payment) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.payments[payment.ID]; exists {
		return domain.NewDuplicatePaymentError(payment.ID.String())
	}
	m.payments[payment.ID] = payment
	return nil
}

func (m *MockPaymentStore) Get(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, domain.NewPaymentNotFoundError(id.String())
}

func (m *MockPaymentStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.payments)
}
