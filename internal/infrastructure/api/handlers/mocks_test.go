package handlers

import (
	"context"
	"sync"

	"github.com/mufasadev/pix-broker/internal/domain/gateways"
	"github.com/mufasadev/pix-broker/internal/domain/models"
)

type stubGateway struct {
	mu          sync.Mutex
	charge      *gateways.PixCharge
	createErr   error
	statusByID  map[string]string
	statusErr   error
	statusCalls int
	keys        []string
}

func (s *stubGateway) CreatePayment(ctx context.Context, req gateways.CreatePaymentRequest) (*gateways.PixCharge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, req.IdempotencyKey)
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.charge, nil
}

func (s *stubGateway) GetPaymentStatus(ctx context.Context, transactionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusCalls++
	if s.statusErr != nil {
		return "", s.statusErr
	}
	return s.statusByID[transactionID], nil
}

type stubStore struct {
	mu        sync.Mutex
	inserted  []*models.Transaction
	insertErr error
	numbers   map[string]string
}

func (s *stubStore) Insert(ctx context.Context, transaction *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, transaction)
	return nil
}

func (s *stubStore) GetRoutingNumberByTransactionID(ctx context.Context, transactionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.numbers[transactionID], nil
}

type stubRegistry struct {
	called chan string
}

func newStubRegistry() *stubRegistry {
	return &stubRegistry{called: make(chan string, 10)}
}

func (s *stubRegistry) AppendRoutingNumber(ctx context.Context, value string) error {
	s.called <- value
	return nil
}
