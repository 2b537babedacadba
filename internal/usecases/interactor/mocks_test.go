package interactor

import (
	"context"
	"sync"

	"github.com/mufasadev/pix-broker/internal/domain/gateways"
	"github.com/mufasadev/pix-broker/internal/domain/models"
)

type fakeGateway struct {
	mu          sync.Mutex
	createReqs  []gateways.CreatePaymentRequest
	charge      *gateways.PixCharge
	createErr   error
	statusByID  map[string]string
	statusErr   error
	statusCalls int
}

func (f *fakeGateway) CreatePayment(ctx context.Context, req gateways.CreatePaymentRequest) (*gateways.PixCharge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createReqs = append(f.createReqs, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.charge, nil
}

func (f *fakeGateway) GetPaymentStatus(ctx context.Context, transactionID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls++
	if f.statusErr != nil {
		return "", f.statusErr
	}
	return f.statusByID[transactionID], nil
}

type fakeTransactionStore struct {
	mu          sync.Mutex
	inserted    []*models.Transaction
	insertErr   error
	numbers     map[string]string
	lookupErr   error
	lookupCalls int
}

func (f *fakeTransactionStore) Insert(ctx context.Context, transaction *models.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, transaction)
	return nil
}

func (f *fakeTransactionStore) GetRoutingNumberByTransactionID(ctx context.Context, transactionID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookupCalls++
	if f.lookupErr != nil {
		return "", f.lookupErr
	}
	return f.numbers[transactionID], nil
}

// fakeRegistry signals every append on the called channel so tests can wait
// for the detached goroutine.
type fakeRegistry struct {
	mu     sync.Mutex
	values []string
	err    error
	called chan string
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{called: make(chan string, 10)}
}

func (f *fakeRegistry) AppendRoutingNumber(ctx context.Context, value string) error {
	f.mu.Lock()
	f.values = append(f.values, value)
	f.mu.Unlock()
	f.called <- value
	return f.err
}

func (f *fakeRegistry) appendedValues() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.values))
	copy(out, f.values)
	return out
}
