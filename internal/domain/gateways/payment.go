package gateways

import (
	"context"

	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	Amount         decimal.Decimal
	PayerCPF       string
	PayerEmail     string
	IdempotencyKey string
}

// PixCharge is what the gateway hands back on creation: the identifier it
// assigned and the copy-paste pix code for the payer.
type PixCharge struct {
	TransactionID string
	PixCode       string
}

type PaymentGateway interface {
	// CreatePayment issues a pix payment-creation request. The idempotency
	// key must be fresh per logical charge so network-level retries do not
	// double-charge.
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*PixCharge, error)

	// GetPaymentStatus fetches the current status of a previously created
	// payment.
	GetPaymentStatus(ctx context.Context, transactionID string) (string, error)
}
