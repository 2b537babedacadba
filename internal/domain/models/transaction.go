package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// StatusSentToGateway is written once at creation time. The row is never
	// updated afterwards; the gateway remains the source of truth for the
	// payment lifecycle.
	StatusSentToGateway = "sent to gateway"

	// StatusApproved is the gateway status that triggers the contact
	// registry append. Every other status is ignored.
	StatusApproved = "approved"
)

// TimeLayout is the civil timestamp format stored in created_at. No offset is
// kept; the wall clock is taken in the deployment timezone.
const TimeLayout = "2006-01-02 15:04:05"

// Timezone is the civil timezone for created_at.
const Timezone = "America/Sao_Paulo"

type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	CreatedAt     time.Time       `db:"created_at"`
	PayerID       string          `db:"payer_id"`
	PayerEmail    string          `db:"payer_email"`
	Amount        decimal.Decimal `db:"amount"`
	Status        string          `db:"status"`
	RoutingNumber string          `db:"routing_number"`
}
