package repositories

import (
	"context"

	"github.com/mufasadev/pix-broker/internal/domain/models"
)

type TransactionRepository interface {
	// Insert persists a new transaction row. Callers in the creation path
	// discard the error after logging it: persistence is best-effort and must
	// not fail the client-facing response.
	Insert(ctx context.Context, transaction *models.Transaction) error

	// GetRoutingNumberByTransactionID returns the routing number recorded at
	// creation time, or an empty string when no row matches. Absence is not
	// an error.
	GetRoutingNumberByTransactionID(ctx context.Context, transactionID string) (string, error)
}
