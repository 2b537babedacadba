package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mufasadev/pix-broker/internal/domain/models"
	"github.com/mufasadev/pix-broker/internal/domain/repositories"
	apperrors "github.com/mufasadev/pix-broker/internal/errors"
	"github.com/mufasadev/pix-broker/pkg/log"
	"github.com/rs/zerolog"
)

type TransactionRepositoryImpl struct {
	db     *pgxpool.Pool
	logger *zerolog.Logger
}

// NewTransactionRepositoryImpl creates new instance of TransactionRepositoryImpl.
func NewTransactionRepositoryImpl(db *pgxpool.Pool) repositories.TransactionRepository {
	l := log.GetLogger()
	return &TransactionRepositoryImpl{
		db:     db,
		logger: &l,
	}
}

const insertTransaction = `
INSERT INTO transactions (transaction_id, created_at, payer_id, payer_email, amount, status, routing_number)
VALUES ($1, $2::TIMESTAMP, $3, $4, $5::NUMERIC(10,2), $6, $7)`

// Insert persists a new transaction row. created_at is written as a civil
// timestamp string so no offset reaches the column.
func (r *TransactionRepositoryImpl) Insert(ctx context.Context, transaction *models.Transaction) error {
	_, err := r.db.Exec(
		ctx,
		insertTransaction,
		transaction.TransactionID,
		transaction.CreatedAt.Format(models.TimeLayout),
		transaction.PayerID,
		transaction.PayerEmail,
		transaction.Amount,
		transaction.Status,
		transaction.RoutingNumber,
	)
	if err != nil {
		return apperrors.NewStoreError(err)
	}

	return nil
}

// GetRoutingNumberByTransactionID returns the routing number recorded for the
// transaction, or an empty string when no row matches.
func (r *TransactionRepositoryImpl) GetRoutingNumberByTransactionID(ctx context.Context, transactionID string) (string, error) {
	var routingNumber string
	err := r.db.QueryRow(
		ctx,
		"SELECT routing_number FROM transactions WHERE transaction_id = $1",
		transactionID,
	).Scan(&routingNumber)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", apperrors.NewStoreError(err)
	}

	return routingNumber, nil
}
