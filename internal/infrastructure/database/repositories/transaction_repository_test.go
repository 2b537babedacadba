package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mufasadev/pix-broker/internal/config"
	"github.com/mufasadev/pix-broker/internal/domain/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var db *pgxpool.Pool

func TestTransactionRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("requires a live database")
	}
	setupDB(t)
	defer db.Close()

	err := truncateTransactionsTable(db)
	require.NoError(t, err)

	repo := NewTransactionRepositoryImpl(db)
	location, err := time.LoadLocation(models.Timezone)
	require.NoError(t, err)

	t.Run("insert then lookup returns the routing number", func(t *testing.T) {
		transactionID := uuid.New().String()
		transaction := &models.Transaction{
			TransactionID: transactionID,
			CreatedAt:     time.Now().In(location),
			PayerID:       "00000000000",
			PayerEmail:    "a@b.com",
			Amount:        decimal.RequireFromString("10.00"),
			Status:        models.StatusSentToGateway,
			RoutingNumber: "+5511999999999",
		}

		err := repo.Insert(context.Background(), transaction)
		require.NoError(t, err)

		routingNumber, err := repo.GetRoutingNumberByTransactionID(context.Background(), transactionID)
		require.NoError(t, err)
		assert.Equal(t, "+5511999999999", routingNumber)
	})

	t.Run("lookup miss is not an error", func(t *testing.T) {
		routingNumber, err := repo.GetRoutingNumberByTransactionID(context.Background(), uuid.New().String())
		require.NoError(t, err)
		assert.Empty(t, routingNumber)
	})

	t.Run("duplicate transaction id violates the primary key", func(t *testing.T) {
		transactionID := uuid.New().String()
		transaction := &models.Transaction{
			TransactionID: transactionID,
			CreatedAt:     time.Now().In(location),
			PayerID:       "00000000000",
			PayerEmail:    "a@b.com",
			Amount:        decimal.RequireFromString("10.00"),
			Status:        models.StatusSentToGateway,
			RoutingNumber: "+5511999999999",
		}

		require.NoError(t, repo.Insert(context.Background(), transaction))
		assert.Error(t, repo.Insert(context.Background(), transaction))
	})

	t.Run("created_at is stored as civil time", func(t *testing.T) {
		transactionID := uuid.New().String()
		createdAt := time.Now().In(location)
		transaction := &models.Transaction{
			TransactionID: transactionID,
			CreatedAt:     createdAt,
			PayerID:       "00000000000",
			PayerEmail:    "a@b.com",
			Amount:        decimal.RequireFromString("10.00"),
			Status:        models.StatusSentToGateway,
			RoutingNumber: "+5511999999999",
		}

		require.NoError(t, repo.Insert(context.Background(), transaction))

		var stored time.Time
		err := db.QueryRow(
			context.Background(),
			"SELECT created_at FROM transactions WHERE transaction_id = $1",
			transactionID,
		).Scan(&stored)
		require.NoError(t, err)

		assert.Equal(t, createdAt.Format(models.TimeLayout), stored.Format(models.TimeLayout))
	})
}

// Test helpers and setup functions
// =================================
func setupDB(t *testing.T) {
	cnf := config.Load()

	poolConfig, err := pgxpool.ParseConfig(cnf.DSN())
	require.NoError(t, err)

	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	db, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
	require.NoError(t, err)

	if err := db.Ping(context.Background()); err != nil {
		t.Skipf("database not reachable: %v", err)
	}
}

func truncateTransactionsTable(db *pgxpool.Pool) error {
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE transactions")
	return err
}
