package interactor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mufasadev/pix-broker/internal/domain/gateways"
	"github.com/mufasadev/pix-broker/internal/domain/models"
	"github.com/mufasadev/pix-broker/internal/domain/repositories"
	apperrors "github.com/mufasadev/pix-broker/internal/errors"
	"github.com/mufasadev/pix-broker/internal/usecases/dtos"
	"github.com/mufasadev/pix-broker/pkg/log"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type PixInteractor struct {
	gateway      gateways.PaymentGateway
	transactions repositories.TransactionRepository
	amount       decimal.Decimal
	location     *time.Location
	logger       *zerolog.Logger
}

// NewPixInteractor creates a new PixInteractor. The amount is fixed per
// deployment; requests never supply it.
func NewPixInteractor(gateway gateways.PaymentGateway, transactions repositories.TransactionRepository, amount decimal.Decimal) (*PixInteractor, error) {
	location, err := time.LoadLocation(models.Timezone)
	if err != nil {
		return nil, fmt.Errorf("time.LoadLocation: %w", err)
	}

	l := log.GetLogger()
	return &PixInteractor{
		gateway:      gateway,
		transactions: transactions,
		amount:       amount,
		location:     location,
		logger:       &l,
	}, nil
}

// GeneratePix creates a pix charge at the gateway and records the transaction.
// Every call gets a fresh idempotency key. The insert is best-effort: the
// charge already exists upstream, so a failed row write is logged and the
// client still gets its pix code.
func (i *PixInteractor) GeneratePix(ctx context.Context, dto *dtos.GeneratePixDTO) (*dtos.PixChargeResponse, error) {
	charge, err := i.gateway.CreatePayment(ctx, gateways.CreatePaymentRequest{
		Amount:         i.amount,
		PayerCPF:       dto.CPF,
		PayerEmail:     dto.EmailPix,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		TransactionID: charge.TransactionID,
		CreatedAt:     time.Now().In(i.location),
		PayerID:       dto.CPF,
		PayerEmail:    dto.EmailPix,
		Amount:        i.amount,
		Status:        models.StatusSentToGateway,
		RoutingNumber: dto.Numero,
	}

	if err := i.transactions.Insert(ctx, transaction); err != nil {
		i.logger.Error().Err(err).
			Str("transaction_id", charge.TransactionID).
			Msg(apperrors.ErrFailedRecordTransaction)
	}

	return &dtos.PixChargeResponse{
		PixCode:       charge.PixCode,
		TransactionID: charge.TransactionID,
	}, nil
}
