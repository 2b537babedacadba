package interactor

import (
	"context"
	"time"

	"github.com/mufasadev/pix-broker/internal/domain/gateways"
	"github.com/mufasadev/pix-broker/internal/domain/models"
	"github.com/mufasadev/pix-broker/internal/domain/repositories"
	apperrors "github.com/mufasadev/pix-broker/internal/errors"
	"github.com/mufasadev/pix-broker/internal/usecases/dtos"
	"github.com/mufasadev/pix-broker/pkg/log"
	"github.com/rs/zerolog"
)

const appendTimeout = 30 * time.Second

type NotificationInteractor struct {
	gateway      gateways.PaymentGateway
	transactions repositories.TransactionRepository
	registry     gateways.ContactRegistry
	logger       *zerolog.Logger
}

func NewNotificationInteractor(gateway gateways.PaymentGateway, transactions repositories.TransactionRepository, registry gateways.ContactRegistry) *NotificationInteractor {
	l := log.GetLogger()
	return &NotificationInteractor{
		gateway:      gateway,
		transactions: transactions,
		registry:     registry,
		logger:       &l,
	}
}

// Process handles a validated payment notification. Only type "payment" with
// upstream status "approved" has a side effect: the routing number recorded
// at creation time is forwarded to the contact registry. The append is
// detached from the request; its failure is logged, never surfaced.
func (i *NotificationInteractor) Process(ctx context.Context, dto *dtos.NotificationDTO) error {
	if dto.Type != dtos.NotificationTypePayment {
		i.logger.Info().
			Str("type", dto.Type).
			Str("action", dto.Action).
			Msg("notification ignored")
		return nil
	}

	status, err := i.gateway.GetPaymentStatus(ctx, dto.Data.ID)
	if err != nil {
		return err
	}

	i.logger.Info().
		Str("transaction_id", dto.Data.ID).
		Str("status", status).
		Msg("payment status fetched")

	if status != models.StatusApproved {
		return nil
	}

	routingNumber, err := i.transactions.GetRoutingNumberByTransactionID(ctx, dto.Data.ID)
	if err != nil {
		return err
	}

	if routingNumber == "" {
		i.logger.Warn().
			Str("transaction_id", dto.Data.ID).
			Msg("no transaction found for approved payment")
		return nil
	}

	i.appendDetached(routingNumber)
	return nil
}

// appendDetached launches the registry append without awaiting it. The
// notification response does not depend on the outcome, and a client
// disconnect must not cancel a call already issued, so the goroutine gets its
// own context.
func (i *NotificationInteractor) appendDetached(routingNumber string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
		defer cancel()

		if err := i.registry.AppendRoutingNumber(ctx, routingNumber); err != nil {
			i.logger.Error().Err(err).
				Str("routing_number", routingNumber).
				Msg(apperrors.ErrFailedAppendRoutingNumber)
		}
	}()
}
