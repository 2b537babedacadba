package di

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mufasadev/pix-broker/internal/config"
	"github.com/mufasadev/pix-broker/internal/domain/gateways"
	"github.com/mufasadev/pix-broker/internal/infrastructure/api/handlers"
	"github.com/mufasadev/pix-broker/internal/infrastructure/database/repositories"
	"github.com/mufasadev/pix-broker/internal/infrastructure/gateway/mercadopago"
	"github.com/mufasadev/pix-broker/internal/usecases/interactor"
	"github.com/shopspring/decimal"
)

type Container struct {
	PixHandler          *handlers.PixHandler
	NotificationHandler *handlers.NotificationHandler
}

// NewContainer creates a new Container instance. The contact registry client
// is injected because its construction needs a context and credentials.
func NewContainer(db *pgxpool.Pool, registry gateways.ContactRegistry, cfg *config.Config) (*Container, error) {
	amount, err := decimal.NewFromString(cfg.MercadoPago.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_AMOUNT %q: %w", cfg.MercadoPago.Amount, err)
	}

	transactionRepository := repositories.NewTransactionRepositoryImpl(db)
	paymentGateway := mercadopago.NewClient(cfg.MercadoPago)

	pixInteractor, err := interactor.NewPixInteractor(paymentGateway, transactionRepository, amount)
	if err != nil {
		return nil, err
	}
	pixHandler := handlers.NewPixHandler(pixInteractor)

	notificationInteractor := interactor.NewNotificationInteractor(paymentGateway, transactionRepository, registry)
	notificationHandler := handlers.NewNotificationHandler(notificationInteractor)

	return &Container{
		PixHandler:          pixHandler,
		NotificationHandler: notificationHandler,
	}, nil
}
