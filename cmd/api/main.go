package main

import (
	"context"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/mufasadev/pix-broker/internal/app"
	"github.com/mufasadev/pix-broker/internal/config"
	"github.com/mufasadev/pix-broker/internal/di"
	"github.com/mufasadev/pix-broker/internal/errors"
	"github.com/mufasadev/pix-broker/internal/infrastructure/api/routers"
	"github.com/mufasadev/pix-broker/internal/infrastructure/database/db_client"
	"github.com/mufasadev/pix-broker/internal/infrastructure/registry/sheets"
	"github.com/mufasadev/pix-broker/pkg/log"
	"github.com/rs/zerolog"
)

const (
	appName = "pix-broker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log.Init(appName, log.WithConsoleLogger())
	logger := log.GetLogger()

	logHostAddress(&logger)

	pgClient := db_client.NewPGClient(cfg.PostgreSQL)
	db, err := pgClient.Connect()
	if err != nil {
		logger.Fatal().Err(err).Msg(errors.ErrorFailedToConnectToTheDatabase)
	}

	registry, err := sheets.NewClient(ctx, cfg.Sheets)
	if err != nil {
		logger.Fatal().Err(err).Msg(errors.ErrorFailedToBuildRegistryClient)
	}

	container, err := di.NewContainer(db, registry, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build the container")
	}

	router := routers.NewRouter(container)
	service := app.NewService(cfg)
	service.Run(ctx, router)
}

// logHostAddress logs the host's IPv4 address so operators can see which
// address the gateway should be pointed at for webhooks.
func logHostAddress(logger *zerolog.Logger) {
	hostname, err := os.Hostname()
	if err != nil {
		return
	}

	addrs, err := net.LookupIP(hostname)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to resolve host address")
		return
	}

	for _, addr := range addrs {
		if v4 := addr.To4(); v4 != nil {
			logger.Info().Str("ipv4", v4.String()).Msg("Resolved host address")
			return
		}
	}
}
