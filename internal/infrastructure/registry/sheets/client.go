package sheets

import (
	"context"
	"fmt"

	"github.com/mufasadev/pix-broker/internal/config"
	apperrors "github.com/mufasadev/pix-broker/internal/errors"
	"github.com/mufasadev/pix-broker/pkg/log"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const spreadsheetScope = "https://www.googleapis.com/auth/spreadsheets"

// Client appends values to one designated range of one spreadsheet, using a
// service-account credential built from environment configuration.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	appendRange   string
	logger        *zerolog.Logger
}

func NewClient(ctx context.Context, cfg config.Sheets) (*Client, error) {
	conf := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(cfg.PrivateKeyPEM()),
		Scopes:     []string{spreadsheetScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets.NewService: %w", err)
	}

	l := log.GetLogger()
	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		appendRange:   cfg.Range,
		logger:        &l,
	}, nil
}

// AppendRoutingNumber appends a single value as a new row. The orchestrator
// treats this as fire-and-forget; failures come back as RegistryError and are
// only logged by the caller.
func (c *Client) AppendRoutingNumber(ctx context.Context, value string) error {
	valueRange := &sheetsapi.ValueRange{
		Values: [][]interface{}{{value}},
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, c.appendRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return apperrors.NewRegistryError(err)
	}

	c.logger.Info().Str("value", value).Msg("routing number appended to registry")
	return nil
}
