package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mufasadev/pix-broker/internal/config"
	"github.com/mufasadev/pix-broker/internal/domain/gateways"
	apperrors "github.com/mufasadev/pix-broker/internal/errors"
	"github.com/mufasadev/pix-broker/pkg/log"
	"github.com/rs/zerolog"
)

const (
	paymentsPath       = "/v1/payments"
	paymentDescription = "Pagamento via Pix"
	clientTimeout      = 10 * time.Second
)

// Client talks to the Mercado Pago payments REST API with bearer-token auth.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zerolog.Logger
}

func NewClient(cfg config.MercadoPago) *Client {
	l := log.GetLogger()
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.AccessToken,
		http:    &http.Client{Timeout: clientTimeout},
		logger:  &l,
	}
}

type paymentRequest struct {
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	PaymentMethodID   string  `json:"payment_method_id"`
	Payer             payer   `json:"payer"`
	ExternalReference string  `json:"external_reference"`
}

type payer struct {
	Email          string         `json:"email"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Identification identification `json:"identification"`
}

type identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// paymentResponse covers both the creation and the status lookup payloads.
// The id arrives as a JSON number.
type paymentResponse struct {
	ID                 json.Number `json:"id"`
	Status             string      `json:"status"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode string `json:"qr_code"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

// CreatePayment issues a pix payment-creation request. The caller supplies a
// fresh idempotency key; it goes out as the X-Idempotency-Key header.
func (c *Client) CreatePayment(ctx context.Context, req gateways.CreatePaymentRequest) (*gateways.PixCharge, error) {
	amount, _ := req.Amount.Float64()
	body := paymentRequest{
		TransactionAmount: amount,
		Description:       paymentDescription,
		PaymentMethodID:   "pix",
		Payer: payer{
			Email:     req.PayerEmail,
			FirstName: " ",
			LastName:  " ",
			Identification: identification{
				Type:   "CPF",
				Number: req.PayerCPF,
			},
		},
	}

	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+paymentsPath, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("X-Idempotency-Key", req.IdempotencyKey)

	var response paymentResponse
	if err := c.do(httpReq, &response); err != nil {
		return nil, err
	}

	return &gateways.PixCharge{
		TransactionID: response.ID.String(),
		PixCode:       response.PointOfInteraction.TransactionData.QRCode,
	}, nil
}

// GetPaymentStatus fetches the current status for a previously created payment.
func (c *Client) GetPaymentStatus(ctx context.Context, transactionID string) (string, error) {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, paymentsPath, transactionID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+c.token)

	var response paymentResponse
	if err := c.do(httpReq, &response); err != nil {
		return "", err
	}

	return response.Status, nil
}

// do sends the request, maps non-2xx responses to GatewayError carrying the
// upstream status and body, and decodes the success payload into out.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NewGatewayTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.NewGatewayTransportError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(respBody)).
			Msg("payment gateway returned an error")
		return apperrors.NewGatewayError(resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return apperrors.NewGatewayTransportError(fmt.Errorf("failed to parse gateway response: %w", err))
	}

	return nil
}
