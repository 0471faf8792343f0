// Package mercadopago implements the payment provider port against the
// Mercado Pago Pix API.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
)

// Client implements ports.PaymentProvider via the Mercado Pago HTTP API.
type Client struct {
	baseURL     *url.URL
	accessToken string
	httpClient  *http.Client
	logger      *slog.Logger
}

// createPaymentRequest mirrors the JSON payload of POST /v1/payments.
type createPaymentRequest struct {
	TransactionAmount float64      `json:"transaction_amount"`
	Description       string       `json:"description"`
	PaymentMethodID   string       `json:"payment_method_id"`
	Payer             paymentPayer `json:"payer"`
}

type paymentPayer struct {
	Email string `json:"email"`
}

// paymentResponse mirrors the fields we read from the provider's payment
// resource. The charge id comes back as a JSON number.
type paymentResponse struct {
	ID                 json.Number `json:"id"`
	Status             string      `json:"status"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

// NewClient creates a Mercado Pago client with a default timeout.
func NewClient(baseURL string, accessToken string, logger *slog.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mercadopago url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mercadopago url must be absolute")
	}

	return &Client{
		baseURL:     parsed,
		accessToken: accessToken,
		logger:      logger.With("component", "mercadopago"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateCharge creates a Pix charge and returns the provider's charge id
// together with the QR code payload the customer pays with.
func (c *Client) CreateCharge(ctx context.Context, amount kernel.Money, description string, payerEmail string) (ports.ProviderCharge, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/payments")

	amountFloat, _ := amount.Decimal().Float64()
	payload, err := json.Marshal(createPaymentRequest{
		TransactionAmount: amountFloat,
		Description:       description,
		PaymentMethodID:   "pix",
		Payer:             paymentPayer{Email: payerEmail},
	})
	if err != nil {
		return ports.ProviderCharge{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return ports.ProviderCharge{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.ProviderCharge{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("create charge failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return ports.ProviderCharge{}, fmt.Errorf("mercadopago error: %s", resp.Status)
	}

	var data paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return ports.ProviderCharge{}, err
	}

	return ports.ProviderCharge{
		ExternalID:   data.ID.String(),
		Status:       data.Status,
		QRCode:       data.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: data.PointOfInteraction.TransactionData.QRCodeBase64,
	}, nil
}

// GetChargeStatus fetches the current status of a charge by its id.
func (c *Client) GetChargeStatus(ctx context.Context, externalID string) (string, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/payments/", externalID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("get charge failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return "", fmt.Errorf("mercadopago error: %s", resp.Status)
	}

	var data paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}

	return data.Status, nil
}
