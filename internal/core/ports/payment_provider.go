package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
)

// ProviderCharge is the provider's response to a charge request: the
// provider-side identifier plus the PIX artifacts the shop shows the customer.
type ProviderCharge struct {
	ExternalID   string
	Status       string
	QRCode       string
	QRCodeBase64 string
}

// PaymentProvider is the outbound contract to the payment provider.
// Calls go over the network and must never run inside a database transaction.
type PaymentProvider interface {
	// CreateCharge asks the provider for a new PIX charge.
	CreateCharge(ctx context.Context, amount kernel.Money, description string, payerEmail string) (ProviderCharge, error)

	// GetChargeStatus fetches the current provider status of a charge.
	GetChargeStatus(ctx context.Context, externalID string) (string, error)
}
