// Package payment contains the payment intent aggregate. A payment is created
// against an order when the shop requests a PIX charge from the provider, and
// is thereafter reconciled against provider state via webhook notifications
// and the periodic sweep.
package payment

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Provider identifies the external payment provider a payment belongs to.
// Mercado Pago is the only one wired today.
const ProviderMercadoPago = "MERCADO_PAGO"

// ErrPaymentIsNotConstructed is returned when a Payment was not created
// through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New(
	"Payment must be created via NewPayment or RestorePayment")

// Payment is a charge request tracked against a provider. The provider's
// externalID is the reconciliation key: webhook notifications carry it, and
// lookups by it drive the idempotent status application.
type Payment struct {
	id           kernel.UUID
	orderID      kernel.UUID
	provider     string
	status       Status
	amount       kernel.Money
	externalID   string
	qrCode       string
	qrCodeBase64 string
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewPayment creates a pending payment from the provider's charge response.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount kernel.Money,
	externalID string,
	qrCode string,
	qrCodeBase64 string,
	now time.Time,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if externalID == "" {
		return nil, errs.NewValueIsRequiredError("externalID")
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		provider:      ProviderMercadoPago,
		status:        Pending,
		amount:        amount,
		externalID:    externalID,
		qrCode:        qrCode,
		qrCodeBase64:  qrCodeBase64,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	provider string,
	status Status,
	amount kernel.Money,
	externalID string,
	qrCode string,
	qrCodeBase64 string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Payment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		provider:      provider,
		status:        status,
		amount:        amount,
		externalID:    externalID,
		qrCode:        qrCode,
		qrCodeBase64:  qrCodeBase64,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ApplyProviderStatus applies a freshly fetched provider status. Terminal
// payments only stamp updatedAt; a pending payment takes the mapped status.
// Returns whether the local status changed, so the caller knows whether the
// order's payment state needs a follow-up.
func (p *Payment) ApplyProviderStatus(providerStatus string, now time.Time) bool {
	p.updatedAt = now
	if p.status.IsTerminal() {
		return false
	}

	mapped := StatusFromProvider(providerStatus)
	if mapped == p.status {
		return false
	}
	p.status = mapped
	return true
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the identifier of the order this payment charges.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Provider returns the provider name.
func (p *Payment) Provider() string { return p.provider }

// Status returns the local payment status.
func (p *Payment) Status() Status { return p.status }

// Amount returns the charged amount.
func (p *Payment) Amount() kernel.Money { return p.amount }

// ExternalID returns the provider-side payment identifier.
func (p *Payment) ExternalID() string { return p.externalID }

// QRCode returns the copy-and-paste PIX code.
func (p *Payment) QRCode() string { return p.qrCode }

// QRCodeBase64 returns the PIX QR image as base64.
func (p *Payment) QRCodeBase64() string { return p.qrCodeBase64 }

// CreatedAt returns the creation time.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last reconciliation time; the sweep job filters on it.
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }
