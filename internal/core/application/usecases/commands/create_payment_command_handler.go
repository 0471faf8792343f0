package commands

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/payment"
	"atelier/internal/core/ports"
)

// fallbackPayerEmail is sent to the provider when the customer record has no
// email. The provider requires a payer address; the charge itself does not
// depend on it being reachable.
const fallbackPayerEmail = "cliente@atelier.local"

// CreatePaymentCommandHandler requests a PIX charge from the provider and
// persists the resulting payment.
//
// The provider call runs between two short transactions, never inside one:
// the first reads the order and customer, the second stores the payment.
// A provider failure is a hard error and nothing is persisted.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentIntentUoWFactory
	provider   ports.PaymentProvider
}

// NewCreatePaymentCommandHandler creates a handler for payment intents.
func NewCreatePaymentCommandHandler(
	uowFactory PaymentIntentUoWFactory,
	provider ports.PaymentProvider,
) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
	}
}

// Handle processes the payment intent command and returns the stored payment,
// QR artifacts included.
func (h *CreatePaymentCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePaymentCommand,
) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	readUow := h.uowFactory.Create()
	if err := readUow.Begin(ctx); err != nil {
		return nil, err
	}

	aggregate, err := readUow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		_ = readUow.Rollback(ctx)
		return nil, err
	}

	cust, err := readUow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		_ = readUow.Rollback(ctx)
		return nil, err
	}

	if err = readUow.Commit(ctx); err != nil {
		return nil, err
	}

	payerEmail := cust.Email()
	if payerEmail == "" {
		payerEmail = fallbackPayerEmail
	}

	charge, err := h.provider.CreateCharge(ctx, aggregate.TotalAmount(),
		fmt.Sprintf("Pedido %s", aggregate.Number()), payerEmail)
	if err != nil {
		return nil, fmt.Errorf("create charge for order %s: %w", aggregate.Number(), err)
	}

	now := time.Now()
	intent, err := payment.NewPayment(cmd.PaymentID(), aggregate.ID(), aggregate.TotalAmount(),
		charge.ExternalID, charge.QRCode, charge.QRCodeBase64, now)
	if err != nil {
		return nil, err
	}

	// The provider can settle or reject a charge in the create response
	// already; the stored payment starts from that status, not from PENDING.
	intent.ApplyProviderStatus(charge.Status, now)

	writeUow := h.uowFactory.Create()
	if err = writeUow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = writeUow.Rollback(ctx)
	}()

	if err = writeUow.PaymentRepository().Add(ctx, intent); err != nil {
		return nil, err
	}

	if err = writeUow.Commit(ctx); err != nil {
		return nil, err
	}

	return intent, nil
}
