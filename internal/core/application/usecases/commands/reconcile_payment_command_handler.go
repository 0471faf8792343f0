package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// ReconcilePaymentCommandHandler applies the provider's current status to the
// local payment identified by an external id.
//
// Reconciliation is idempotent: the provider is queried first (outside any
// transaction), then the mapped status is applied under the aggregate's
// terminal-state rules and updatedAt is stamped either way. A notification
// for an unknown external id is dropped silently, since webhooks may arrive
// for charges created by other systems on the same account.
type ReconcilePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	provider   ports.PaymentProvider
	logger     *slog.Logger
}

// NewReconcilePaymentCommandHandler creates a handler for reconciliation.
func NewReconcilePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	provider ports.PaymentProvider,
	logger *slog.Logger,
) ReconcilePaymentCommandHandler {
	return ReconcilePaymentCommandHandler{
		uowFactory: uowFactory,
		provider:   provider,
		logger:     logger.With("component", "reconcile_payment"),
	}
}

// Handle processes the reconciliation command.
func (h *ReconcilePaymentCommandHandler) Handle(ctx context.Context, cmd ReconcilePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	providerStatus, err := h.provider.GetChargeStatus(ctx, cmd.ExternalID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentRepository()
	aggregate, err := repo.GetByExternalID(ctx, cmd.ExternalID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.Debug("no local payment for external id", "externalID", cmd.ExternalID())
			return nil
		}
		return err
	}

	changed := aggregate.ApplyProviderStatus(providerStatus, time.Now())
	if changed {
		h.logger.Info("payment status changed",
			"externalID", cmd.ExternalID(),
			"status", aggregate.Status().String())
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
