package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/production"
	"atelier/internal/pkg/errs"
)

// loadOrCreateProductionOrder fetches the shadow record for an order inside
// the given transaction, creating the default one when none exists yet. The
// order itself must exist; a missing order propagates ObjectNotFoundError.
// Returns whether the record is freshly created and still needs an Add.
func loadOrCreateProductionOrder(
	ctx context.Context,
	uow ProductionUoW,
	orderID kernel.UUID,
) (*production.ProductionOrder, bool, error) {
	if _, err := uow.OrderRepository().Get(ctx, orderID); err != nil {
		return nil, false, err
	}

	record, err := uow.ProductionOrderRepository().GetByOrderID(ctx, orderID)
	if err == nil {
		return record, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	record, err = production.NewProductionOrder(orderID, time.Now())
	if err != nil {
		return nil, false, err
	}
	return record, true, nil
}

func saveProductionOrder(
	ctx context.Context,
	uow ProductionUoW,
	record *production.ProductionOrder,
	created bool,
) error {
	if created {
		return uow.ProductionOrderRepository().Add(ctx, record)
	}
	return uow.ProductionOrderRepository().Update(ctx, record)
}

// UpdateProductionCommandHandler applies a partial update to an order's
// shadow record, creating the record on first touch.
type UpdateProductionCommandHandler struct {
	uowFactory ProductionUoWFactory
}

// NewUpdateProductionCommandHandler creates a handler for production updates.
func NewUpdateProductionCommandHandler(uowFactory ProductionUoWFactory) UpdateProductionCommandHandler {
	return UpdateProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the partial update and returns the resulting record.
func (h *UpdateProductionCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateProductionCommand,
) (*production.ProductionOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	record, created, err := loadOrCreateProductionOrder(ctx, uow, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = record.Update(cmd.Stage(), cmd.Status(), cmd.Notes(), time.Now()); err != nil {
		return nil, err
	}

	if err = saveProductionOrder(ctx, uow, record, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
