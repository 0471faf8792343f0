package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/production"
)

// AdvanceProductionCommandHandler moves a shadow record one stage forward.
// Advancing past the last stage is a stamped no-op.
type AdvanceProductionCommandHandler struct {
	uowFactory ProductionUoWFactory
}

// NewAdvanceProductionCommandHandler creates a handler for stage advances.
func NewAdvanceProductionCommandHandler(uowFactory ProductionUoWFactory) AdvanceProductionCommandHandler {
	return AdvanceProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command and returns the resulting record.
func (h *AdvanceProductionCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceProductionCommand,
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

	record.Advance(time.Now())

	if err = saveProductionOrder(ctx, uow, record, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
