package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/production"
)

// RetreatProductionCommandHandler moves a shadow record one stage back.
// Retreating before the first stage is a stamped no-op.
type RetreatProductionCommandHandler struct {
	uowFactory ProductionUoWFactory
}

// NewRetreatProductionCommandHandler creates a handler for stage retreats.
func NewRetreatProductionCommandHandler(uowFactory ProductionUoWFactory) RetreatProductionCommandHandler {
	return RetreatProductionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retreat command and returns the resulting record.
func (h *RetreatProductionCommandHandler) Handle(
	ctx context.Context,
	cmd RetreatProductionCommand,
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

	record.Retreat(time.Now())

	if err = saveProductionOrder(ctx, uow, record, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
