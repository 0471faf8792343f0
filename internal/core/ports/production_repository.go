package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/production"
)

// ProductionOrderRepository defines the persistence contract for the
// production tracker's shadow records. Records are keyed by order id.
type ProductionOrderRepository interface {
	// Add persists a new shadow record.
	Add(ctx context.Context, aggregate *production.ProductionOrder) error

	// Update persists changes to an existing shadow record.
	Update(ctx context.Context, aggregate *production.ProductionOrder) error

	// GetByOrderID retrieves the shadow record for an order.
	// Returns errs.ObjectNotFoundError when none exists yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*production.ProductionOrder, error)
}
