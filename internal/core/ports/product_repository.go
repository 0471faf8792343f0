// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the payment provider client
// and the notifier. Adapters implement these interfaces; use case handlers
// depend only on them.
package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates,
// including the stock counter operations the order lifecycle relies on.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllActive retrieves all products that have not been soft-deleted.
	GetAllActive(ctx context.Context) ([]*product.Product, error)

	// Reserve atomically decrements the stock counter by quantity, but only
	// if at least that much stock remains. Returns ErrInsufficientStock when
	// the guard fails; the counter is left untouched in that case.
	Reserve(ctx context.Context, id kernel.UUID, quantity int) error

	// Release atomically increments the stock counter by quantity. Used on
	// cancellation to return reserved stock.
	Release(ctx context.Context, id kernel.UUID, quantity int) error
}
