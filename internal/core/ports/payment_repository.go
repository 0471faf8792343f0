package ports

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByExternalID retrieves a payment by the provider-side identifier.
	// Webhook reconciliation looks payments up this way.
	GetByExternalID(ctx context.Context, externalID string) (*payment.Payment, error)

	// GetStalePending retrieves pending payments not reconciled since the
	// given cutoff. The sweep job re-queries the provider for each.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)
}
