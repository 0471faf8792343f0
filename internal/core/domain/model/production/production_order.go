// Package production contains the production tracker: a shadow record per
// order that moves through the fixed five-stage pipeline independently of the
// order's own lifecycle status. The tracker never modifies order state; it is
// keyed by order id and lazily created on first access.
package production

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
)

// ErrProductionOrderIsNotConstructed is returned when a ProductionOrder was
// not created through NewProductionOrder or RestoreProductionOrder.
var ErrProductionOrderIsNotConstructed = errors.New(
	"ProductionOrder must be created via NewProductionOrder or RestoreProductionOrder")

// ProductionOrder is the per-order shadow record on the production board.
// It shares its identifier with the order it shadows and is never deleted
// independently of it.
type ProductionOrder struct {
	orderID   kernel.UUID
	stage     Stage
	status    Status
	notes     string
	updatedAt time.Time

	isConstructed bool
}

// NewProductionOrder creates the default shadow record for an order:
// stage Embroidery, status Pending.
func NewProductionOrder(orderID kernel.UUID, now time.Time) (*ProductionOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &ProductionOrder{
		orderID:       orderID,
		stage:         Embroidery,
		status:        Pending,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreProductionOrder reconstructs a shadow record from persistence.
func RestoreProductionOrder(
	orderID kernel.UUID,
	stage Stage,
	status Status,
	notes string,
	updatedAt time.Time,
) (*ProductionOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := stage.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &ProductionOrder{
		orderID:       orderID,
		stage:         stage,
		status:        status,
		notes:         notes,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the record was created through a constructor.
func (p *ProductionOrder) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductionOrderIsNotConstructed
	}
	return nil
}

// Advance moves the record one stage forward; advancing from Done stays Done.
// Always stamps updatedAt.
func (p *ProductionOrder) Advance(now time.Time) {
	p.stage = p.stage.Next()
	p.updatedAt = now
}

// Retreat moves the record one stage back; retreating from Embroidery stays
// Embroidery. Always stamps updatedAt.
func (p *ProductionOrder) Retreat(now time.Time) {
	p.stage = p.stage.Prev()
	p.updatedAt = now
}

// Update applies a partial update: only non-nil fields change.
// Always stamps updatedAt, even when nothing else changed.
func (p *ProductionOrder) Update(stage *Stage, status *Status, notes *string, now time.Time) error {
	if stage != nil {
		if err := stage.Validate(); err != nil {
			return err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	if stage != nil {
		p.stage = *stage
	}
	if status != nil {
		p.status = *status
	}
	if notes != nil {
		p.notes = *notes
	}
	p.updatedAt = now
	return nil
}

// OrderID returns the identifier of the shadowed order.
func (p *ProductionOrder) OrderID() kernel.UUID { return p.orderID }

// Stage returns the current pipeline stage.
func (p *ProductionOrder) Stage() Stage { return p.stage }

// Status returns the work status within the current stage.
func (p *ProductionOrder) Status() Status { return p.status }

// Notes returns the free-text production notes.
func (p *ProductionOrder) Notes() string { return p.notes }

// UpdatedAt returns the last modification time; the board sorts by it.
func (p *ProductionOrder) UpdatedAt() time.Time { return p.updatedAt }
