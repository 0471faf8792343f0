package queries

import (
	"errors"
	"time"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrGetUpcomingDeliveriesQueryIsNotConstructed = errors.New(
	"GetUpcomingDeliveriesQuery must be created via NewGetUpcomingDeliveriesQuery constructor",
)

// GetUpcomingDeliveriesQuery retrieves open orders whose promised delivery
// date falls inside a window. Used by the seller to plan the week's work.
type GetUpcomingDeliveriesQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetUpcomingDeliveriesQuery creates a delivery window query.
func NewGetUpcomingDeliveriesQuery(from, to time.Time) (GetUpcomingDeliveriesQuery, error) {
	if to.Before(from) {
		return GetUpcomingDeliveriesQuery{}, errs.NewValueIsInvalidError("dateRange")
	}

	return GetUpcomingDeliveriesQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUpcomingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetUpcomingDeliveriesQueryIsNotConstructed)
}

// From returns the inclusive start of the delivery window.
func (q GetUpcomingDeliveriesQuery) From() time.Time {
	return q.from
}

// To returns the inclusive end of the delivery window.
func (q GetUpcomingDeliveriesQuery) To() time.Time {
	return q.to
}
