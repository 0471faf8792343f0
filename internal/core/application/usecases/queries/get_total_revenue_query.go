package queries

import (
	"errors"
	"time"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrGetTotalRevenueQueryIsNotConstructed = errors.New(
	"GetTotalRevenueQuery must be created via NewGetTotalRevenueQuery constructor",
)

// GetTotalRevenueQuery computes the revenue of a date range: the sum of
// total_amount over non-cancelled orders placed inside it.
type GetTotalRevenueQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetTotalRevenueQuery creates a revenue query for a date range.
func NewGetTotalRevenueQuery(from, to time.Time) (GetTotalRevenueQuery, error) {
	if to.Before(from) {
		return GetTotalRevenueQuery{}, errs.NewValueIsInvalidError("dateRange")
	}

	return GetTotalRevenueQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTotalRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetTotalRevenueQueryIsNotConstructed)
}

// From returns the inclusive start of the range.
func (q GetTotalRevenueQuery) From() time.Time {
	return q.from
}

// To returns the inclusive end of the range.
func (q GetTotalRevenueQuery) To() time.Time {
	return q.to
}
