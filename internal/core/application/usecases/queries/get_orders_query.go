package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders filtered by any combination of customer,
// lifecycle status and order-date range. Nil filters match everything.
type GetOrdersQuery struct {
	customerID *kernel.UUID
	status     *order.Status
	from       *time.Time
	to         *time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a filtered order listing query.
func NewGetOrdersQuery(
	customerID *kernel.UUID,
	status *order.Status,
	from, to *time.Time,
) (GetOrdersQuery, error) {
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if from != nil && to != nil && to.Before(*from) {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("dateRange")
	}

	return GetOrdersQuery{
		customerID: customerID,
		status:     status,
		from:       from,
		to:         to,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, or nil for all customers.
func (q GetOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Status returns the status filter, or nil for all statuses.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// From returns the inclusive start of the order-date filter, or nil.
func (q GetOrdersQuery) From() *time.Time {
	return q.from
}

// To returns the inclusive end of the order-date filter, or nil.
func (q GetOrdersQuery) To() *time.Time {
	return q.to
}
