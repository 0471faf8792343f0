package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrGetProductionOrderQueryIsNotConstructed = errors.New(
	"GetProductionOrderQuery must be created via NewGetProductionOrderQuery constructor",
)

// GetProductionOrderQuery retrieves the board card of one order.
type GetProductionOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductionOrderQuery creates a single-card query.
func NewGetProductionOrderQuery(orderID kernel.UUID) (GetProductionOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetProductionOrderQuery{}, err
	}

	return GetProductionOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductionOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the shadowed order.
func (q GetProductionOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
