package queries

import (
	"errors"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
	"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
)

// GetOrderByNumberQuery retrieves a single order by its human-facing number.
// Numbers are informational and not guaranteed unique; the first match wins.
type GetOrderByNumberQuery struct {
	number string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query keyed by order number.
func NewGetOrderByNumberQuery(number string) (GetOrderByNumberQuery, error) {
	if number == "" {
		return GetOrderByNumberQuery{}, errs.NewValueIsRequiredError("number")
	}

	return GetOrderByNumberQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// Number returns the requested order number.
func (q GetOrderByNumberQuery) Number() string {
	return q.number
}
