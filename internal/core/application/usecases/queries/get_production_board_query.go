package queries

import (
	"errors"

	"atelier/internal/pkg/guard"
)

var ErrGetProductionBoardQueryIsNotConstructed = errors.New(
	"GetProductionBoardQuery must be created via NewGetProductionBoardQuery constructor",
)

// GetProductionBoardQuery retrieves the whole production board: one column
// per pipeline stage, cards ordered by most recent update.
type GetProductionBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductionBoardQuery creates a parameterless board query.
func NewGetProductionBoardQuery() GetProductionBoardQuery {
	return GetProductionBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductionBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionBoardQueryIsNotConstructed)
}
