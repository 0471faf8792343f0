package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrRetreatProductionCommandIsNotConstructed = errors.New(
	"RetreatProductionCommand must be created via NewRetreatProductionCommand constructor",
)

// RetreatProductionCommand represents a request to move an order one stage
// back on the production board.
type RetreatProductionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRetreatProductionCommand creates a stage retreat command.
func NewRetreatProductionCommand(orderID kernel.UUID) (RetreatProductionCommand, error) {
	cmd := RetreatProductionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return RetreatProductionCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RetreatProductionCommand) Validate() error {
	return c.guard.Validate(ErrRetreatProductionCommandIsNotConstructed)
}

// OrderID returns the identifier of the shadowed order.
func (c RetreatProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}
