package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrAdvanceProductionCommandIsNotConstructed = errors.New(
	"AdvanceProductionCommand must be created via NewAdvanceProductionCommand constructor",
)

// AdvanceProductionCommand represents a request to move an order one stage
// forward on the production board.
type AdvanceProductionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceProductionCommand creates a stage advance command.
func NewAdvanceProductionCommand(orderID kernel.UUID) (AdvanceProductionCommand, error) {
	cmd := AdvanceProductionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AdvanceProductionCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceProductionCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceProductionCommandIsNotConstructed)
}

// OrderID returns the identifier of the shadowed order.
func (c AdvanceProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}
