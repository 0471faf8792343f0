package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/production"
	"atelier/internal/pkg/guard"
)

var ErrUpdateProductionCommandIsNotConstructed = errors.New(
	"UpdateProductionCommand must be created via NewUpdateProductionCommand constructor",
)

// UpdateProductionCommand represents a partial update of an order's shadow
// record on the production board. Nil fields are left unchanged.
type UpdateProductionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	stage   *production.Stage
	status  *production.Status
	notes   *string

	guard guard.ConstructorGuard
}

// NewUpdateProductionCommand creates a partial production update command.
func NewUpdateProductionCommand(
	orderID kernel.UUID,
	stage *production.Stage,
	status *production.Status,
	notes *string,
) (UpdateProductionCommand, error) {
	cmd := UpdateProductionCommand{
		stage:  stage,
		status: status,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateProductionCommand{}, err
	}
	if stage != nil {
		if err := stage.Validate(); err != nil {
			return UpdateProductionCommand{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateProductionCommand{}, err
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductionCommandIsNotConstructed)
}

// OrderID returns the identifier of the shadowed order.
func (c UpdateProductionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Stage returns the target stage, or nil to keep the current one.
func (c UpdateProductionCommand) Stage() *production.Stage {
	return c.stage
}

// Status returns the target status, or nil to keep the current one.
func (c UpdateProductionCommand) Status() *production.Status {
	return c.status
}

// Notes returns the replacement notes, or nil to keep the current ones.
func (c UpdateProductionCommand) Notes() *string {
	return c.notes
}

func (c *UpdateProductionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
