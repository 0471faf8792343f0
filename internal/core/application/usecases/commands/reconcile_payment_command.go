package commands

import (
	"errors"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrReconcilePaymentCommandIsNotConstructed = errors.New(
	"ReconcilePaymentCommand must be created via NewReconcilePaymentCommand constructor",
)

// ReconcilePaymentCommand represents a request to bring one payment in line
// with the provider's view of it, keyed by the provider-side identifier.
type ReconcilePaymentCommand struct { //nolint:recvcheck //using for validation
	externalID string

	guard guard.ConstructorGuard
}

// NewReconcilePaymentCommand creates a reconciliation command.
func NewReconcilePaymentCommand(externalID string) (ReconcilePaymentCommand, error) {
	cmd := ReconcilePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setExternalID(externalID); err != nil {
		return ReconcilePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReconcilePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentCommandIsNotConstructed)
}

// ExternalID returns the provider-side payment identifier.
func (c ReconcilePaymentCommand) ExternalID() string {
	return c.externalID
}

func (c *ReconcilePaymentCommand) setExternalID(externalID string) error {
	if externalID == "" {
		return errs.NewValueIsRequiredError("externalID")
	}

	c.externalID = externalID
	return nil
}
