package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrEnsureCustomerCommandIsNotConstructed = errors.New(
	"EnsureCustomerCommand must be created via NewEnsureCustomerCommand constructor",
)

// EnsureCustomerCommand represents a find-or-create request keyed by email.
// The public order intake uses it so returning customers are not duplicated.
type EnsureCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string

	guard guard.ConstructorGuard
}

// NewEnsureCustomerCommand creates a find-or-create command. The customerID
// is only used when no customer with the email exists yet.
func NewEnsureCustomerCommand(customerID kernel.UUID, name, email, phone string) (EnsureCustomerCommand, error) {
	cmd := EnsureCustomerCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return EnsureCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EnsureCustomerCommand) Validate() error {
	return c.guard.Validate(ErrEnsureCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier a newly created customer will get.
func (c EnsureCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c EnsureCustomerCommand) Name() string {
	return c.name
}

// Email returns the lookup email.
func (c EnsureCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's phone number.
func (c EnsureCustomerCommand) Phone() string {
	return c.phone
}

func (c *EnsureCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *EnsureCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *EnsureCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
