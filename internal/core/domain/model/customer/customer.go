// Package customer contains the customer aggregate. Customers are referenced
// by orders and carry the contact details used for payment intents and
// status-change notifications.
package customer

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer holds contact details for a buyer. Email is optional: the public
// order intake collects it, orders entered by the seller may not have one.
type Customer struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	address   string
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCustomer creates a customer. Only the name is required.
func NewCustomer(id kernel.UUID, name, email, phone string, now time.Time) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Customer{
		id:            id,
		name:          name,
		email:         email,
		phone:         phone,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	name, email, phone, address string,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	c, err := NewCustomer(id, name, email, phone, createdAt)
	if err != nil {
		return nil, err
	}
	c.address = address
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// SetAddress updates the customer's delivery address.
func (c *Customer) SetAddress(address string, now time.Time) {
	c.address = address
	c.updatedAt = now
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Name returns the customer's display name.
func (c *Customer) Name() string { return c.name }

// Email returns the customer's email; empty when not collected.
func (c *Customer) Email() string { return c.email }

// Phone returns the customer's phone number; empty when not collected.
func (c *Customer) Phone() string { return c.phone }

// Address returns the customer's delivery address.
func (c *Customer) Address() string { return c.address }

// CreatedAt returns when the customer record was created.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the customer record last changed.
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
