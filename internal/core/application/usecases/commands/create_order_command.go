package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must have at least one item")
)

// CreateOrderItem is one requested order line. UnitPriceOverride replaces the
// catalog price snapshot when set; the seller uses it for negotiated prices.
type CreateOrderItem struct {
	ProductID         kernel.UUID
	Quantity          int
	UnitPriceOverride *kernel.Money
	Size              string
	Color             string
	Customization     string
}

// CreateOrderCommand represents a request to create a new order, reserving
// stock for every line in the same transaction that persists the order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	customerID           kernel.UUID
	items                []CreateOrderItem
	discount             kernel.Money
	expectedDeliveryDate *time.Time
	paymentMethod        order.PaymentMethod
	notes                string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers and that every line references a product with a
// positive quantity.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []CreateOrderItem,
	discount kernel.Money,
	expectedDeliveryDate *time.Time,
	paymentMethod order.PaymentMethod,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		discount:             discount,
		expectedDeliveryDate: expectedDeliveryDate,
		paymentMethod:        paymentMethod,
		notes:                notes,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be stored under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	return c.items
}

// Discount returns the discount to subtract from the total.
func (c CreateOrderCommand) Discount() kernel.Money {
	return c.discount
}

// ExpectedDeliveryDate returns the promised delivery date, if any.
func (c CreateOrderCommand) ExpectedDeliveryDate() *time.Time {
	return c.expectedDeliveryDate
}

// PaymentMethod returns how the customer intends to pay.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Notes returns the free-text order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity < 1 {
			return errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, item.Quantity)
		}
	}

	c.items = items
	return nil
}
