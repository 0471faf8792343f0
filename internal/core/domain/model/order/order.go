package order

import (
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderAlreadyDelivered is returned when cancelling an order that has
	// already been delivered.
	ErrOrderAlreadyDelivered = errors.New("delivered orders cannot be cancelled")

	// ErrOrderStatusIsTerminal is returned when changing the status of a
	// delivered or cancelled order to anything other than its current value.
	ErrOrderStatusIsTerminal = errors.New("order status is terminal")

	// ErrOrderHasNoItems is returned when creating an order without lines.
	ErrOrderHasNoItems = errors.New("order must have at least one item")
)

// Order is the aggregate root of the order lifecycle. It owns its line items
// and its status; stock movements matching the items are coordinated by the
// application layer within the same transaction.
//
// Invariants:
//   - totalAmount == sum(item subtotals) - discount, floored at zero,
//     fixed at creation time
//   - DELIVERED and CANCELLED are terminal: no item, stock or status
//     mutation beyond idempotent re-reads
type Order struct {
	id                   kernel.UUID
	number               string
	customerID           kernel.UUID
	items                []*Item
	status               Status
	totalAmount          kernel.Money
	discount             kernel.Money
	orderDate            time.Time
	expectedDeliveryDate *time.Time
	deliveredDate        *time.Time
	paymentMethod        PaymentMethod
	paymentState         PaymentState
	notes                string

	isConstructed bool
}

// NewOrder creates an order from its lines, computing the total as the sum of
// item subtotals minus the discount (floored at zero). Status defaults to
// Pending when StatusUnknown is supplied.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	items []*Item,
	status Status,
	discount kernel.Money,
	orderDate time.Time,
	expectedDeliveryDate *time.Time,
	paymentMethod PaymentMethod,
	paymentState PaymentState,
	notes string,
) (*Order, error) {
	if status == StatusUnknown {
		status = Pending
	}
	if paymentState == PaymentStateUnknown {
		paymentState = PaymentPending
	}

	o := &Order{
		status:               status,
		discount:             discount,
		orderDate:            orderDate,
		expectedDeliveryDate: expectedDeliveryDate,
		paymentMethod:        paymentMethod,
		paymentState:         paymentState,
		notes:                notes,
		isConstructed:        true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.totalAmount = o.computeTotal()
	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its terminal
// state and delivered date. The persisted total is kept as-is.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	items []*Item,
	status Status,
	totalAmount kernel.Money,
	discount kernel.Money,
	orderDate time.Time,
	expectedDeliveryDate *time.Time,
	deliveredDate *time.Time,
	paymentMethod PaymentMethod,
	paymentState PaymentState,
	notes string,
) (*Order, error) {
	o, err := NewOrder(id, number, customerID, items, status, discount, orderDate,
		expectedDeliveryDate, paymentMethod, paymentState, notes)
	if err != nil {
		return nil, err
	}

	o.totalAmount = totalAmount
	o.deliveredDate = deliveredDate
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ChangeStatus moves the order to newStatus.
//
// Re-entering the current status is a no-op reported via changed=false; the
// caller still fires the notification hook in that case. A transition out of
// a terminal status fails with ErrOrderStatusIsTerminal. Reaching Delivered
// stamps the delivered date if it is not set yet.
func (o *Order) ChangeStatus(newStatus Status, now time.Time) (changed bool, err error) {
	if err = newStatus.Validate(); err != nil {
		return false, err
	}

	if newStatus == o.status {
		return false, nil
	}

	if o.status.IsTerminal() {
		return false, fmt.Errorf("%w: cannot change %s to %s",
			ErrOrderStatusIsTerminal, o.status, newStatus)
	}

	o.status = newStatus
	if newStatus == Delivered && o.deliveredDate == nil {
		deliveredAt := now
		o.deliveredDate = &deliveredAt
	}
	return true, nil
}

// Cancel moves the order to Cancelled.
//
// Cancelling a delivered order fails with ErrOrderAlreadyDelivered. Cancelling
// an already-cancelled order is a tolerated no-op reported via changed=false,
// so the caller knows not to release stock a second time.
func (o *Order) Cancel() (changed bool, err error) {
	switch o.status {
	case Delivered:
		return false, ErrOrderAlreadyDelivered
	case Cancelled:
		return false, nil
	default:
		o.status = Cancelled
		return true, nil
	}
}

// ID returns the order's internal identifier, the real primary key.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-readable order number.
func (o *Order) Number() string { return o.number }

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Items returns the order lines in insertion order.
func (o *Order) Items() []*Item { return o.items }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// TotalAmount returns the order total fixed at creation time.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// Discount returns the discount applied to the total.
func (o *Order) Discount() kernel.Money { return o.discount }

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time { return o.orderDate }

// ExpectedDeliveryDate returns the promised delivery date, if any.
func (o *Order) ExpectedDeliveryDate() *time.Time { return o.expectedDeliveryDate }

// DeliveredDate returns the actual delivery date, if delivered.
func (o *Order) DeliveredDate() *time.Time { return o.deliveredDate }

// PaymentMethod returns how the customer intends to pay.
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }

// PaymentState returns the rolled-up payment state shown to the seller.
func (o *Order) PaymentState() PaymentState { return o.paymentState }

// Notes returns the free-text notes.
func (o *Order) Notes() string { return o.notes }

func (o *Order) computeTotal() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum.SubFloorZero(o.discount)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	o.items = items
	return nil
}
