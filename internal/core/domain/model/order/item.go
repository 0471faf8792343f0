package order

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// Item is one order line. The unit price is a snapshot taken at order time,
// decoupled from the live catalog price. Subtotal is always recomputed from
// quantity x unit price, including when restoring from persistence, so it can
// never go stale.
type Item struct {
	id            kernel.UUID
	productID     kernel.UUID
	productName   string
	quantity      int
	unitPrice     kernel.Money
	subtotal      kernel.Money
	size          string
	color         string
	customization string
}

// NewItem creates an order line with its subtotal computed.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
	size, color, customization string,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, quantity)
	}

	item := &Item{
		id:            id,
		productID:     productID,
		productName:   productName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		size:          size,
		color:         color,
		customization: customization,
	}
	item.recomputeSubtotal()
	return item, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	productName string,
	quantity int,
	unitPrice kernel.Money,
	size, color, customization string,
) (*Item, error) {
	return NewItem(id, productID, productName, quantity, unitPrice, size, color, customization)
}

func (i *Item) recomputeSubtotal() {
	i.subtotal = i.unitPrice.MulInt(i.quantity)
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() kernel.UUID { return i.productID }

// ProductName returns the product name snapshot taken at order time.
func (i *Item) ProductName() string { return i.productName }

// Quantity returns the ordered quantity (>= 1).
func (i *Item) Quantity() int { return i.quantity }

// UnitPrice returns the unit price snapshot taken at order time.
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }

// Subtotal returns quantity x unit price.
func (i *Item) Subtotal() kernel.Money { return i.subtotal }

// Size returns the selected size, if any.
func (i *Item) Size() string { return i.size }

// Color returns the selected color, if any.
func (i *Item) Color() string { return i.color }

// Customization returns the free-text customization notes, if any.
func (i *Item) Customization() string { return i.customization }
