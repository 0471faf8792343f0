package product

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrInsufficientStock is the sentinel for failed stock reservations.
	// Callers match it with errors.Is to distinguish "out of stock" from
	// other failures.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a reservation that would drive stock below
// zero. It unwraps to ErrInsufficientStock.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is the aggregate behind the inventory ledger. It owns the stock
// counter for one catalog item and enforces that stock never goes negative.
//
// Invariants:
//   - stock >= 0 at all times
//   - every Reserve has a matching Release of the same quantity on cancellation
//   - products are soft-deleted via the active flag, never removed
type Product struct {
	id           kernel.UUID
	name         string
	description  string
	category     Category
	price        kernel.Money
	stock        int
	sku          string
	active       bool
	customizable bool

	isConstructed bool
}

// NewProduct creates a catalog product with an initial stock level.
func NewProduct(
	id kernel.UUID,
	name string,
	category Category,
	price kernel.Money,
	stock int,
) (*Product, error) {
	p := &Product{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	p.price = price
	return p, nil
}

// RestoreProduct reconstructs a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	category Category,
	price kernel.Money,
	stock int,
	sku string,
	active bool,
	customizable bool,
) (*Product, error) {
	p, err := NewProduct(id, name, category, price, stock)
	if err != nil {
		return nil, err
	}

	p.description = description
	p.sku = sku
	p.active = active
	p.customizable = customizable
	return p, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// Reserve decrements stock by qty for a new order line.
// Fails with InsufficientStockError when stock < qty; stock is unchanged on
// failure.
func (p *Product) Reserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, p.stock)
	}
	if p.stock < qty {
		return &InsufficientStockError{
			ProductName: p.name,
			Requested:   qty,
			Available:   p.stock,
		}
	}

	p.stock -= qty
	return nil
}

// Release returns qty units to stock. It is the caller's responsibility to
// release exactly the quantity previously reserved.
func (p *Product) Release(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, qty)
	}

	p.stock += qty
	return nil
}

// Deactivate soft-deletes the product. Deactivated products stay in the
// catalog so historical order lines keep resolving.
func (p *Product) Deactivate() {
	p.active = false
}

// SetDescription updates the free-text description.
func (p *Product) SetDescription(description string) {
	p.description = description
}

// SetSKU updates the stock-keeping unit code.
func (p *Product) SetSKU(sku string) {
	p.sku = sku
}

// SetCustomizable marks whether the product accepts customization notes.
func (p *Product) SetCustomizable(customizable bool) {
	p.customizable = customizable
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-text description.
func (p *Product) Description() string {
	return p.description
}

// Category returns the product category.
func (p *Product) Category() Category {
	return p.category
}

// Price returns the current catalog unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the current stock counter.
func (p *Product) Stock() int {
	return p.stock
}

// SKU returns the stock-keeping unit code.
func (p *Product) SKU() string {
	return p.sku
}

// IsActive reports whether the product is available for ordering.
func (p *Product) IsActive() bool {
	return p.active
}

// IsCustomizable reports whether the product accepts customization notes.
func (p *Product) IsCustomizable() bool {
	return p.customizable
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
