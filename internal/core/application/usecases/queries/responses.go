// Package queries contains read operations in the CQRS architecture.
// Query handlers run raw SQL over the gorm connection and return flat
// response structs; they never load aggregates or hold locks.
package queries

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
)

// OrderItemResponse is one order line as returned to read clients.
type OrderItemResponse struct {
	ID            kernel.UUID
	ProductID     kernel.UUID
	ProductName   string
	Quantity      int
	UnitPrice     kernel.Money
	Subtotal      kernel.Money
	Size          string
	Color         string
	Customization string
}

// OrderResponse is the read model of an order, items included.
type OrderResponse struct {
	ID                   kernel.UUID
	Number               string
	CustomerID           kernel.UUID
	CustomerName         string
	Status               string
	TotalAmount          kernel.Money
	Discount             kernel.Money
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	DeliveredDate        *time.Time
	PaymentMethod        string
	PaymentState         string
	Notes                string
	Items                []OrderItemResponse
}

// ProductionCardResponse is one card on the production board.
type ProductionCardResponse struct {
	OrderID      kernel.UUID
	OrderNumber  string
	CustomerName string
	Items        []OrderItemResponse
	Stage        string
	Status       string
	Notes        string
	UpdatedAt    time.Time
}

// ProductionColumnResponse groups the cards of one pipeline stage.
// Cards are ordered by most recent update first.
type ProductionColumnResponse struct {
	Stage string
	Cards []ProductionCardResponse
}
