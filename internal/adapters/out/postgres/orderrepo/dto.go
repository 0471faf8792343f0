// Package orderrepo provides persistence for the order aggregate. Orders and
// their line items map to two tables; items are written with the order and
// never updated afterwards.
package orderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number               string    `gorm:"index"`
	CustomerID           uuid.UUID `gorm:"type:uuid;index"`
	Status               string    `gorm:"index"`
	TotalAmount          decimal.Decimal `gorm:"type:numeric(10,2)"`
	Discount             decimal.Decimal `gorm:"type:numeric(10,2)"`
	OrderDate            time.Time       `gorm:"index"`
	ExpectedDeliveryDate *time.Time
	DeliveredDate        *time.Time
	PaymentMethod        string
	PaymentState         string
	Notes                string
	Items                []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one persisted order line. LineNo keeps the order's line
// sequence stable across reloads; ids are random and carry no ordering.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	LineNo        int       `gorm:"column:line_no"`
	ProductID     uuid.UUID `gorm:"type:uuid;index"`
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal `gorm:"type:numeric(10,2)"`
	Subtotal      decimal.Decimal `gorm:"type:numeric(10,2)"`
	Size          string
	Color         string
	Customization string
}

// TableName overrides GORM's default naming to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:            item.ID().Bytes(),
			OrderID:       aggregate.ID().Bytes(),
			LineNo:        i + 1,
			ProductID:     item.ProductID().Bytes(),
			ProductName:   item.ProductName(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice().Decimal(),
			Subtotal:      item.Subtotal().Decimal(),
			Size:          item.Size(),
			Color:         item.Color(),
			Customization: item.Customization(),
		})
	}

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		Number:               aggregate.Number(),
		CustomerID:           aggregate.CustomerID().Bytes(),
		Status:               aggregate.Status().String(),
		TotalAmount:          aggregate.TotalAmount().Decimal(),
		Discount:             aggregate.Discount().Decimal(),
		OrderDate:            aggregate.OrderDate(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		DeliveredDate:        aggregate.DeliveredDate(),
		PaymentMethod:        aggregate.PaymentMethod().String(),
		PaymentState:         aggregate.PaymentState().String(),
		Notes:                aggregate.Notes(),
		Items:                items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	paymentState, err := order.PaymentStateFromString(dto.PaymentState)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Number, customerID, items, status,
		totalAmount, discount, dto.OrderDate, dto.ExpectedDeliveryDate,
		dto.DeliveredDate, paymentMethod, paymentState, dto.Notes)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, productID, dto.ProductName, dto.Quantity,
		unitPrice, dto.Size, dto.Color, dto.Customization)
}
