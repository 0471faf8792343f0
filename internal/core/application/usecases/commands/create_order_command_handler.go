package commands

import (
	"context"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/product"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Stock reservation and order insertion happen in one transaction: either
// every line is reserved and the order exists, or nothing changed.
type CreateOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderStockUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
//
// The order number is derived from the count of orders created today; it is
// informational and not a uniqueness guarantee. Each line reserves stock via
// the repository's atomic decrement, so two concurrent orders for the last
// unit cannot both succeed.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := time.Now()
	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	count, err := orderRepo.CountCreatedOn(ctx, now)
	if err != nil {
		return nil, err
	}
	number := order.GenerateNumber(now, count+1)

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		prod, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		if err = productRepo.Reserve(ctx, prod.ID(), line.Quantity); err != nil {
			if errors.Is(err, product.ErrInsufficientStock) {
				return nil, &product.InsufficientStockError{
					ProductName: prod.Name(),
					Requested:   line.Quantity,
					Available:   prod.Stock(),
				}
			}
			return nil, err
		}

		unitPrice := prod.Price()
		if line.UnitPriceOverride != nil {
			unitPrice = *line.UnitPriceOverride
		}

		item, err := order.NewItem(kernel.NewUUID(), prod.ID(), prod.Name(),
			line.Quantity, unitPrice, line.Size, line.Color, line.Customization)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), number, cmd.CustomerID(), items,
		order.StatusUnknown, cmd.Discount(), now, cmd.ExpectedDeliveryDate(),
		cmd.PaymentMethod(), order.PaymentStateUnknown, cmd.Notes())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
