package commands

import (
	"context"
)

// CancelOrderCommandHandler handles order cancellation.
//
// Stock restitution and the status change commit together: every item
// quantity goes back to its product's counter in the same transaction that
// marks the order cancelled. Cancelling an already-cancelled order releases
// nothing.
type CancelOrderCommandHandler struct {
	uowFactory OrderStockUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderStockUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := aggregate.Cancel()
	if err != nil {
		return err
	}

	if changed {
		productRepo := uow.ProductRepository()
		for _, item := range aggregate.Items() {
			if err = productRepo.Release(ctx, item.ProductID(), item.Quantity()); err != nil {
				return err
			}
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
