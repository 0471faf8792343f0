package commands

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
//
// The status change commits first; the customer notification runs after the
// commit and is best effort. A failed notification is logged and never undoes
// the transition. Re-entering the current status commits nothing but still
// notifies, so a lost email can be re-sent by re-submitting the status.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderCustomerUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderCustomerUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "update_order_status"),
	}
}

// Handle processes the status update command and returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	cust, err := uow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return nil, err
	}

	changed, err := aggregate.ChangeStatus(cmd.NewStatus(), time.Now())
	if err != nil {
		return nil, err
	}

	if changed {
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.notifier.NotifyOrderStatusChange(ctx, aggregate, cust); err != nil {
		h.logger.Warn("notification failed",
			"order", aggregate.Number(),
			"status", aggregate.Status().String(),
			"error", err)
	}

	return aggregate, nil
}
