package ports

import (
	"context"

	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/order"
)

// Notifier is the outbound contract for customer notifications.
// Delivery is best effort: failures are logged by the caller, never
// propagated into the transaction that triggered them.
type Notifier interface {
	// NotifyOrderStatusChange tells the customer their order reached a new
	// status. Implementations decide which statuses warrant a message and
	// skip customers without a usable address.
	NotifyOrderStatusChange(ctx context.Context, ord *order.Order, cust *customer.Customer) error
}
