package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUpcomingDeliveriesQueryHandler lists open orders due inside a window,
// soonest first. Delivered and cancelled orders are excluded.
type GetUpcomingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetUpcomingDeliveriesQueryHandler creates a handler for delivery planning.
func NewGetUpcomingDeliveriesQueryHandler(db *gorm.DB) GetUpcomingDeliveriesQueryHandler {
	return GetUpcomingDeliveriesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetUpcomingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetUpcomingDeliveriesQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.expected_delivery_date IS NOT NULL
		  AND o.expected_delivery_date BETWEEN ? AND ?
		  AND o.status NOT IN ('DELIVERED', 'CANCELLED')
		ORDER BY o.expected_delivery_date
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].Items, err = loadOrderItems(ctx, h.db, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}
