package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists order read models, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for filtered order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query with the filters the caller provided.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT ` + orderSelectColumns + `
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE 1=1
	`)

	args := make([]any, 0, 4)
	if query.CustomerID() != nil {
		sb.WriteString(" AND o.customer_id = ?")
		args = append(args, query.CustomerID().String())
	}
	if query.Status() != nil {
		sb.WriteString(" AND o.status = ?")
		args = append(args, query.Status().String())
	}
	if query.From() != nil {
		sb.WriteString(" AND o.order_date >= ?")
		args = append(args, *query.From())
	}
	if query.To() != nil {
		sb.WriteString(" AND o.order_date <= ?")
		args = append(args, *query.To())
	}
	sb.WriteString(" ORDER BY o.order_date DESC")

	rows, err := h.db.WithContext(ctx).Raw(sb.String(), args...).Rows()
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
