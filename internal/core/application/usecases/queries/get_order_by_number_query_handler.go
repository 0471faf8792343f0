package queries

import (
	"context"

	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler retrieves one order read model by number.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for number lookups.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the query. A missing order yields ObjectNotFoundError.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSelectColumns+`
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.number = ?
		ORDER BY o.order_date
		LIMIT 1
	`, query.Number()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("number", query.Number())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.Items, err = loadOrderItems(ctx, h.db, resp.ID); err != nil {
		return OrderResponse{}, err
	}
	return resp, nil
}
