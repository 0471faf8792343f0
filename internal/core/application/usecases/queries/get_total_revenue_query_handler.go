package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTotalRevenueQueryHandler sums order totals over a date range.
// An empty range yields zero, not an error.
type GetTotalRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetTotalRevenueQueryHandler creates a handler for revenue reads.
func NewGetTotalRevenueQueryHandler(db *gorm.DB) GetTotalRevenueQueryHandler {
	return GetTotalRevenueQueryHandler{db: db}
}

// Handle executes the query.
func (h GetTotalRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetTotalRevenueQuery,
) (kernel.Money, error) {
	if err := query.Validate(); err != nil {
		return kernel.Money{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE order_date BETWEEN ? AND ?
		  AND status != 'CANCELLED'
	`, query.From(), query.To()).Rows()
	if err != nil {
		return kernel.Money{}, err
	}
	defer rows.Close()

	total := decimal.Zero
	if rows.Next() {
		if err = rows.Scan(&total); err != nil {
			return kernel.Money{}, err
		}
	}
	if err = rows.Err(); err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoney(total)
}
