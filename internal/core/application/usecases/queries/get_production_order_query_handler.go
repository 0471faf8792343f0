package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductionOrderQueryHandler retrieves one production board card.
// Unlike the board query it performs no backfill: an untouched order
// yields ObjectNotFoundError.
type GetProductionOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionOrderQueryHandler creates a handler for card reads.
func NewGetProductionOrderQueryHandler(db *gorm.DB) GetProductionOrderQueryHandler {
	return GetProductionOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h GetProductionOrderQueryHandler) Handle(
	ctx context.Context,
	query GetProductionOrderQuery,
) (ProductionCardResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductionCardResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.order_id,
			o.number,
			c.name,
			p.stage,
			p.status,
			p.notes,
			p.updated_at
		FROM production_orders p
		JOIN orders o ON o.id = p.order_id
		JOIN customers c ON c.id = o.customer_id
		WHERE p.order_id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return ProductionCardResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ProductionCardResponse{}, err
		}
		return ProductionCardResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var (
		card    ProductionCardResponse
		orderID uuid.UUID
	)

	err = rows.Scan(
		&orderID,
		&card.OrderNumber,
		&card.CustomerName,
		&card.Stage,
		&card.Status,
		&card.Notes,
		&card.UpdatedAt,
	)
	if err != nil {
		return ProductionCardResponse{}, err
	}

	if card.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return ProductionCardResponse{}, err
	}
	if card.Items, err = loadOrderItems(ctx, h.db, card.OrderID); err != nil {
		return ProductionCardResponse{}, err
	}
	return card, nil
}
