package queries

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/production"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductionBoardQueryHandler assembles the production board.
//
// Orders created before the tracker existed, or never touched on the board,
// have no shadow record yet. The handler backfills those rows first so every
// order shows up in the first column instead of silently missing from the
// board.
type GetProductionBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionBoardQueryHandler creates a handler for board reads.
func NewGetProductionBoardQueryHandler(db *gorm.DB) GetProductionBoardQueryHandler {
	return GetProductionBoardQueryHandler{db: db}
}

// Handle executes the backfill and returns the stage columns in pipeline
// order. Stages without cards still appear, with an empty card list.
func (h GetProductionBoardQueryHandler) Handle(
	ctx context.Context,
	query GetProductionBoardQuery,
) ([]ProductionColumnResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	err := h.db.WithContext(ctx).Exec(`
		INSERT INTO production_orders (order_id, stage, status, notes, updated_at)
		SELECT o.id, 'EMBROIDERY', 'PENDING', '', NOW()
		FROM orders o
		WHERE NOT EXISTS (
			SELECT 1 FROM production_orders p WHERE p.order_id = o.id
		)
	`).Error
	if err != nil {
		return nil, err
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
		ORDER BY p.updated_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]ProductionCardResponse, 0)
	for rows.Next() {
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
			return nil, err
		}

		if card.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range cards {
		if cards[i].Items, err = loadOrderItems(ctx, h.db, cards[i].OrderID); err != nil {
			return nil, err
		}
	}

	byStage := make(map[string][]ProductionCardResponse, len(production.Stages()))
	for _, card := range cards {
		byStage[card.Stage] = append(byStage[card.Stage], card)
	}

	columns := make([]ProductionColumnResponse, 0, len(production.Stages()))
	for _, stage := range production.Stages() {
		name := stage.String()
		stageCards := byStage[name]
		if stageCards == nil {
			stageCards = make([]ProductionCardResponse, 0)
		}
		columns = append(columns, ProductionColumnResponse{
			Stage: name,
			Cards: stageCards,
		})
	}
	return columns, nil
}
