// Package productionrepo provides persistence for production shadow records.
// Each order has at most one record, keyed by the order's id.
package productionrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/production"

	"github.com/google/uuid"
)

// ProductionOrderDTO represents the database structure for persisting
// production shadow records.
type ProductionOrderDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Stage     string    `gorm:"index"`
	Status    string
	Notes     string
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "production_orders".
func (ProductionOrderDTO) TableName() string {
	return "production_orders"
}

func fromDomain(aggregate *production.ProductionOrder) ProductionOrderDTO {
	return ProductionOrderDTO{
		OrderID:   aggregate.OrderID().Bytes(),
		Stage:     aggregate.Stage().String(),
		Status:    aggregate.Status().String(),
		Notes:     aggregate.Notes(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto ProductionOrderDTO) (*production.ProductionOrder, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	stage, err := production.StageFromString(dto.Stage)
	if err != nil {
		return nil, err
	}

	status, err := production.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return production.RestoreProductionOrder(orderID, stage, status, dto.Notes, dto.UpdatedAt)
}
