// Package productrepo provides persistence for the product aggregate,
// including the atomic stock counter operations behind reservations.
package productrepo

import (
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Description  string
	Category     string          `gorm:"index"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2)"`
	Stock        int
	SKU          string `gorm:"column:sku"`
	Active       bool   `gorm:"index"`
	Customizable bool
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Description:  aggregate.Description(),
		Category:     aggregate.Category().String(),
		Price:        aggregate.Price().Decimal(),
		Stock:        aggregate.Stock(),
		SKU:          aggregate.SKU(),
		Active:       aggregate.IsActive(),
		Customizable: aggregate.IsCustomizable(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := product.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, category, price,
		dto.Stock, dto.SKU, dto.Active, dto.Customizable)
}
