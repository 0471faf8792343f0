// Package paymentrepo provides persistence for payment aggregates.
package paymentrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payments.
type PaymentDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	Provider     string
	Status       string          `gorm:"index"`
	Amount       decimal.Decimal `gorm:"type:numeric(10,2)"`
	ExternalID   string          `gorm:"column:external_id;uniqueIndex"`
	QRCode       string          `gorm:"column:qr_code"`
	QRCodeBase64 string          `gorm:"column:qr_code_base64"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		Provider:     aggregate.Provider(),
		Status:       aggregate.Status().String(),
		Amount:       aggregate.Amount().Decimal(),
		ExternalID:   aggregate.ExternalID(),
		QRCode:       aggregate.QRCode(),
		QRCodeBase64: aggregate.QRCodeBase64(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, dto.Provider, status, amount,
		dto.ExternalID, dto.QRCode, dto.QRCodeBase64, dto.CreatedAt, dto.UpdatedAt)
}
