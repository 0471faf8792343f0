package queries

import (
	"context"
	"database/sql"

	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderSelectColumns = `
	o.id,
	o.number,
	o.customer_id,
	c.name,
	o.status,
	o.total_amount,
	o.discount,
	o.order_date,
	o.expected_delivery_date,
	o.delivered_date,
	o.payment_method,
	o.payment_state,
	o.notes
`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp               OrderResponse
		id, customerID     uuid.UUID
		totalRaw, discount decimal.Decimal
		expectedDelivery   sql.NullTime
		deliveredDate      sql.NullTime
	)

	err := rows.Scan(
		&id,
		&resp.Number,
		&customerID,
		&resp.CustomerName,
		&resp.Status,
		&totalRaw,
		&discount,
		&resp.OrderDate,
		&expectedDelivery,
		&deliveredDate,
		&resp.PaymentMethod,
		&resp.PaymentState,
		&resp.Notes,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.TotalAmount, err = kernel.NewMoney(totalRaw); err != nil {
		return OrderResponse{}, err
	}
	if resp.Discount, err = kernel.NewMoney(discount); err != nil {
		return OrderResponse{}, err
	}
	if expectedDelivery.Valid {
		expected := expectedDelivery.Time
		resp.ExpectedDeliveryDate = &expected
	}
	if deliveredDate.Valid {
		delivered := deliveredDate.Time
		resp.DeliveredDate = &delivered
	}
	return resp, nil
}

func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			product_name,
			quantity,
			unit_price,
			subtotal,
			size,
			color,
			customization
		FROM order_items
		WHERE order_id = ?
		ORDER BY line_no
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var (
			item                OrderItemResponse
			id, productID       uuid.UUID
			unitPrice, subtotal decimal.Decimal
		)

		err = rows.Scan(
			&id,
			&productID,
			&item.ProductName,
			&item.Quantity,
			&unitPrice,
			&subtotal,
			&item.Size,
			&item.Color,
			&item.Customization,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		if item.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
