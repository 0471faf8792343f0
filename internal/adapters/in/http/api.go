package http

import (
	"encoding/json"
	"time"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/payment"
	"atelier/internal/core/domain/model/production"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one requested line of a new order. UnitPrice overrides
// the catalog price when present.
type OrderItemRequest struct {
	ProductID     string  `json:"productId"`
	Quantity      int     `json:"quantity"`
	UnitPrice     *string `json:"unitPrice,omitempty"`
	Size          string  `json:"size"`
	Color         string  `json:"color"`
	Customization string  `json:"customization"`
}

// CreateOrderRequest is the admin order intake payload.
type CreateOrderRequest struct {
	CustomerID           string             `json:"customerId"`
	Items                []OrderItemRequest `json:"items"`
	Discount             string             `json:"discount"`
	ExpectedDeliveryDate *time.Time         `json:"expectedDeliveryDate,omitempty"`
	PaymentMethod        string             `json:"paymentMethod"`
	Notes                string             `json:"notes"`
}

// PublicOrderRequest is the storefront order intake payload. The customer is
// matched by email or created on the fly.
type PublicOrderRequest struct {
	CustomerName         string             `json:"customerName"`
	CustomerEmail        string             `json:"customerEmail"`
	CustomerPhone        string             `json:"customerPhone"`
	Items                []OrderItemRequest `json:"items"`
	ExpectedDeliveryDate *time.Time         `json:"expectedDeliveryDate,omitempty"`
	PaymentMethod        string             `json:"paymentMethod"`
	Notes                string             `json:"notes"`
}

// UpdateOrderStatusRequest carries the target lifecycle status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateProductionRequest is a partial production-card update. Absent fields
// keep their current values.
type UpdateProductionRequest struct {
	Stage  *string `json:"stage,omitempty"`
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// CreatePixPaymentRequest asks for a new PIX charge for an order.
type CreatePixPaymentRequest struct {
	OrderID string `json:"orderId"`
}

// WebhookRequest is the provider's payment notification. The charge id comes
// as a JSON number or string depending on the event source.
type WebhookRequest struct {
	Data struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// OrderItemResponse is one order line in read responses.
type OrderItemResponse struct {
	ID            string `json:"id"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unitPrice"`
	Subtotal      string `json:"subtotal"`
	Size          string `json:"size"`
	Color         string `json:"color"`
	Customization string `json:"customization"`
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID                   string              `json:"id"`
	Number               string              `json:"number"`
	CustomerID           string              `json:"customerId"`
	CustomerName         string              `json:"customerName,omitempty"`
	Status               string              `json:"status"`
	TotalAmount          string              `json:"totalAmount"`
	Discount             string              `json:"discount"`
	OrderDate            time.Time           `json:"orderDate"`
	ExpectedDeliveryDate *time.Time          `json:"expectedDeliveryDate,omitempty"`
	DeliveredDate        *time.Time          `json:"deliveredDate,omitempty"`
	PaymentMethod        string              `json:"paymentMethod"`
	PaymentState         string              `json:"paymentState"`
	Notes                string              `json:"notes"`
	Items                []OrderItemResponse `json:"items"`
}

// PaymentResponse is the read model of a payment, QR artifacts included.
type PaymentResponse struct {
	ID           string `json:"id"`
	OrderID      string `json:"orderId"`
	Provider     string `json:"provider"`
	Status       string `json:"status"`
	Amount       string `json:"amount"`
	ExternalID   string `json:"externalId"`
	QRCode       string `json:"qrCode"`
	QRCodeBase64 string `json:"qrCodeBase64"`
}

// ProductionCardResponse is one card on the production board.
type ProductionCardResponse struct {
	OrderID      string              `json:"orderId"`
	OrderNumber  string              `json:"orderNumber,omitempty"`
	CustomerName string              `json:"customerName,omitempty"`
	Items        []OrderItemResponse `json:"items,omitempty"`
	Stage        string              `json:"stage"`
	Status       string              `json:"status"`
	Notes        string              `json:"notes"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// ProductionColumnResponse is one stage column of the production board.
type ProductionColumnResponse struct {
	Stage string                   `json:"stage"`
	Cards []ProductionCardResponse `json:"cards"`
}

// RevenueResponse carries the summed revenue of a date range.
type RevenueResponse struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Revenue string `json:"revenue"`
}

func orderItemsToResponse(items []queries.OrderItemResponse) []OrderItemResponse {
	out := make([]OrderItemResponse, len(items))
	for i, item := range items {
		out[i] = OrderItemResponse{
			ID:            item.ID.String(),
			ProductID:     item.ProductID.String(),
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice.String(),
			Subtotal:      item.Subtotal.String(),
			Size:          item.Size,
			Color:         item.Color,
			Customization: item.Customization,
		}
	}
	return out
}

func orderToResponse(o queries.OrderResponse) OrderResponse {
	return OrderResponse{
		ID:                   o.ID.String(),
		Number:               o.Number,
		CustomerID:           o.CustomerID.String(),
		CustomerName:         o.CustomerName,
		Status:               o.Status,
		TotalAmount:          o.TotalAmount.String(),
		Discount:             o.Discount.String(),
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		DeliveredDate:        o.DeliveredDate,
		PaymentMethod:        o.PaymentMethod,
		PaymentState:         o.PaymentState,
		Notes:                o.Notes,
		Items:                orderItemsToResponse(o.Items),
	}
}

func ordersToResponse(orders []queries.OrderResponse) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = orderToResponse(o)
	}
	return out
}

// aggregateToResponse renders a freshly written aggregate without going back
// through the read side.
func aggregateToResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items()))
	for i, item := range o.Items() {
		items[i] = OrderItemResponse{
			ID:            item.ID().String(),
			ProductID:     item.ProductID().String(),
			ProductName:   item.ProductName(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice().String(),
			Subtotal:      item.Subtotal().String(),
			Size:          item.Size(),
			Color:         item.Color(),
			Customization: item.Customization(),
		}
	}

	return OrderResponse{
		ID:                   o.ID().String(),
		Number:               o.Number(),
		CustomerID:           o.CustomerID().String(),
		Status:               o.Status().String(),
		TotalAmount:          o.TotalAmount().String(),
		Discount:             o.Discount().String(),
		OrderDate:            o.OrderDate(),
		ExpectedDeliveryDate: o.ExpectedDeliveryDate(),
		DeliveredDate:        o.DeliveredDate(),
		PaymentMethod:        o.PaymentMethod().String(),
		PaymentState:         o.PaymentState().String(),
		Notes:                o.Notes(),
		Items:                items,
	}
}

func paymentToResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID().String(),
		OrderID:      p.OrderID().String(),
		Provider:     p.Provider(),
		Status:       p.Status().String(),
		Amount:       p.Amount().String(),
		ExternalID:   p.ExternalID(),
		QRCode:       p.QRCode(),
		QRCodeBase64: p.QRCodeBase64(),
	}
}

func productionCardToResponse(card queries.ProductionCardResponse) ProductionCardResponse {
	return ProductionCardResponse{
		OrderID:      card.OrderID.String(),
		OrderNumber:  card.OrderNumber,
		CustomerName: card.CustomerName,
		Items:        orderItemsToResponse(card.Items),
		Stage:        card.Stage,
		Status:       card.Status,
		Notes:        card.Notes,
		UpdatedAt:    card.UpdatedAt,
	}
}

func productionRecordToResponse(record *production.ProductionOrder) ProductionCardResponse {
	return ProductionCardResponse{
		OrderID:   record.OrderID().String(),
		Stage:     record.Stage().String(),
		Status:    record.Status().String(),
		Notes:     record.Notes(),
		UpdatedAt: record.UpdatedAt(),
	}
}

func productionBoardToResponse(columns []queries.ProductionColumnResponse) []ProductionColumnResponse {
	out := make([]ProductionColumnResponse, len(columns))
	for i, column := range columns {
		cards := make([]ProductionCardResponse, len(column.Cards))
		for j, card := range column.Cards {
			cards[j] = productionCardToResponse(card)
		}
		out[i] = ProductionColumnResponse{Stage: column.Stage, Cards: cards}
	}
	return out
}
