// Package http exposes the application over an echo HTTP API.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/product"
	"atelier/internal/core/domain/model/production"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	ensureCustomerHandler    commands.EnsureCustomerCommandHandler
	createPaymentHandler     commands.CreatePaymentCommandHandler
	reconcilePaymentHandler  commands.ReconcilePaymentCommandHandler
	updateProductionHandler  commands.UpdateProductionCommandHandler
	advanceProductionHandler commands.AdvanceProductionCommandHandler
	retreatProductionHandler commands.RetreatProductionCommandHandler

	// Query handlers
	getOrderHandler              queries.GetOrderQueryHandler
	getOrderByNumberHandler      queries.GetOrderByNumberQueryHandler
	getOrdersHandler             queries.GetOrdersQueryHandler
	getUpcomingDeliveriesHandler queries.GetUpcomingDeliveriesQueryHandler
	getTotalRevenueHandler       queries.GetTotalRevenueQueryHandler
	getProductionBoardHandler    queries.GetProductionBoardQueryHandler
	getProductionOrderHandler    queries.GetProductionOrderQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	ensureCustomerHandler commands.EnsureCustomerCommandHandler,
	createPaymentHandler commands.CreatePaymentCommandHandler,
	reconcilePaymentHandler commands.ReconcilePaymentCommandHandler,
	updateProductionHandler commands.UpdateProductionCommandHandler,
	advanceProductionHandler commands.AdvanceProductionCommandHandler,
	retreatProductionHandler commands.RetreatProductionCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getUpcomingDeliveriesHandler queries.GetUpcomingDeliveriesQueryHandler,
	getTotalRevenueHandler queries.GetTotalRevenueQueryHandler,
	getProductionBoardHandler queries.GetProductionBoardQueryHandler,
	getProductionOrderHandler queries.GetProductionOrderQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		updateOrderStatusHandler:     updateOrderStatusHandler,
		cancelOrderHandler:           cancelOrderHandler,
		ensureCustomerHandler:        ensureCustomerHandler,
		createPaymentHandler:         createPaymentHandler,
		reconcilePaymentHandler:      reconcilePaymentHandler,
		updateProductionHandler:      updateProductionHandler,
		advanceProductionHandler:     advanceProductionHandler,
		retreatProductionHandler:     retreatProductionHandler,
		getOrderHandler:              getOrderHandler,
		getOrderByNumberHandler:      getOrderByNumberHandler,
		getOrdersHandler:             getOrdersHandler,
		getUpcomingDeliveriesHandler: getUpcomingDeliveriesHandler,
		getTotalRevenueHandler:       getTotalRevenueHandler,
		getProductionBoardHandler:    getProductionBoardHandler,
		getProductionOrderHandler:    getProductionOrderHandler,
		logger:                       logger.With("component", "http"),
	}
}

// RegisterRoutes wires the server's handlers into the echo router.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/upcoming-deliveries", s.GetUpcomingDeliveries)
	api.GET("/orders/revenue", s.GetRevenue)
	api.GET("/orders/number/:number", s.GetOrderByNumber)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:id", s.CancelOrder)

	api.POST("/public/orders", s.CreatePublicOrder)

	api.GET("/production/board", s.GetProductionBoard)
	api.GET("/production/orders/:orderId", s.GetProductionOrder)
	api.PATCH("/production/orders/:orderId", s.UpdateProduction)
	api.POST("/production/orders/:orderId/next", s.AdvanceProduction)
	api.POST("/production/orders/:orderId/prev", s.RetreatProduction)

	api.POST("/payments/pix", s.CreatePixPayment)
	api.POST("/webhooks/mercadopago", s.MercadoPagoWebhook)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders - places an order for a known customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	return s.placeOrder(ctx, customerID, req.Items, req.Discount,
		req.ExpectedDeliveryDate, req.PaymentMethod, req.Notes)
}

// CreatePublicOrder handles POST /api/public/orders - storefront intake. The
// customer is looked up by email and created when missing, then the order is
// placed on their behalf.
func (s *Server) CreatePublicOrder(ctx echo.Context) error {
	var req PublicOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEnsureCustomerCommand(kernel.NewUUID(),
		req.CustomerName, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	cust, err := s.ensureCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return s.placeOrder(ctx, cust.ID(), req.Items, "",
		req.ExpectedDeliveryDate, req.PaymentMethod, req.Notes)
}

func (s *Server) placeOrder(
	ctx echo.Context,
	customerID kernel.UUID,
	itemRequests []OrderItemRequest,
	discount string,
	expectedDeliveryDate *time.Time,
	paymentMethod string,
	notes string,
) error {
	items, err := buildOrderItems(itemRequests)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	discountMoney := kernel.ZeroMoney()
	if discount != "" {
		if discountMoney, err = kernel.MoneyFromString(discount); err != nil {
			return badRequest(ctx, "Invalid discount: "+err.Error())
		}
	}

	method := order.OtherMethod
	if paymentMethod != "" {
		if method, err = order.PaymentMethodFromString(paymentMethod); err != nil {
			return badRequest(ctx, "Invalid payment method: "+err.Error())
		}
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID,
		items, discountMoney, expectedDeliveryDate, method, notes)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, aggregateToResponse(created))
}

// GetOrders handles GET /api/orders - lists orders with optional customerId,
// status, from and to filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var customerID *kernel.UUID
	if raw := ctx.QueryParam("customerId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid customer id: "+err.Error())
		}
		customerID = &id
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status: "+err.Error())
		}
		status = &parsed
	}

	from, to, err := parseOptionalDateRange(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid date range: "+err.Error())
	}

	query, err := queries.NewGetOrdersQuery(customerID, status, from, to)
	if err != nil {
		return badRequest(ctx, "Invalid filters: "+err.Error())
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToResponse(orders))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(result))
}

// GetOrderByNumber handles GET /api/orders/number/:number.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("number"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(result))
}

// GetUpcomingDeliveries handles GET /api/orders/upcoming-deliveries - lists
// open orders promised for delivery within the from/to window.
func (s *Server) GetUpcomingDeliveries(ctx echo.Context) error {
	from, to, err := parseRequiredDateRange(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid date range: "+err.Error())
	}

	query, err := queries.NewGetUpcomingDeliveriesQuery(from, to)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.getUpcomingDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToResponse(orders))
}

// GetRevenue handles GET /api/orders/revenue - sums delivered value over the
// from/to window, cancelled orders excluded.
func (s *Server) GetRevenue(ctx echo.Context) error {
	from, to, err := parseRequiredDateRange(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid date range: "+err.Error())
	}

	query, err := queries.NewGetTotalRevenueQuery(from, to)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	revenue, err := s.getTotalRevenueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RevenueResponse{
		From:    from.Format(dateLayout),
		To:      to.Format(dateLayout),
		Revenue: revenue.String(),
	})
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, aggregateToResponse(updated))
}

// CancelOrder handles DELETE /api/orders/:id - cancels the order and returns
// its reserved stock. Cancelling a cancelled order is a no-op.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProductionBoard handles GET /api/production/board - the five-column
// pipeline view with one card per open order.
func (s *Server) GetProductionBoard(ctx echo.Context) error {
	columns, err := s.getProductionBoardHandler.Handle(ctx.Request().Context(),
		queries.NewGetProductionBoardQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productionBoardToResponse(columns))
}

// GetProductionOrder handles GET /api/production/orders/:orderId.
func (s *Server) GetProductionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetProductionOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	card, err := s.getProductionOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productionCardToResponse(card))
}

// UpdateProduction handles PATCH /api/production/orders/:orderId - partial
// update of the card's stage, status and notes.
func (s *Server) UpdateProduction(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var req UpdateProductionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var stage *production.Stage
	if req.Stage != nil {
		parsed, stageErr := production.StageFromString(*req.Stage)
		if stageErr != nil {
			return badRequest(ctx, "Invalid stage: "+stageErr.Error())
		}
		stage = &parsed
	}

	var status *production.Status
	if req.Status != nil {
		parsed, statusErr := production.StatusFromString(*req.Status)
		if statusErr != nil {
			return badRequest(ctx, "Invalid status: "+statusErr.Error())
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateProductionCommand(orderID, stage, status, req.Notes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	record, err := s.updateProductionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productionRecordToResponse(record))
}

// AdvanceProduction handles POST /api/production/orders/:orderId/next.
func (s *Server) AdvanceProduction(ctx echo.Context) error {
	return s.moveProduction(ctx, true)
}

// RetreatProduction handles POST /api/production/orders/:orderId/prev.
func (s *Server) RetreatProduction(ctx echo.Context) error {
	return s.moveProduction(ctx, false)
}

func (s *Server) moveProduction(ctx echo.Context, forward bool) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var record *production.ProductionOrder
	if forward {
		cmd, cmdErr := commands.NewAdvanceProductionCommand(orderID)
		if cmdErr != nil {
			return badRequest(ctx, cmdErr.Error())
		}
		record, err = s.advanceProductionHandler.Handle(ctx.Request().Context(), cmd)
	} else {
		cmd, cmdErr := commands.NewRetreatProductionCommand(orderID)
		if cmdErr != nil {
			return badRequest(ctx, cmdErr.Error())
		}
		record, err = s.retreatProductionHandler.Handle(ctx.Request().Context(), cmd)
	}
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productionRecordToResponse(record))
}

// CreatePixPayment handles POST /api/payments/pix - asks the provider for a
// PIX charge and returns the stored payment with its QR artifacts.
func (s *Server) CreatePixPayment(ctx echo.Context) error {
	var req CreatePixPaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCreatePaymentCommand(kernel.NewUUID(), orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	intent, err := s.createPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentToResponse(intent))
}

// MercadoPagoWebhook handles POST /api/webhooks/mercadopago. The provider
// retries on non-2xx responses, so the endpoint always acknowledges: a
// malformed payload or a failed reconciliation is logged and answered 200.
func (s *Server) MercadoPagoWebhook(ctx echo.Context) error {
	var req WebhookRequest
	if err := ctx.Bind(&req); err != nil || req.Data.ID.String() == "" {
		s.logger.Debug("ignoring malformed webhook payload")
		return ctx.NoContent(http.StatusOK)
	}

	cmd, err := commands.NewReconcilePaymentCommand(req.Data.ID.String())
	if err != nil {
		s.logger.Debug("ignoring webhook with invalid charge id", "error", err)
		return ctx.NoContent(http.StatusOK)
	}

	if err = s.reconcilePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		s.logger.Error("webhook reconciliation failed",
			"externalID", req.Data.ID.String(),
			"error", err)
	}

	return ctx.NoContent(http.StatusOK)
}

func buildOrderItems(requests []OrderItemRequest) ([]commands.CreateOrderItem, error) {
	items := make([]commands.CreateOrderItem, 0, len(requests))
	for _, req := range requests {
		productID, err := kernel.UUIDFromString(req.ProductID)
		if err != nil {
			return nil, err
		}

		var override *kernel.Money
		if req.UnitPrice != nil {
			price, priceErr := kernel.MoneyFromString(*req.UnitPrice)
			if priceErr != nil {
				return nil, priceErr
			}
			override = &price
		}

		items = append(items, commands.CreateOrderItem{
			ProductID:         productID,
			Quantity:          req.Quantity,
			UnitPriceOverride: override,
			Size:              req.Size,
			Color:             req.Color,
			Customization:     req.Customization,
		})
	}
	return items, nil
}

func parseOptionalDateRange(ctx echo.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := ctx.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, nil, err
		}
		from = &parsed
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, nil, err
		}
		// Inclusive end of day.
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		to = &parsed
	}
	return from, to, nil
}

func parseRequiredDateRange(ctx echo.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(dateLayout, ctx.QueryParam("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(dateLayout, ctx.QueryParam("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to.Add(24*time.Hour - time.Nanosecond), nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	var notFound *errs.ObjectNotFoundError
	switch {
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, order.ErrOrderAlreadyDelivered),
		errors.Is(err, order.ErrOrderStatusIsTerminal):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
