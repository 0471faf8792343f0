// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"atelier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches; the concrete postgres UnitOfWork satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ProductionRepoFactory provides access to the production tracker repository within a transaction.
	ProductionRepoFactory interface {
		ProductionOrderRepository() ports.ProductionOrderRepository
	}

	// OrderStockUoW manages transactions that move stock together with an
	// order: creation reserves, cancellation releases.
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderStockUoWFactory creates new OrderStockUoW instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// OrderCustomerUoW manages transactions that read an order together with
	// its customer, as status updates do for notifications.
	OrderCustomerUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// OrderCustomerUoWFactory creates new OrderCustomerUoW instances.
	OrderCustomerUoWFactory interface {
		Create() OrderCustomerUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new CustomerUoW instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// PaymentUoW manages transactions for payment-only operations.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new PaymentUoW instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// PaymentIntentUoW manages transactions for payment intent creation,
	// which reads the order and customer and persists the payment.
	PaymentIntentUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		PaymentRepoFactory
	}

	// PaymentIntentUoWFactory creates new PaymentIntentUoW instances.
	PaymentIntentUoWFactory interface {
		Create() PaymentIntentUoW
	}

	// ProductionUoW manages transactions for production tracker operations,
	// which verify the order exists before touching its shadow record.
	ProductionUoW interface {
		TxManager
		OrderRepoFactory
		ProductionRepoFactory
	}

	// ProductionUoWFactory creates new ProductionUoW instances.
	ProductionUoWFactory interface {
		Create() ProductionUoW
	}
)
