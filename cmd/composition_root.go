package cmd

import (
	"log/slog"
	"time"

	"atelier/internal/adapters/out/mercadopago"
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/adapters/out/smtpmail"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/ports"
	"atelier/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	provider   ports.PaymentProvider
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	provider, err := mercadopago.NewClient(config.MercadoPagoBaseURL,
		config.MercadoPagoAccessToken, logger)
	if err != nil {
		return CompositionRoot{}, err
	}

	notifier := smtpmail.NewNotifier(config.SMTPHost, config.SMTPPort,
		config.SMTPUser, config.SMTPPassword, config.MailFrom, config.MailFromName, logger)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		provider:   provider,
		notifier:   notifier,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderCustomerUoWFactory = FuncOrderCustomerUoWFactory(func() commands.OrderCustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderStockUoWFactory = FuncOrderStockUoWFactory(func() commands.OrderStockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateEnsureCustomerCommandHandler() commands.EnsureCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEnsureCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.PaymentIntentUoWFactory = FuncPaymentIntentUoWFactory(func() commands.PaymentIntentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f, c.provider)
}

func (c *CompositionRoot) CreateReconcilePaymentCommandHandler() commands.ReconcilePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcilePaymentCommandHandler(f, c.provider, c.logger)
}

func (c *CompositionRoot) CreateUpdateProductionCommandHandler() commands.UpdateProductionCommandHandler {
	return commands.NewUpdateProductionCommandHandler(c.productionUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceProductionCommandHandler() commands.AdvanceProductionCommandHandler {
	return commands.NewAdvanceProductionCommandHandler(c.productionUoWFactory())
}

func (c *CompositionRoot) CreateRetreatProductionCommandHandler() commands.RetreatProductionCommandHandler {
	return commands.NewRetreatProductionCommandHandler(c.productionUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByNumberQueryHandler() queries.GetOrderByNumberQueryHandler {
	return queries.NewGetOrderByNumberQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUpcomingDeliveriesQueryHandler() queries.GetUpcomingDeliveriesQueryHandler {
	return queries.NewGetUpcomingDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTotalRevenueQueryHandler() queries.GetTotalRevenueQueryHandler {
	return queries.NewGetTotalRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionBoardQueryHandler() queries.GetProductionBoardQueryHandler {
	return queries.NewGetProductionBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductionOrderQueryHandler() queries.GetProductionOrderQueryHandler {
	return queries.NewGetProductionOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(schedule string, staleAfter time.Duration) *jobs.JobManager {
	reconciliationJob := jobs.NewPaymentReconciliationJob(
		c.paymentUoWFactory(),
		c.CreateReconcilePaymentCommandHandler(),
		schedule,
		staleAfter,
		c.logger,
	)
	return jobs.NewJobManager(reconciliationJob)
}

func (c *CompositionRoot) productionUoWFactory() commands.ProductionUoWFactory {
	return FuncProductionUoWFactory(func() commands.ProductionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) paymentUoWFactory() commands.PaymentUoWFactory {
	return FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderStockUoWFactory func() commands.OrderStockUoW

func (f FuncOrderStockUoWFactory) Create() commands.OrderStockUoW {
	return f()
}

type FuncOrderCustomerUoWFactory func() commands.OrderCustomerUoW

func (f FuncOrderCustomerUoWFactory) Create() commands.OrderCustomerUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncPaymentIntentUoWFactory func() commands.PaymentIntentUoW

func (f FuncPaymentIntentUoWFactory) Create() commands.PaymentIntentUoW {
	return f()
}

type FuncProductionUoWFactory func() commands.ProductionUoW

func (f FuncProductionUoWFactory) Create() commands.ProductionUoW {
	return f()
}
