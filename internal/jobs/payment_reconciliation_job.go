package jobs

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentReconciliationJob periodically sweeps pending payments that have not
// been refreshed recently and re-queries the provider for each one. Webhooks
// cover the common path; the sweep catches deliveries the provider dropped.
type PaymentReconciliationJob struct {
	uowFactory commands.PaymentUoWFactory
	handler    commands.ReconcilePaymentCommandHandler
	schedule   string
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPaymentReconciliationJob creates the sweep job. schedule is a standard
// five-field cron expression; staleAfter is how long a pending payment may go
// without a refresh before it is re-queried.
func NewPaymentReconciliationJob(
	uowFactory commands.PaymentUoWFactory,
	handler commands.ReconcilePaymentCommandHandler,
	schedule string,
	staleAfter time.Duration,
	logger *slog.Logger,
) *PaymentReconciliationJob {
	return &PaymentReconciliationJob{
		uowFactory: uowFactory,
		handler:    handler,
		schedule:   schedule,
		staleAfter: staleAfter,
		cron:       cron.New(),
		logger:     logger.With("component", "payment_reconciliation_job"),
	}
}

// Start schedules the sweep.
func (j *PaymentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("payment reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep.
func (j *PaymentReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.Info("payment reconciliation job stopped")
}

func (j *PaymentReconciliationJob) sweep() {
	ctx := context.Background()
	cutoff := time.Now().Add(-j.staleAfter)

	externalIDs, err := j.collectStaleExternalIDs(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "listing stale payments failed", "error", err)
		return
	}

	// Each payment reconciles in its own transaction so one provider hiccup
	// does not abort the rest of the sweep.
	for _, externalID := range externalIDs {
		cmd, cmdErr := commands.NewReconcilePaymentCommand(externalID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "invalid external id in sweep", "externalID", externalID, "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "payment reconciliation failed",
				"externalID", externalID, "error", handleErr)
		}
	}
}

func (j *PaymentReconciliationJob) collectStaleExternalIDs(ctx context.Context, cutoff time.Time) ([]string, error) {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stale, err := uow.PaymentRepository().GetStalePending(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	externalIDs := make([]string, 0, len(stale))
	for _, intent := range stale {
		externalIDs = append(externalIDs, intent.ExternalID())
	}

	return externalIDs, uow.Commit(ctx)
}
