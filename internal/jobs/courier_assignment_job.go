package jobs

import (
	"context"
	"errors"
	"log/slog"

	"bottleshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierAssignmentJob periodically matches handed-over items that have no
// courier with the least-loaded free courier.
type CourierAssignmentJob struct {
	handler commands.AssignCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierAssignmentJob creates a new job for assigning couriers.
func NewCourierAssignmentJob(handler commands.AssignCouriersCommandHandler, logger *slog.Logger) *CourierAssignmentJob {
	return &CourierAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_assignment_job"),
	}
}

// Start schedules the assignment run every ten seconds.
func (j *CourierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignCouriersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Empty dispatch rounds are routine, not failures
			if !errors.Is(err, commands.ErrNoWaitingItemsFound) && !errors.Is(err, commands.ErrNoFreeCouriersFound) {
				j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started")
	return nil
}

// Stop stops the courier assignment job.
func (j *CourierAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}
