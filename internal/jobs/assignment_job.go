package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultAssignmentSchedule runs the assignment sweep once a minute.
const DefaultAssignmentSchedule = "0 * * * * *"

// AssignmentJob runs the periodic courier-assignment sweep. Each tick matches
// confirmed orders whose eligibility window has opened with free couriers.
type AssignmentJob struct {
	handler  commands.AssignCouriersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAssignmentJob creates the assignment job. The schedule is a six-field
// cron expression; an empty string falls back to DefaultAssignmentSchedule.
func NewAssignmentJob(
	handler commands.AssignCouriersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *AssignmentJob {
	if schedule == "" {
		schedule = DefaultAssignmentSchedule
	}

	return &AssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "assignment_job"),
	}
}

// Start begins the periodic assignment sweep.
func (j *AssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewAssignCouriersCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build assignment command", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An idle system and an exhausted courier pool are expected
			// between ticks, not failures.
			if !errors.Is(err, commands.ErrNoOrdersAwaiting) && !errors.Is(err, commands.ErrNoFreeCouriersFound) {
				j.logger.ErrorContext(ctx, "Assignment sweep failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the assignment sweep.
func (j *AssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment job stopped")
}
