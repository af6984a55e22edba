package jobs

import (
	"context"
	"time"

	"campusrent/services/logger"

	"github.com/robfig/cron/v3"
)

const DefaultCompletionSchedule = "0 0 * * *"

// BookingCompleter moves finished bookings to completed.
type BookingCompleter interface {
	CompleteElapsed(ctx context.Context) (int, error)
}

// InitCronJobs registers the nightly completion run and starts the scheduler.
func InitCronJobs(c *cron.Cron, schedule string, completer BookingCompleter, log logger.Logger) error {
	if schedule == "" {
		schedule = DefaultCompletionSchedule
	}
	_, err := c.AddFunc(schedule, func() {
		RunCompletion(context.Background(), completer, log)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs started, completion schedule %q", schedule)
	return nil
}

// RunCompletion is one run of the completion job.
func RunCompletion(ctx context.Context, completer BookingCompleter, log logger.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	started := time.Now()
	n, err := completer.CompleteElapsed(ctx)
	if err != nil {
		log.Error("booking completion run failed after %d bookings: %v", n, err)
		return
	}
	log.Info("booking completion run finished: %d completed in %s", n, time.Since(started))
}
