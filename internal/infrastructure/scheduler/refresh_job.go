// Package scheduler runs the periodic watch refresh sweep.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const DefaultSchedule = "@every 15m"

// WatchSource lists the tracking numbers that still need refreshing.
type WatchSource interface {
	ActiveTrackingNumbers(ctx context.Context) ([]string, error)
}

// Enqueuer hands tracking numbers to the refresh workers.
type Enqueuer interface {
	EnqueueBatch(ctx context.Context, trackingNumbers []string) error
}

// RefreshJob enqueues every active watch on a cron schedule.
type RefreshJob struct {
	source   WatchSource
	queue    Enqueuer
	schedule string
	cron     *cron.Cron
	log      zerolog.Logger
}

// NewRefreshJob creates the job. An empty schedule uses DefaultSchedule.
func NewRefreshJob(source WatchSource, queue Enqueuer, schedule string, log zerolog.Logger) *RefreshJob {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &RefreshJob{
		source:   source,
		queue:    queue,
		schedule: schedule,
		cron:     cron.New(),
		log:      log.With().Str("component", "refresh_job").Logger(),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *RefreshJob) Start(ctx context.Context) error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Sweep(ctx) }); err != nil {
		return fmt.Errorf("schedule refresh job %q: %w", j.schedule, err)
	}
	j.cron.Start()
	j.log.Info().Str("schedule", j.schedule).Msg("refresh job started")
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *RefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info().Msg("refresh job stopped")
}

// Sweep enqueues every active tracking number once.
func (j *RefreshJob) Sweep(ctx context.Context) {
	numbers, err := j.source.ActiveTrackingNumbers(ctx)
	if err != nil {
		j.log.Error().Err(err).Msg("refresh sweep failed")
		return
	}
	if err := j.queue.EnqueueBatch(ctx, numbers); err != nil {
		j.log.Warn().Err(err).Int("count", len(numbers)).Msg("refresh sweep interrupted")
		return
	}
	j.log.Debug().Int("count", len(numbers)).Msg("refresh sweep enqueued")
}
