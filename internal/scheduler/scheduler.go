package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/argguild/epgpbot/internal/logger"
	"github.com/argguild/epgpbot/internal/metrics"
	"github.com/argguild/epgpbot/internal/worker"
)

// Scheduler runs named jobs at fixed intervals. A run that is still in
// progress when the next one is due causes that next run to be skipped.
type Scheduler struct {
	sched  gocron.Scheduler
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new scheduler. Jobs receive a context derived from ctx that
// is cancelled by Stop.
func New(ctx context.Context) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateScheduler, err)
	}
	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	return &Scheduler{sched: sched, ctx: jobCtx, cancel: cancel}, nil
}

// Schedule registers job to run every interval under name
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) error {
	_, err := s.sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { s.run(name, job) }),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("%s %q: %w", ErrMsgScheduleJob, name, err)
	}
	return nil
}

func (s *Scheduler) run(name string, job worker.Job) {
	ctx := logger.WithRequestID(s.ctx, logger.GenerateRequestID())
	log := logger.FromContext(ctx).With("job", name)

	start := time.Now()
	err := job.Process(ctx)
	metrics.ScheduledJobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ScheduledJobRuns.WithLabelValues(name, metrics.JobStatusFailed).Inc()
		log.Error(LogMsgJobFailed, "error", err)
		return
	}
	metrics.ScheduledJobRuns.WithLabelValues(name, metrics.JobStatusOK).Inc()
	log.Debug(LogMsgJobCompleted, "duration", time.Since(start))
}

// Start starts running registered jobs
func (s *Scheduler) Start() {
	s.sched.Start()
}

// Stop cancels running jobs and waits for them to return
func (s *Scheduler) Stop() error {
	s.cancel()
	if err := s.sched.Shutdown(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgShutdown, err)
	}
	return nil
}
