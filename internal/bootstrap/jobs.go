package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/argguild/epgpbot/internal/config"
	"github.com/argguild/epgpbot/internal/ledger"
	"github.com/argguild/epgpbot/internal/raid"
	"github.com/argguild/epgpbot/internal/scheduler"
)

// ScheduleJobs registers the raid reward tick and, when enabled, the periodic
// decay. The scheduler is returned unstarted.
func ScheduleJobs(ctx context.Context, cfg *config.Config, svc *Services) (*scheduler.Scheduler, error) {
	sched, err := scheduler.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateSchedule, err)
	}

	if err := sched.Schedule(JobNameRaidRewards, cfg.RewardTickInterval, raid.NewRewardJob(svc.Raids)); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgScheduleJob, err)
	}
	slog.Info(LogMsgJobScheduled, "job", JobNameRaidRewards, "interval", cfg.RewardTickInterval)

	if cfg.DecayEnabled {
		if err := sched.Schedule(JobNameDecay, cfg.DecayInterval, ledger.NewDecayJob(svc.Ledger, cfg.DecayPercent)); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgScheduleJob, err)
		}
		slog.Info(LogMsgJobScheduled, "job", JobNameDecay, "interval", cfg.DecayInterval, "percent", cfg.DecayPercent)
	}

	return sched, nil
}
