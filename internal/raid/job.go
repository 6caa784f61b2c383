package raid

import (
	"context"
	"time"

	"github.com/argguild/epgpbot/internal/logger"
)

// RewardJob runs the reward tick of every due raid
type RewardJob struct {
	svc Service
	now func() time.Time
}

// NewRewardJob creates the scheduled raid reward job
func NewRewardJob(svc Service) *RewardJob {
	return &RewardJob{svc: svc, now: time.Now}
}

// Process runs one reward sweep
func (j *RewardJob) Process(ctx context.Context) error {
	processed, err := j.svc.ProcessDueRewards(ctx, j.now())
	if processed > 0 {
		logger.FromContext(ctx).Info(LogMsgTickProcessed, "raids", processed)
	}
	return err
}
