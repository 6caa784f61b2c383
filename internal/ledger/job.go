package ledger

import (
	"context"
)

// DecayJob applies the periodic decay to every tracked bucket
type DecayJob struct {
	svc     Service
	percent int64
}

// NewDecayJob creates the scheduled decay job
func NewDecayJob(svc Service, percent int64) *DecayJob {
	return &DecayJob{svc: svc, percent: percent}
}

// Process runs one decay sweep
func (j *DecayJob) Process(ctx context.Context) error {
	_, err := j.svc.DecayEverything(ctx, j.percent)
	return err
}
