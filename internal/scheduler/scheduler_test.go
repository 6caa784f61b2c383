package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argguild/epgpbot/internal/metrics"
	"github.com/argguild/epgpbot/internal/testing/leaktest"
	"github.com/argguild/epgpbot/internal/worker"
)

func TestScheduler_RunsJobRepeatedly(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		sched, err := New(context.Background())
		require.NoError(t, err)

		var runs int32
		require.NoError(t, sched.Schedule("repeat", 10*time.Millisecond, worker.JobFunc(func(ctx context.Context) error {
			atomic.AddInt32(&runs, 1)
			return nil
		})))
		sched.Start()

		assert.Eventually(t, func() bool {
			return atomic.LoadInt32(&runs) >= 2
		}, time.Second, 5*time.Millisecond)

		require.NoError(t, sched.Stop())
	})
}

func TestScheduler_SkipsOverlappingRuns(t *testing.T) {
	sched, err := New(context.Background())
	require.NoError(t, err)

	var running, maxRunning int32
	require.NoError(t, sched.Schedule("slow", 5*time.Millisecond, worker.JobFunc(func(ctx context.Context) error {
		n := atomic.AddInt32(&running, 1)
		for {
			m := atomic.LoadInt32(&maxRunning)
			if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return nil
	})))
	sched.Start()

	time.Sleep(120 * time.Millisecond)
	require.NoError(t, sched.Stop())

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning), "a job never overlaps itself")
}

func TestScheduler_RecordsFailures(t *testing.T) {
	failed := metrics.ScheduledJobRuns.WithLabelValues("failing", metrics.JobStatusFailed)
	before := testutil.ToFloat64(failed)

	sched, err := New(context.Background())
	require.NoError(t, err)
	require.NoError(t, sched.Schedule("failing", 10*time.Millisecond, worker.JobFunc(func(ctx context.Context) error {
		return errors.New("boom")
	})))
	sched.Start()

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(failed) > before
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, sched.Stop())
}

func TestScheduler_StopCancelsJobContext(t *testing.T) {
	sched, err := New(context.Background())
	require.NoError(t, err)

	started := make(chan struct{}, 1)
	cancelled := make(chan struct{}, 1)
	require.NoError(t, sched.Schedule("blocking", 5*time.Millisecond, worker.JobFunc(func(ctx context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		<-ctx.Done()
		select {
		case cancelled <- struct{}{}:
		default:
		}
		return ctx.Err()
	})))
	sched.Start()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("job did not start")
	}
	require.NoError(t, sched.Stop())

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("job context was not cancelled")
	}
}
