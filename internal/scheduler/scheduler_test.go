package scheduler_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vandev268/fastfood-server/internal/scheduler"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fireRecorder struct {
	mu    sync.Mutex
	fired []int64
	ch    chan int64
}

func newFireRecorder() *fireRecorder {
	return &fireRecorder{ch: make(chan int64, 16)}
}

func (r *fireRecorder) cancelOrder(ctx context.Context, orderID int64) error {
	r.mu.Lock()
	r.fired = append(r.fired, orderID)
	r.mu.Unlock()
	r.ch <- orderID
	return nil
}

func (r *fireRecorder) firedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fired)
}

func TestSchedule_FiresAfterDelay(t *testing.T) {
	rec := newFireRecorder()
	s := scheduler.NewCancelScheduler(10*time.Millisecond, rec.cancelOrder, testLogger())
	defer s.Stop()

	s.Schedule(1)
	assert.True(t, s.Pending(1))

	select {
	case id := <-rec.ch:
		assert.Equal(t, int64(1), id)
	case <-time.After(time.Second):
		t.Fatal("job never fired")
	}
	assert.False(t, s.Pending(1))
}

func TestCancel_PreventsFire(t *testing.T) {
	rec := newFireRecorder()
	s := scheduler.NewCancelScheduler(20*time.Millisecond, rec.cancelOrder, testLogger())
	defer s.Stop()

	s.Schedule(1)
	s.Cancel(1)
	assert.False(t, s.Pending(1))

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, rec.firedCount())
}

func TestCancel_UnknownOrderIsNoOp(t *testing.T) {
	rec := newFireRecorder()
	s := scheduler.NewCancelScheduler(time.Hour, rec.cancelOrder, testLogger())
	defer s.Stop()

	s.Cancel(99)
	s.Cancel(99)
}

func TestSchedule_DuplicateCollapses(t *testing.T) {
	rec := newFireRecorder()
	s := scheduler.NewCancelScheduler(15*time.Millisecond, rec.cancelOrder, testLogger())
	defer s.Stop()

	s.Schedule(1)
	s.Schedule(1)
	s.Schedule(1)

	select {
	case <-rec.ch:
	case <-time.After(time.Second):
		t.Fatal("job never fired")
	}

	// One job per order regardless of how often it was scheduled.
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, 1, rec.firedCount())
}

func TestStop_DropsPendingJobs(t *testing.T) {
	rec := newFireRecorder()
	s := scheduler.NewCancelScheduler(20*time.Millisecond, rec.cancelOrder, testLogger())

	s.Schedule(1)
	s.Schedule(2)
	s.Stop()

	assert.False(t, s.Pending(1))
	assert.False(t, s.Pending(2))

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, rec.firedCount())
}
