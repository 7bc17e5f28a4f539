// Package scheduler holds the deferred auto-cancellation job queue: one
// pending job per unpaid asynchronous-gateway order, fired after a
// configurable delay unless payment succeeds first.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// CancelOrderFunc is the compensating routine invoked when a job fires.
// It must tolerate the order having reached a terminal or paid state.
type CancelOrderFunc func(ctx context.Context, orderID int64) error

const fireTimeout = 30 * time.Second

// CancelScheduler keys every job deterministically by order id, so a
// duplicate Schedule collapses and Cancel can remove a job it never saw
// scheduled.
type CancelScheduler struct {
	mu          sync.Mutex
	jobs        map[string]*time.Timer
	delay       time.Duration
	cancelOrder CancelOrderFunc
	logger      *slog.Logger
}

func NewCancelScheduler(delay time.Duration, cancelOrder CancelOrderFunc, logger *slog.Logger) *CancelScheduler {
	return &CancelScheduler{
		jobs:        make(map[string]*time.Timer),
		delay:       delay,
		cancelOrder: cancelOrder,
		logger:      logger,
	}
}

func jobKey(orderID int64) string {
	return fmt.Sprintf("order:%d:cancel", orderID)
}

// Schedule enqueues the auto-cancel job for an order. Scheduling the same
// order again is a no-op; the original delay keeps running.
func (s *CancelScheduler) Schedule(orderID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := jobKey(orderID)
	if _, ok := s.jobs[key]; ok {
		return
	}
	s.jobs[key] = time.AfterFunc(s.delay, func() {
		s.fire(orderID)
	})
	s.logger.Info("cancel job scheduled", "order_id", orderID, "delay", s.delay)
}

// Cancel removes the pending job. Calling it when no job exists (payment
// already settled, cash order, double cancel) is a no-op.
func (s *CancelScheduler) Cancel(orderID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := jobKey(orderID)
	t, ok := s.jobs[key]
	if !ok {
		return
	}
	t.Stop()
	delete(s.jobs, key)
	s.logger.Info("cancel job removed", "order_id", orderID)
}

func (s *CancelScheduler) fire(orderID int64) {
	s.mu.Lock()
	delete(s.jobs, jobKey(orderID))
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), fireTimeout)
	defer cancel()

	if err := s.cancelOrder(ctx, orderID); err != nil {
		s.logger.Error("cancel job failed", "order_id", orderID, "error", err)
		return
	}
	s.logger.Info("cancel job fired", "order_id", orderID)
}

// Stop drops every pending job. Used on shutdown.
func (s *CancelScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, t := range s.jobs {
		t.Stop()
		delete(s.jobs, key)
	}
}

// Pending reports whether a job is queued for the order.
func (s *CancelScheduler) Pending(orderID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.jobs[jobKey(orderID)]
	return ok
}
