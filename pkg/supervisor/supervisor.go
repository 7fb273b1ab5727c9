// Package supervisor restarts failed components with backoff and escalates
// when a component keeps crashing.
package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Restart policy: exponential backoff between restarts, capped; a run that
// survives healthyAfter resets the failure streak.
const (
	restartBackoffBase = time.Second
	restartBackoffMax  = 30 * time.Second
	healthyAfter       = time.Minute
)

// Component is a restartable unit of work. Run blocks until the component
// fails or ctx is cancelled; a nil error on a live ctx still counts as an
// exit and triggers a restart.
type Component struct {
	Name string
	Run  func(ctx context.Context) error
}

// Escalation reports a component that exhausted its restart budget.
type Escalation struct {
	Component string
	Failures  int
	LastErr   error
}

// Supervisor runs components and restarts them on failure.
type Supervisor struct {
	maxFailures int
	escalations chan Escalation
	wg          sync.WaitGroup
}

// New creates a Supervisor. maxFailures is the consecutive-failure count
// that triggers escalation instead of another restart.
func New(maxFailures int) *Supervisor {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	return &Supervisor{
		maxFailures: maxFailures,
		escalations: make(chan Escalation, 1),
	}
}

// Escalations delivers at most one escalation; the process is expected to
// exit on receipt.
func (s *Supervisor) Escalations() <-chan Escalation {
	return s.escalations
}

// Supervise launches the component's restart loop.
func (s *Supervisor) Supervise(ctx context.Context, c Component) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx, c)
	}()
}

// Wait blocks until all supervised loops have exited.
func (s *Supervisor) Wait() {
	s.wg.Wait()
}

func (s *Supervisor) runLoop(ctx context.Context, c Component) {
	log := slog.With("component", c.Name)
	failures := 0

	for {
		started := time.Now()
		err := runRecovered(ctx, c)
		if ctx.Err() != nil {
			return
		}

		if time.Since(started) >= healthyAfter {
			failures = 0
		}
		failures++

		if failures >= s.maxFailures {
			log.Error("Component exhausted restart budget, escalating",
				"failures", failures, "error", err)
			select {
			case s.escalations <- Escalation{Component: c.Name, Failures: failures, LastErr: err}:
			default:
			}
			return
		}

		delay := backoff(failures)
		log.Warn("Component exited, restarting", "failures", failures, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// runRecovered converts a panicking component into a failed run so the
// restart policy applies instead of the process dying.
func runRecovered(ctx context.Context, c Component) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("component %s panicked: %v", c.Name, r)
		}
	}()
	return c.Run(ctx)
}

func backoff(failures int) time.Duration {
	d := restartBackoffBase
	for i := 1; i < failures; i++ {
		d *= 2
		if d >= restartBackoffMax {
			return restartBackoffMax
		}
	}
	return d
}
