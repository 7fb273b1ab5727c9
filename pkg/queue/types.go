// Package queue runs the analysis and dispatch worker pools over the
// database-backed post queues. Claims use FOR UPDATE SKIP LOCKED, so any
// number of pods can run the same pools concurrently.
package queue

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// Sentinel results of a poll cycle.
var (
	// ErrNoWorkAvailable means the claim found no eligible posts.
	ErrNoWorkAvailable = errors.New("no work available")

	// ErrCostCeilingReached means the daily spend ceiling is blocking
	// new analysis claims until midnight.
	ErrCostCeilingReached = errors.New("daily cost ceiling reached")
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID            string       `json:"id"`
	Status        WorkerStatus `json:"status"`
	CurrentPostID string       `json:"current_post_id,omitempty"`
	Processed     int          `json:"processed"`
	LastActivity  time.Time    `json:"last_activity"`
}

// PoolHealth is a pool's aggregate health snapshot.
type PoolHealth struct {
	Name          string         `json:"name"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// retryBackoff computes the delay before attempt N+1 after N failed
// attempts: base doubled per attempt, capped at max, with ±25% jitter so
// retries from one burst don't land together.
func retryBackoff(base, max time.Duration, attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := float64(base) * math.Pow(2, float64(attempts-1))
	if d > float64(max) {
		d = float64(max)
	}
	jitter := 0.75 + rand.Float64()*0.5
	return time.Duration(d * jitter)
}

// workerRestartDelay is the pause before a worker resumes polling after a
// failed or panicked cycle: 1s doubled per consecutive failure, capped 30s.
func workerRestartDelay(failures int) time.Duration {
	return retryBackoff(time.Second, 30*time.Second, failures)
}

// pollInterval returns base with ±jitter applied.
func pollInterval(base, jitter time.Duration) time.Duration {
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
