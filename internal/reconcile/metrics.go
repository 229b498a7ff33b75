package reconcile

import (
	"sync/atomic"
	"time"
)

// Metrics tracks session statistics using atomic operations for thread-safety
type Metrics struct {
	OpsApplied           atomic.Int64
	OpsConfirmed         atomic.Int64
	OpsRolledBack        atomic.Int64
	OpsCancelled         atomic.Int64
	Retries              atomic.Int64
	CompensationFailures atomic.Int64
	StaleFetches         atomic.Int64
	StartTime            time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	OpsApplied           int64     `json:"ops_applied"`
	OpsConfirmed         int64     `json:"ops_confirmed"`
	OpsRolledBack        int64     `json:"ops_rolled_back"`
	OpsCancelled         int64     `json:"ops_cancelled"`
	Retries              int64     `json:"retries"`
	CompensationFailures int64     `json:"compensation_failures"`
	StaleFetches         int64     `json:"stale_fetches"`
	StartTime            time.Time `json:"start_time"`
	Uptime               string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		OpsApplied:           m.OpsApplied.Load(),
		OpsConfirmed:         m.OpsConfirmed.Load(),
		OpsRolledBack:        m.OpsRolledBack.Load(),
		OpsCancelled:         m.OpsCancelled.Load(),
		Retries:              m.Retries.Load(),
		CompensationFailures: m.CompensationFailures.Load(),
		StaleFetches:         m.StaleFetches.Load(),
		StartTime:            m.StartTime,
		Uptime:               time.Since(m.StartTime).String(),
	}
}
