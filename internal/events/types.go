package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventDataChanged is sent after a service mutated the store directly
	EventDataChanged EventType = "data_changed"
	// EventWriteConfirmed is sent when every write of an optimistic operation landed
	EventWriteConfirmed EventType = "write_confirmed"
	// EventWriteFailed is sent when an optimistic operation was rolled back
	EventWriteFailed EventType = "write_failed"
	// EventStaleFetchDiscarded is diagnostic only and never shown to the user
	EventStaleFetchDiscarded EventType = "stale_fetch_discarded"
)

// Event represents a change notification
type Event struct {
	Type       EventType
	BoardID    string // For filtering - which board was modified, empty for global changes
	Op         string // Operation name, e.g. "move_task"
	Severity   Severity
	Message    string
	Timestamp  time.Time
	SequenceID int64 // Monotonically increasing, assigned on dispatch
}
