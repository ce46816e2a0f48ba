package counter

import "time"

// Mode identifies which limit is active.
type Mode string

const (
	ModePrimary   Mode = "primary"
	ModeSecondary Mode = "secondary"
)

// EventType defines the type of Counter event.
type EventType string

const (
	EventStateChanged EventType = "state_changed"
)

// Reason names the operation that produced an event.
type Reason string

const (
	ReasonIncrement  Reason = "increment"
	ReasonToggleMode Reason = "toggle_mode"
	ReasonReset      Reason = "reset"
)

// Snapshot is a copy of the counter state.
type Snapshot struct {
	Count          int
	ActiveLimit    int
	PrimaryLimit   int
	SecondaryLimit int
	Mode           Mode
}

// Event represents a Counter update for observers.
type Event struct {
	Type     EventType
	Reason   Reason
	Snapshot Snapshot
	At       time.Time
}
