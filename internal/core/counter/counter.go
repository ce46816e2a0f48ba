package counter

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"aicount/internal/core/model"
)

// ErrInvalidLimit indicates a limit below one.
var ErrInvalidLimit = errors.New("limit must be at least 1")

// Counter is a two-mode wraparound counter.
//
// The count always stays within [1, active limit]. Increment wraps back to 1
// and switching modes restarts the count, so the two limits never share
// partial progress.
type Counter struct {
	mu     sync.Mutex
	config model.CounterConfig
	count  int
	active int
	events []chan Event
}

// New creates a Counter in primary mode with the count at 1.
func New(config model.CounterConfig) (*Counter, error) {
	if config.PrimaryLimit < 1 {
		return nil, fmt.Errorf("primary limit %d: %w", config.PrimaryLimit, ErrInvalidLimit)
	}
	if config.SecondaryLimit < 1 {
		return nil, fmt.Errorf("secondary limit %d: %w", config.SecondaryLimit, ErrInvalidLimit)
	}

	return &Counter{
		config: config,
		count:  1,
		active: config.PrimaryLimit,
	}, nil
}

// Subscribe registers a new observer channel.
func (counter *Counter) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	counter.mu.Lock()
	counter.events = append(counter.events, ch)
	counter.mu.Unlock()
	return ch
}

// Close closes all observer channels.
func (counter *Counter) Close() {
	counter.mu.Lock()
	events := counter.events
	counter.events = nil
	counter.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Increment advances the count, wrapping to 1 past the active limit.
func (counter *Counter) Increment() Snapshot {
	counter.mu.Lock()
	defer counter.mu.Unlock()

	counter.count++
	if counter.count > counter.active {
		counter.count = 1
	}
	return counter.changedLocked(ReasonIncrement)
}

// ToggleMode switches to the other limit and restarts the count.
func (counter *Counter) ToggleMode() Snapshot {
	counter.mu.Lock()
	defer counter.mu.Unlock()

	if counter.active == counter.config.PrimaryLimit {
		counter.active = counter.config.SecondaryLimit
	} else {
		counter.active = counter.config.PrimaryLimit
	}
	counter.count = 1
	return counter.changedLocked(ReasonToggleMode)
}

// Reset restarts the count without changing mode.
func (counter *Counter) Reset() Snapshot {
	counter.mu.Lock()
	defer counter.mu.Unlock()

	counter.count = 1
	return counter.changedLocked(ReasonReset)
}

// IndicatorLabel returns "1" or "2" for the active mode.
func (counter *Counter) IndicatorLabel() string {
	return counter.Snapshot().IndicatorLabel()
}

// Snapshot returns the current state.
func (counter *Counter) Snapshot() Snapshot {
	counter.mu.Lock()
	defer counter.mu.Unlock()
	return counter.snapshotLocked()
}

// IndicatorLabel returns "1" when the primary limit is active, "2" when the
// secondary one is, and "" otherwise.
func (snapshot Snapshot) IndicatorLabel() string {
	switch snapshot.ActiveLimit {
	case snapshot.PrimaryLimit:
		return "1"
	case snapshot.SecondaryLimit:
		return "2"
	default:
		return ""
	}
}

func (counter *Counter) snapshotLocked() Snapshot {
	mode := ModeSecondary
	if counter.active == counter.config.PrimaryLimit {
		mode = ModePrimary
	}
	return Snapshot{
		Count:          counter.count,
		ActiveLimit:    counter.active,
		PrimaryLimit:   counter.config.PrimaryLimit,
		SecondaryLimit: counter.config.SecondaryLimit,
		Mode:           mode,
	}
}

func (counter *Counter) changedLocked(reason Reason) Snapshot {
	snapshot := counter.snapshotLocked()
	counter.emitLocked(Event{
		Type:     EventStateChanged,
		Reason:   reason,
		Snapshot: snapshot,
		At:       time.Now(),
	})
	return snapshot
}

// Sends never block; a full subscriber misses the event but still has an
// earlier one pending.
func (counter *Counter) emitLocked(event Event) {
	for _, ch := range counter.events {
		select {
		case ch <- event:
		default:
		}
	}
}
