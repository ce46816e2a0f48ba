package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicount/internal/core/model"
)

func newCounter(t *testing.T, primary, secondary int) *Counter {
	t.Helper()
	counter, err := New(model.CounterConfig{PrimaryLimit: primary, SecondaryLimit: secondary})
	require.NoError(t, err)
	return counter
}

func TestNewRejectsInvalidLimits(t *testing.T) {
	tests := []struct {
		name      string
		primary   int
		secondary int
	}{
		{name: "zero primary", primary: 0, secondary: 3},
		{name: "negative secondary", primary: 2, secondary: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(model.CounterConfig{PrimaryLimit: tc.primary, SecondaryLimit: tc.secondary})
			assert.ErrorIs(t, err, ErrInvalidLimit)
		})
	}
}

func TestInitialState(t *testing.T) {
	counter := newCounter(t, 2, 3)
	snapshot := counter.Snapshot()

	assert.Equal(t, 1, snapshot.Count)
	assert.Equal(t, 2, snapshot.ActiveLimit)
	assert.Equal(t, ModePrimary, snapshot.Mode)
	assert.Equal(t, "1", counter.IndicatorLabel())
}

func TestScenarioWrapAndToggle(t *testing.T) {
	counter := newCounter(t, 2, 3)

	assert.Equal(t, 2, counter.Increment().Count)
	assert.Equal(t, 1, counter.Increment().Count)

	toggled := counter.ToggleMode()
	assert.Equal(t, ModeSecondary, toggled.Mode)
	assert.Equal(t, 1, toggled.Count)
	assert.Equal(t, 3, toggled.ActiveLimit)
	assert.Equal(t, "2", counter.IndicatorLabel())

	counter.Increment()
	counter.Increment()
	assert.Equal(t, 1, counter.Increment().Count)
}

func TestIncrementIsCyclic(t *testing.T) {
	for _, limit := range []int{1, 2, 5, 10} {
		counter := newCounter(t, limit, limit+1)
		for start := 1; start <= limit; start++ {
			before := counter.Snapshot().Count
			for i := 0; i < limit; i++ {
				snapshot := counter.Increment()
				require.GreaterOrEqual(t, snapshot.Count, 1)
				require.LessOrEqual(t, snapshot.Count, snapshot.ActiveLimit)
			}
			assert.Equal(t, before, counter.Snapshot().Count, "limit %d", limit)
			counter.Increment()
		}
	}
}

func TestToggleModeAlwaysResetsCount(t *testing.T) {
	counter := newCounter(t, 4, 6)
	for i := 0; i < 3; i++ {
		counter.Increment()
	}
	require.Equal(t, 4, counter.Snapshot().Count)

	assert.Equal(t, 1, counter.ToggleMode().Count)
	counter.Increment()
	assert.Equal(t, 1, counter.ToggleMode().Count)
}

func TestToggleModeTwiceRestoresMode(t *testing.T) {
	counter := newCounter(t, 2, 5)
	counter.Increment()
	original := counter.Snapshot()

	counter.ToggleMode()
	restored := counter.ToggleMode()

	assert.Equal(t, original.Mode, restored.Mode)
	assert.Equal(t, original.ActiveLimit, restored.ActiveLimit)
	assert.Equal(t, 1, restored.Count)
}

func TestEqualLimitsStayPrimary(t *testing.T) {
	counter := newCounter(t, 3, 3)
	snapshot := counter.ToggleMode()

	assert.Equal(t, ModePrimary, snapshot.Mode)
	assert.Equal(t, "1", snapshot.IndicatorLabel())
}

func TestIndicatorLabelUnknownLimit(t *testing.T) {
	snapshot := Snapshot{Count: 1, ActiveLimit: 7, PrimaryLimit: 2, SecondaryLimit: 3}
	assert.Equal(t, "", snapshot.IndicatorLabel())
}

func TestResetKeepsMode(t *testing.T) {
	counter := newCounter(t, 2, 4)
	counter.ToggleMode()
	counter.Increment()
	counter.Increment()

	snapshot := counter.Reset()
	assert.Equal(t, 1, snapshot.Count)
	assert.Equal(t, ModeSecondary, snapshot.Mode)
}

func TestSubscribersReceiveEveryMutation(t *testing.T) {
	counter := newCounter(t, 2, 3)
	events := counter.Subscribe(4)

	counter.Increment()
	counter.ToggleMode()
	counter.Reset()
	counter.Close()

	var reasons []Reason
	for event := range events {
		assert.Equal(t, EventStateChanged, event.Type)
		reasons = append(reasons, event.Reason)
	}
	assert.Equal(t, []Reason{ReasonIncrement, ReasonToggleMode, ReasonReset}, reasons)
}

func TestFullSubscriberDoesNotBlock(t *testing.T) {
	counter := newCounter(t, 5, 3)
	events := counter.Subscribe(1)

	counter.Increment()
	counter.Increment()
	counter.Increment()

	event := <-events
	assert.Equal(t, 2, event.Snapshot.Count)
	assert.Equal(t, 4, counter.Snapshot().Count)
}
