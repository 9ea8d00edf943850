package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSchedule(t *testing.T, records []RawRecord, opts Options) *Schedule {
	t.Helper()
	sched, err := Normalize(records, opts)
	require.NoError(t, err)
	return sched
}

func TestGenerateSlotsFromEvents(t *testing.T) {
	opts := DefaultOptions()
	opts.TimeInterval = 30

	sched := mustSchedule(t, []RawRecord{
		{Date: "1/1/2024", Time: "9:05-10:50"},
	}, opts)

	slots := GenerateSlots(sched, opts)
	// Bounds round outward to the interval: [09:00, 11:00).
	require.Len(t, slots, 4)
	assert.Equal(t, 540, slots[0].Minutes)
	assert.Equal(t, "09:00", slots[0].Label)
	assert.Equal(t, 630, slots[3].Minutes)
	assert.Equal(t, "10:30", slots[3].Label)
}

func TestGenerateSlotsEmptyScheduleFallback(t *testing.T) {
	opts := DefaultOptions()
	sched := NewSchedule(opts.Weekdays)

	slots := GenerateSlots(sched, opts)
	// Deterministic fallback: the fixed 08:00-18:00 window.
	require.Len(t, slots, 40)
	assert.Equal(t, 480, slots[0].Minutes)
	assert.Equal(t, 1065, slots[39].Minutes)
}

func TestGenerateSlotsFixedWindowIgnoresData(t *testing.T) {
	opts := DefaultOptions()
	opts.Window = WindowFixed
	opts.WindowStart = 7 * 60
	opts.WindowEnd = 9 * 60

	sched := mustSchedule(t, []RawRecord{
		{Date: "1/1/2024", Time: "14:00-15:00"},
	}, opts)

	slots := GenerateSlots(sched, opts)
	require.Len(t, slots, 8)
	assert.Equal(t, 420, slots[0].Minutes)
	assert.Equal(t, 525, slots[7].Minutes)
}

func TestSlotBoundaryFlags(t *testing.T) {
	opts := DefaultOptions()
	opts.Window = WindowFixed
	opts.WindowStart = 480
	opts.WindowEnd = 540

	slots := GenerateSlots(NewSchedule(opts.Weekdays), opts)
	require.Len(t, slots, 4)

	assert.True(t, slots[0].IsHour)
	assert.False(t, slots[0].IsHalfHour)
	assert.False(t, slots[1].IsHour) // 08:15
	assert.False(t, slots[1].IsHalfHour)
	assert.True(t, slots[2].IsHalfHour) // 08:30
	assert.False(t, slots[2].IsHour)
}
