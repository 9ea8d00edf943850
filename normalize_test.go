package timetable

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	start, end, err := ParseTimeRange("14:00-15:00")
	require.NoError(t, err)
	assert.Equal(t, 840, start)
	assert.Equal(t, 900, end)

	start, end, err = ParseTimeRange("9:05-10:50")
	require.NoError(t, err)
	assert.Equal(t, 545, start)
	assert.Equal(t, 650, end)
}

func TestParseTimeRangeMalformed(t *testing.T) {
	for _, raw := range []string{"9h00-10h00", "14:00 - 15:00", "14:0-15:00", "", "14:00"} {
		_, _, err := ParseTimeRange(raw)
		require.Error(t, err, "expected %q to be rejected", raw)

		var malformed MalformedTimeRangeError
		assert.True(t, errors.As(err, &malformed))
	}
}

func TestParseTimeRangeRejectsInvertedRange(t *testing.T) {
	for _, raw := range []string{"15:00-14:00", "14:00-14:00"} {
		_, _, err := ParseTimeRange(raw)
		require.Error(t, err, "expected %q to be rejected", raw)

		var malformed MalformedTimeRangeError
		assert.True(t, errors.As(err, &malformed))
		assert.Equal(t, raw, malformed.Raw)
	}
}

func TestNormalizeBucketsAndDefaults(t *testing.T) {
	// 1/1/2024 was a Monday, 6/1/2024 a Saturday.
	records := []RawRecord{
		{Date: "1/1/2024", Time: "14:00-15:00", Subject: "Algebra", Room: "B203", Staff: "Dupont", Group: "G1", Category: "Cours"},
		{Date: "2/1/24", Time: "8:30-10:00"},
		{Date: "6/1/2024", Time: "9:00-10:00", Subject: "Weekend class"},
	}

	sched, err := Normalize(records, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, sched.ByDay["Monday"], 1)
	mon := sched.ByDay["Monday"][0]
	assert.Equal(t, 840, mon.StartMinutes)
	assert.Equal(t, 900, mon.EndMinutes)
	assert.Equal(t, 60, mon.DurationMinutes)
	assert.Equal(t, "Algebra", mon.Name)
	assert.Equal(t, -1, mon.SlotIndex)

	// Two-digit years resolve against 2000; missing fields get sentinels.
	require.Len(t, sched.ByDay["Tuesday"], 1)
	tue := sched.ByDay["Tuesday"][0]
	assert.Equal(t, DefaultName, tue.Name)
	assert.Equal(t, DefaultLocation, tue.Location)
	assert.Equal(t, DefaultStaff, tue.Staff)
	assert.Equal(t, DefaultGroup, tue.Group)
	assert.Equal(t, DefaultCategory, tue.Category)
	assert.Equal(t, "", tue.Remarks)

	// Saturday is outside the Monday-Friday set: filtered, not an error.
	assert.Equal(t, 2, sched.Len())
	for _, day := range sched.Days {
		assert.NotEqual(t, "Saturday", day)
	}
}

func TestNormalizeMalformedTimeAbortsBatch(t *testing.T) {
	records := []RawRecord{
		{Date: "1/1/2024", Time: "14:00-15:00", Subject: "kept otherwise"},
		{Date: "2/1/2024", Time: "9h00-10h00", Subject: "bad separator"},
	}
	sched, err := Normalize(records, DefaultOptions())
	assert.Nil(t, sched)
	require.Error(t, err)

	var malformed MalformedTimeRangeError
	assert.True(t, errors.As(err, &malformed))
	assert.Equal(t, "9h00-10h00", malformed.Raw)
}

func TestNormalizeUnparseableDateDropped(t *testing.T) {
	records := []RawRecord{
		{Date: "not a date", Time: "14:00-15:00"},
		{Date: "1/1", Time: "14:00-15:00"},
		{Date: "40/1/2024", Time: "14:00-15:00"},
	}
	sched, err := Normalize(records, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, sched.Len())
}

func TestNormalizeIdempotent(t *testing.T) {
	records := []RawRecord{
		{Date: "1/1/2024", Time: "14:00-15:00", Subject: "Algebra"},
		{Date: "3/1/2024", Time: "10:15-12:00", Subject: "Physics", Category: "TP"},
	}
	first, err := Normalize(records, DefaultOptions())
	require.NoError(t, err)
	second, err := Normalize(records, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeLocalizedDayNames(t *testing.T) {
	opts := DefaultOptions()
	opts.Weekdays = []string{"Lundi", "Mardi"}
	opts.DayNames = map[time.Weekday]string{
		time.Monday:  "Lundi",
		time.Tuesday: "Mardi",
	}

	records := []RawRecord{
		{Date: "1/1/2024", Time: "14:00-15:00", Subject: "Algebra"},
		// Wednesday has no configured label, so the record is filtered.
		{Date: "3/1/2024", Time: "10:00-11:00", Subject: "Physics"},
	}
	sched, err := Normalize(records, opts)
	require.NoError(t, err)

	assert.Equal(t, []string{"Lundi", "Mardi"}, sched.Days)
	require.Len(t, sched.ByDay["Lundi"], 1)
	assert.Equal(t, "Lundi", sched.ByDay["Lundi"][0].Day)
	assert.Equal(t, 1, sched.Len())
}
