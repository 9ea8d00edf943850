package timetable

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timeRangeRx matches "H:MM-H:MM" with 1-2 digit hours and 2 digit minutes.
var timeRangeRx = regexp.MustCompile(`^(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})$`)

// MalformedTimeRangeError is returned when a record's time range does not
// match the H:MM-H:MM pattern, or when it is inverted or empty. A
// malformed time cannot be defaulted, so normalization fails as a whole
// instead of dropping the record.
type MalformedTimeRangeError struct {
	Raw string
}

func (e MalformedTimeRangeError) Error() string {
	return fmt.Sprintf("malformed time range %q, expected H:MM-H:MM with end after start", e.Raw)
}

// Normalize turns raw records into a per-day Schedule.
//
// Records whose date resolves to a weekday outside the configured set are
// silently dropped; that is the filtering policy for excluding weekends,
// not a failure. Records with an unparseable date are dropped the same
// way. A malformed time range aborts the whole batch.
//
// Buckets are not sorted here; ordering is Assign's job.
func Normalize(records []RawRecord, opts Options) (*Schedule, error) {
	opts = opts.Normalized()

	sched := NewSchedule(opts.Weekdays)
	for _, rec := range records {
		day, ok := resolveDay(rec.Date, opts)
		if !ok {
			continue
		}
		start, end, err := ParseTimeRange(rec.Time)
		if err != nil {
			return nil, err
		}
		sched.Add(&Event{
			Day:             day,
			StartMinutes:    start,
			EndMinutes:      end,
			DurationMinutes: end - start,
			Name:            defaulted(rec.Subject, DefaultName),
			Location:        defaulted(rec.Room, DefaultLocation),
			Staff:           defaulted(rec.Staff, DefaultStaff),
			Group:           defaulted(rec.Group, DefaultGroup),
			Category:        defaulted(rec.Category, DefaultCategory),
			Remarks:         strings.TrimSpace(rec.Remarks),
			SlotIndex:       -1,
		})
	}
	return sched, nil
}

// ParseTimeRange parses "H:MM-H:MM" into start/end minute offsets from
// midnight. The end must lie after the start; inverted or empty ranges
// are rejected since the rest of the pipeline assumes positive durations.
func ParseTimeRange(s string) (int, int, error) {
	m := timeRangeRx.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, MalformedTimeRangeError{Raw: s}
	}
	sh, _ := strconv.Atoi(m[1])
	sm, _ := strconv.Atoi(m[2])
	eh, _ := strconv.Atoi(m[3])
	em, _ := strconv.Atoi(m[4])
	start, end := sh*60+sm, eh*60+em
	if end <= start {
		return 0, 0, MalformedTimeRangeError{Raw: s}
	}
	return start, end, nil
}

// resolveDay maps a d/m/y date string onto a configured day name. The
// second return is false when the date is unparseable or its weekday is
// not part of the configured set.
func resolveDay(date string, opts Options) (string, bool) {
	parts := strings.Split(strings.TrimSpace(date), "/")
	if len(parts) != 3 {
		return "", false
	}
	d, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	if d < 1 || d > 31 || m < 1 || m > 12 {
		return "", false
	}
	if y < 100 {
		y += 2000
	}
	wd := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).Weekday()
	name, ok := opts.DayNames[wd]
	if !ok {
		return "", false
	}
	for _, configured := range opts.Weekdays {
		if configured == name {
			return name, true
		}
	}
	return "", false
}

func defaulted(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}
