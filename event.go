package timetable

import (
	"fmt"
	"strings"
)

// Sentinel display values substituted when the raw record omits a field.
const (
	DefaultName     = "Unspecified"
	DefaultLocation = "TBD"
	DefaultStaff    = "N/A"
	DefaultGroup    = "All"
	DefaultCategory = "Other"
)

// RawRecord is a single untrusted input record. All fields are free-text
// strings coming straight from the feed and any of them may be empty.
type RawRecord struct {
	Date     string `json:"date" yaml:"date"`
	Time     string `json:"time" yaml:"time"`
	Subject  string `json:"subject" yaml:"subject"`
	Staff    string `json:"staff" yaml:"staff"`
	Group    string `json:"group" yaml:"group"`
	Room     string `json:"room" yaml:"room"`
	Category string `json:"category" yaml:"category"`
	Remarks  string `json:"remarks" yaml:"remarks"`
}

// Event is the canonical unit of the timetable. Times are minute offsets
// from midnight; an event always belongs to exactly one day bucket.
type Event struct {
	Day             string
	StartMinutes    int
	EndMinutes      int
	DurationMinutes int

	Name     string
	Location string
	Staff    string
	Group    string
	Category string
	Remarks  string

	// SlotIndex is the grid row the event starts on. Assign computes it
	// once per layout pass; it stays -1 until then.
	SlotIndex int
}

type Events []*Event

// Schedule groups events per weekday. Days keeps the configured column
// order; ByDay holds the buckets keyed by day name.
type Schedule struct {
	Days  []string
	ByDay map[string]Events
}

func NewSchedule(days []string) *Schedule {
	s := Schedule{
		Days:  make([]string, len(days)),
		ByDay: make(map[string]Events, len(days)),
	}
	copy(s.Days, days)
	for _, d := range days {
		s.ByDay[d] = make(Events, 0)
	}
	return &s
}

// Add appends ev to its day bucket. Days outside the configured set are
// ignored.
func (s *Schedule) Add(ev *Event) {
	if _, ok := s.ByDay[ev.Day]; !ok {
		return
	}
	s.ByDay[ev.Day] = append(s.ByDay[ev.Day], ev)
}

// Len returns the total number of events across all days.
func (s *Schedule) Len() int {
	n := 0
	for _, d := range s.Days {
		n += len(s.ByDay[d])
	}
	return n
}

// StartLabel and EndLabel format the minute offsets as HH:MM for display.
func (e Event) StartLabel() string { return minutesLabel(e.StartMinutes) }
func (e Event) EndLabel() string   { return minutesLabel(e.EndMinutes) }

func (e Event) String() string {
	return e.GoString()
}

func (e Event) GoString() string {
	return fmt.Sprintf("<%s:%s @ %s %s-%s//%dm>",
		e.Category, e.Name, e.Day,
		minutesLabel(e.StartMinutes), minutesLabel(e.EndMinutes),
		e.DurationMinutes)
}

func (e Events) GoString() string {
	ss := make([]string, len(e))
	for i, ev := range e {
		ss[i] = ev.GoString()
	}
	return fmt.Sprintf("Events[%d]:\n\t%s\n", len(e), strings.Join(ss, "\n\t"))
}

func minutesLabel(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
