package timetable

import "sort"

// Placement is one event laid onto the grid: the row it starts on and the
// number of consecutive rows it covers.
type Placement struct {
	Event     *Event `json:"event"`
	SlotIndex int    `json:"slot_index"`
	RowSpan   int    `json:"row_span"`
}

// Layout is the full assignment output: pure data, no rendering concerns.
// Columns holds per-day placements in ascending start order; Occupied
// marks the (day, row) cells covered by an earlier placement's span,
// which the renderer must skip.
type Layout struct {
	Slots    []TimeSlot             `json:"slots"`
	Days     []string               `json:"days"`
	Columns  map[string][]Placement `json:"columns"`
	Occupied map[string][]bool      `json:"occupied"`
	Interval int                    `json:"interval"`
}

// Assign maps every event of the schedule onto the slot grid.
//
// Within each day events are sorted by start time with a stable sort, so
// ties keep their input order. The slot index is the first slot whose
// window contains the event start, clamped to the grid edges for events
// falling outside the window. The row span is the duration ceiling in
// intervals, optionally clamped to the configured minimum.
//
// Two events sharing a slot index in the same day are both emitted as
// sibling placements; the engine neither merges nor rejects overlaps.
// Assign assumes normalized input and cannot fail.
func Assign(sched *Schedule, slots []TimeSlot, opts Options) *Layout {
	opts = opts.Normalized()

	l := Layout{
		Slots:    slots,
		Days:     make([]string, len(sched.Days)),
		Columns:  make(map[string][]Placement, len(sched.Days)),
		Occupied: make(map[string][]bool, len(sched.Days)),
		Interval: opts.TimeInterval,
	}
	copy(l.Days, sched.Days)

	for _, day := range sched.Days {
		bucket := sched.ByDay[day]
		events := make(Events, len(bucket))
		copy(events, bucket)
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].StartMinutes < events[j].StartMinutes
		})

		column := make([]Placement, 0, len(events))
		occupied := make([]bool, len(slots))
		for _, ev := range events {
			idx := slotIndexFor(ev.StartMinutes, slots, opts.TimeInterval)
			span := rowSpan(ev.DurationMinutes, opts)
			ev.SlotIndex = idx

			for r := idx + 1; r < idx+span && r < len(slots); r++ {
				occupied[r] = true
			}
			column = append(column, Placement{Event: ev, SlotIndex: idx, RowSpan: span})
		}
		l.Columns[day] = column
		l.Occupied[day] = occupied
	}
	return &l
}

// IsOccupied reports whether the renderer must skip (day, row) because an
// earlier placement spans over it.
func (l *Layout) IsOccupied(day string, row int) bool {
	occ := l.Occupied[day]
	return row >= 0 && row < len(occ) && occ[row]
}

// At returns the placements starting exactly at (day, row). More than one
// placement means overlapping events rendered side by side.
func (l *Layout) At(day string, row int) []Placement {
	var out []Placement
	for _, p := range l.Columns[day] {
		if p.SlotIndex == row {
			out = append(out, p)
		}
	}
	return out
}

func slotIndexFor(start int, slots []TimeSlot, interval int) int {
	if len(slots) == 0 {
		return 0
	}
	if start < slots[0].Minutes {
		return 0
	}
	idx := (start - slots[0].Minutes) / interval
	if idx > len(slots)-1 {
		return len(slots) - 1
	}
	return idx
}

func rowSpan(duration int, opts Options) int {
	span := (duration + opts.TimeInterval - 1) / opts.TimeInterval
	if span < 1 {
		span = 1
	}
	if opts.Span == SpanMinimum && span < opts.MinRowSpan {
		span = opts.MinRowSpan
	}
	return span
}
