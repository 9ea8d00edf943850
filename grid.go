package timetable

// TimeSlot is one fixed-width grid row. The boundary flags exist purely
// for presentation styling.
type TimeSlot struct {
	Label      string `json:"label"`
	Minutes    int    `json:"minutes"`
	IsHour     bool   `json:"is_hour"`
	IsHalfHour bool   `json:"is_half_hour"`
}

// GenerateSlots produces the ordered slot sequence covering the grid
// window, stepping by the configured interval.
//
// Under WindowFromEvents the window is floor(min start)..ceil(max end)
// rounded to the interval, taken across all days. A schedule with zero
// events falls back to the fixed WindowStart/WindowEnd bounds so the
// result is always a deterministic, non-empty grid.
func GenerateSlots(sched *Schedule, opts Options) []TimeSlot {
	opts = opts.Normalized()

	start, end := opts.WindowStart, opts.WindowEnd
	if opts.Window == WindowFromEvents && sched != nil && sched.Len() > 0 {
		lo, hi := eventBounds(sched)
		iv := opts.TimeInterval
		start = (lo / iv) * iv
		end = ((hi + iv - 1) / iv) * iv
	}

	slots := make([]TimeSlot, 0, (end-start)/opts.TimeInterval)
	for m := start; m < end; m += opts.TimeInterval {
		slots = append(slots, TimeSlot{
			Label:      minutesLabel(m),
			Minutes:    m,
			IsHour:     m%60 == 0,
			IsHalfHour: m%60 == 30,
		})
	}
	return slots
}

func eventBounds(sched *Schedule) (int, int) {
	lo, hi := -1, -1
	for _, day := range sched.Days {
		for _, ev := range sched.ByDay[day] {
			if lo < 0 || ev.StartMinutes < lo {
				lo = ev.StartMinutes
			}
			if ev.EndMinutes > hi {
				hi = ev.EndMinutes
			}
		}
	}
	return lo, hi
}
