package timetable

import "time"

// SpanPolicy selects how the row span of an event is derived from its
// duration.
type SpanPolicy int

const (
	// SpanMinimum clamps the ceiling of duration/interval to MinRowSpan.
	SpanMinimum SpanPolicy = iota
	// SpanRaw keeps the raw ceiling with no minimum enforced.
	SpanRaw
)

// WindowPolicy selects how the grid time window is determined.
type WindowPolicy int

const (
	// WindowFromEvents derives the window from the min/max event bounds,
	// rounded outward to the interval. With zero events the fixed window
	// is used as fallback.
	WindowFromEvents WindowPolicy = iota
	// WindowFixed always uses WindowStart/WindowEnd.
	WindowFixed
)

// Options configures the whole pipeline. The zero value is not usable
// directly; DefaultOptions or Normalized fill in the defaults.
type Options struct {
	// Weekdays is both the inclusion filter and the column order.
	Weekdays []string
	// DayNames maps calendar weekdays to the configured day names. Only
	// day names are localizable; everything else stays as-is.
	DayNames map[time.Weekday]string

	// TimeInterval is the slot length in minutes.
	TimeInterval int
	// MinRowSpan is the minimum rows per event under SpanMinimum.
	MinRowSpan int
	Span       SpanPolicy

	Window WindowPolicy
	// WindowStart/WindowEnd are minute offsets from midnight. They bound
	// the fixed window and serve as the zero-event fallback.
	WindowStart int
	WindowEnd   int

	// Presentation toggles, passed through to the renderer untouched.
	ShowIcons    bool
	ModalEnabled bool
	ShowProf     bool
	ShowClasse   bool
}

// DefaultDayNames are the English labels used when no localization is
// configured.
var DefaultDayNames = map[time.Weekday]string{
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
	time.Sunday:    "Sunday",
}

func DefaultOptions() Options {
	return Options{
		Weekdays:     []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		DayNames:     DefaultDayNames,
		TimeInterval: 15,
		MinRowSpan:   2,
		Span:         SpanMinimum,
		Window:       WindowFromEvents,
		WindowStart:  8 * 60,
		WindowEnd:    18 * 60,
		ShowIcons:    true,
		ModalEnabled: true,
		ShowProf:     true,
		ShowClasse:   true,
	}
}

// Normalized returns a copy with zero values replaced by defaults so a
// partially filled Options still behaves.
func (o Options) Normalized() Options {
	def := DefaultOptions()
	if len(o.Weekdays) == 0 {
		o.Weekdays = def.Weekdays
	}
	if o.DayNames == nil {
		o.DayNames = def.DayNames
	}
	if o.TimeInterval <= 0 {
		o.TimeInterval = def.TimeInterval
	}
	if o.MinRowSpan <= 0 {
		o.MinRowSpan = def.MinRowSpan
	}
	if o.WindowEnd <= o.WindowStart {
		o.WindowStart = def.WindowStart
		o.WindowEnd = def.WindowEnd
	}
	return o
}
