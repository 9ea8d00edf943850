// Package timetable lays out timed weekly events on a grid of fixed
// duration slots. Raw records are normalized into per-day events, the
// grid rows are generated from a fixed or data-driven window, and the
// assignment pass computes for every event the row it starts on and the
// rows its span covers. Rendering is left to consumers of Layout.
package timetable

// Build runs the whole pipeline: normalize the records, generate the slot
// grid and assign every event to its rows. Re-running it on the same
// input yields a structurally identical layout; concurrent runs against
// shared records need external synchronization since slot indexes are
// cached on the events.
func Build(records []RawRecord, opts Options) (*Schedule, *Layout, error) {
	opts = opts.Normalized()
	sched, err := Normalize(records, opts)
	if err != nil {
		return nil, nil, err
	}
	slots := GenerateSlots(sched, opts)
	return sched, Assign(sched, slots, opts), nil
}
