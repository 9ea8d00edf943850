package web

import (
	timetable "github.com/shadowforce78/TimeTableLib"
)

// GridView is the template binding for the weekly grid page. It is built
// from a Layout; templates never touch the layout structures directly.
type GridView struct {
	Days []string
	Rows []Row

	ShowIcons    bool
	ModalEnabled bool
	ShowProf     bool
	ShowClasse   bool
}

// Row is one slot row. Cells only contains the cells that must actually
// be emitted: columns covered by a span from an earlier row are skipped
// entirely, which is what realizes the row-spanning effect.
type Row struct {
	Slot  timetable.TimeSlot
	Cells []Cell
}

// Cell is one emitted day cell. An empty cell has no placements. More
// than one placement means overlapping events rendered side by side
// inside the same cell, never merged.
type Cell struct {
	Day        string
	RowSpan    int
	Placements []PlacementView
}

func (c Cell) Empty() bool { return len(c.Placements) == 0 }

// PlacementView wraps a placement with its column index, which the detail
// links are keyed on.
type PlacementView struct {
	Index   int
	Event   *timetable.Event
	RowSpan int
	Class   string
}

// BuildGridView flattens a layout into rows of emitted cells.
func BuildGridView(l *timetable.Layout, opts timetable.Options) GridView {
	view := GridView{
		Days:         l.Days,
		Rows:         make([]Row, 0, len(l.Slots)),
		ShowIcons:    opts.ShowIcons,
		ModalEnabled: opts.ModalEnabled,
		ShowProf:     opts.ShowProf,
		ShowClasse:   opts.ShowClasse,
	}

	// Column indexes per (day, row), so detail links stay stable.
	starts := make(map[string]map[int][]PlacementView, len(l.Days))
	for _, day := range l.Days {
		rows := make(map[int][]PlacementView)
		for i, p := range l.Columns[day] {
			rows[p.SlotIndex] = append(rows[p.SlotIndex], PlacementView{
				Index:   i,
				Event:   p.Event,
				RowSpan: p.RowSpan,
				Class:   timetable.CategoryClass(p.Event.Category),
			})
		}
		starts[day] = rows
	}

	for r, slot := range l.Slots {
		row := Row{Slot: slot, Cells: make([]Cell, 0, len(l.Days))}
		for _, day := range l.Days {
			if l.IsOccupied(day, r) {
				continue
			}
			cell := Cell{Day: day, RowSpan: 1}
			for _, pv := range starts[day][r] {
				cell.Placements = append(cell.Placements, pv)
				// Siblings share the cell; the td spans as far as the
				// longest of them.
				if pv.RowSpan > cell.RowSpan {
					cell.RowSpan = pv.RowSpan
				}
			}
			row.Cells = append(row.Cells, cell)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// DetailView is the template binding for the single-event view.
type DetailView struct {
	Event      *timetable.Event
	Class      string
	ShowProf   bool
	ShowClasse bool
}
