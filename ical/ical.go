// Package ical exports a normalized schedule as an iCalendar feed. Since
// the timetable is weekly, events are pinned to concrete dates inside the
// current ISO week according to their day column.
package ical

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/soh335/ical"

	timetable "github.com/shadowforce78/TimeTableLib"
)

// BuildCalendar renders the schedule as a VCALENDAR anchored to the week
// containing ref. Day columns map to dates by their configured order,
// starting from the Monday of that week.
func BuildCalendar(sched *timetable.Schedule, version string, ref time.Time) *ical.VCalendar {
	cal := ical.NewBasicVCalendar()
	cal.PRODID = fmt.Sprintf("-//TimeTableLib//WEEKLY-GRID//EN/%s", version)
	cal.VERSION = "2.0"

	name := "Weekly timetable"
	cal.NAME = name
	cal.X_WR_CALNAME = name
	cal.DESCRIPTION = name
	cal.X_WR_CALDESC = name

	tz := ref.Location().String()
	cal.TIMEZONE_ID = tz
	cal.X_WR_TIMEZONE = tz

	cal.REFRESH_INTERVAL = "PT1H"
	cal.X_PUBLISHED_TTL = "PT1H"
	cal.CALSCALE = "GREGORIAN"
	cal.METHOD = "PUBLISH"

	monday := weekStart(ref)
	for i, day := range sched.Days {
		date := monday.AddDate(0, 0, i)
		for n, ev := range sched.ByDay[day] {
			start := date.Add(time.Duration(ev.StartMinutes) * time.Minute)
			end := date.Add(time.Duration(ev.EndMinutes) * time.Minute)
			description := ev.Location
			if ev.Remarks != "" {
				description = fmt.Sprintf("%s / %s", ev.Location, ev.Remarks)
			}
			cal.VComponent = append(cal.VComponent, &ical.VEvent{
				UID:         fmt.Sprintf("%s-%d@timetablelib", day, n),
				DTSTAMP:     time.Now(),
				DTSTART:     start,
				DTEND:       end,
				SUMMARY:     fmt.Sprintf("[%s] %s", ev.Category, ev.Name),
				DESCRIPTION: description,
				TZID:        tz,
				AllDay:      false,
			})
		}
	}
	return cal
}

// Handler serves the schedule returned by load as text/calendar.
func Handler(version string, load func() *timetable.Schedule) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sched := load()
		if sched == nil {
			http.Error(w, "no timetable loaded", http.StatusServiceUnavailable)
			return
		}
		cal := BuildCalendar(sched, version, time.Now())

		b := bytes.Buffer{}
		if err := cal.Encode(&b); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprintf(w, "%s", err)
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Write(b.Bytes())
	}
}

func weekStart(ref time.Time) time.Time {
	d := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	// time.Weekday counts from Sunday; shift so Monday is day zero.
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
