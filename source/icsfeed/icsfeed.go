// Package icsfeed imports VEVENTs from an iCalendar payload as raw
// timetable records. Recurring events are taken as their base instance
// only; recurrence expansion is out of scope.
package icsfeed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/go-ap/errors"

	timetable "github.com/shadowforce78/TimeTableLib"
)

// Decode parses an ICS payload into raw records. Events without usable
// start and end times are skipped.
func Decode(body []byte) ([]timetable.RawRecord, error) {
	if len(body) == 0 {
		return nil, errors.Newf("empty ICS body")
	}
	cal, err := ics.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, errors.Annotatef(err, "unable to parse ICS payload")
	}

	records := make([]timetable.RawRecord, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		start, err := ve.GetStartAt()
		if err != nil || start.IsZero() {
			continue
		}
		end, err := ve.GetEndAt()
		if err != nil || !end.After(start) {
			continue
		}
		// Multi-day VEVENTs cannot land in a single day bucket.
		if start.YearDay() != end.YearDay() || start.Year() != end.Year() {
			continue
		}

		rec := timetable.RawRecord{
			Date: start.Format("02/01/2006"),
			Time: fmt.Sprintf("%s-%s", start.Format("15:04"), end.Format("15:04")),
		}
		if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
			rec.Subject = p.Value
		}
		if p := ve.GetProperty(ics.ComponentPropertyLocation); p != nil {
			rec.Room = p.Value
		}
		if p := ve.GetProperty(ics.ComponentPropertyDescription); p != nil {
			rec.Remarks = p.Value
		}
		if p := ve.GetProperty("CATEGORIES"); p != nil {
			rec.Category = p.Value
		}
		if p := ve.GetProperty("ORGANIZER"); p != nil {
			rec.Staff = p.Value
		}
		records = append(records, rec)
	}
	return records, nil
}

// Fetch downloads an ICS feed and decodes it.
func Fetch(ctx context.Context, url string) ([]timetable.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Annotatef(err, "invalid ICS URL %s", url)
	}
	cl := http.Client{Timeout: 30 * time.Second}
	res, err := cl.Do(req)
	if err != nil {
		return nil, errors.Annotatef(err, "unable to fetch ICS feed %s", url)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, errors.Newf("status code error for %s: %d %s", url, res.StatusCode, res.Status)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Annotatef(err, "unable to read ICS feed %s", url)
	}
	return Decode(body)
}
