// Package webgrid scrapes raw timetable records out of an HTML page. The
// expected markup is one div.tt-day block per date carrying a data-date
// attribute, with nested div.tt-event blocks for the events.
package webgrid

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-ap/errors"

	timetable "github.com/shadowforce78/TimeTableLib"
)

// Parse extracts raw records from an HTML document.
func Parse(r io.Reader) ([]timetable.RawRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Annotatef(err, "unable to parse HTML document")
	}

	records := make([]timetable.RawRecord, 0)
	doc.Find("div.tt-day").Each(func(_ int, day *goquery.Selection) {
		date := strings.TrimSpace(day.AttrOr("data-date", ""))
		day.Find("div.tt-event").Each(func(_ int, s *goquery.Selection) {
			rec := timetable.RawRecord{
				Date:     date,
				Time:     text(s, "span.tt-time"),
				Subject:  text(s, ".tt-subject"),
				Staff:    text(s, ".tt-staff"),
				Group:    text(s, ".tt-group"),
				Room:     text(s, ".tt-room"),
				Category: strings.TrimSpace(s.AttrOr("data-category", "")),
				Remarks:  text(s, ".tt-remarks"),
			}
			if rec.Time == "" {
				return
			}
			records = append(records, rec)
		})
	})
	return records, nil
}

// LoadURL fetches a timetable page and scrapes its records.
func LoadURL(url string) ([]timetable.RawRecord, error) {
	cl := http.Client{Timeout: 30 * time.Second}
	res, err := cl.Get(url)
	if err != nil {
		return nil, errors.Annotatef(err, "unable to load timetable page %s", url)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, errors.Newf("status code error for %s: %d %s", url, res.StatusCode, res.Status)
	}
	return Parse(res.Body)
}

func text(s *goquery.Selection, selector string) string {
	return strings.TrimSpace(s.Find(selector).First().Text())
}
