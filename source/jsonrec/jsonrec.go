// Package jsonrec reads the canonical JSON feed: an array of raw records
// with date, time, subject, staff, group, room, category and remarks
// fields, every one of them optional free text.
package jsonrec

import (
	"io"
	"os"

	"github.com/go-ap/errors"
	"github.com/goccy/go-json"

	timetable "github.com/shadowforce78/TimeTableLib"
)

// Decode reads a JSON array of raw records.
func Decode(r io.Reader) ([]timetable.RawRecord, error) {
	records := make([]timetable.RawRecord, 0)
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Annotatef(err, "unable to decode record feed")
	}
	return records, nil
}

// LoadFile reads a JSON record feed from disk.
func LoadFile(path string) ([]timetable.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "unable to open record feed %s", path)
	}
	defer f.Close()
	return Decode(f)
}
