package jsonrec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	feed := `[
		{"date": "1/1/2024", "time": "14:00-15:00", "subject": "Algebra", "room": "B203", "staff": "Dupont", "group": "G1", "category": "Cours", "remarks": "bring notes"},
		{"date": "2/1/2024", "time": "9:00-10:00"}
	]`

	records, err := Decode(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1/1/2024", records[0].Date)
	assert.Equal(t, "14:00-15:00", records[0].Time)
	assert.Equal(t, "Algebra", records[0].Subject)
	assert.Equal(t, "B203", records[0].Room)
	assert.Equal(t, "bring notes", records[0].Remarks)

	// Missing fields stay empty at this stage; defaulting is the
	// normalizer's job.
	assert.Equal(t, "", records[1].Subject)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"not": "an array"}`))
	assert.Error(t, err)
}
