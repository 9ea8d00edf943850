package webgrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<div class="tt-day" data-date="1/1/2024">
  <div class="tt-event" data-category="Cours">
    <span class="tt-time">14:00-15:00</span>
    <span class="tt-subject">Algebra</span>
    <span class="tt-staff">Dupont</span>
    <span class="tt-group">G1</span>
    <span class="tt-room">B203</span>
    <span class="tt-remarks">bring notes</span>
  </div>
  <div class="tt-event">
    <span class="tt-subject">no time, skipped</span>
  </div>
</div>
<div class="tt-day" data-date="2/1/2024">
  <div class="tt-event">
    <span class="tt-time">9:00-10:00</span>
    <span class="tt-subject">Physics</span>
  </div>
</div>
</body></html>`

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1/1/2024", records[0].Date)
	assert.Equal(t, "14:00-15:00", records[0].Time)
	assert.Equal(t, "Algebra", records[0].Subject)
	assert.Equal(t, "Dupont", records[0].Staff)
	assert.Equal(t, "G1", records[0].Group)
	assert.Equal(t, "B203", records[0].Room)
	assert.Equal(t, "Cours", records[0].Category)
	assert.Equal(t, "bring notes", records[0].Remarks)

	assert.Equal(t, "2/1/2024", records[1].Date)
	assert.Equal(t, "Physics", records[1].Subject)
	assert.Equal(t, "", records[1].Category)
}

func TestParseEmptyDocument(t *testing.T) {
	records, err := Parse(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
