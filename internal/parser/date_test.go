package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A Tuesday.
var now = time.Date(2026, time.February, 10, 12, 0, 0, 0, time.Local)

func TestParseDayExactKey(t *testing.T) {
	day, err := ParseDay("2026-01-05", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", day)
}

func TestParseDayRelativeWords(t *testing.T) {
	day, err := ParseDay("", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-10", day)

	day, err = ParseDay("today", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-10", day)

	day, err = ParseDay("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-09", day)
}

func TestParseDayNaturalLanguage(t *testing.T) {
	day, err := ParseDay("3 days ago", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-07", day)

	day, err = ParseDay("last monday", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-09", day)
}

func TestParseDayRejectsNonsense(t *testing.T) {
	_, err := ParseDay("the day the music died", now)
	assert.Error(t, err)
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("", now)
	require.NoError(t, err)
	assert.Equal(t, time.February, m.Month())

	m, err = ParseMonth("last month", now)
	require.NoError(t, err)
	assert.Equal(t, time.January, m.Month())

	m, err = ParseMonth("2025-11", now)
	require.NoError(t, err)
	assert.Equal(t, 2025, m.Year())
	assert.Equal(t, time.November, m.Month())
}

func TestParseRange(t *testing.T) {
	start, end, err := ParseRange("2026-02-01..2026-02-07", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", start)
	assert.Equal(t, "2026-02-07", end)
}

func TestParseRangeSingleDay(t *testing.T) {
	start, end, err := ParseRange("yesterday", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-09", start)
	assert.Equal(t, end, start)
}

func TestParseRangeSwapsReversedBounds(t *testing.T) {
	start, end, err := ParseRange("2026-02-07..2026-02-01", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", start)
	assert.Equal(t, "2026-02-07", end)
}
