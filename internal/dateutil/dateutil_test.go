package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDayKeyRoundTrip(t *testing.T) {
	d := date(2026, time.February, 3)
	key := DayKey(d)
	assert.Equal(t, "2026-02-03", key)

	parsed, err := ParseDay(key)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(d))
}

func TestParseDayInvalid(t *testing.T) {
	_, err := ParseDay("03/02/2026")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a := date(2026, time.January, 1)
	b := date(2026, time.January, 31)

	assert.Equal(t, 30, DaysBetween(a, b))
	assert.Equal(t, 30, DaysBetween(b, a), "absolute difference")
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2026, time.January, 1, 23, 59, 0, 0, time.Local)
	b := time.Date(2026, time.January, 2, 0, 1, 0, 0, time.Local)
	assert.Equal(t, 1, DaysBetween(a, b))
}

func TestDaysBetweenAcrossDSTChange(t *testing.T) {
	// Spring forward: the second midnight sits one hour closer, so the
	// wall-clock gap is 47 hours across two calendar days.
	est := time.FixedZone("EST", -5*60*60)
	edt := time.FixedZone("EDT", -4*60*60)
	a := time.Date(2026, time.March, 7, 0, 0, 0, 0, est)
	b := time.Date(2026, time.March, 9, 0, 0, 0, 0, edt)

	assert.Equal(t, 2, DaysBetween(a, b))
	assert.Equal(t, 2, DaysBetween(b, a))
}

func TestWeekStart(t *testing.T) {
	// 2026-02-04 is a Wednesday.
	wed := date(2026, time.February, 4)

	t.Run("monday_start", func(t *testing.T) {
		assert.Equal(t, "2026-02-02", DayKey(WeekStart(wed, 1)))
		assert.Equal(t, "2026-02-08", DayKey(WeekEnd(wed, 1)))
	})

	t.Run("sunday_start", func(t *testing.T) {
		assert.Equal(t, "2026-02-01", DayKey(WeekStart(wed, 0)))
		assert.Equal(t, "2026-02-07", DayKey(WeekEnd(wed, 0)))
	})

	t.Run("on_the_boundary", func(t *testing.T) {
		mon := date(2026, time.February, 2)
		assert.Equal(t, "2026-02-02", DayKey(WeekStart(mon, 1)))
	})
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(date(2026, time.February, 4), 1)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-02-02", DayKey(days[0]))
	assert.Equal(t, "2026-02-08", DayKey(days[6]))
}

func TestMonthBounds(t *testing.T) {
	d := date(2026, time.February, 15)
	assert.Equal(t, "2026-02-01", DayKey(MonthStart(d)))
	assert.Equal(t, "2026-02-28", DayKey(MonthEnd(d)))

	leap := date(2024, time.February, 10)
	assert.Equal(t, "2024-02-29", DayKey(MonthEnd(leap)))
}

func TestMonthDays(t *testing.T) {
	days := MonthDays(date(2026, time.April, 10))
	assert.Len(t, days, 30)
	assert.Equal(t, "2026-04-01", DayKey(days[0]))
	assert.Equal(t, "2026-04-30", DayKey(days[29]))
}

func TestCalendarGrid(t *testing.T) {
	// February 2026: starts Sunday, ends Saturday. With Monday start
	// the grid pads back to Jan 26 and forward to Mar 1.
	grid := CalendarGrid(date(2026, time.February, 10), 1)
	require.NotEmpty(t, grid)
	assert.Equal(t, "2026-01-26", DayKey(grid[0]))
	assert.Equal(t, "2026-03-01", DayKey(grid[len(grid)-1]))
	assert.Equal(t, 0, len(grid)%7, "grid is whole weeks")
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange("2026-02-03", "2026-02-01", "2026-02-28"))
	assert.True(t, InRange("2026-02-01", "2026-02-01", "2026-02-28"))
	assert.False(t, InRange("2026-03-01", "2026-02-01", "2026-02-28"))
}

func TestRangeKeys(t *testing.T) {
	keys := RangeKeys(date(2026, time.January, 30), date(2026, time.February, 2))
	assert.Equal(t, []string{"2026-01-30", "2026-01-31", "2026-02-01", "2026-02-02"}, keys)
}

func TestMonthDay(t *testing.T) {
	assert.Equal(t, "02-03", MonthDay("2026-02-03"))
	assert.Equal(t, "", MonthDay("bogus"))
}

func TestRelativeDay(t *testing.T) {
	now := date(2026, time.February, 10)

	assert.Equal(t, "Today", RelativeDay("2026-02-10", now))
	assert.Equal(t, "Yesterday", RelativeDay("2026-02-09", now))
	assert.Equal(t, "Feb 3, 2020", RelativeDay("2020-02-03", now))
}
