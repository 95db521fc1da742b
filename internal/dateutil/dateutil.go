// Package dateutil provides calendar arithmetic over canonical
// YYYY-MM-DD day keys, which every store index and engine uses.
package dateutil

import "time"

// DayKeyLayout is the canonical day key format.
const DayKeyLayout = "2006-01-02"

// DayKey formats a time as its canonical day key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDay parses a day key back into a local midnight time.
func ParseDay(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, key, time.Local)
}

// AddDays shifts a time by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// SubDays shifts a time back by n calendar days.
func SubDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, -n)
}

// DaysBetween returns the absolute number of calendar days between two
// times, ignoring the time of day. The dates are rebuilt in UTC so a
// 23-hour DST day still counts as one full day.
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	d := int(ub.Sub(ua).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the first day of the week containing t.
// weekStartsOn is 0 for Sunday, 1 for Monday.
func WeekStart(t time.Time, weekStartsOn int) time.Time {
	t = truncateDay(t)
	offset := (int(t.Weekday()) - weekStartsOn + 7) % 7
	return SubDays(t, offset)
}

// WeekEnd returns the last day of the week containing t.
func WeekEnd(t time.Time, weekStartsOn int) time.Time {
	return AddDays(WeekStart(t, weekStartsOn), 6)
}

// WeekDays returns the seven days of the week containing t.
func WeekDays(t time.Time, weekStartsOn int) []time.Time {
	start := WeekStart(t, weekStartsOn)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = AddDays(start, i)
	}
	return days
}

// MonthStart returns the first day of the month containing t.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of the month containing t.
func MonthEnd(t time.Time) time.Time {
	return SubDays(MonthStart(t).AddDate(0, 1, 0), 1)
}

// MonthDays returns every day of the month containing t.
func MonthDays(t time.Time) []time.Time {
	start := MonthStart(t)
	end := MonthEnd(t)
	var days []time.Time
	for d := start; !d.After(end); d = AddDays(d, 1) {
		days = append(days, d)
	}
	return days
}

// CalendarGrid returns the month of t padded out to whole weeks, so it
// renders as a rectangular calendar. Padding days belong to the
// neighboring months.
func CalendarGrid(t time.Time, weekStartsOn int) []time.Time {
	start := WeekStart(MonthStart(t), weekStartsOn)
	end := WeekEnd(MonthEnd(t), weekStartsOn)
	var days []time.Time
	for d := start; !d.After(end); d = AddDays(d, 1) {
		days = append(days, d)
	}
	return days
}

// InRange reports whether a day key falls within [start, end].
// Day keys compare correctly as strings.
func InRange(day, start, end string) bool {
	return day >= start && day <= end
}

// RangeKeys returns the day keys from start through end inclusive.
func RangeKeys(start, end time.Time) []string {
	start = truncateDay(start)
	end = truncateDay(end)
	var keys []string
	for d := start; !d.After(end); d = AddDays(d, 1) {
		keys = append(keys, DayKey(d))
	}
	return keys
}

// MonthDay returns the MM-DD portion of a day key, used for
// anniversary matching.
func MonthDay(key string) string {
	if len(key) < 10 {
		return ""
	}
	return key[5:]
}

// FormatDisplay renders a day key like "Feb 3, 2026".
func FormatDisplay(key string) string {
	t, err := ParseDay(key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2, 2006")
}

// FormatShort renders a day key like "Feb 3".
func FormatShort(key string) string {
	t, err := ParseDay(key)
	if err != nil {
		return key
	}
	return t.Format("Jan 2")
}

// RelativeDay renders a day key as Today, Yesterday, or its display
// form, judged against the caller's clock.
func RelativeDay(key string, now time.Time) string {
	switch key {
	case DayKey(now):
		return "Today"
	case DayKey(SubDays(now, 1)):
		return "Yesterday"
	default:
		return FormatDisplay(key)
	}
}
