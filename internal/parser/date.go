// Package parser turns command-line date arguments into canonical day
// keys. Exact YYYY-MM-DD keys are accepted directly; anything else goes
// through natural language parsing ("yesterday", "last monday",
// "3 days ago").
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/katemerritt/growthlog/internal/dateutil"
	apperrors "github.com/katemerritt/growthlog/internal/errors"
	"github.com/katemerritt/growthlog/internal/validate"
)

// ParseDay resolves a date argument to a day key, relative to now.
func ParseDay(input string, now time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "today") {
		return dateutil.DayKey(now), nil
	}
	if strings.EqualFold(input, "yesterday") {
		return dateutil.DayKey(dateutil.SubDays(now, 1)), nil
	}

	if validate.DayKey(input) == nil {
		return input, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return "", apperrors.NewUserErrorWithField("date", input,
			"could not understand the date",
			"use YYYY-MM-DD or phrases like \"yesterday\" or \"last monday\"")
	}
	return dateutil.DayKey(result.Time), nil
}

// ParseMonth resolves a month argument ("2026-02", "last month", "") to
// any day inside that month, relative to now.
func ParseMonth(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "this month") {
		return now, nil
	}
	if strings.EqualFold(input, "last month") {
		return now.AddDate(0, -1, 0), nil
	}

	if t, err := time.ParseInLocation("2006-01", input, now.Location()); err == nil {
		return t, nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, apperrors.NewUserErrorWithField("month", input,
			"could not understand the month",
			"use YYYY-MM or phrases like \"last month\"")
	}
	return result.Time, nil
}

// ParseRange resolves a "start..end" argument to a pair of day keys.
// A bare date is a one-day range.
func ParseRange(input string, now time.Time) (start, end string, err error) {
	parts := strings.SplitN(input, "..", 2)
	start, err = ParseDay(parts[0], now)
	if err != nil {
		return "", "", err
	}
	if len(parts) == 1 {
		return start, start, nil
	}
	end, err = ParseDay(parts[1], now)
	if err != nil {
		return "", "", err
	}
	if end < start {
		start, end = end, start
	}
	return start, end, nil
}
