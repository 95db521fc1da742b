// Package reminder decides, purely locally, whether the user should be
// nudged to log an entry. Nothing here delivers a notification; the
// checks surface in command output.
package reminder

import (
	"fmt"
	"time"

	"github.com/katemerritt/growthlog/internal/dateutil"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/storage"
	"github.com/katemerritt/growthlog/internal/streak"
)

// Warning flags a streak type that breaks without an entry today.
type Warning struct {
	Type    model.StreakType `json:"type"`
	Current int              `json:"current"`
	Message string           `json:"message"`
}

// Checker evaluates reminder and streak-risk state.
type Checker struct {
	entries *storage.EntryRepo
	streaks *storage.StreakRepo
	engine  *streak.Engine
}

// NewChecker creates a reminder checker.
func NewChecker(entries *storage.EntryRepo, streaks *storage.StreakRepo, engine *streak.Engine) *Checker {
	return &Checker{entries: entries, streaks: streaks, engine: engine}
}

// Due reports whether the daily reminder should fire: notifications
// are enabled, the configured reminder time has passed, and no entry
// has been logged today.
func (c *Checker) Due(user *model.User, now time.Time) (bool, error) {
	if user == nil || !user.Preferences.EnableNotifications {
		return false, nil
	}

	reminderAt, err := parseReminderTime(user.Preferences.DailyReminderTime, now)
	if err != nil {
		return false, err
	}
	if now.Before(reminderAt) {
		return false, nil
	}

	entries, err := c.entries.GetByDate(user.ID, dateutil.DayKey(now))
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}

// StreakWarnings lists streak types that lapse without an entry today.
// Only streaks with a positive current count warrant a warning.
func (c *Checker) StreakWarnings(userID string) ([]Warning, error) {
	var warnings []Warning
	for _, t := range model.StreakTypes {
		s, err := c.streaks.Get(userID, t)
		if err != nil {
			return nil, err
		}
		if s == nil || s.CurrentCount == 0 {
			continue
		}

		atRisk, err := c.engine.AtRisk(userID, t)
		if err != nil {
			return nil, err
		}
		if atRisk {
			warnings = append(warnings, Warning{
				Type:    t,
				Current: s.CurrentCount,
				Message: fmt.Sprintf("Your %d day %s streak ends today without an entry", s.CurrentCount, t),
			})
		}
	}
	return warnings, nil
}

// parseReminderTime anchors an HH:MM preference to the date of now.
func parseReminderTime(value string, now time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder time %q: %w", value, err)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}
