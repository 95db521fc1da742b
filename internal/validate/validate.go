// Package validate provides input validation helpers for the Growthlog CLI.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/katemerritt/growthlog/internal/errors"
	"github.com/katemerritt/growthlog/internal/model"
)

const (
	// MaxTitleLength is the maximum length for an entry or goal title.
	MaxTitleLength = 128
	// MaxContentLength is the maximum length for entry content.
	MaxContentLength = 8192
	// MaxTagLength is the maximum length for a single tag.
	MaxTagLength = 32
	// MaxTags is the maximum number of tags on an entry.
	MaxTags = 10
	// MaxTargetDays is the largest accepted goal target.
	MaxTargetDays = 365
)

// dayKeyRegex matches canonical YYYY-MM-DD day keys.
var dayKeyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// reminderTimeRegex matches HH:MM reminder times.
var reminderTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Category validates an entry category.
func Category(c string) error {
	if !model.Category(c).IsValid() {
		return errors.NewUserErrorWithField("category", c,
			"Invalid category",
			"Use one of: "+joinCategories())
	}
	return nil
}

// GoalCategory validates a goal category, which also allows "any".
func GoalCategory(c string) error {
	if c == model.GoalCategoryAny {
		return nil
	}
	return Category(c)
}

// Mood validates a mood value.
func Mood(m string) error {
	if !model.Mood(m).IsValid() {
		return errors.NewUserErrorWithField("mood", m,
			"Invalid mood",
			"Use one of: fire, happy, neutral, sad")
	}
	return nil
}

// StreakType validates a streak type value.
func StreakType(s string) error {
	if !model.StreakType(s).IsValid() {
		return errors.NewUserErrorWithField("type", s,
			"Invalid streak type",
			"Use one of: learning, exercise, reflection, overall")
	}
	return nil
}

// DayKey validates a canonical day key.
func DayKey(key string) error {
	if !dayKeyRegex.MatchString(key) {
		return errors.NewUserErrorWithField("date", key,
			"Invalid date format",
			"Use YYYY-MM-DD, e.g. 2026-02-03")
	}
	return nil
}

// Title validates an optional title.
func Title(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return errors.NewUserError(
			"Title too long",
			fmt.Sprintf("Titles must be %d characters or fewer", MaxTitleLength))
	}
	return nil
}

// Content validates entry content.
func Content(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.NewUserError("Entry content cannot be empty", "Write a few words about what you did")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return errors.NewUserError(
			"Entry content too long",
			fmt.Sprintf("Entries must be %d characters or fewer", MaxContentLength))
	}
	return nil
}

// Tags validates an entry tag list.
func Tags(tags []string) error {
	if len(tags) > MaxTags {
		return errors.NewUserError(
			"Too many tags",
			fmt.Sprintf("Use at most %d tags", MaxTags))
	}
	for _, tag := range tags {
		if tag == "" {
			return errors.NewUserError("Tags cannot be empty", "Remove the empty tag")
		}
		if utf8.RuneCountInString(tag) > MaxTagLength {
			return errors.NewUserErrorWithField("tag", tag,
				"Tag too long",
				fmt.Sprintf("Tags must be %d characters or fewer", MaxTagLength))
		}
	}
	return nil
}

// TargetDays validates a goal target.
func TargetDays(days int) error {
	if days <= 0 {
		return errors.NewUserError(
			"Target days must be positive",
			"Pass a target like 7, 30, or 90")
	}
	if days > MaxTargetDays {
		return errors.NewUserError(
			"Target days too large",
			fmt.Sprintf("Targets must be %d days or fewer", MaxTargetDays))
	}
	return nil
}

// GraceDays validates a grace-day preference.
func GraceDays(days int) error {
	if days < 0 {
		return errors.NewUserError(
			"Grace days cannot be negative",
			"Use 0 to disable grace days")
	}
	return nil
}

// ReminderTime validates an HH:MM reminder time. Empty disables the
// reminder and is allowed.
func ReminderTime(t string) error {
	if t == "" {
		return nil
	}
	if !reminderTimeRegex.MatchString(t) {
		return errors.NewUserErrorWithField("reminder", t,
			"Invalid reminder time",
			"Use 24h HH:MM format, e.g. 09:00")
	}
	return nil
}

// WeekStartsOn validates a week-start preference.
func WeekStartsOn(day int) error {
	if day != 0 && day != 1 {
		return errors.NewUserError(
			"Invalid week start",
			"Use 0 for Sunday or 1 for Monday")
	}
	return nil
}

func joinCategories() string {
	parts := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
