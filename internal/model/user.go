package model

import (
	"fmt"
	"time"
)

// Theme selects the display theme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// IsValid reports whether the theme is one of the known set.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// Preferences holds per-user settings.
type Preferences struct {
	// DailyReminderTime is an "HH:MM" local time, or "" for no reminder.
	DailyReminderTime string `json:"daily_reminder_time"`
	// GraceDays is the number of missed days tolerated before a streak
	// breaks. Never negative.
	GraceDays int   `json:"grace_days"`
	Theme     Theme `json:"theme"`
	// WeekStartsOn is 0 for Sunday, 1 for Monday.
	WeekStartsOn          int  `json:"week_starts_on"`
	EnableNotifications   bool `json:"enable_notifications"`
	EnableRecallReminders bool `json:"enable_recall_reminders"`
}

// DefaultPreferences returns the preferences a fresh user starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		DailyReminderTime:     "09:00",
		GraceDays:             1,
		Theme:                 ThemeSystem,
		WeekStartsOn:          1,
		EnableNotifications:   true,
		EnableRecallReminders: true,
	}
}

// User is the single local account. Exactly one exists in this
// single-user design.
type User struct {
	Key  string `json:"key"`
	ID   string `json:"id"`
	Name string `json:"name"`

	CreatedAt          time.Time   `json:"created_at"`
	Preferences        Preferences `json:"preferences"`
	OnboardingComplete bool        `json:"onboarding_complete"`
}

// SetKey sets the database key for this user.
func (u *User) SetKey(key string) {
	u.Key = key
}

// GetKey returns the database key for this user.
func (u *User) GetKey() string {
	return u.Key
}

// GenerateUserKey generates a database key for a user.
func GenerateUserKey(id string) string {
	return fmt.Sprintf("%s:%s", PrefixUser, id)
}

// NewUser creates a new user with default preferences.
func NewUser(id, name string) *User {
	return &User{
		Key:         GenerateUserKey(id),
		ID:          id,
		Name:        name,
		CreatedAt:   time.Now(),
		Preferences: DefaultPreferences(),
	}
}
