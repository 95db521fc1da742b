package model

import (
	"fmt"

	"github.com/google/uuid"
)

// StreakType groups categories for streak computation.
type StreakType string

const (
	StreakLearning   StreakType = "learning"
	StreakExercise   StreakType = "exercise"
	StreakReflection StreakType = "reflection"
	StreakOverall    StreakType = "overall"
)

// StreakTypes lists all streak types in their fixed recompute order.
var StreakTypes = []StreakType{
	StreakLearning,
	StreakExercise,
	StreakReflection,
	StreakOverall,
}

// IsValid reports whether the streak type is one of the known set.
func (s StreakType) IsValid() bool {
	switch s {
	case StreakLearning, StreakExercise, StreakReflection, StreakOverall:
		return true
	default:
		return false
	}
}

// StreakTypeForCategory maps an entry category to the per-type streak it
// qualifies, or "" if it qualifies none. The motivation category only
// contributes to the overall streak.
func StreakTypeForCategory(c Category) StreakType {
	switch {
	case c.IsLearning():
		return StreakLearning
	case c == CategoryExercise:
		return StreakExercise
	case c == CategoryReflection:
		return StreakReflection
	default:
		return ""
	}
}

// Streak holds the computed run of qualifying days for one streak type.
// Exactly one row exists per (user, type); it is replaced wholesale on
// every recompute.
type Streak struct {
	Key    string     `json:"key"`
	ID     string     `json:"id"`
	UserID string     `json:"user_id"`
	Type   StreakType `json:"type"`

	CurrentCount int `json:"current_count"`
	// LongestCount never decreases across recomputations.
	LongestCount int `json:"longest_count"`

	LastActiveDate string `json:"last_active_date"`
	// StartDate is the first day of the current run.
	StartDate string `json:"start_date"`
}

// SetKey sets the database key for this streak.
func (s *Streak) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this streak.
func (s *Streak) GetKey() string {
	return s.Key
}

// GenerateStreakKey generates a database key for a streak. Type is part
// of the key, so (user, type) uniqueness holds by construction.
func GenerateStreakKey(userID string, t StreakType) string {
	return fmt.Sprintf("%s:%s:%s", PrefixStreak, userID, t)
}

// StreakUserPrefix returns the key prefix covering all streaks of a user.
func StreakUserPrefix(userID string) string {
	return fmt.Sprintf("%s:%s:", PrefixStreak, userID)
}

// NewStreak creates a zero-valued streak row for a user and type.
func NewStreak(userID string, t StreakType) *Streak {
	return &Streak{
		Key:    GenerateStreakKey(userID, t),
		ID:     uuid.NewString(),
		UserID: userID,
		Type:   t,
	}
}
