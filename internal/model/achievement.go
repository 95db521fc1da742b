package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AchievementType identifies a badge.
type AchievementType string

const (
	AchievementFirstEntry          AchievementType = "first-entry"
	AchievementStreak7             AchievementType = "streak-7"
	AchievementStreak14            AchievementType = "streak-14"
	AchievementStreak30            AchievementType = "streak-30"
	AchievementStreak60            AchievementType = "streak-60"
	AchievementStreak90            AchievementType = "streak-90"
	AchievementConsistencyChampion AchievementType = "consistency-champion"
	AchievementReflectionMaster    AchievementType = "reflection-master"
	AchievementLearningWarrior     AchievementType = "learning-warrior"
	AchievementExerciseEnthusiast  AchievementType = "exercise-enthusiast"
)

// AchievementTypes lists all badge types.
var AchievementTypes = []AchievementType{
	AchievementFirstEntry,
	AchievementStreak7,
	AchievementStreak14,
	AchievementStreak30,
	AchievementStreak60,
	AchievementStreak90,
	AchievementConsistencyChampion,
	AchievementReflectionMaster,
	AchievementLearningWarrior,
	AchievementExerciseEnthusiast,
}

// Title returns the display title for the badge.
func (t AchievementType) Title() string {
	switch t {
	case AchievementFirstEntry:
		return "First Step"
	case AchievementStreak7:
		return "Week Warrior"
	case AchievementStreak14:
		return "Fortnight Focus"
	case AchievementStreak30:
		return "Monthly Master"
	case AchievementStreak60:
		return "Two Month Champion"
	case AchievementStreak90:
		return "Quarterly Legend"
	case AchievementConsistencyChampion:
		return "Consistency Champion"
	case AchievementReflectionMaster:
		return "Reflection Master"
	case AchievementLearningWarrior:
		return "Learning Warrior"
	case AchievementExerciseEnthusiast:
		return "Exercise Enthusiast"
	default:
		return string(t)
	}
}

// Description returns the unlock condition text for the badge.
func (t AchievementType) Description() string {
	switch t {
	case AchievementFirstEntry:
		return "Created your first entry"
	case AchievementStreak7:
		return "Maintained a 7-day streak"
	case AchievementStreak14:
		return "Maintained a 14-day streak"
	case AchievementStreak30:
		return "Maintained a 30-day streak"
	case AchievementStreak60:
		return "Maintained a 60-day streak"
	case AchievementStreak90:
		return "Maintained a 90-day streak"
	case AchievementConsistencyChampion:
		return "Logged entries in 3+ categories in one day"
	case AchievementReflectionMaster:
		return "Created 10 reflection entries"
	case AchievementLearningWarrior:
		return "Created 50 learning entries"
	case AchievementExerciseEnthusiast:
		return "Created 30 exercise entries"
	default:
		return ""
	}
}

// Achievement is a one-time unlockable badge. At most one exists per
// (user, type); the key scheme enforces it.
type Achievement struct {
	Key    string          `json:"key"`
	ID     string          `json:"id"`
	UserID string          `json:"user_id"`
	Type   AchievementType `json:"type"`

	UnlockedAt time.Time         `json:"unlocked_at"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// SetKey sets the database key for this achievement.
func (a *Achievement) SetKey(key string) {
	a.Key = key
}

// GetKey returns the database key for this achievement.
func (a *Achievement) GetKey() string {
	return a.Key
}

// GenerateAchievementKey generates a database key for an achievement.
func GenerateAchievementKey(userID string, t AchievementType) string {
	return fmt.Sprintf("%s:%s:%s", PrefixAchievement, userID, t)
}

// AchievementUserPrefix returns the key prefix covering all achievements
// of a user.
func AchievementUserPrefix(userID string) string {
	return fmt.Sprintf("%s:%s:", PrefixAchievement, userID)
}

// NewAchievement creates an unlocked achievement stamped now.
func NewAchievement(userID string, t AchievementType) *Achievement {
	return &Achievement{
		Key:        GenerateAchievementKey(userID, t),
		ID:         uuid.NewString(),
		UserID:     userID,
		Type:       t,
		UnlockedAt: time.Now(),
	}
}
