package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GoalCategoryAny matches entries of any category.
const GoalCategoryAny = "any"

// Goal is a user-defined target of N completed days, tracked to
// completion independently of streak continuity.
type Goal struct {
	Key    string `json:"key"`
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// TargetDays is the number of days to complete (positive).
	TargetDays int `json:"target_days"`
	// Category is an entry category or GoalCategoryAny.
	Category string `json:"category"`

	StartDate string `json:"start_date"`
	// CompletedDays only ever increases, one explicit increment at a time.
	CompletedDays int  `json:"completed_days"`
	IsCompleted   bool `json:"is_completed"`
	IsArchived    bool `json:"is_archived"`

	CreatedAt time.Time `json:"created_at"`
}

// SetKey sets the database key for this goal.
func (g *Goal) SetKey(key string) {
	g.Key = key
}

// GetKey returns the database key for this goal.
func (g *Goal) GetKey() string {
	return g.Key
}

// GenerateGoalKey generates a database key for a goal.
func GenerateGoalKey(userID, id string) string {
	return fmt.Sprintf("%s:%s:%s", PrefixGoal, userID, id)
}

// GoalUserPrefix returns the key prefix covering all goals of a user.
func GoalUserPrefix(userID string) string {
	return fmt.Sprintf("%s:%s:", PrefixGoal, userID)
}

// NewGoal creates a new goal starting on the given day key.
func NewGoal(userID, title string, targetDays int, category, startDate string) *Goal {
	id := uuid.NewString()
	return &Goal{
		Key:        GenerateGoalKey(userID, id),
		ID:         id,
		UserID:     userID,
		Title:      title,
		TargetDays: targetDays,
		Category:   category,
		StartDate:  startDate,
		CreatedAt:  time.Now(),
	}
}

// IsActive reports whether the goal shows up in active views.
func (g *Goal) IsActive() bool {
	return !g.IsCompleted && !g.IsArchived
}

// Percentage returns completion progress clamped to 100.
func (g *Goal) Percentage() int {
	if g.TargetDays <= 0 {
		return 0
	}
	pct := g.CompletedDays * 100 / g.TargetDays
	if pct > 100 {
		pct = 100
	}
	return pct
}
