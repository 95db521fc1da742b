package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category classifies an entry.
type Category string

const (
	CategoryLearningTechnology Category = "learning-technology"
	CategoryLearningFinance    Category = "learning-finance"
	CategoryLearningOther      Category = "learning-other"
	CategoryExercise           Category = "exercise"
	CategoryMotivation         Category = "motivation"
	CategoryReflection         Category = "reflection"
)

// Categories lists all valid entry categories.
var Categories = []Category{
	CategoryLearningTechnology,
	CategoryLearningFinance,
	CategoryLearningOther,
	CategoryExercise,
	CategoryMotivation,
	CategoryReflection,
}

// IsValid reports whether the category is one of the known set.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// IsLearning reports whether the category belongs to the learning group.
func (c Category) IsLearning() bool {
	switch c {
	case CategoryLearningTechnology, CategoryLearningFinance, CategoryLearningOther:
		return true
	default:
		return false
	}
}

// Label returns a human-readable label for the category.
func (c Category) Label() string {
	switch c {
	case CategoryLearningTechnology:
		return "Technology"
	case CategoryLearningFinance:
		return "Finance"
	case CategoryLearningOther:
		return "Learning"
	case CategoryExercise:
		return "Exercise"
	case CategoryMotivation:
		return "Motivation"
	case CategoryReflection:
		return "Reflection"
	default:
		return string(c)
	}
}

// Mood records how the user felt when writing an entry.
type Mood string

const (
	MoodFire    Mood = "fire"
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
)

// Moods lists all valid moods.
var Moods = []Mood{MoodFire, MoodHappy, MoodNeutral, MoodSad}

// IsValid reports whether the mood is one of the known set.
func (m Mood) IsValid() bool {
	switch m {
	case MoodFire, MoodHappy, MoodNeutral, MoodSad:
		return true
	default:
		return false
	}
}

// IsPositive reports whether the mood counts as high-mood for recall.
func (m Mood) IsPositive() bool {
	return m == MoodFire || m == MoodHappy
}

// Entry is a single dated journal/habit log item.
type Entry struct {
	Key    string `json:"key"`
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// Date is the canonical YYYY-MM-DD day key the entry belongs to.
	// It is the lookup key, not the creation timestamp, and never
	// changes after creation.
	Date string `json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category         Category `json:"category"`
	Title            string   `json:"title,omitempty"`
	Content          string   `json:"content"`
	Mood             Mood     `json:"mood"`
	Tags             []string `json:"tags,omitempty"`
	TimeSpentMinutes int      `json:"time_spent_minutes,omitempty"`

	IsPinned   bool `json:"is_pinned"`
	IsArchived bool `json:"is_archived"`
}

// SetKey sets the database key for this entry.
func (e *Entry) SetKey(key string) {
	e.Key = key
}

// GetKey returns the database key for this entry.
func (e *Entry) GetKey() string {
	return e.Key
}

// GenerateEntryKey generates a database key for an entry. Keys sort by
// user, then day, so prefix scans cover both access paths.
func GenerateEntryKey(userID, date, id string) string {
	return fmt.Sprintf("%s:%s:%s:%s", PrefixEntry, userID, date, id)
}

// EntryUserPrefix returns the key prefix covering all entries of a user.
func EntryUserPrefix(userID string) string {
	return fmt.Sprintf("%s:%s:", PrefixEntry, userID)
}

// EntryDatePrefix returns the key prefix covering a user's entries on a day.
func EntryDatePrefix(userID, date string) string {
	return fmt.Sprintf("%s:%s:%s:", PrefixEntry, userID, date)
}

// NewEntry creates a new entry dated with the given day key.
func NewEntry(userID, date string, category Category, mood Mood, content string) *Entry {
	id := uuid.NewString()
	now := time.Now()
	return &Entry{
		Key:       GenerateEntryKey(userID, date, id),
		ID:        id,
		UserID:    userID,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
		Category:  category,
		Mood:      mood,
		Content:   content,
	}
}
