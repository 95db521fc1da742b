package output

import (
	"time"

	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/motivation"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// EntryOutput represents an entry in JSON output.
type EntryOutput struct {
	ID               string   `json:"id"`
	Date             string   `json:"date"`
	Category         string   `json:"category"`
	Mood             string   `json:"mood"`
	Title            string   `json:"title,omitempty"`
	Content          string   `json:"content"`
	Tags             []string `json:"tags,omitempty"`
	TimeSpentMinutes int      `json:"time_spent_minutes,omitempty"`
	IsPinned         bool     `json:"is_pinned"`
	IsArchived       bool     `json:"is_archived"`
	CreatedAt        string   `json:"created_at"`
}

// NewEntryOutput creates an EntryOutput from an Entry.
func NewEntryOutput(e *model.Entry) *EntryOutput {
	return &EntryOutput{
		ID:               e.ID,
		Date:             e.Date,
		Category:         string(e.Category),
		Mood:             string(e.Mood),
		Title:            e.Title,
		Content:          e.Content,
		Tags:             e.Tags,
		TimeSpentMinutes: e.TimeSpentMinutes,
		IsPinned:         e.IsPinned,
		IsArchived:       e.IsArchived,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
}

// EntriesResponse represents an entry list in JSON.
type EntriesResponse struct {
	Entries    []*EntryOutput `json:"entries"`
	TotalCount int            `json:"total_count"`
}

// NewEntriesResponse creates an EntriesResponse from entries.
func NewEntriesResponse(entries []*model.Entry) *EntriesResponse {
	outputs := make([]*EntryOutput, len(entries))
	for i, e := range entries {
		outputs[i] = NewEntryOutput(e)
	}
	return &EntriesResponse{Entries: outputs, TotalCount: len(entries)}
}

// AddEntryResponse represents the add command output in JSON.
type AddEntryResponse struct {
	Status   string               `json:"status"`
	Entry    *EntryOutput         `json:"entry"`
	Streaks  []*StreakOutput      `json:"streaks"`
	Unlocked []*AchievementOutput `json:"unlocked,omitempty"`
}

// StreakOutput represents a streak in JSON output.
type StreakOutput struct {
	Type           string `json:"type"`
	CurrentCount   int    `json:"current_count"`
	LongestCount   int    `json:"longest_count"`
	StartDate      string `json:"start_date,omitempty"`
	LastActiveDate string `json:"last_active_date,omitempty"`
}

// NewStreakOutput creates a StreakOutput from a Streak.
func NewStreakOutput(s *model.Streak) *StreakOutput {
	return &StreakOutput{
		Type:           string(s.Type),
		CurrentCount:   s.CurrentCount,
		LongestCount:   s.LongestCount,
		StartDate:      s.StartDate,
		LastActiveDate: s.LastActiveDate,
	}
}

// NewStreakOutputs converts a streak slice.
func NewStreakOutputs(streaks []*model.Streak) []*StreakOutput {
	outputs := make([]*StreakOutput, len(streaks))
	for i, s := range streaks {
		outputs[i] = NewStreakOutput(s)
	}
	return outputs
}

// StreaksResponse represents the streaks output in JSON.
type StreaksResponse struct {
	Streaks []*StreakOutput `json:"streaks"`
}

// GoalOutput represents a goal in JSON output.
type GoalOutput struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category"`
	TargetDays    int    `json:"target_days"`
	CompletedDays int    `json:"completed_days"`
	Percentage    int    `json:"percentage"`
	StartDate     string `json:"start_date"`
	IsCompleted   bool   `json:"is_completed"`
	IsArchived    bool   `json:"is_archived"`
}

// NewGoalOutput creates a GoalOutput from a Goal.
func NewGoalOutput(g *model.Goal) *GoalOutput {
	return &GoalOutput{
		ID:            g.ID,
		Title:         g.Title,
		Description:   g.Description,
		Category:      g.Category,
		TargetDays:    g.TargetDays,
		CompletedDays: g.CompletedDays,
		Percentage:    g.Percentage(),
		StartDate:     g.StartDate,
		IsCompleted:   g.IsCompleted,
		IsArchived:    g.IsArchived,
	}
}

// GoalsResponse represents the goals list output in JSON.
type GoalsResponse struct {
	Goals []*GoalOutput `json:"goals"`
}

// NewGoalsResponse creates a GoalsResponse from goals.
func NewGoalsResponse(goals []*model.Goal) *GoalsResponse {
	outputs := make([]*GoalOutput, len(goals))
	for i, g := range goals {
		outputs[i] = NewGoalOutput(g)
	}
	return &GoalsResponse{Goals: outputs}
}

// AchievementOutput represents an achievement in JSON output.
type AchievementOutput struct {
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	UnlockedAt  string            `json:"unlocked_at"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// NewAchievementOutput creates an AchievementOutput from an Achievement.
func NewAchievementOutput(a *model.Achievement) *AchievementOutput {
	return &AchievementOutput{
		Type:        string(a.Type),
		Title:       a.Type.Title(),
		Description: a.Type.Description(),
		UnlockedAt:  a.UnlockedAt.Format(time.RFC3339),
		Metadata:    a.Metadata,
	}
}

// NewAchievementOutputs converts an achievement slice.
func NewAchievementOutputs(achievements []*model.Achievement) []*AchievementOutput {
	outputs := make([]*AchievementOutput, len(achievements))
	for i, a := range achievements {
		outputs[i] = NewAchievementOutput(a)
	}
	return outputs
}

// AchievementsResponse represents the achievements output in JSON.
type AchievementsResponse struct {
	Achievements []*AchievementOutput `json:"achievements"`
}

// SuggestionOutput represents a recall suggestion in JSON output.
type SuggestionOutput struct {
	Entry  *EntryOutput `json:"entry"`
	Reason string       `json:"reason"`
	Type   string       `json:"type"`
}

// RecallResponse represents the recall output in JSON.
type RecallResponse struct {
	Suggestions []*SuggestionOutput `json:"suggestions"`
}

// NewRecallResponse creates a RecallResponse from suggestions.
func NewRecallResponse(suggestions []motivation.Suggestion) *RecallResponse {
	outputs := make([]*SuggestionOutput, len(suggestions))
	for i, s := range suggestions {
		outputs[i] = &SuggestionOutput{
			Entry:  NewEntryOutput(s.Entry),
			Reason: s.Reason,
			Type:   string(s.Type),
		}
	}
	return &RecallResponse{Suggestions: outputs}
}

// QuoteResponse represents the quote output in JSON.
type QuoteResponse struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	return j.JSON(ErrorResponse{Status: status, Error: errMsg, Message: message})
}

// PrintEntries outputs entries in JSON format.
func (j *JSONFormatter) PrintEntries(entries []*model.Entry) error {
	return j.JSON(NewEntriesResponse(entries))
}

// PrintStreaks outputs streaks in JSON format.
func (j *JSONFormatter) PrintStreaks(streaks []*model.Streak) error {
	return j.JSON(StreaksResponse{Streaks: NewStreakOutputs(streaks)})
}

// PrintGoals outputs goals in JSON format.
func (j *JSONFormatter) PrintGoals(goals []*model.Goal) error {
	return j.JSON(NewGoalsResponse(goals))
}

// PrintAchievements outputs achievements in JSON format.
func (j *JSONFormatter) PrintAchievements(achievements []*model.Achievement) error {
	return j.JSON(AchievementsResponse{Achievements: NewAchievementOutputs(achievements)})
}

// PrintQuote outputs a quote in JSON format.
func (j *JSONFormatter) PrintQuote(q motivation.Quote) error {
	return j.JSON(QuoteResponse{Text: q.Text, Author: q.Author})
}
