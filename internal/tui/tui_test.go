package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/motivation"
)

// =============================================================================
// ProgressBar Tests
// =============================================================================

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		width      int
	}{
		{"zero", 0, 10},
		{"half", 50, 10},
		{"full", 100, 10},
		{"over", 150, 10},
		{"negative", -10, 10},
		{"small_width", 50, 5},
		{"large_width", 50, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := ProgressBar(tt.percentage, tt.width)
			assert.NotEmpty(t, bar)
		})
	}
}

func TestProgressBarWidth(t *testing.T) {
	bar10 := ProgressBar(50, 10)
	bar20 := ProgressBar(50, 20)

	// Longer width should produce longer bar
	assert.Greater(t, len(bar20), len(bar10))
}

// =============================================================================
// TodayComponent Tests
// =============================================================================

func TestNewTodayComponent(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		tc := NewTodayComponent(nil, 80, 5)
		assert.NotNil(t, tc)
		assert.Nil(t, tc.Entries)
		assert.Equal(t, 80, tc.Width)
	})

	t.Run("limit_entries", func(t *testing.T) {
		entries := []*model.Entry{
			{Content: "one"},
			{Content: "two"},
			{Content: "three"},
		}
		tc := NewTodayComponent(entries, 80, 2)
		assert.Equal(t, 2, len(tc.Entries))
	})

	t.Run("zero_limit_no_truncation", func(t *testing.T) {
		entries := []*model.Entry{
			{Content: "one"},
			{Content: "two"},
		}
		tc := NewTodayComponent(entries, 80, 0)
		assert.Equal(t, 2, len(tc.Entries))
	})
}

func TestTodayComponentView(t *testing.T) {
	t.Run("nothing_logged", func(t *testing.T) {
		tc := NewTodayComponent(nil, 80, 5)
		view := tc.View()

		assert.Contains(t, view, "Nothing logged yet")
	})

	t.Run("with_entries", func(t *testing.T) {
		entries := []*model.Entry{
			{
				Category: model.CategoryExercise,
				Mood:     model.MoodHappy,
				Content:  "Morning run around the park",
			},
			{
				Category: model.CategoryLearningTechnology,
				Mood:     model.MoodFire,
				Title:    "Generics",
				Content:  "Read about type parameters",
			},
		}
		tc := NewTodayComponent(entries, 80, 5)
		view := tc.View()

		assert.Contains(t, view, "Exercise")
		assert.Contains(t, view, "Morning run")
		assert.Contains(t, view, "Generics")
	})

	t.Run("shows_time_spent", func(t *testing.T) {
		entries := []*model.Entry{
			{
				Category:         model.CategoryExercise,
				Mood:             model.MoodNeutral,
				Content:          "Gym",
				TimeSpentMinutes: 45,
			},
		}
		tc := NewTodayComponent(entries, 80, 5)
		view := tc.View()

		assert.Contains(t, view, "45m")
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

// =============================================================================
// StreaksComponent Tests
// =============================================================================

func TestStreaksComponentView(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		sc := NewStreaksComponent(nil, 80)
		view := sc.View()

		assert.Contains(t, view, "Streaks")
		assert.Contains(t, view, "No streaks yet")
	})

	t.Run("with_streaks", func(t *testing.T) {
		streaks := []*model.Streak{
			{Type: model.StreakOverall, CurrentCount: 5, LongestCount: 12},
			{Type: model.StreakExercise, CurrentCount: 0, LongestCount: 3},
		}
		sc := NewStreaksComponent(streaks, 80)
		view := sc.View()

		assert.Contains(t, view, "overall")
		assert.Contains(t, view, "5 day(s)")
		assert.Contains(t, view, "(best 12)")
		assert.Contains(t, view, "exercise")
		assert.Contains(t, view, "0 day(s)")
	})
}

// =============================================================================
// GoalComponent Tests
// =============================================================================

func TestGoalComponentView(t *testing.T) {
	t.Run("nil_goal", func(t *testing.T) {
		gc := NewGoalComponent(nil, 80)
		view := gc.View()
		assert.Empty(t, view)
	})

	t.Run("in_progress", func(t *testing.T) {
		goal := &model.Goal{
			Title:         "Run 30 days",
			TargetDays:    30,
			CompletedDays: 15,
		}
		gc := NewGoalComponent(goal, 80)
		view := gc.View()

		assert.Contains(t, view, "Run 30 days")
		assert.Contains(t, view, "15 / 30 days")
		assert.Contains(t, view, "15 day(s) to go")
	})

	t.Run("completed", func(t *testing.T) {
		goal := &model.Goal{
			Title:         "Read daily",
			TargetDays:    7,
			CompletedDays: 7,
			IsCompleted:   true,
		}
		gc := NewGoalComponent(goal, 80)
		view := gc.View()

		assert.Contains(t, view, "Goal complete!")
	})

	t.Run("small_width", func(t *testing.T) {
		goal := &model.Goal{
			Title:         "Stretch",
			TargetDays:    10,
			CompletedDays: 2,
		}
		gc := NewGoalComponent(goal, 15)
		view := gc.View()

		assert.NotEmpty(t, view)
	})
}

// =============================================================================
// QuoteLine and HelpBar Tests
// =============================================================================

func TestQuoteLine(t *testing.T) {
	q := motivation.Quote{Text: "Keep going", Author: "Anon"}
	line := QuoteLine(q)

	assert.Contains(t, line, "Keep going")
	assert.Contains(t, line, "Anon")
}

func TestHelpBar(t *testing.T) {
	bar := HelpBar()

	assert.Contains(t, bar, "refresh")
	assert.Contains(t, bar, "quit")
	assert.Contains(t, bar, "r")
	assert.Contains(t, bar, "q")
}

// =============================================================================
// Style Tests
// =============================================================================

func TestColorConstants(t *testing.T) {
	assert.NotEmpty(t, ColorPrimary)
	assert.NotEmpty(t, ColorSecondary)
	assert.NotEmpty(t, ColorMuted)
	assert.NotEmpty(t, ColorWarning)
	assert.NotEmpty(t, ColorError)
	assert.NotEmpty(t, ColorSuccess)
	assert.NotEmpty(t, ColorAccent)
	assert.NotEmpty(t, ColorBorder)
}
