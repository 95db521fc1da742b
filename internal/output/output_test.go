package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/motivation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatter() (*Formatter, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	f := NewFormatter()
	f.Writer = buf
	f.ColorMode = ColorNever
	return f, buf
}

func TestColorModeNeverDisablesColor(t *testing.T) {
	f, _ := newTestFormatter()
	assert.False(t, f.IsColorEnabled())

	f.ColorMode = ColorAlways
	assert.True(t, f.IsColorEnabled())

	// Auto against a plain buffer is never a terminal.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestWidthFallsBackWithoutTerminal(t *testing.T) {
	f, _ := newTestFormatter()
	assert.Equal(t, defaultWidth, f.Width())
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "2h 15m", FormatMinutes(135))
}

func TestCLIMessages(t *testing.T) {
	f, buf := newTestFormatter()
	c := NewCLIFormatter(f)

	c.Success("entry saved")
	c.Warning("streak at risk")
	c.Error("bad input")
	out := buf.String()
	assert.Contains(t, out, "✓ entry saved")
	assert.Contains(t, out, "⚠ streak at risk")
	assert.Contains(t, out, "✗ bad input")
}

func TestPrintEntry(t *testing.T) {
	f, buf := newTestFormatter()
	c := NewCLIFormatter(f)

	entry := model.NewEntry("local-user", "2026-02-10", model.CategoryExercise, model.MoodFire, "morning run")
	entry.Title = "5k"
	entry.Tags = []string{"running"}
	entry.TimeSpentMinutes = 30

	c.PrintEntry(entry)
	out := buf.String()
	assert.Contains(t, out, "Exercise")
	assert.Contains(t, out, "5k")
	assert.Contains(t, out, "morning run")
	assert.Contains(t, out, "#running")
	assert.Contains(t, out, "30m")
}

func TestPrintEntryListGroupsByDay(t *testing.T) {
	f, buf := newTestFormatter()
	c := NewCLIFormatter(f)

	entries := []*model.Entry{
		model.NewEntry("local-user", "2024-03-01", model.CategoryExercise, model.MoodHappy, "a"),
		model.NewEntry("local-user", "2024-03-01", model.CategoryReflection, model.MoodHappy, "b"),
		model.NewEntry("local-user", "2024-03-02", model.CategoryExercise, model.MoodHappy, "c"),
	}
	c.PrintEntryList(entries)
	out := buf.String()
	assert.Contains(t, out, "Mar 1, 2024")
	assert.Contains(t, out, "Mar 2, 2024")
}

func TestPrintEntryListRelativeHeadingsUsePinnedClock(t *testing.T) {
	f, buf := newTestFormatter()
	c := NewCLIFormatter(f)
	c.Now = func() time.Time {
		return time.Date(2026, time.February, 10, 12, 0, 0, 0, time.Local)
	}

	entries := []*model.Entry{
		model.NewEntry("local-user", "2026-02-10", model.CategoryExercise, model.MoodHappy, "a"),
		model.NewEntry("local-user", "2026-02-09", model.CategoryReflection, model.MoodHappy, "b"),
	}
	c.PrintEntryList(entries)
	out := buf.String()
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "Yesterday")
}

func TestPrintGoalProgress(t *testing.T) {
	f, buf := newTestFormatter()
	c := NewCLIFormatter(f)

	goal := model.NewGoal("local-user", "meditate daily", 10, model.GoalCategoryAny, "2026-02-01")
	goal.CompletedDays = 5
	c.PrintGoal(goal)
	out := buf.String()
	assert.Contains(t, out, "meditate daily")
	assert.Contains(t, out, "5/10 days (50%)")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "██████████", ProgressBar(100, 10))
	assert.Equal(t, "█████░░░░░", ProgressBar(50, 10))
	assert.Equal(t, "░░░░░░░░░░", ProgressBar(0, 10))
	assert.Equal(t, "██████████", ProgressBar(150, 10), "clamped")
}

func TestPrintQuote(t *testing.T) {
	f, buf := newTestFormatter()
	c := NewCLIFormatter(f)

	c.PrintQuote(motivation.Quote{Text: "keep going", Author: "Someone"})
	out := buf.String()
	assert.Contains(t, out, "keep going")
	assert.Contains(t, out, "— Someone")
}

func TestJSONEntriesRoundTrip(t *testing.T) {
	f, buf := newTestFormatter()
	j := NewJSONFormatter(f)

	entry := model.NewEntry("local-user", "2026-02-10", model.CategoryReflection, model.MoodNeutral, "thoughts")
	require.NoError(t, j.PrintEntries([]*model.Entry{entry}))

	var resp EntriesResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, entry.ID, resp.Entries[0].ID)
	assert.Equal(t, "reflection", resp.Entries[0].Category)
	assert.Equal(t, 1, resp.TotalCount)
}

func TestJSONError(t *testing.T) {
	f, buf := newTestFormatter()
	j := NewJSONFormatter(f)

	require.NoError(t, j.PrintError("error", "invalid category", "use one of the known categories"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "invalid category", resp.Error)
}

func TestPrintTable(t *testing.T) {
	f, buf := newTestFormatter()
	c := NewCLIFormatter(f)

	c.PrintTable([]string{"Category", "Count"}, []TableRow{
		{Columns: []string{"exercise", "12"}},
		{Columns: []string{"reflection", "3"}},
	})
	out := buf.String()
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "exercise")
	assert.Contains(t, out, "reflection")
}
