package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/motivation"
	"github.com/katemerritt/growthlog/internal/output"
)

// TodayComponent displays the entries logged today.
type TodayComponent struct {
	Entries []*model.Entry
	Width   int
	Limit   int
}

// NewTodayComponent creates a new today component.
func NewTodayComponent(entries []*model.Entry, width, limit int) *TodayComponent {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return &TodayComponent{
		Entries: entries,
		Width:   width,
		Limit:   limit,
	}
}

// View renders the today component.
func (tc *TodayComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Today"))
	content.WriteString("\n")

	if len(tc.Entries) == 0 {
		content.WriteString(StyleMuted.Render("Nothing logged yet"))
		content.WriteString("\n\n")
		content.WriteString(StyleSubtitle.Render("Use 'growthlog add' to log something"))

		box := StyleTodayBox.Width(tc.Width - 4)
		return box.Render(content.String())
	}

	for i, entry := range tc.Entries {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(tc.renderEntry(entry))
	}

	box := StyleActiveTodayBox.Width(tc.Width - 4)
	return box.Render(content.String())
}

func (tc *TodayComponent) renderEntry(entry *model.Entry) string {
	var sb strings.Builder

	sb.WriteString(output.MoodIcon(entry.Mood))
	sb.WriteString(" ")
	sb.WriteString(StyleCategory.Render(entry.Category.Label()))
	if entry.Title != "" {
		sb.WriteString("  ")
		sb.WriteString(StyleContent.Render(entry.Title))
	}
	if entry.TimeSpentMinutes > 0 {
		sb.WriteString("  ")
		sb.WriteString(StyleSubtitle.Render(output.FormatMinutes(entry.TimeSpentMinutes)))
	}

	sb.WriteString("\n")
	sb.WriteString(StyleSubtitle.Render("  " + truncate(entry.Content, tc.Width-10)))

	return sb.String()
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	if n < 4 {
		n = 4
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// StreaksComponent displays per-type streak counts.
type StreaksComponent struct {
	Streaks []*model.Streak
	Width   int
}

// NewStreaksComponent creates a new streaks component.
func NewStreaksComponent(streaks []*model.Streak, width int) *StreaksComponent {
	return &StreaksComponent{
		Streaks: streaks,
		Width:   width,
	}
}

// View renders the streaks component.
func (sc *StreaksComponent) View() string {
	var content strings.Builder

	content.WriteString(StyleTitle.Render("Streaks"))
	content.WriteString("\n")

	if len(sc.Streaks) == 0 {
		content.WriteString(StyleMuted.Render("No streaks yet"))
	} else {
		for i, s := range sc.Streaks {
			if i > 0 {
				content.WriteString("\n")
			}
			content.WriteString(sc.renderStreak(s))
		}
	}

	box := StyleStreaksBox.Width(sc.Width - 4)
	return box.Render(content.String())
}

func (sc *StreaksComponent) renderStreak(s *model.Streak) string {
	var sb strings.Builder

	label := fmt.Sprintf("%-11s", string(s.Type))
	sb.WriteString(StyleSubtitle.Render(label))
	sb.WriteString("  ")

	count := fmt.Sprintf("%d day(s)", s.CurrentCount)
	if s.CurrentCount > 0 {
		sb.WriteString(StyleStreak.Render("🔥 " + count))
	} else {
		sb.WriteString(StyleMuted.Render(count))
	}

	if s.LongestCount > s.CurrentCount {
		sb.WriteString(StyleSubtitle.Render(fmt.Sprintf("  (best %d)", s.LongestCount)))
	}

	return sb.String()
}

// GoalComponent displays progress toward one goal.
type GoalComponent struct {
	Goal  *model.Goal
	Width int
}

// NewGoalComponent creates a new goal component.
func NewGoalComponent(goal *model.Goal, width int) *GoalComponent {
	return &GoalComponent{
		Goal:  goal,
		Width: width,
	}
}

// View renders the goal component.
func (gc *GoalComponent) View() string {
	if gc.Goal == nil {
		return ""
	}

	var content strings.Builder

	content.WriteString(StyleTitle.Render("Goal: " + gc.Goal.Title))
	content.WriteString("\n\n")

	percentage := float64(gc.Goal.Percentage())
	barWidth := gc.Width - 12
	if barWidth < 10 {
		barWidth = 10
	}
	content.WriteString(ProgressBar(percentage, barWidth))
	content.WriteString("\n")

	progressText := fmt.Sprintf("%d / %d days (%.0f%%)",
		gc.Goal.CompletedDays, gc.Goal.TargetDays, percentage)

	if gc.Goal.IsCompleted {
		content.WriteString(StyleSuccess.Render(progressText))
		content.WriteString("\n")
		content.WriteString(StyleSuccess.Render("✓ Goal complete!"))
	} else {
		content.WriteString(StyleSubtitle.Render(progressText))
		content.WriteString("\n")
		remaining := gc.Goal.TargetDays - gc.Goal.CompletedDays
		content.WriteString(StyleSubtitle.Render(fmt.Sprintf("%d day(s) to go", remaining)))
	}

	var box lipgloss.Style
	if gc.Goal.IsCompleted {
		box = StyleGoalCompleteBox.Width(gc.Width - 4)
	} else {
		box = StyleGoalBox.Width(gc.Width - 4)
	}

	return box.Render(content.String())
}

// QuoteLine renders the quote of the day as a single styled line.
func QuoteLine(q motivation.Quote) string {
	return StyleQuote.Render(fmt.Sprintf("\"%s\"  — %s", q.Text, q.Author))
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"r", "refresh"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
