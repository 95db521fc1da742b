package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/katemerritt/growthlog/internal/dateutil"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/motivation"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorAccent  = lipgloss.Color("#10B981") // Green
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleCategory = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleTag = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleQuote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// moodIcons maps moods to their display icon.
var moodIcons = map[model.Mood]string{
	model.MoodFire:    "🔥",
	model.MoodHappy:   "😊",
	model.MoodNeutral: "😐",
	model.MoodSad:     "😞",
}

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter

	// Now is the clock used for relative day headings; replaceable in
	// tests.
	Now func() time.Time
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f, Now: time.Now}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// CategoryLabel formats a category label.
func (c *CLIFormatter) CategoryLabel(category model.Category) string {
	if c.IsColorEnabled() {
		return styleCategory.Render(category.Label())
	}
	return category.Label()
}

// MoodIcon returns the icon for a mood.
func MoodIcon(m model.Mood) string {
	if icon, ok := moodIcons[m]; ok {
		return icon
	}
	return string(m)
}

// Tags formats a tag list.
func (c *CLIFormatter) Tags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	rendered := make([]string, len(tags))
	for i, tag := range tags {
		if c.IsColorEnabled() {
			rendered[i] = styleTag.Render("#" + tag)
		} else {
			rendered[i] = "#" + tag
		}
	}
	return strings.Join(rendered, " ")
}

// PrintEntry prints one entry with its metadata lines.
func (c *CLIFormatter) PrintEntry(entry *model.Entry) {
	pin := ""
	if entry.IsPinned {
		pin = " 📌"
	}
	header := fmt.Sprintf("%s %s%s", MoodIcon(entry.Mood), c.CategoryLabel(entry.Category), pin)
	if entry.Title != "" {
		header += " · " + entry.Title
	}
	c.Println(header)
	c.Printf("  %s\n", entry.Content)

	var meta []string
	if len(entry.Tags) > 0 {
		meta = append(meta, c.Tags(entry.Tags))
	}
	if entry.TimeSpentMinutes > 0 {
		meta = append(meta, FormatMinutes(entry.TimeSpentMinutes))
	}
	if entry.IsArchived {
		meta = append(meta, "archived")
	}
	meta = append(meta, entry.ID[:8])
	c.Muted("  " + strings.Join(meta, " · "))
}

// PrintEntryList prints entries grouped under their day headings.
func (c *CLIFormatter) PrintEntryList(entries []*model.Entry) {
	if len(entries) == 0 {
		c.Muted("No entries.")
		return
	}
	lastDate := ""
	for _, entry := range entries {
		if entry.Date != lastDate {
			c.Title(dateutil.RelativeDay(entry.Date, c.Now()))
			lastDate = entry.Date
		}
		c.PrintEntry(entry)
	}
}

// PrintStreak prints one streak line.
func (c *CLIFormatter) PrintStreak(s *model.Streak) {
	line := fmt.Sprintf("%-11s %3d day(s)  best %3d", capitalize(string(s.Type)), s.CurrentCount, s.LongestCount)
	c.Println(line)
	c.Muted("  " + streakMessage(s))
}

// PrintGoal prints one goal with its progress bar.
func (c *CLIFormatter) PrintGoal(g *model.Goal) {
	status := ""
	switch {
	case g.IsArchived:
		status = " (archived)"
	case g.IsCompleted:
		status = " ✓"
	}
	c.Printf("%s%s\n", g.Title, status)
	if g.Description != "" {
		c.Muted("  " + g.Description)
	}
	bar := ProgressBar(float64(g.Percentage()), 20)
	c.Printf("  %s %d/%d days (%d%%)\n", bar, g.CompletedDays, g.TargetDays, g.Percentage())
	c.Muted("  " + g.ID[:8])
}

// PrintAchievement prints one unlocked achievement.
func (c *CLIFormatter) PrintAchievement(a *model.Achievement) {
	c.Printf("🏆 %s\n", a.Type.Title())
	c.Muted(fmt.Sprintf("  %s · unlocked %s", a.Type.Description(), a.UnlockedAt.Format("Jan 2, 2006")))
}

// PrintSuggestion prints one recall suggestion.
func (c *CLIFormatter) PrintSuggestion(s motivation.Suggestion) {
	c.Printf("%s %s\n", MoodIcon(s.Entry.Mood), s.Entry.Content)
	c.Muted(fmt.Sprintf("  %s · %s", s.Reason, dateutil.FormatDisplay(s.Entry.Date)))
}

// PrintQuote prints a quote with attribution.
func (c *CLIFormatter) PrintQuote(q motivation.Quote) {
	text := fmt.Sprintf("“%s”", q.Text)
	if c.IsColorEnabled() {
		text = styleQuote.Render(text)
	}
	c.Println(text)
	c.Muted("  — " + q.Author)
}

// streakMessage returns a status line for a streak.
func streakMessage(s *model.Streak) string {
	switch {
	case s.CurrentCount == 0:
		return "Start your streak today!"
	case s.CurrentCount == s.LongestCount:
		return fmt.Sprintf("%d day streak - your best ever!", s.CurrentCount)
	case s.CurrentCount >= 7:
		return fmt.Sprintf("Great %d day streak!", s.CurrentCount)
	default:
		return fmt.Sprintf("%d day streak - keep going!", s.CurrentCount)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

// TableRow is one row of a simple table.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	if c.IsColorEnabled() {
		c.Println(styleBold.Render(headerLine.String()))
	} else {
		c.Println(headerLine.String())
	}

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(sep.String())

	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(rowLine.String())
	}
}
