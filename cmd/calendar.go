package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katemerritt/growthlog/internal/analytics"
	"github.com/katemerritt/growthlog/internal/dateutil"
	"github.com/katemerritt/growthlog/internal/parser"
)

// calendarCmd represents the calendar command.
var calendarCmd = &cobra.Command{
	Use:     "calendar [MONTH]",
	Aliases: []string{"cal"},
	Short:   "Show a month of activity",
	Long: `Render a calendar of the given month with a mark on every day that
has entries. Defaults to the current month.

Examples:
  growthlog calendar
  growthlog calendar 2026-01
  growthlog calendar "last month"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	now := time.Now()
	monthArg := ""
	if len(args) > 0 {
		monthArg = args[0]
	}
	anchor, err := parser.ParseMonth(monthArg, now)
	if err != nil {
		return err
	}

	user := ctx.App.User()
	start := dateutil.MonthStart(anchor)
	end := dateutil.MonthEnd(anchor)
	entries, err := ctx.App.Entries().GetByDateRange(user.ID, dateutil.DayKey(start), dateutil.DayKey(end))
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, entry := range entries {
		counts[entry.Date]++
	}

	if ctx.IsJSON() {
		return printCalendarJSON(user.ID, anchor, counts)
	}

	weekStartsOn := user.Preferences.WeekStartsOn
	grid := dateutil.CalendarGrid(anchor, weekStartsOn)
	today := dateutil.DayKey(now)

	cli := ctx.CLIFormatter()
	cli.Title(anchor.Format("January 2006"))

	headers := []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	if weekStartsOn == 1 {
		headers = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
	}
	cli.Println(strings.Join(headers, "  "))

	var line strings.Builder
	for i, day := range grid {
		key := dateutil.DayKey(day)
		cell := fmt.Sprintf("%2d", day.Day())
		switch {
		case day.Month() != anchor.Month():
			cell = "  "
		case counts[key] > 0:
			cell += "●"
		case key == today:
			cell += "·"
		default:
			cell += " "
		}
		line.WriteString(cell + " ")
		if (i+1)%7 == 0 {
			cli.Println(strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}

	cli.Println("")
	cli.Muted(fmt.Sprintf("● logged day · %d active day(s) this month", len(counts)))
	return nil
}

func printCalendarJSON(userID string, anchor time.Time, counts map[string]int) error {
	service := analytics.NewService(ctx.App.Entries(), ctx.App.Streaks())

	type DayResponse struct {
		Date  string              `json:"date"`
		Stats *analytics.DayStats `json:"stats"`
	}
	type CalendarResponse struct {
		Month string        `json:"month"`
		Days  []DayResponse `json:"days"`
	}

	resp := CalendarResponse{Month: anchor.Format("2006-01")}
	for _, day := range dateutil.MonthDays(anchor) {
		key := dateutil.DayKey(day)
		if counts[key] == 0 {
			continue
		}
		stats, err := service.DayStats(userID, key)
		if err != nil {
			return err
		}
		resp.Days = append(resp.Days, DayResponse{Date: key, Stats: stats})
	}
	return ctx.Formatter.JSON(resp)
}
