package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katemerritt/growthlog/internal/dateutil"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/motivation"
	"github.com/katemerritt/growthlog/internal/output"
	"github.com/katemerritt/growthlog/internal/reminder"
)

// todayCmd represents the today command.
var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's entries, streaks, and reminders",
	Long: `Display today's entries, the current overall streak, any streaks at
risk of lapsing, and the quote of the day.

Examples:
  growthlog today
  growthlog t`,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	snap := ctx.App.Snapshot()
	now := time.Now()

	checker := reminder.NewChecker(ctx.App.Entries(), ctx.App.Streaks(), ctx.App.StreakEngine)
	due, err := checker.Due(snap.User, now)
	if err != nil {
		return err
	}
	warnings, err := checker.StreakWarnings(snap.User.ID)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return printTodayJSON(snap.TodayEntries, snap.Streaks, warnings, due, now)
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Today (%s)", dateutil.DayKey(now)))
	cli.Println("")

	if len(snap.TodayEntries) == 0 {
		cli.Muted("Nothing logged yet today.")
		cli.Muted("Use 'growthlog add <category> <mood> <content>' to log something.")
	} else {
		for _, entry := range snap.TodayEntries {
			cli.PrintEntry(entry)
		}
	}

	for _, s := range snap.Streaks {
		if s.Type == model.StreakOverall {
			cli.Println("")
			cli.PrintStreak(s)
		}
	}

	if due {
		cli.Println("")
		cli.Warning("Daily reminder: you haven't logged anything today.")
	}
	for _, w := range warnings {
		cli.Warning(w.Message)
	}

	cli.Println("")
	cli.PrintQuote(motivation.DailyQuote(now))

	return nil
}

func printTodayJSON(entries []*model.Entry, streaks []*model.Streak, warnings []reminder.Warning, due bool, now time.Time) error {
	type TodayResponse struct {
		Date        string                 `json:"date"`
		Entries     []*output.EntryOutput  `json:"entries"`
		Streaks     []*output.StreakOutput `json:"streaks"`
		ReminderDue bool                   `json:"reminder_due"`
		Warnings    []reminder.Warning     `json:"warnings,omitempty"`
		Quote       *output.QuoteResponse  `json:"quote"`
	}

	quote := motivation.DailyQuote(now)
	resp := TodayResponse{
		Date:        dateutil.DayKey(now),
		Entries:     output.NewEntriesResponse(entries).Entries,
		Streaks:     output.NewStreakOutputs(streaks),
		ReminderDue: due,
		Warnings:    warnings,
		Quote:       &output.QuoteResponse{Text: quote.Text, Author: quote.Author},
	}
	return ctx.Formatter.JSON(resp)
}
