package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katemerritt/growthlog/internal/app"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/output"
)

// Add command flags.
var (
	addFlagTitle   string
	addFlagTags    []string
	addFlagMinutes int
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:     "add CATEGORY MOOD CONTENT...",
	Aliases: []string{"a", "log"},
	Short:   "Log an entry for today",
	Long: `Log a new entry dated today. Entries are never backdated; the day you
write is the day it counts.

Categories: learning-technology, learning-finance, learning-other,
exercise, motivation, reflection.
Moods: fire, happy, neutral, sad.

Examples:
  growthlog add exercise happy "morning run, felt great"
  growthlog add learning-technology fire "generics finally clicked" --minutes 45
  growthlog add reflection neutral "long day" --tags work,energy`,
	Args: cobra.MinimumNArgs(3),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addFlagTitle, "title", "t", "", "Optional entry title")
	addCmd.Flags().StringSliceVar(&addFlagTags, "tags", nil, "Comma-separated tags")
	addCmd.Flags().IntVarP(&addFlagMinutes, "minutes", "m", 0, "Time spent in minutes")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	input := app.EntryInput{
		Category:         model.Category(args[0]),
		Mood:             model.Mood(args[1]),
		Content:          strings.Join(args[2:], " "),
		Title:            addFlagTitle,
		Tags:             addFlagTags,
		TimeSpentMinutes: addFlagMinutes,
	}

	entry, unlocked, err := ctx.App.AddEntry(input)
	if err != nil {
		return err
	}

	snap := ctx.App.Snapshot()

	if ctx.IsJSON() {
		resp := output.AddEntryResponse{
			Status:   "added",
			Entry:    output.NewEntryOutput(entry),
			Streaks:  output.NewStreakOutputs(snap.Streaks),
			Unlocked: output.NewAchievementOutputs(unlocked),
		}
		return ctx.Formatter.JSON(resp)
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Logged %s entry for today", entry.Category.Label()))

	for _, s := range snap.Streaks {
		if s.Type == model.StreakOverall && s.CurrentCount > 0 {
			cli.Muted(fmt.Sprintf("  Overall streak: %d day(s)", s.CurrentCount))
		}
	}

	for _, a := range unlocked {
		cli.Println("")
		cli.Title("Achievement unlocked!")
		cli.PrintAchievement(a)
	}

	return nil
}
