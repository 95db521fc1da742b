package cmd

import (
	"github.com/spf13/cobra"
)

// streaksCmd represents the streaks command.
var streaksCmd = &cobra.Command{
	Use:     "streaks",
	Aliases: []string{"s", "streak"},
	Short:   "Show all streaks",
	Long: `Show the current and longest streak for each streak type: learning,
exercise, reflection, and overall. Streaks tolerate up to your
configured number of grace days (see 'growthlog config').

Examples:
  growthlog streaks
  growthlog streaks --format json`,
	RunE: runStreaks,
}

func init() {
	rootCmd.AddCommand(streaksCmd)
}

func runStreaks(cmd *cobra.Command, args []string) error {
	streaks, err := ctx.App.RefreshStreaks()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStreaks(streaks)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Streaks")
	cli.Println("")
	for _, s := range streaks {
		cli.PrintStreak(s)
	}
	return nil
}
