package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/motivation"
	"github.com/katemerritt/growthlog/internal/output"
)

// Recall command flags.
var recallFlagCount int

// recallCmd represents the recall command.
var recallCmd = &cobra.Command{
	Use:   "recall",
	Short: "Resurface past entries",
	Long: `Pick a few past entries worth re-reading: anniversaries from earlier
years first, then high-mood and motivation entries, then older entries
at random.

Examples:
  growthlog recall
  growthlog recall --count 5`,
	RunE: runRecall,
}

func init() {
	recallCmd.Flags().IntVarP(&recallFlagCount, "count", "n", 3, "Number of suggestions")
	rootCmd.AddCommand(recallCmd)
}

func runRecall(cmd *cobra.Command, args []string) error {
	suggestions, err := ctx.App.RecallSuggestions(recallFlagCount)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewRecallResponse(suggestions))
	}

	cli := ctx.CLIFormatter()
	if len(suggestions) == 0 {
		cli.Muted("Not enough history to recall from yet.")
		return nil
	}

	cli.Title("From your past")
	cli.Println("")
	for _, s := range suggestions {
		cli.PrintSuggestion(s)
	}

	if streak, err := ctx.App.Streaks().Get(ctx.App.User().ID, model.StreakOverall); err == nil && streak != nil {
		cli.Println("")
		cli.Muted(motivation.EncouragingMessage(streak.CurrentCount, streak.LongestCount))
	}
	return nil
}
