package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// achievementsCmd represents the achievements command.
var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"badges"},
	Short:   "Show unlocked achievements",
	Long: `List every achievement you have unlocked, oldest first. Achievements
unlock automatically as you log entries.

Examples:
  growthlog achievements`,
	RunE: runAchievements,
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

func runAchievements(cmd *cobra.Command, args []string) error {
	user := ctx.App.User()
	achievements, err := ctx.App.Achievements().GetAll(user.ID)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintAchievements(achievements)
	}

	cli := ctx.CLIFormatter()
	if len(achievements) == 0 {
		cli.Muted("No achievements yet. Keep logging!")
		return nil
	}

	cli.Title(fmt.Sprintf("Achievements (%d)", len(achievements)))
	cli.Println("")
	for _, a := range achievements {
		cli.PrintAchievement(a)
	}
	return nil
}
