package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katemerritt/growthlog/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d", "tui"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open an interactive terminal dashboard.

The dashboard shows:
  - Today's entries
  - Current streaks for each category
  - Active goal progress
  - The quote of the day

Keyboard Controls:
  a - Add an entry (shows instructions)
  r - Refresh data
  q - Quit dashboard

Examples:
  growthlog dashboard
  growthlog dash
  growthlog tui`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	config := tui.DashboardConfig{
		App: ctx.App,
	}
	return tui.Run(config)
}
