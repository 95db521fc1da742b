package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katemerritt/growthlog/internal/analytics"
	"github.com/katemerritt/growthlog/internal/output"
)

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show activity statistics",
	Long: `Show headline numbers: totals, streaks, category breakdown, this week
against last week, and recent mood.

Examples:
  growthlog stats
  growthlog stats --format json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	user := ctx.App.User()
	service := analytics.NewService(ctx.App.Entries(), ctx.App.Streaks())

	summary, err := service.Summary(user.ID, user.Preferences.WeekStartsOn)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(summary)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Statistics")
	cli.Println("")
	cli.Printf("  Entries:      %d\n", summary.TotalEntries)
	cli.Printf("  Active days:  %d\n", summary.TotalActiveDays)
	cli.Printf("  Streak:       %d day(s) (best %d)\n", summary.CurrentStreak, summary.LongestStreak)

	cli.Println("")
	cli.Title("This week")
	trendIcon := map[analytics.Trend]string{
		analytics.TrendUp:     "↑",
		analytics.TrendDown:   "↓",
		analytics.TrendStable: "→",
	}[summary.WeeklyComparison.Trend]
	cli.Printf("  %d entries vs %d last week  %s %.1f%%\n",
		summary.WeeklyComparison.ThisWeek,
		summary.WeeklyComparison.LastWeek,
		trendIcon,
		summary.WeeklyComparison.PercentChange)

	if len(summary.CategoryBreakdown) > 0 {
		cli.Println("")
		cli.Title("Categories")
		rows := make([]output.TableRow, len(summary.CategoryBreakdown))
		for i, b := range summary.CategoryBreakdown {
			rows[i] = output.TableRow{Columns: []string{
				b.Category.Label(),
				fmt.Sprintf("%d", b.Count),
				fmt.Sprintf("%.1f%%", b.Percentage),
			}}
		}
		cli.PrintTable([]string{"Category", "Count", "Share"}, rows)
	}

	if len(summary.MoodTrends) > 0 {
		cli.Println("")
		cli.Title("Recent mood")
		for _, m := range summary.MoodTrends {
			cli.Printf("  %s  %s  (%d entries)\n", m.Date, output.MoodIcon(m.Mood), m.Count)
		}
	}

	return nil
}
