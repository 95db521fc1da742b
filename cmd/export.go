package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katemerritt/growthlog/internal/model"
)

// Export command flags.
var exportFlagOutput string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"dump", "backup"},
	Short:   "Export all data as JSON",
	Long: `Dump the full database as one JSON document: user, entries, streaks,
goals, and achievements.

Examples:
  growthlog export
  growthlog export -o backup.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	user := ctx.App.User()

	entries, err := ctx.App.Entries().GetRecent(user.ID, 0)
	if err != nil {
		return err
	}
	streaks, err := ctx.App.Streaks().GetAll(user.ID)
	if err != nil {
		return err
	}
	goals, err := ctx.App.Goals().List(user.ID)
	if err != nil {
		return err
	}
	achievements, err := ctx.App.Achievements().GetAll(user.ID)
	if err != nil {
		return err
	}

	backup := struct {
		Version      string               `json:"version"`
		ExportedAt   string               `json:"exported_at"`
		User         *model.User          `json:"user"`
		Entries      []*model.Entry       `json:"entries"`
		Streaks      []*model.Streak      `json:"streaks"`
		Goals        []*model.Goal        `json:"goals"`
		Achievements []*model.Achievement `json:"achievements"`
	}{
		Version:      "1",
		ExportedAt:   time.Now().Format(time.RFC3339),
		User:         user,
		Entries:      entries,
		Streaks:      streaks,
		Goals:        goals,
		Achievements: achievements,
	}

	writer := os.Stdout
	if exportFlagOutput != "" {
		f, err := os.Create(exportFlagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		writer = f
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return err
	}

	if exportFlagOutput != "" && !ctx.IsJSON() {
		cli := ctx.CLIFormatter()
		cli.Success("Export written to " + exportFlagOutput)
		cli.Printf("  Entries: %d\n", len(entries))
		cli.Printf("  Goals: %d\n", len(goals))
		cli.Printf("  Achievements: %d\n", len(achievements))
	}
	return nil
}
