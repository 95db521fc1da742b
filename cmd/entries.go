package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katemerritt/growthlog/internal/app"
	apperrors "github.com/katemerritt/growthlog/internal/errors"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/parser"
)

// Entries command flags.
var (
	entriesFlagOn       string
	entriesFlagRange    string
	entriesFlagCategory string
	entriesFlagLimit    int
	entriesFlagPinned   bool

	entriesEditFlagTitle   string
	entriesEditFlagContent string
	entriesEditFlagMood    string
	entriesEditFlagTags    []string
)

// entriesCmd represents the entries command.
var entriesCmd = &cobra.Command{
	Use:     "entries",
	Aliases: []string{"e", "list"},
	Short:   "List and manage entries",
	Long: `List entries, newest first. Dates accept natural language.

Examples:
  growthlog entries
  growthlog entries --on yesterday
  growthlog entries --range "last monday..today"
  growthlog entries --category exercise
  growthlog entries pin a1b2c3d4
  growthlog entries delete a1b2c3d4`,
	RunE: runEntriesList,
}

var entriesPinCmd = &cobra.Command{
	Use:   "pin ID",
	Short: "Toggle an entry's pinned flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := withEntryID(args[0], ctx.App.TogglePin)
		if err != nil {
			return err
		}
		return printEntryMutation(entry, map[bool]string{true: "Pinned", false: "Unpinned"}[entry.IsPinned])
	},
}

var entriesArchiveCmd = &cobra.Command{
	Use:   "archive ID",
	Short: "Toggle an entry's archived flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := withEntryID(args[0], ctx.App.ToggleArchive)
		if err != nil {
			return err
		}
		return printEntryMutation(entry, map[bool]string{true: "Archived", false: "Unarchived"}[entry.IsArchived])
	},
}

var entriesEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit an entry's title, content, mood, or tags",
	Long: `Edit fields of an existing entry. The entry's date never changes.

Examples:
  growthlog entries edit a1b2c3d4 --content "corrected text"
  growthlog entries edit a1b2c3d4 --mood fire --tags running,pb`,
	Args: cobra.ExactArgs(1),
	RunE: runEntriesEdit,
}

var entriesDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := resolveEntryID(args[0])
		if err != nil {
			return err
		}
		if err := ctx.App.DeleteEntry(id); err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": id})
		}
		ctx.CLIFormatter().Success("Entry deleted. Streaks recomputed.")
		return nil
	},
}

func init() {
	entriesCmd.Flags().StringVar(&entriesFlagOn, "on", "", "Only entries on this date")
	entriesCmd.Flags().StringVar(&entriesFlagRange, "range", "", "Only entries in this date range (start..end)")
	entriesCmd.Flags().StringVarP(&entriesFlagCategory, "category", "c", "", "Only entries of this category")
	entriesCmd.Flags().IntVarP(&entriesFlagLimit, "limit", "n", 20, "Maximum entries to show (0 for all)")
	entriesCmd.Flags().BoolVar(&entriesFlagPinned, "pinned", false, "Only pinned entries")

	entriesEditCmd.Flags().StringVar(&entriesEditFlagTitle, "title", "", "New title")
	entriesEditCmd.Flags().StringVar(&entriesEditFlagContent, "content", "", "New content")
	entriesEditCmd.Flags().StringVar(&entriesEditFlagMood, "mood", "", "New mood")
	entriesEditCmd.Flags().StringSliceVar(&entriesEditFlagTags, "tags", nil, "New tags (replaces existing)")

	entriesCmd.AddCommand(entriesPinCmd)
	entriesCmd.AddCommand(entriesArchiveCmd)
	entriesCmd.AddCommand(entriesEditCmd)
	entriesCmd.AddCommand(entriesDeleteCmd)
	rootCmd.AddCommand(entriesCmd)
}

func runEntriesList(cmd *cobra.Command, args []string) error {
	user := ctx.App.User()
	entries, err := selectEntries(user.ID)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintEntries(entries)
	}

	ctx.CLIFormatter().PrintEntryList(entries)
	return nil
}

func selectEntries(userID string) ([]*model.Entry, error) {
	repo := ctx.App.Entries()
	now := time.Now()

	switch {
	case entriesFlagPinned:
		return repo.GetPinned(userID)

	case entriesFlagOn != "":
		day, err := parser.ParseDay(entriesFlagOn, now)
		if err != nil {
			return nil, err
		}
		return repo.GetByDate(userID, day)

	case entriesFlagRange != "":
		start, end, err := parser.ParseRange(entriesFlagRange, now)
		if err != nil {
			return nil, err
		}
		return repo.GetByDateRange(userID, start, end)

	case entriesFlagCategory != "":
		category := model.Category(entriesFlagCategory)
		if !category.IsValid() {
			return nil, apperrors.ErrInvalidCategory
		}
		return repo.GetByCategory(userID, category)

	default:
		return repo.GetRecent(userID, entriesFlagLimit)
	}
}

func runEntriesEdit(cmd *cobra.Command, args []string) error {
	id, err := resolveEntryID(args[0])
	if err != nil {
		return err
	}

	update := app.EntryUpdate{}
	if cmd.Flags().Changed("title") {
		update.Title = &entriesEditFlagTitle
	}
	if cmd.Flags().Changed("content") {
		update.Content = &entriesEditFlagContent
	}
	if cmd.Flags().Changed("mood") {
		mood := model.Mood(entriesEditFlagMood)
		update.Mood = &mood
	}
	if cmd.Flags().Changed("tags") {
		update.Tags = entriesEditFlagTags
	}

	entry, err := ctx.App.UpdateEntry(id, update)
	if err != nil {
		return err
	}
	return printEntryMutation(entry, "Updated")
}

// resolveEntryID accepts a full UUID or an unambiguous prefix.
func resolveEntryID(arg string) (string, error) {
	user := ctx.App.User()
	entries, err := ctx.App.Entries().GetRecent(user.ID, 0)
	if err != nil {
		return "", err
	}

	var match string
	for _, entry := range entries {
		if entry.ID == arg {
			return arg, nil
		}
		if len(arg) >= 4 && len(entry.ID) >= len(arg) && entry.ID[:len(arg)] == arg {
			if match != "" && match != entry.ID {
				return "", apperrors.NewUserErrorWithField("id", arg,
					"entry ID prefix is ambiguous", "use more characters of the ID")
			}
			match = entry.ID
		}
	}
	if match == "" {
		return "", apperrors.ErrEntryNotFound
	}
	return match, nil
}

func withEntryID(arg string, action func(string) (*model.Entry, error)) (*model.Entry, error) {
	id, err := resolveEntryID(arg)
	if err != nil {
		return nil, err
	}
	return action(id)
}

func printEntryMutation(entry *model.Entry, verb string) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status": "updated",
			"entry":  entry,
		})
	}
	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("%s entry %s", verb, entry.ID[:8]))
	return nil
}
