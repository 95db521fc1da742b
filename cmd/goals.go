package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katemerritt/growthlog/internal/app"
	apperrors "github.com/katemerritt/growthlog/internal/errors"
	"github.com/katemerritt/growthlog/internal/model"
	"github.com/katemerritt/growthlog/internal/output"
)

// Goals command flags.
var (
	goalsAddFlagDays        int
	goalsAddFlagCategory    string
	goalsAddFlagDescription string
	goalsListFlagAll        bool
)

// goalsCmd represents the goals command.
var goalsCmd = &cobra.Command{
	Use:     "goals",
	Aliases: []string{"g", "goal"},
	Short:   "Manage day-count goals",
	Long: `Track goals like "meditate for 30 days". Progress counts explicitly
completed days, independent of streak continuity. A goal is done once
its completed days reach the target; done goals stay in history.

Examples:
  growthlog goals
  growthlog goals add "meditate daily" --days 30 --category reflection
  growthlog goals done a1b2c3d4
  growthlog goals archive a1b2c3d4`,
	RunE: runGoalsList,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a new goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsAdd,
}

var goalsDoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Record one more completed day on a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsDone,
}

var goalsArchiveCmd = &cobra.Command{
	Use:   "archive ID",
	Short: "Archive a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsArchive,
}

func init() {
	goalsAddCmd.Flags().IntVarP(&goalsAddFlagDays, "days", "d", 30, "Target number of days")
	goalsAddCmd.Flags().StringVarP(&goalsAddFlagCategory, "category", "c", model.GoalCategoryAny,
		"Entry category the goal tracks, or 'any'")
	goalsAddCmd.Flags().StringVar(&goalsAddFlagDescription, "description", "", "Optional description")
	goalsCmd.Flags().BoolVarP(&goalsListFlagAll, "all", "a", false, "Include completed and archived goals")

	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsDoneCmd)
	goalsCmd.AddCommand(goalsArchiveCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoalsList(cmd *cobra.Command, args []string) error {
	user := ctx.App.User()

	var goals []*model.Goal
	var err error
	if goalsListFlagAll {
		goals, err = ctx.App.Goals().List(user.ID)
	} else {
		goals, err = ctx.App.Goals().GetActive(user.ID)
	}
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintGoals(goals)
	}

	cli := ctx.CLIFormatter()
	if len(goals) == 0 {
		cli.Muted("No goals.")
		cli.Muted("Use 'growthlog goals add \"meditate daily\" --days 30' to set one.")
		return nil
	}

	cli.Title(fmt.Sprintf("Goals (%d)", len(goals)))
	cli.Println("")
	for _, g := range goals {
		cli.PrintGoal(g)
	}
	return nil
}

func runGoalsAdd(cmd *cobra.Command, args []string) error {
	goal, err := ctx.App.AddGoal(app.GoalInput{
		Title:       args[0],
		Description: goalsAddFlagDescription,
		TargetDays:  goalsAddFlagDays,
		Category:    goalsAddFlagCategory,
	})
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status": "added",
			"goal":   output.NewGoalOutput(goal),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Goal set: %s (%d days)", goal.Title, goal.TargetDays))
	return nil
}

func runGoalsDone(cmd *cobra.Command, args []string) error {
	id, err := resolveGoalID(args[0])
	if err != nil {
		return err
	}

	goal, err := ctx.App.IncrementGoal(id)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status": "incremented",
			"goal":   output.NewGoalOutput(goal),
		})
	}

	cli := ctx.CLIFormatter()
	if goal.IsCompleted {
		cli.Success(fmt.Sprintf("Goal complete: %s 🎉", goal.Title))
	} else {
		cli.Success(fmt.Sprintf("%s: %d/%d days", goal.Title, goal.CompletedDays, goal.TargetDays))
	}
	cli.PrintGoal(goal)
	return nil
}

func runGoalsArchive(cmd *cobra.Command, args []string) error {
	id, err := resolveGoalID(args[0])
	if err != nil {
		return err
	}

	goal, err := ctx.App.ArchiveGoal(id)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "archived", "id": goal.ID})
	}

	ctx.CLIFormatter().Success(fmt.Sprintf("Archived goal: %s", goal.Title))
	return nil
}

// resolveGoalID accepts a full UUID or an unambiguous prefix.
func resolveGoalID(arg string) (string, error) {
	user := ctx.App.User()
	goals, err := ctx.App.Goals().List(user.ID)
	if err != nil {
		return "", err
	}

	var match string
	for _, goal := range goals {
		if goal.ID == arg {
			return arg, nil
		}
		if len(arg) >= 4 && len(goal.ID) >= len(arg) && goal.ID[:len(arg)] == arg {
			if match != "" && match != goal.ID {
				return "", apperrors.NewUserErrorWithField("id", arg,
					"goal ID prefix is ambiguous", "use more characters of the ID")
			}
			match = goal.ID
		}
	}
	if match == "" {
		return "", apperrors.ErrGoalNotFound
	}
	return match, nil
}
