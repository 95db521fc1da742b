package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apperrors "github.com/katemerritt/growthlog/internal/errors"
	"github.com/katemerritt/growthlog/internal/model"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change preferences",
	Long: `View and change preferences.

Keys:
  grace-days        missed days tolerated before a streak breaks (default 1)
  reminder-time     daily reminder time, HH:MM
  week-starts-on    0 (Sunday) or 1 (Monday)
  theme             light, dark, or system
  notifications     on or off
  recall-reminders  on or off

Examples:
  growthlog config
  growthlog config get grace-days
  growthlog config set grace-days 2
  growthlog config set reminder-time 21:00`,
	RunE: runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Show one preference",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one preference",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func prefValues(prefs model.Preferences) map[string]string {
	return map[string]string{
		"grace-days":       strconv.Itoa(prefs.GraceDays),
		"reminder-time":    prefs.DailyReminderTime,
		"week-starts-on":   strconv.Itoa(prefs.WeekStartsOn),
		"theme":            string(prefs.Theme),
		"notifications":    onOff(prefs.EnableNotifications),
		"recall-reminders": onOff(prefs.EnableRecallReminders),
	}
}

// prefKeys fixes the display order.
var prefKeys = []string{
	"grace-days", "reminder-time", "week-starts-on",
	"theme", "notifications", "recall-reminders",
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	prefs := ctx.App.User().Preferences

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(prefs)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Preferences")
	values := prefValues(prefs)
	for _, key := range prefKeys {
		cli.Printf("  %-17s %s\n", key, values[key])
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	values := prefValues(ctx.App.User().Preferences)
	value, ok := values[key]
	if !ok {
		return unknownConfigKey(key)
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{key: value})
	}
	ctx.Formatter.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	prefs := ctx.App.User().Preferences

	switch key {
	case "grace-days":
		n, err := strconv.Atoi(value)
		if err != nil {
			return apperrors.ErrInvalidGraceDays
		}
		prefs.GraceDays = n
	case "reminder-time":
		prefs.DailyReminderTime = value
	case "week-starts-on":
		n, err := strconv.Atoi(value)
		if err != nil {
			return apperrors.NewUserErrorWithField(key, value, "invalid week start", "use 0 (Sunday) or 1 (Monday)")
		}
		prefs.WeekStartsOn = n
	case "theme":
		prefs.Theme = model.Theme(value)
	case "notifications":
		prefs.EnableNotifications = value == "on" || value == "true"
	case "recall-reminders":
		prefs.EnableRecallReminders = value == "on" || value == "true"
	default:
		return unknownConfigKey(key)
	}

	user, err := ctx.App.UpdatePreferences(prefs)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(user.Preferences)
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Set %s to %s", key, value))
	return nil
}

func unknownConfigKey(key string) error {
	return apperrors.NewUserErrorWithField("key", key,
		"unknown preference key",
		"run 'growthlog config' to see available keys")
}
