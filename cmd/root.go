// Package cmd provides the CLI commands for Growthlog.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/katemerritt/growthlog/internal/errors"
	"github.com/katemerritt/growthlog/internal/logging"
	"github.com/katemerritt/growthlog/internal/output"
	"github.com/katemerritt/growthlog/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "growthlog",
	Short: "A local-first habit and journal tracker",
	Long: `Growthlog is a command-line habit and journal tracker. Log short
entries per day, and it derives streaks, goals, achievements, and gentle
motivation from your history. Everything stays on your machine.

Examples:
  growthlog add exercise happy "morning run, felt great"
  growthlog today
  growthlog streaks
  growthlog recall`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		if flagDebug {
			logging.InitDebug()
		}

		opts := runtime.DefaultOptions()
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show today's summary.
		return runToday(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("growthlog %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if ctx != nil && ctx.IsJSON() {
		ctx.JSONFormatter().PrintError("error", err.Error(), apperrors.Suggestion(err))
	} else {
		msg := err.Error()
		if suggestion := apperrors.Suggestion(err); suggestion != "" {
			msg += "\n" + suggestion
		}
		os.Stderr.WriteString("Error: " + msg + "\n")
	}
	os.Exit(1)
}
