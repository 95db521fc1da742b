package cmd

import (
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/katemerritt/growthlog/internal/motivation"
)

// Quote command flags.
var quoteFlagRandom bool

// quoteCmd represents the quote command.
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Show the quote of the day",
	Long: `Show the quote of the day. The daily quote is fixed for the calendar
day; use --random for a different one.

Examples:
  growthlog quote
  growthlog quote --random`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().BoolVarP(&quoteFlagRandom, "random", "r", false, "Pick a random quote instead")
	rootCmd.AddCommand(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	var q motivation.Quote
	if quoteFlagRandom {
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
		q = motivation.RandomQuote(rng)
	} else {
		q = motivation.DailyQuote(time.Now())
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintQuote(q)
	}

	ctx.CLIFormatter().PrintQuote(q)
	return nil
}
