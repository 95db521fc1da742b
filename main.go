// Growthlog - A command-line habit and growth journal
package main

import (
	"os"

	"github.com/katemerritt/growthlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
