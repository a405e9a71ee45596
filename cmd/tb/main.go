// Package main provides the tb CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Errors from inside commands print themselves before
		// exiting; this covers flag and usage errors.
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tb",
	Short: "Personal catalog of code snippets and tools",
	Long: `tb is a CLI for cataloging code snippets and tools by metadata
(name, language, platform, tags, purpose).

Records live in a local SQLite database and are mirrored to a CSV
file via export-csv/import-csv so the catalog can be tracked in git.
All commands output JSON by default for easy scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
