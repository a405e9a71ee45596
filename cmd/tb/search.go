package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wychen/toolshed/internal/catalog"
	"github.com/wychen/toolshed/internal/storage"
)

var (
	searchFilters storage.Filters
	searchLimit   int
)

func init() {
	searchCmd.Flags().StringVar(&searchFilters.Language, "language", "", "Filter by language (substring)")
	searchCmd.Flags().StringVar(&searchFilters.Platform, "platform", "", "Filter by platform (substring)")
	searchCmd.Flags().StringVar(&searchFilters.Version, "version", "", "Filter by version (substring)")
	searchCmd.Flags().StringVar(&searchFilters.Tag, "tag", "", "Filter by exact tag")
	searchCmd.Flags().IntVar(&searchLimit, "limit", DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tools by keyword",
	Long: `Search tools by keyword. The query matches case-insensitive
substrings of the name, purpose, tags, link, and notes, and can be
combined with field filters.

Examples:
  tb search colab
  tb search etl --language python
  tb search "" --tag viz`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	root := mustFindCatalog()
	db := mustOpenDatabase(root)
	defer db.Close()

	tools, err := db.Search(args[0], searchFilters, searchLimit)
	if err != nil {
		exitWithError(ExitError, "searching: %v", err)
	}

	// Empty result is not an error
	if tools == nil {
		tools = []catalog.Tool{}
	}

	if humanOutput {
		if len(tools) == 0 {
			fmt.Println("No tools found")
		} else {
			fmt.Printf("Found %d tools:\n\n", len(tools))
			for _, t := range tools {
				printToolSummary(t)
			}
		}
	} else {
		outputJSON(tools)
	}

	return nil
}
