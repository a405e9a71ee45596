package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wychen/toolshed/internal/catalog"
	"github.com/wychen/toolshed/internal/storage"
)

var (
	listFilters storage.Filters
	listLimit   int
)

func init() {
	listCmd.Flags().StringVar(&listFilters.Language, "language", "", "Filter by language (substring)")
	listCmd.Flags().StringVar(&listFilters.Platform, "platform", "", "Filter by platform (substring)")
	listCmd.Flags().StringVar(&listFilters.Version, "version", "", "Filter by version (substring)")
	listCmd.Flags().StringVar(&listFilters.Tag, "tag", "", "Filter by exact tag")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tools in the catalog",
	Long: `List tools in insertion order, optionally filtered.

Examples:
  tb list
  tb list --platform colab
  tb list --tag etl --limit 20`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	root := mustFindCatalog()
	db := mustOpenDatabase(root)
	defer db.Close()

	tools, err := db.List(listFilters, listLimit)
	if err != nil {
		exitWithError(ExitError, "listing tools: %v", err)
	}

	total, _ := db.Count()

	if humanOutput {
		if len(tools) == 0 {
			fmt.Println("No tools in catalog")
		} else {
			if len(tools) < total {
				fmt.Printf("%d of %d tools:\n\n", len(tools), total)
			} else {
				fmt.Printf("%d tools in catalog:\n\n", len(tools))
			}
			for _, t := range tools {
				printToolSummary(t)
			}
		}
	} else {
		if tools == nil {
			tools = []catalog.Tool{}
		}
		outputJSON(tools)
	}

	return nil
}
