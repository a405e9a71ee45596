package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Get a single tool by name",
	Long: `Get a single tool by its (slugified) name.

Example:
  tb get keep_alive`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	root := mustFindCatalog()
	db := mustOpenDatabase(root)
	defer db.Close()

	name := args[0]
	tool, err := db.GetByName(name)
	if err != nil {
		exitWithError(ExitError, "getting tool: %v", err)
	}
	if tool == nil {
		exitWithError(ExitError, "tool not found: %s", name)
	}

	if humanOutput {
		cfg := loadCatalogConfig(root)
		printToolDetail(*tool, displayLocation(cfg))
	} else {
		outputJSON(tool)
	}

	return nil
}
