package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a tool from the catalog",
	Long: `Remove a tool by its (slugified) name. The freed id is never
reassigned to a later record.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

// RemoveResponse is the response for the remove command.
type RemoveResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
}

func runRemove(cmd *cobra.Command, args []string) error {
	root := mustFindCatalog()
	db := mustOpenDatabase(root)
	defer db.Close()

	name := args[0]
	removed, err := db.Delete(name)
	if err != nil {
		exitWithError(ExitError, "removing tool: %v", err)
	}
	if !removed {
		exitWithError(ExitError, "tool not found: %s", name)
	}

	if humanOutput {
		fmt.Printf("Removed %s\n", name)
	} else {
		outputJSON(RemoveResponse{Status: "removed", Name: name})
	}

	return nil
}
