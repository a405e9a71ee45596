package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wychen/toolshed/internal/config"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show catalog paths and record count",
	RunE:  runInfo,
}

// InfoResponse is the response for the info command.
type InfoResponse struct {
	Root       string `json:"root"`
	Database   string `json:"database"`
	ExportPath string `json:"export_path"`
	Tools      int    `json:"tools"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	root := mustFindCatalog()
	db := mustOpenDatabase(root)
	defer db.Close()

	count, err := db.Count()
	if err != nil {
		exitWithError(ExitError, "counting tools: %v", err)
	}

	info := InfoResponse{
		Root:       root,
		Database:   config.DBPath(root),
		ExportPath: loadCatalogConfig(root).ResolveExportPath(root),
		Tools:      count,
	}

	if humanOutput {
		fmt.Printf("root:     %s\n", info.Root)
		fmt.Printf("database: %s\n", info.Database)
		fmt.Printf("export:   %s\n", info.ExportPath)
		fmt.Printf("tools:    %d\n", info.Tools)
	} else {
		outputJSON(info)
	}

	return nil
}
