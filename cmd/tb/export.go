package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wychen/toolshed/internal/export"
	"github.com/wychen/toolshed/internal/storage"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export-csv [path]",
	Short: "Export the catalog to a CSV file",
	Long: `Export all tools to a CSV file, overwriting it. With no path, the
configured export_path is used (tools.csv at the catalog root by
default). The CSV is the artifact meant for version control; the
database itself should stay gitignored.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

// ExportResult is the response for the export-csv command.
type ExportResult struct {
	Status   string `json:"status"`
	Path     string `json:"path"`
	Exported int    `json:"exported"`
}

func runExport(cmd *cobra.Command, args []string) error {
	root := mustFindCatalog()
	db := mustOpenDatabase(root)
	defer db.Close()

	path := loadCatalogConfig(root).ResolveExportPath(root)
	if len(args) == 1 {
		path = args[0]
	}

	tools, err := db.List(storage.Filters{}, 0)
	if err != nil {
		exitWithError(ExitError, "listing tools: %v", err)
	}

	if err := export.WriteCSV(path, tools); err != nil {
		exitWithError(ExitError, "exporting: %v", err)
	}

	if humanOutput {
		fmt.Printf("Exported %d tools to %s\n", len(tools), path)
	} else {
		outputJSON(ExportResult{Status: "exported", Path: path, Exported: len(tools)})
	}

	return nil
}
