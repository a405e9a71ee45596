package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wychen/toolshed/internal/catalog"
	"github.com/wychen/toolshed/internal/export"
)

var (
	templatePath        string
	templateWithExample bool
)

func init() {
	templateCmd.Flags().StringVar(&templatePath, "path", "", "Output path (default: the configured export path)")
	templateCmd.Flags().BoolVar(&templateWithExample, "with-example", false, "Include one example row")
	rootCmd.AddCommand(templateCmd)
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a CSV template with the catalog's column headers",
	Long: `Write a CSV file containing just the header row, ready to be
filled in by hand and fed to import-csv. With --with-example, one
sample row is included; delete or overwrite it before importing.`,
	RunE: runTemplate,
}

func runTemplate(cmd *cobra.Command, args []string) error {
	root := mustFindCatalog()

	path := loadCatalogConfig(root).ResolveExportPath(root)
	if templatePath != "" {
		path = templatePath
	}

	var tools []catalog.Tool
	if templateWithExample {
		now := catalog.Now()
		tools = append(tools, catalog.Tool{
			Name:        "example-tool",
			Language:    "Python",
			Version:     "3.11",
			Platform:    "Linux",
			Purpose:     "Example row, replace me",
			Link:        "https://example.com",
			Tags:        []string{"demo", "template"},
			SnippetPath: "snippets/example_snippet.py",
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := export.WriteCSV(path, tools); err != nil {
		exitWithError(ExitError, "writing template: %v", err)
	}

	if humanOutput {
		fmt.Printf("CSV template written to %s\n", path)
	} else {
		outputJSON(StatusResponse{Status: "written", Path: path})
	}

	return nil
}
