package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wychen/toolshed/internal/config"
	"github.com/wychen/toolshed/internal/storage"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a toolshed catalog",
	Long: `Initialize a toolshed catalog in the current directory.

Creates:
  .toolshed/
  ├── tools.db        # SQLite store (add this to .gitignore)
  └── config.json     # Default config

Running init on an existing catalog succeeds without touching
its records.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root, err := config.StartDir()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	existing := config.IsCatalog(root)

	if err := os.MkdirAll(config.ToolshedPath(root), 0755); err != nil {
		exitWithError(ExitError, "creating %s directory: %v", config.ToolshedDir, err)
	}

	// Opening the database creates the schema; on an existing
	// catalog this is a no-op.
	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "creating database: %v", err)
	}
	db.Close()

	// Only write a default config if none exists, so re-init never
	// clobbers settings.
	if _, err := os.Stat(config.ConfigPath(root)); os.IsNotExist(err) {
		cfg := &config.Config{ExportPath: config.DefaultExportFile}
		if err := cfg.Save(root); err != nil {
			exitWithError(ExitError, "creating config.json: %v", err)
		}
	}

	status := "initialized"
	if existing {
		status = "already initialized"
	}

	if humanOutput {
		if existing {
			fmt.Printf("Catalog already initialized in %s\n", root)
		} else {
			fmt.Printf("Initialized toolshed catalog in %s\n", root)
		}
	} else {
		outputJSON(StatusResponse{
			Status: status,
			Path:   root,
		})
	}

	return nil
}
