package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wychen/toolshed/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set catalog configuration values",
	Long: `Get or set catalog configuration values.

Usage:
  tb config                       # Show all config
  tb config export-path           # Get specific value
  tb config export-path data/tools.csv
  tb config timezone Asia/Taipei

Keys:
  export-path  Default target for export-csv, relative to the catalog root
  timezone     IANA zone used when printing timestamps for humans`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	ExportPath string `json:"export_path,omitempty"`
	Timezone   string `json:"timezone,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	root := mustFindCatalog()
	cfg := loadCatalogConfig(root)

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("export-path: %s\n", cfg.ExportPath)
			fmt.Printf("timezone:    %s\n", cfg.Timezone)
		} else {
			outputJSON(ConfigResponse{ExportPath: cfg.ExportPath, Timezone: cfg.Timezone})
		}
		return nil
	}

	key := normalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		switch key {
		case "export-path":
			if humanOutput {
				fmt.Println(cfg.ExportPath)
			} else {
				outputJSON(map[string]string{"export_path": cfg.ExportPath})
			}
		case "timezone":
			if humanOutput {
				fmt.Println(cfg.Timezone)
			} else {
				outputJSON(map[string]string{"timezone": cfg.Timezone})
			}
		default:
			exitWithError(ExitError, "unknown configuration key: %s", args[0])
		}
		return nil
	}

	// Two args: set value
	value := args[1]

	switch key {
	case "export-path":
		cfg.ExportPath = value
	case "timezone":
		if err := config.ValidateTimezone(value); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		cfg.Timezone = value
	default:
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	if err := cfg.Save(root); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{Status: "updated", Key: key, Value: value})
	}

	return nil
}

// normalizeKey converts key formats (export-path, export_path) to a
// consistent form.
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
