package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/wychen/toolshed/internal/catalog"
	"github.com/wychen/toolshed/internal/config"
	"github.com/wychen/toolshed/internal/storage"
)

// Constants for output formatting.
const (
	DefaultSearchLimit = 50 // Default limit for the search command

	ListNameColWidth  = 20 // Name column width in list output
	ListPurposeMaxLen = 48 // Purpose truncation in list output
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// mustFindCatalog locates the catalog root or exits with guidance.
func mustFindCatalog() string {
	start, err := config.StartDir()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	root, err := config.FindCatalog(start)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return root
}

// mustOpenDatabase opens the catalog's database or exits.
func mustOpenDatabase(root string) *storage.DB {
	db, err := storage.OpenDB(config.DBPath(root))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// loadCatalogConfig reads the catalog config, tolerating a missing
// file (catalogs created before the config existed).
func loadCatalogConfig(root string) *config.Config {
	cfg, err := config.Load(root)
	if err != nil {
		return &config.Config{}
	}
	return cfg
}

// displayLocation resolves the timezone for human-readable timestamps.
func displayLocation(cfg *config.Config) *time.Location {
	return config.DisplayLocation(cfg.Timezone)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// formatTimestamp renders a timestamp in the configured display
// timezone alongside the stored UTC form.
func formatTimestamp(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s (%s)", t.In(loc).Format("2006-01-02 15:04:05 MST"), catalog.FormatTime(t))
}

// printToolSummary prints one tool as a single table row.
func printToolSummary(t catalog.Tool) {
	langVer := t.Language
	if t.Version != "" {
		langVer += " " + t.Version
	}
	fmt.Printf("  %-*s %-12s %-10s %s\n",
		ListNameColWidth, t.Name, langVer, t.Platform,
		truncateString(t.Purpose, ListPurposeMaxLen))
}

// printToolDetail prints every populated field of a tool.
func printToolDetail(t catalog.Tool, loc *time.Location) {
	fmt.Printf("%s (id %d)\n", t.Name, t.ID)
	if t.Language != "" {
		fmt.Printf("  language: %s %s\n", t.Language, t.Version)
	}
	if t.Platform != "" {
		fmt.Printf("  platform: %s\n", t.Platform)
	}
	if t.Purpose != "" {
		fmt.Printf("  purpose:  %s\n", t.Purpose)
	}
	if t.Link != "" {
		fmt.Printf("  link:     %s\n", t.Link)
	}
	if len(t.Tags) > 0 {
		fmt.Printf("  tags:     %s\n", t.TagsString())
	}
	if t.SnippetPath != "" {
		fmt.Printf("  snippet:  %s\n", t.SnippetPath)
	}
	if t.Notes != "" {
		fmt.Printf("  notes:    %s\n", t.Notes)
	}
	fmt.Printf("  created:  %s\n", formatTimestamp(t.CreatedAt, loc))
	fmt.Printf("  updated:  %s\n", formatTimestamp(t.UpdatedAt, loc))
}
