package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wychen/toolshed/internal/catalog"
	"github.com/wychen/toolshed/internal/importer"
	"github.com/wychen/toolshed/internal/storage"
)

var importDryRun bool

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Parse and report without writing to the store")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import-csv <path>",
	Short: "Import tools from a CSV file (upsert by name)",
	Long: `Import tools from a CSV export. Rows are matched to existing
records by name: a new name inserts, a known name updates in place
(the record keeps its id and created_at). Re-importing an unchanged
export is a no-op.

A missing or unrecognized header aborts the import before anything is
written. Malformed rows are skipped and reported; the remaining rows
are applied in a single transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResult is the response for the import-csv command.
type ImportResult struct {
	Imported int      `json:"imported"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	root := mustFindCatalog()
	db := mustOpenDatabase(root)
	defer db.Close()

	tools, rowErrs, err := importer.ReadCSV(args[0])
	if err != nil {
		var formatErr *importer.FormatError
		if errors.As(err, &formatErr) {
			exitWithError(ExitDataError, "invalid import file: %v", formatErr)
		}
		exitWithError(ExitError, "reading import file: %v", err)
	}

	errStrs := make([]string, len(rowErrs))
	for i, e := range rowErrs {
		errStrs[i] = e.Error()
	}

	imported, updated, err := countImports(db, tools)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if importDryRun {
		if humanOutput {
			fmt.Println("Dry run - no changes written")
			printImportCounts(imported, updated, len(rowErrs), errStrs)
		} else {
			outputJSON(ImportResult{Imported: imported, Updated: updated, Skipped: len(rowErrs), Errors: errStrs})
		}
		return nil
	}

	if _, err := db.UpsertAll(tools); err != nil {
		exitWithError(ExitError, "importing: %v", err)
	}

	if humanOutput {
		fmt.Printf("Imported from %s\n", args[0])
		printImportCounts(imported, updated, len(rowErrs), errStrs)
	} else {
		outputJSON(ImportResult{Imported: imported, Updated: updated, Skipped: len(rowErrs), Errors: errStrs})
	}

	return nil
}

// countImports classifies rows as inserts or updates before they are
// applied. A name counts as an insert at most once: later rows with
// the same name update the row the batch itself inserts.
func countImports(db *storage.DB, tools []catalog.Tool) (imported, updated int, err error) {
	seen := make(map[string]bool)
	for _, t := range tools {
		if seen[t.Name] {
			updated++
			continue
		}
		seen[t.Name] = true

		existing, err := db.GetByName(t.Name)
		if err != nil {
			return 0, 0, fmt.Errorf("checking %s: %w", t.Name, err)
		}
		if existing == nil {
			imported++
		} else {
			updated++
		}
	}
	return imported, updated, nil
}

func printImportCounts(imported, updated, skipped int, errs []string) {
	fmt.Printf("  Imported: %d new tools\n", imported)
	fmt.Printf("  Updated:  %d existing tools (matched by name)\n", updated)
	fmt.Printf("  Skipped:  %d malformed rows\n", skipped)
	if len(errs) > 0 {
		fmt.Println("\nErrors:")
		for _, e := range errs {
			fmt.Printf("  - %s\n", e)
		}
	}
}
