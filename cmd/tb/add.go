package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/wychen/toolshed/internal/catalog"
)

var addFlags struct {
	name        string
	language    string
	version     string
	platform    string
	purpose     string
	link        string
	tags        string
	snippetPath string
	notes       string
}

func init() {
	addCmd.Flags().StringVar(&addFlags.name, "name", "", "Tool name (required)")
	addCmd.Flags().StringVar(&addFlags.language, "language", "", "Programming language (e.g. python, go)")
	addCmd.Flags().StringVar(&addFlags.version, "version", "", "Version (e.g. 3.11, 1.7.6)")
	addCmd.Flags().StringVar(&addFlags.platform, "platform", "", "Platform (e.g. linux, colab, docker)")
	addCmd.Flags().StringVar(&addFlags.purpose, "purpose", "", "One-line purpose")
	addCmd.Flags().StringVar(&addFlags.link, "link", "", "Docs/notes/GitHub link")
	addCmd.Flags().StringVar(&addFlags.tags, "tags", "", "Comma-separated tags")
	addCmd.Flags().StringVar(&addFlags.snippetPath, "snippet-path", "", "Relative path to the snippet file")
	addCmd.Flags().StringVar(&addFlags.notes, "notes", "", "Free-form notes")
	addCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a tool (upsert by name)",
	Long: `Add a tool to the catalog, or update the existing record with the
same name. Fields are normalized on the way in: the name is slugified,
languages and platforms get canonical spellings, and tags are
lowercased, deduplicated, and sorted.

Examples:
  tb add --name foo --language python --platform colab --tags "a,b"
  tb add --name keep_alive --platform colab --snippet-path snippets/keep_alive.js`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	root := mustFindCatalog()
	db := mustOpenDatabase(root)
	defer db.Close()

	tool := catalog.Normalize(catalog.Tool{
		Name:        addFlags.name,
		Language:    addFlags.language,
		Version:     addFlags.version,
		Platform:    addFlags.platform,
		Purpose:     addFlags.purpose,
		Link:        addFlags.link,
		Tags:        catalog.NormalizeTags(addFlags.tags),
		SnippetPath: addFlags.snippetPath,
		Notes:       addFlags.notes,
	})

	stored, err := db.Upsert(tool)
	if err != nil {
		if errors.Is(err, catalog.ErrEmptyName) {
			exitWithError(ExitDataError, "--name is required and must contain at least one letter, digit, - or _")
		}
		exitWithError(ExitError, "adding tool: %v", err)
	}

	if humanOutput {
		cfg := loadCatalogConfig(root)
		printToolDetail(stored, displayLocation(cfg))
	} else {
		outputJSON(stored)
	}

	return nil
}
