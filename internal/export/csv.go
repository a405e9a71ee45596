// Package export writes the catalog to its delimited-text mirror.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wychen/toolshed/internal/catalog"
)

// Headers is the fixed CSV column order, shared with the importer.
// The export mirrors every record attribute except the store-local id.
var Headers = []string{
	"name", "language", "version", "platform", "purpose", "link",
	"tags", "snippet_path", "notes", "created_at", "updated_at",
}

// WriteCSV writes all tools to path, overwriting it: a header row,
// then one row per record. Embedded commas (the tag join delimiter
// inside the tags field, free text in purpose/notes) are handled by
// RFC 4180 quoting.
func WriteCSV(path string, tools []catalog.Tool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, t := range tools {
		if err := w.Write(Row(t)); err != nil {
			return fmt.Errorf("writing row for %s: %w", t.Name, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing export: %w", err)
	}
	return f.Close()
}

// Row serializes a tool in the Headers column order.
func Row(t catalog.Tool) []string {
	return []string{
		t.Name,
		t.Language,
		t.Version,
		t.Platform,
		t.Purpose,
		t.Link,
		t.TagsString(),
		t.SnippetPath,
		t.Notes,
		catalog.FormatTime(t.CreatedAt),
		catalog.FormatTime(t.UpdatedAt),
	}
}
