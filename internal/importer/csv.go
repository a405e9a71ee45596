// Package importer parses the delimited-text mirror back into records.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wychen/toolshed/internal/catalog"
	"github.com/wychen/toolshed/internal/export"
)

// FormatError reports a problem with the file as a whole (missing or
// unrecognized header). It aborts the import before anything is
// written to the store.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return e.Msg
}

// RowError reports a single malformed row. Rows with errors are
// skipped; the rest of the file still imports.
type RowError struct {
	Line int    `json:"line"`
	Msg  string `json:"error"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ReadCSV parses a CSV export into normalized tool records.
//
// The header is matched by column name, so column order and omitted
// optional columns are tolerated; a missing name column or an unknown
// column is a FormatError. Malformed rows (wrong field count, empty
// name) are returned as RowErrors alongside the good records.
func ReadCSV(path string) ([]catalog.Tool, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // field counts are checked against the header below

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, &FormatError{Msg: "empty file: missing header row"}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	columns, err := mapHeader(header)
	if err != nil {
		return nil, nil, err
	}

	var tools []catalog.Tool
	var rowErrs []RowError
	line := 1

	for {
		line++
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				rowErrs = append(rowErrs, RowError{Line: parseErr.Line, Msg: parseErr.Err.Error()})
				continue
			}
			return nil, nil, fmt.Errorf("reading row %d: %w", line, err)
		}

		if len(record) != len(header) {
			rowErrs = append(rowErrs, RowError{
				Line: line,
				Msg:  fmt.Sprintf("expected %d fields, got %d", len(header), len(record)),
			})
			continue
		}

		t, err := rowTool(columns, record)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Line: line, Msg: err.Error()})
			continue
		}
		tools = append(tools, t)
	}

	return tools, rowErrs, nil
}

// mapHeader maps known column names to their positions.
func mapHeader(header []string) (map[string]int, error) {
	known := make(map[string]bool, len(export.Headers))
	for _, h := range export.Headers {
		known[h] = true
	}

	columns := make(map[string]int, len(header))
	for i, raw := range header {
		// Strip a UTF-8 BOM; spreadsheet tools love to add one.
		name := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		if !known[name] {
			return nil, &FormatError{Msg: fmt.Sprintf("unknown column: %q", raw)}
		}
		if _, dup := columns[name]; dup {
			return nil, &FormatError{Msg: fmt.Sprintf("duplicate column: %q", name)}
		}
		columns[name] = i
	}

	if _, ok := columns["name"]; !ok {
		return nil, &FormatError{Msg: "missing required column: name"}
	}
	return columns, nil
}

func rowTool(columns map[string]int, record []string) (catalog.Tool, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	t := catalog.Normalize(catalog.Tool{
		Name:        field("name"),
		Language:    field("language"),
		Version:     field("version"),
		Platform:    field("platform"),
		Purpose:     field("purpose"),
		Link:        field("link"),
		Tags:        catalog.NormalizeTags(field("tags")),
		SnippetPath: field("snippet_path"),
		Notes:       field("notes"),
	})

	if err := t.Validate(); err != nil {
		return catalog.Tool{}, err
	}

	// An unparseable timestamp is not worth losing the row over: the
	// zero time makes the store fill in fresh values.
	t.CreatedAt, _ = catalog.ParseTime(field("created_at"))
	t.UpdatedAt, _ = catalog.ParseTime(field("updated_at"))

	return t, nil
}
