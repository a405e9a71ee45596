package importer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/wychen/toolshed/internal/catalog"
	"github.com/wychen/toolshed/internal/export"
	"github.com/wychen/toolshed/internal/storage"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tools.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestReadCSV_RoundTrip(t *testing.T) {
	ts := time.Date(2025, 9, 25, 9, 12, 0, 0, time.UTC)
	tools := []catalog.Tool{
		{
			Name:        "keep_alive",
			Language:    "JavaScript",
			Platform:    "Colab",
			Purpose:     "Keep sessions alive, even overnight",
			Tags:        []string{"auto_disconnect", "colab"},
			SnippetPath: "snippets/keep_alive.js",
			CreatedAt:   ts,
			UpdatedAt:   ts,
		},
		{
			Name:      "csv_dedupe",
			Language:  "Python",
			Version:   "3.11",
			Purpose:   "去除重複列",
			CreatedAt: ts,
			UpdatedAt: ts,
		},
	}

	path := filepath.Join(t.TempDir(), "tools.csv")
	if err := export.WriteCSV(path, tools); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	got, rowErrs, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("ReadCSV() row errors = %v, want none", rowErrs)
	}
	if len(got) != len(tools) {
		t.Fatalf("ReadCSV() returned %d tools, want %d", len(got), len(tools))
	}

	for i, want := range tools {
		g := got[i]
		if g.Name != want.Name || g.Language != want.Language || g.Version != want.Version ||
			g.Platform != want.Platform || g.Purpose != want.Purpose ||
			g.SnippetPath != want.SnippetPath || !reflect.DeepEqual(g.Tags, want.Tags) {
			t.Errorf("tool %d = %+v, want %+v", i, g, want)
		}
		if !g.CreatedAt.Equal(want.CreatedAt) {
			t.Errorf("tool %d created_at = %v, want %v", i, g.CreatedAt, want.CreatedAt)
		}
	}
}

// TestRoundTrip_StoreToStore exports one store and imports the file
// into a fresh one; the field tuples must come through unchanged
// regardless of ids and timestamps.
func TestRoundTrip_StoreToStore(t *testing.T) {
	tmp := t.TempDir()

	src, err := storage.OpenDB(filepath.Join(tmp, "src.db"))
	if err != nil {
		t.Fatalf("OpenDB(src) error = %v", err)
	}
	defer src.Close()

	seed := []catalog.Tool{
		{Name: "keep_alive", Language: "JavaScript", Platform: "Colab", Tags: []string{"colab"}},
		{Name: "csv_dedupe", Language: "Python", Version: "3.11", Purpose: "dedupe, fast"},
	}
	for _, tool := range seed {
		if _, err := src.Upsert(tool); err != nil {
			t.Fatalf("Upsert(%s) error = %v", tool.Name, err)
		}
	}

	exported, err := src.List(storage.Filters{}, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	csvPath := filepath.Join(tmp, "tools.csv")
	if err := export.WriteCSV(csvPath, exported); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	dst, err := storage.OpenDB(filepath.Join(tmp, "dst.db"))
	if err != nil {
		t.Fatalf("OpenDB(dst) error = %v", err)
	}
	defer dst.Close()

	tools, rowErrs, err := ReadCSV(csvPath)
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("ReadCSV() = %v, %v", rowErrs, err)
	}
	if _, err := dst.UpsertAll(tools); err != nil {
		t.Fatalf("UpsertAll() error = %v", err)
	}

	got, err := dst.List(storage.Filters{}, 0)
	if err != nil {
		t.Fatalf("List(dst) error = %v", err)
	}
	if len(got) != len(seed) {
		t.Fatalf("destination has %d tools, want %d", len(got), len(seed))
	}
	for i, want := range seed {
		g := got[i]
		if g.Name != want.Name || g.Language != want.Language || g.Version != want.Version ||
			g.Platform != want.Platform || g.Purpose != want.Purpose ||
			!reflect.DeepEqual(g.Tags, want.Tags) {
			t.Errorf("tool %d = %+v, want fields of %+v", i, g, want)
		}
	}
}

func TestReadCSV_ReorderedAndPartialHeader(t *testing.T) {
	path := writeFile(t, "language,name,tags\nPython,foo,\"b,a\"\n")

	tools, rowErrs, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("row errors = %v, want none", rowErrs)
	}
	if len(tools) != 1 {
		t.Fatalf("got %d tools, want 1", len(tools))
	}

	tool := tools[0]
	if tool.Name != "foo" || tool.Language != "Python" {
		t.Errorf("tool = %+v", tool)
	}
	if !reflect.DeepEqual(tool.Tags, []string{"a", "b"}) {
		t.Errorf("tags = %v, want [a b]", tool.Tags)
	}
}

func TestReadCSV_NormalizesFields(t *testing.T) {
	path := writeFile(t, "name,language,platform,version\nKeep Alive,py,google colab,v2\n")

	tools, _, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	tool := tools[0]
	if tool.Name != "keep_alive" || tool.Language != "Python" ||
		tool.Platform != "Colab" || tool.Version != "2" {
		t.Errorf("normalization missed: %+v", tool)
	}
}

func TestReadCSV_BOMHeader(t *testing.T) {
	path := writeFile(t, "\ufeffname,language\nfoo,Go\n")

	tools, _, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(tools) != 1 || tools[0].Name != "foo" {
		t.Errorf("BOM header not handled: %v", tools)
	}
}

func TestReadCSV_FormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", ""},
		{"missing name column", "language,platform\nPython,Linux\n"},
		{"unknown column", "name,color\nfoo,red\n"},
		{"duplicate column", "name,name\nfoo,bar\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.content)
			_, _, err := ReadCSV(path)
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Errorf("ReadCSV() error = %v, want FormatError", err)
			}
		})
	}
}

func TestReadCSV_SkipsMalformedRows(t *testing.T) {
	content := "name,language,platform\n" +
		"good,Python,Linux\n" +
		"short,Python\n" + // wrong field count
		",Go,Linux\n" + // empty name
		"also_good,Go,Linux\n"
	path := writeFile(t, content)

	tools, rowErrs, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	var names []string
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	if !reflect.DeepEqual(names, []string{"good", "also_good"}) {
		t.Errorf("imported names = %v, want [good also_good]", names)
	}

	if len(rowErrs) != 2 {
		t.Fatalf("row errors = %v, want 2", rowErrs)
	}
	if rowErrs[0].Line != 3 || rowErrs[1].Line != 4 {
		t.Errorf("row error lines = %d, %d, want 3, 4", rowErrs[0].Line, rowErrs[1].Line)
	}
}

func TestReadCSV_BadTimestampFallsBack(t *testing.T) {
	path := writeFile(t, "name,created_at,updated_at\nfoo,yesterday,whenever\n")

	tools, rowErrs, err := ReadCSV(path)
	if err != nil || len(rowErrs) != 0 {
		t.Fatalf("ReadCSV() = %v, %v", rowErrs, err)
	}
	if !tools[0].CreatedAt.IsZero() {
		t.Errorf("created_at = %v, want zero (store fills in)", tools[0].CreatedAt)
	}
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, _, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Error("ReadCSV(missing) expected error, got nil")
	}
	var formatErr *FormatError
	if errors.As(err, &formatErr) {
		t.Error("missing file should not be a FormatError")
	}
}
