// Package catalog defines the tool record type and its normalization rules.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the timestamp format used in the store and the CSV
// export: ISO8601 UTC with second precision, e.g. 2025-09-25T09:12:00Z.
const TimeLayout = "2006-01-02T15:04:05Z"

// ErrEmptyName is returned when a record has no usable name.
var ErrEmptyName = errors.New("name must not be empty")

// Tool is one catalog entry describing a tool or snippet.
type Tool struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	Language    string    `json:"language,omitempty"`
	Version     string    `json:"version,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	Purpose     string    `json:"purpose,omitempty"`
	Link        string    `json:"link,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	SnippetPath string    `json:"snippet_path,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// Validate checks record invariants that must hold before a write.
func (t *Tool) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

// TagsString returns the tags joined with the fixed delimiter used by
// the store and the CSV export. Normalized tags never contain commas,
// so the joined form is unambiguous.
func (t *Tool) TagsString() string {
	return strings.Join(t.Tags, ",")
}

// SplitTags splits a stored comma-joined tag string back into a slice.
// An empty string yields nil, not a one-element slice.
func SplitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// FormatTime renders a timestamp in the store layout. The zero time
// renders as the empty string.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Truncate(time.Second).Format(TimeLayout)
}

// timeLayouts are the formats accepted when parsing timestamps from
// external input (CSV files, flags). The first is the canonical form.
var timeLayouts = []string{
	TimeLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
}

// ParseTime parses a timestamp in any accepted layout and converts it
// to UTC. An empty string yields the zero time with no error, leaving
// the caller to fill in a default.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Second), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q", s)
}

// Now returns the current time in the precision the store uses.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
