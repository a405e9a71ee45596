package catalog

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tool := Tool{Name: "jq"}
	if err := tool.Validate(); err != nil {
		t.Errorf("Validate() with name = %v, want nil", err)
	}

	for _, name := range []string{"", "   "} {
		tool := Tool{Name: name}
		if err := tool.Validate(); !errors.Is(err, ErrEmptyName) {
			t.Errorf("Validate() with name %q = %v, want ErrEmptyName", name, err)
		}
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2025, 9, 25, 9, 12, 0, 0, time.UTC)

	tests := []string{
		"2025-09-25T09:12:00Z",
		"2025-09-25T09:12:00",
		"2025-09-25 09:12:00",
		"2025/09/25 09:12:00",
		"2025-09-25T17:12:00+08:00", // converted to UTC
	}
	for _, in := range tests {
		got, err := ParseTime(in)
		if err != nil {
			t.Errorf("ParseTime(%q) error = %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseTime(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseTime_Empty(t *testing.T) {
	got, err := ParseTime("  ")
	if err != nil {
		t.Fatalf("ParseTime(empty) error = %v", err)
	}
	if !got.IsZero() {
		t.Errorf("ParseTime(empty) = %v, want zero time", got)
	}
}

func TestParseTime_Invalid(t *testing.T) {
	if _, err := ParseTime("yesterday"); err == nil {
		t.Error("ParseTime(\"yesterday\") expected error, got nil")
	}
}

func TestFormatTime_RoundTrip(t *testing.T) {
	now := Now()
	parsed, err := ParseTime(FormatTime(now))
	if err != nil {
		t.Fatalf("ParseTime(FormatTime(now)) error = %v", err)
	}
	if !parsed.Equal(now) {
		t.Errorf("round trip = %v, want %v", parsed, now)
	}

	if got := FormatTime(time.Time{}); got != "" {
		t.Errorf("FormatTime(zero) = %q, want empty", got)
	}
}

func TestTagsString_SplitTags(t *testing.T) {
	tool := Tool{Tags: []string{"a", "b", "c"}}
	joined := tool.TagsString()
	if joined != "a,b,c" {
		t.Errorf("TagsString() = %q, want %q", joined, "a,b,c")
	}
	if got := SplitTags(joined); !reflect.DeepEqual(got, tool.Tags) {
		t.Errorf("SplitTags(%q) = %v, want %v", joined, got, tool.Tags)
	}
	if got := SplitTags(""); got != nil {
		t.Errorf("SplitTags(\"\") = %v, want nil", got)
	}
}
