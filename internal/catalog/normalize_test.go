package catalog

import (
	"reflect"
	"testing"
)

func TestSlugifyName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Keep Alive", "keep_alive"},
		{"  jq  ", "jq"},
		{"My__Tool!!", "my_tool"},
		{"café-tool", "caf-tool"},
		{"_wrapped_", "wrapped"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SlugifyName(tt.in); got != tt.want {
			t.Errorf("SlugifyName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"py", "Python"},
		{"Python", "Python"},
		{"GOLANG", "Go"},
		{"js", "JavaScript"},
		{"shell", "Bash"},
		{"rust", "Rust"},
		{"émacs lisp", "Émacs Lisp"}, // first rune may be multibyte
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"google colab", "Colab"},
		{"OSX", "macOS"},
		{"win", "Windows"},
		{"docker", "Docker"},
		{"Raspberry   Pi", "Raspberry Pi"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePlatform(tt.in); got != tt.want {
			t.Errorf("NormalizePlatform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.7.6", "1.7.6"},
		{"V2", "2"},
		{"  3.11  ", "3.11"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeVersion(tt.in); got != tt.want {
			t.Errorf("NormalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"b,a", []string{"a", "b"}},
		{"ETL; data  viz", []string{"data", "etl", "viz"}},
		{"a,a,A", []string{"a"}},
		{"colab,auto_disconnect", []string{"auto_disconnect", "colab"}},
		{"", nil},
		{" , ; ", nil},
	}
	for _, tt := range tests {
		if got := NormalizeTags(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NormalizeTags(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLink(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com", "https://example.com"},
		{"example.com/docs", "https://example.com/docs"},
		{"www.example.com", "https://www.example.com"},
		{"see my  notes", "see my notes"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLink(tt.in); got != tt.want {
			t.Errorf("NormalizeLink(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"snippets/foo.py", "snippets/foo.py"},
		{"snippets\\win\\foo.py", "snippets/win/foo.py"},
		{"./snippets/../snippets/foo.py", "snippets/foo.py"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(Tool{
		Name:        "Keep Alive",
		Language:    "py",
		Version:     "v3.11",
		Platform:    "google colab",
		Purpose:     "  keep   colab sessions alive ",
		Link:        "example.com",
		Tags:        []string{"Colab", "auto_disconnect"},
		SnippetPath: "snippets\\keep_alive.js",
	})

	want := Tool{
		Name:        "keep_alive",
		Language:    "Python",
		Version:     "3.11",
		Platform:    "Colab",
		Purpose:     "keep colab sessions alive",
		Link:        "https://example.com",
		Tags:        []string{"auto_disconnect", "colab"},
		SnippetPath: "snippets/keep_alive.js",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
}
