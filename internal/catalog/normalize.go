package catalog

import (
	"path"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	nameSafeRE   = regexp.MustCompile(`[^a-z0-9_-]+`)
	underscoreRE = regexp.MustCompile(`_+`)
	tagSplitRE   = regexp.MustCompile(`[,;\s]+`)
	schemeRE     = regexp.MustCompile(`^[a-zA-Z]+://`)
	domainRE     = regexp.MustCompile(`^(www\.)?[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(/.*)?$`)
)

// languageAliases maps common shorthand to canonical language names.
var languageAliases = map[string]string{
	"py":         "Python",
	"python":     "Python",
	"go":         "Go",
	"golang":     "Go",
	"js":         "JavaScript",
	"javascript": "JavaScript",
	"ts":         "TypeScript",
	"typescript": "TypeScript",
	"bash":       "Bash",
	"shell":      "Bash",
}

// platformAliases maps common shorthand to canonical platform names.
var platformAliases = map[string]string{
	"google colaboratory": "Colab",
	"google colab":        "Colab",
	"colab":               "Colab",
	"linux":               "Linux",
	"windows":             "Windows",
	"win":                 "Windows",
	"mac":                 "macOS",
	"macos":               "macOS",
	"osx":                 "macOS",
	"docker":              "Docker",
}

// Normalize returns a copy of the tool with every field cleaned up:
// slugified name, canonical language/platform spellings, stripped
// version prefix, split/deduped/sorted tags, repaired link, and
// slash-normalized snippet path. Free-text fields get their
// whitespace collapsed. Timestamps pass through untouched.
func Normalize(t Tool) Tool {
	out := t
	out.Name = SlugifyName(t.Name)
	out.Language = NormalizeLanguage(t.Language)
	out.Platform = NormalizePlatform(t.Platform)
	out.Version = NormalizeVersion(t.Version)
	out.Tags = NormalizeTags(strings.Join(t.Tags, ","))
	out.Link = NormalizeLink(t.Link)
	out.SnippetPath = NormalizePath(t.SnippetPath)
	out.Purpose = collapseWhitespace(t.Purpose)
	out.Notes = collapseWhitespace(t.Notes)
	return out
}

func collapseWhitespace(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}

// SlugifyName lowercases a name and reduces it to [a-z0-9_-], turning
// spaces into underscores. The result may be empty; callers decide
// whether that is a validation error.
func SlugifyName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = nameSafeRE.ReplaceAllString(s, "")
	s = underscoreRE.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// NormalizeLanguage resolves shorthand like "py" or "golang" to a
// canonical spelling, title-casing anything unrecognized.
func NormalizeLanguage(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return ""
	}
	if canonical, ok := languageAliases[key]; ok {
		return canonical
	}
	return titleCase(strings.TrimSpace(s))
}

// NormalizePlatform resolves shorthand like "osx" or "google colab"
// to a canonical spelling, passing anything unrecognized through with
// collapsed whitespace.
func NormalizePlatform(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return ""
	}
	if canonical, ok := platformAliases[key]; ok {
		return canonical
	}
	return collapseWhitespace(s)
}

// NormalizeVersion strips a leading v/V and collapses whitespace.
func NormalizeVersion(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.TrimSpace(strings.TrimLeft(s, "vV"))
	return collapseWhitespace(s)
}

// NormalizeTags splits raw tag input on commas, semicolons, and
// whitespace, lowercases the parts, and returns them deduplicated and
// sorted. Splitting on the join delimiter guarantees a single tag can
// never contain a comma.
func NormalizeTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	seen := make(map[string]bool)
	var tags []string
	for _, part := range tagSplitRE.Split(raw, -1) {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// NormalizeLink prepends https:// to bare domains so stored links are
// clickable. Anything that already has a scheme passes through, and
// non-URL text just gets its whitespace collapsed.
func NormalizeLink(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if schemeRE.MatchString(s) {
		return s
	}
	if domainRE.MatchString(s) {
		return "https://" + strings.TrimLeft(s, "/")
	}
	return collapseWhitespace(s)
}

// NormalizePath cleans a snippet path and normalizes separators to
// forward slashes. The path is stored as given otherwise; the catalog
// never checks that it exists.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	return path.Clean(strings.ReplaceAll(p, "\\", "/"))
}

// titleCase uppercases the first letter of each space-separated word.
// strings.Title is deprecated and pulls in more than we need.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
