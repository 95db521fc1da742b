package validate

import (
	"strings"
	"unicode"
)

// SanitizeTitle cleans a title for safe storage.
func SanitizeTitle(title string) string {
	title = strings.TrimSpace(title)

	var sb strings.Builder
	for _, r := range title {
		if !unicode.IsControl(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SanitizeContent cleans entry content for safe storage.
func SanitizeContent(content string) string {
	content = strings.TrimSpace(content)

	// Remove null bytes
	content = strings.ReplaceAll(content, "\x00", "")

	// Normalize line endings
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	return content
}

// SanitizeTags trims, lowercases, and de-duplicates a tag list,
// dropping empties.
func SanitizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
