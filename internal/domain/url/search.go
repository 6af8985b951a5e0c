package url

import (
	"net/url"
	"strings"
)

// ParseBangShortcut extracts a bang shortcut from input.
// Input must start with "!" followed by shortcut key and a space.
// Returns (shortcutKey, query, found).
//
// Examples:
//
//	"!g golang"      → ("g", "golang", true)
//	"!ddg test"      → ("ddg", "test", true)
//	"!g"             → ("", "", false) - no query
//	"plain text"     → ("", "", false)
//	"test !g"        → ("", "", false) - bang not at start
func ParseBangShortcut(input string) (shortcut, query string, found bool) {
	if !strings.HasPrefix(input, "!") {
		return "", "", false
	}

	spaceIdx := strings.Index(input, " ")
	if spaceIdx == -1 || spaceIdx == 1 {
		return "", "", false
	}

	shortcut = input[1:spaceIdx]
	query = strings.TrimSpace(input[spaceIdx+1:])

	if query == "" {
		return "", "", false
	}

	return shortcut, query, true
}

// EncodeQuery percent-encodes a search query the way encodeURIComponent
// does: spaces become %20 rather than '+'.
func EncodeQuery(query string) string {
	return strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
}

// BuildSearchURL turns user input into a search URL.
// Engine URLs are prefixes the encoded query is appended to. A known bang
// shortcut selects its engine; otherwise defaultPrefix is used with the
// whole input. Blank input returns "".
func BuildSearchURL(input string, shortcutPrefixes map[string]string, defaultPrefix string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if shortcutKey, query, found := ParseBangShortcut(input); found {
		if prefix, ok := shortcutPrefixes[shortcutKey]; ok {
			return prefix + EncodeQuery(query)
		}
		// Unknown bang falls through to default search with original input
	}

	return defaultPrefix + EncodeQuery(input)
}
