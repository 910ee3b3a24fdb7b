// Package website canonicalizes website URLs into comparison keys.
package website

import "strings"

// Normalize turns a raw website string or user-supplied domain into a
// canonical comparison key: one leading http:// or https:// scheme is
// stripped (literal match), then one leading www., then everything from
// the first / or ? on is discarded, and the remainder is lowercased and
// trimmed. An empty input yields an empty key, which callers must reject.
//
// The result is not validated as a hostname; any non-empty leftover is
// accepted as a candidate key.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	domain := raw
	if after, ok := strings.CutPrefix(domain, "http://"); ok {
		domain = after
	} else if after, ok := strings.CutPrefix(domain, "https://"); ok {
		domain = after
	}
	domain = strings.TrimPrefix(domain, "www.")

	// The first occurring delimiter wins, not the longest match.
	if i := strings.IndexAny(domain, "/?"); i >= 0 {
		domain = domain[:i]
	}

	return strings.TrimSpace(strings.ToLower(domain))
}
