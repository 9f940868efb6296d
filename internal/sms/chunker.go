package sms

import "strings"

// DefaultMaxLen is the largest reply body sent as a single message.
const DefaultMaxLen = 1600

// Split breaks text into chunks of at most maxLen bytes, preferring to cut at
// the last newline inside the limit and falling back to a hard cut (which may
// land mid-word) when a line itself exceeds the limit. Each piece is trimmed
// and the final remainder is always appended, so at least one chunk is
// returned.
func Split(text string, maxLen int) []string {
	if maxLen <= 0 {
		return []string{strings.TrimSpace(text)}
	}

	var parts []string
	for len(text) > maxLen {
		cut := strings.LastIndex(text[:maxLen], "\n")
		if cut == -1 {
			cut = maxLen
		}
		parts = append(parts, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	return append(parts, text)
}
