package utils

import "strings"

const titleWords = 6

// DeriveTitle builds a session title from the leading words of the first
// question, with a trailing ellipsis marker. Short questions still get the
// marker; extra whitespace collapses.
func DeriveTitle(question string) string {
	words := strings.Fields(question)
	if len(words) > titleWords {
		words = words[:titleWords]
	}
	return strings.Join(words, " ") + "..."
}
