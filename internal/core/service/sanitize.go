package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// stripMarkup flattens an HTML description to trimmed plain text.
// The sanitizer entity-escapes its output, so the result is unescaped
// back; escaping happens once, at serialization time.
func stripMarkup(s string) string {
	if s == "" {
		return ""
	}
	text := html.UnescapeString(stripPolicy.Sanitize(s))
	return strings.TrimSpace(text)
}
