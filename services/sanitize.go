package services

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// maxUnescapeRounds bounds entity decoding of nested encodings like &amp;lt;
const maxUnescapeRounds = 5

// SanitizeText strips markup from free text such as equipment notes.
// Entities are decoded before the policy runs, so encoded tags are stripped too;
// the policy output is decoded once so the remote service stores plain text.
func SanitizeText(s string) string {
	if s == "" {
		return s
	}
	for i := 0; i < maxUnescapeRounds; i++ {
		decoded := html.UnescapeString(s)
		if decoded == s {
			break
		}
		s = decoded
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}
