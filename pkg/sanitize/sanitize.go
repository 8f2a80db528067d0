// Package sanitize cleans short, single-line text values such as API keys
// and model identifiers before they are stored on a client.
package sanitize

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// strict strips every tag and drops script/style contents.
	// bluemonday policies are safe for concurrent use.
	strict = bluemonday.StrictPolicy()

	whitespaceRe = regexp.MustCompile(`[\r\n\t ]+`)
	spacesRe     = regexp.MustCompile(` +`)
	octetRe      = regexp.MustCompile(`%[a-fA-F0-9]{2}`)
)

// TextField returns s with HTML tags stripped, line breaks, tabs and runs of
// whitespace collapsed to a single space, percent-encoded octets removed, and
// surrounding whitespace trimmed. Invalid UTF-8 yields "".
//
// Entities are left alone unless s contains markup; the tag stripper decodes
// them in that case.
func TextField(s string) string {
	if s == "" || !utf8.ValidString(s) {
		return ""
	}

	if strings.Contains(s, "<") {
		s = html.UnescapeString(strict.Sanitize(s))
	}
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))

	found := false
	for octetRe.MatchString(s) {
		s = octetRe.ReplaceAllString(s, "")
		found = true
	}
	if found {
		s = strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
	}

	return s
}
