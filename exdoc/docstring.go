package exdoc

import (
	"fmt"
	"regexp"
	"strings"
)

// MarkerLine is the sentinel that flags an example file for documentation.
const MarkerLine = "<< autodoc-me >>"

// docstringDelimiter bounds the leading documentation block of an example
// source file. The docstring is the text between the first two occurrences.
const docstringDelimiter = `"""`

// backquotedIdent matches single-backquoted identifiers. Only alphabetic
// and underscore tokens qualify; tokens with digits, punctuation, or spaces
// are left alone. This is a narrow rewrite, not a general backtick balancer.
var backquotedIdent = regexp.MustCompile("`([A-Za-z_]+)`")

// ExtractDocstring returns the text strictly between the first and second
// docstring delimiters of an example source, verbatim.
func ExtractDocstring(source string) (string, error) {
	parts := strings.SplitN(source, docstringDelimiter, 3)
	if len(parts) < 3 {
		return "", fmt.Errorf("%w: need two %s delimiters", ErrMalformedSource, docstringDelimiter)
	}
	return parts[1], nil
}

// CleanDocstring converts a raw docstring to reStructuredText: the marker
// line is removed, surrounding whitespace is trimmed, and single-backquoted
// identifiers are doubled to form RST inline literals.
func CleanDocstring(raw string) string {
	s := strings.ReplaceAll(raw, MarkerLine+"\n", "")
	s = strings.TrimSpace(s)
	return backquotedIdent.ReplaceAllString(s, "``$1``")
}
