/*
Package parser implements a small line-oriented markdown subset used for
article formatting. Parse turns a document into a sequence of blocks,
ResolveInline turns the text of a single block into styled spans.

The grammar covers headings of levels 1 to 3, single-line blockquotes,
unordered and ordered list runs, whole-line images, horizontal rules, bold
emphasis, inline links and plain paragraphs. There is no nesting: a list
item is plain text, bold text can't contain a link and vice versa.

A marker must be followed by a space, so a line that's just "#" is a
paragraph.
*/
package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsSpace reports whether r is whitespace. Besides unicode white space it
// counts the byte order mark, which editors tend to leave at the start of
// pasted text. NEL (U+0085) is not trimmed from lines.
func IsSpace(r rune) bool {
	return (unicode.IsSpace(r) && r != '\u0085') || r == '\uFEFF'
}

func trimLine(line string) string {
	return strings.TrimFunc(line, IsSpace)
}

// skipDigits advances i as long as s[i] is an ASCII digit
func skipDigits(s string, i int) int {
	n := len(s)
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// spaceAt returns the byte size of the whitespace rune at s[i], or 0
func spaceAt(s string, i int) int {
	if i >= len(s) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s[i:])
	if r == utf8.RuneError || !IsSpace(r) {
		return 0
	}
	return size
}
