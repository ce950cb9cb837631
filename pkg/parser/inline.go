package parser

import "strings"

// Parsing of inline elements

const (
	boldMarker = "**"
	lineBreaks = "\n\r\u2028\u2029"
)

// inlineParser tries to match a token at data[offset]. It returns the number
// of consumed bytes, or 0 if there's no token at offset.
type inlineParser func(data string, offset int) (int, Span)

// Tried in order at every position: bold wins over a link starting at the
// same place.
var inlineParsers = []inlineParser{bold, link}

// ResolveInline splits text into literal, bold and link spans. Tokens are
// matched leftmost first and are as short as possible; neither kind crosses
// a line break. The literal run between two adjacent tokens is kept as an
// empty Text span; empty runs at the edges of text are dropped, except that
// empty text resolves to a single empty Text span.
//
// Tokens don't nest: in "**[x](y)**" the bold token starts first and takes
// the link markup as its literal value, in "[**x**](y)" the link does.
func ResolveInline(text string) []Span {
	spans := []Span{}
	beg, end := 0, 0

	n := len(text)
	for end < n {
		consumed, span := matchToken(text, end)
		if consumed == 0 {
			end++
			continue
		}
		if end > 0 {
			spans = append(spans, Text{Value: text[beg:end]})
		}
		spans = append(spans, span)
		beg = end + consumed
		end = beg
	}

	if beg < n || len(spans) == 0 {
		spans = append(spans, Text{Value: text[beg:]})
	}
	return spans
}

func matchToken(data string, offset int) (int, Span) {
	for _, parse := range inlineParsers {
		if consumed, span := parse(data, offset); consumed > 0 {
			return consumed, span
		}
	}
	return 0, nil
}

// '**': bold up to the nearest closing marker
func bold(data string, offset int) (int, Span) {
	if !strings.HasPrefix(data[offset:], boldMarker) {
		return 0, nil
	}
	line := restOfLine(data, offset+len(boldMarker))
	i := strings.Index(line, boldMarker)
	if i < 0 {
		return 0, nil
	}
	return len(boldMarker) + i + len(boldMarker), Emphasis{Value: line[:i]}
}

// '[': link, `[label](href)`. The label ends at the first "](" and the href
// at the first ')' after it.
func link(data string, offset int) (int, Span) {
	if data[offset] != '[' {
		return 0, nil
	}
	line := restOfLine(data, offset+1)
	labelEnd := strings.Index(line, "](")
	if labelEnd < 0 {
		return 0, nil
	}
	hrefEnd := strings.IndexByte(line[labelEnd+2:], ')')
	if hrefEnd < 0 {
		return 0, nil
	}
	hrefEnd += labelEnd + 2
	return 1 + hrefEnd + 1, Link{Label: line[:labelEnd], Href: line[labelEnd+2 : hrefEnd]}
}

// restOfLine returns data from i up to the next line break
func restOfLine(data string, i int) string {
	rest := data[i:]
	if nl := strings.IndexAny(rest, lineBreaks); nl >= 0 {
		return rest[:nl]
	}
	return rest
}
