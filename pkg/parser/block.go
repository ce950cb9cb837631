package parser

import (
	"strings"
)

const (
	h1Prefix    = "# "
	h2Prefix    = "## "
	h3Prefix    = "### "
	quotePrefix = "> "
)

// Parse splits text into lines and classifies every line into a block.
// It makes a single forward pass, never backtracks and never fails:
// anything it doesn't recognize becomes a Paragraph.
func Parse(text string) []Block {
	var (
		blocks []Block
		acc    accumulator
	)

	flush := func() {
		if list := acc.flush(); list != nil {
			blocks = append(blocks, *list)
		}
	}
	// any block other than a list item ends the open run first, so blocks
	// keep the order of their source lines
	emit := func(b Block) {
		flush()
		blocks = append(blocks, b)
	}

	for _, raw := range strings.Split(text, "\n") {
		line := trimLine(raw)

		// blank line closes an open list and emits nothing
		if line == "" {
			flush()
			continue
		}

		// # heading
		if content, ok := strings.CutPrefix(line, h1Prefix); ok {
			emit(Heading{Level: 1, Text: content})
			continue
		}
		if content, ok := strings.CutPrefix(line, h2Prefix); ok {
			emit(Heading{Level: 2, Text: content})
			continue
		}
		if content, ok := strings.CutPrefix(line, h3Prefix); ok {
			emit(Heading{Level: 3, Text: content})
			continue
		}

		// > quote
		if content, ok := strings.CutPrefix(line, quotePrefix); ok {
			emit(Blockquote{Text: content})
			continue
		}

		// ![alt](src)
		if alt, src, ok := matchImage(line); ok {
			emit(Image{Src: src, Alt: alt})
			continue
		}

		// --- or ***
		if line == "---" || line == "***" {
			emit(HorizontalRule{})
			continue
		}

		// - item or * item
		if item, ok := unorderedItem(line); ok {
			if list := acc.push(Unordered, item); list != nil {
				blocks = append(blocks, *list)
			}
			continue
		}

		// 1. item
		if item, ok := orderedItem(line); ok {
			if list := acc.push(Ordered, item); list != nil {
				blocks = append(blocks, *list)
			}
			continue
		}

		emit(Paragraph{Text: line})
	}

	flush()

	return blocks
}

// matchImage matches a whole line against `![alt](src)`. The alt text ends
// at the first "](", the source runs up to the closing paren at the end.
// Neither may contain a line break.
func matchImage(line string) (alt, src string, ok bool) {
	if !strings.HasPrefix(line, "![") || !strings.HasSuffix(line, ")") || strings.ContainsAny(line, lineBreaks) {
		return "", "", false
	}
	k := strings.Index(line[2:], "](")
	if k < 0 {
		return "", "", false
	}
	k += 2
	return line[2:k], line[k+2 : len(line)-1], true
}

func unorderedItem(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return line[2:], true
	}
	return "", false
}

// orderedItem matches one or more ASCII digits, a dot and exactly one
// whitespace character. The number itself is discarded.
func orderedItem(line string) (string, bool) {
	i := skipDigits(line, 0)
	if i == 0 || i >= len(line) || line[i] != '.' {
		return "", false
	}
	i++
	size := spaceAt(line, i)
	if size == 0 {
		return "", false
	}
	return line[i+size:], true
}
