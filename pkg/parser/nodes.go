package parser

import "strconv"

// BlockKind identifies the variant of a Block
type BlockKind int

const (
	KindHeading BlockKind = iota
	KindBlockquote
	KindParagraph
	KindImage
	KindHorizontalRule
	KindList
)

func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindBlockquote:
		return "blockquote"
	case KindParagraph:
		return "paragraph"
	case KindImage:
		return "image"
	case KindHorizontalRule:
		return "hr"
	case KindList:
		return "list"
	}
	return "?"
}

// Block is a single structural unit of a document
type Block interface {
	Kind() BlockKind
}

// Heading of level 1, 2 or 3
type Heading struct {
	Level int
	Text  string
}

type Blockquote struct {
	Text string
}

type Paragraph struct {
	Text string
}

// Image represents a whole-line image reference
type Image struct {
	Src string
	Alt string
}

type HorizontalRule struct{}

// List is a run of consecutive items of the same kind. Items is never empty.
type List struct {
	Ordered bool
	Items   []string
}

func (Heading) Kind() BlockKind        { return KindHeading }
func (Blockquote) Kind() BlockKind     { return KindBlockquote }
func (Paragraph) Kind() BlockKind      { return KindParagraph }
func (Image) Kind() BlockKind          { return KindImage }
func (HorizontalRule) Kind() BlockKind { return KindHorizontalRule }
func (List) Kind() BlockKind           { return KindList }

// SpanKind identifies the variant of a Span
type SpanKind int

const (
	KindText SpanKind = iota
	KindEmphasis
	KindLink
)

func (k SpanKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEmphasis:
		return "emphasis"
	case KindLink:
		return "link"
	}
	return "?"
}

// Span is a styled run within a block's text
type Span interface {
	Kind() SpanKind
	// Source returns the span in its original markup
	Source() string
}

// Text is a literal run. It may be empty.
type Text struct {
	Value string
}

// Emphasis is a bold run, `**Value**` in the source
type Emphasis struct {
	Value string
}

// Link is an inline link, `[Label](Href)` in the source
type Link struct {
	Label string
	Href  string
}

func (Text) Kind() SpanKind     { return KindText }
func (Emphasis) Kind() SpanKind { return KindEmphasis }
func (Link) Kind() SpanKind     { return KindLink }

func (t Text) Source() string     { return t.Value }
func (e Emphasis) Source() string { return boldMarker + e.Value + boldMarker }
func (l Link) Source() string     { return "[" + l.Label + "](" + l.Href + ")" }

// Line returns canonical source line(s) of the block. Headings, quotes and
// list items get their markers back, ordered items are numbered from 1.
func Line(b Block) []string {
	switch n := b.(type) {
	case Heading:
		prefix := "#"
		for i := 1; i < n.Level; i++ {
			prefix += "#"
		}
		return []string{prefix + " " + n.Text}
	case Blockquote:
		return []string{"> " + n.Text}
	case Paragraph:
		return []string{n.Text}
	case Image:
		return []string{"![" + n.Alt + "](" + n.Src + ")"}
	case HorizontalRule:
		return []string{"---"}
	case List:
		lines := make([]string, 0, len(n.Items))
		for i, item := range n.Items {
			if n.Ordered {
				lines = append(lines, strconv.Itoa(i+1)+". "+item)
			} else {
				lines = append(lines, "- "+item)
			}
		}
		return lines
	}
	return nil
}

// LinesOf reconstructs the source lines of blocks in order
func LinesOf(blocks []Block) []string {
	var lines []string
	for _, b := range blocks {
		lines = append(lines, Line(b)...)
	}
	return lines
}
