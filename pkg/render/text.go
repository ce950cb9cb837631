package render

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zctpy/paiban/pkg/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PlainText returns the text flavor of a rendered document: markup is
// stripped, block elements end a line.
func PlainText(doc string) (string, error) {
	fakeBody := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(doc), fakeBody)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		writeText(&b, n)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

var lineElements = map[string]bool{
	"h1": true, "h2": true, "h3": true, "p": true, "blockquote": true, "li": true, "hr": true, "img": true,
}

func writeText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode && n.Data == "img" {
		for _, a := range n.Attr {
			if a.Key == "alt" {
				b.WriteString(a.Val)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if n.Type == html.ElementNode && lineElements[n.Data] {
		b.WriteByte('\n')
	}
}

// Stats summarizes a parsed document
type Stats struct {
	Blocks map[string]int `json:"blocks"`
	Chars  int            `json:"chars"`
}

// Analyze counts blocks per kind and visible characters
func Analyze(blocks []parser.Block) Stats {
	s := Stats{Blocks: map[string]int{}}
	for _, b := range blocks {
		key := b.Kind().String()
		switch b := b.(type) {
		case parser.Heading:
			key += strconv.Itoa(b.Level)
			s.Chars += visibleLen(b.Text)
		case parser.Blockquote:
			s.Chars += visibleLen(b.Text)
		case parser.Paragraph:
			s.Chars += visibleLen(b.Text)
		case parser.List:
			for _, item := range b.Items {
				s.Chars += visibleLen(item)
			}
		}
		s.Blocks[key]++
	}
	return s
}

// visibleLen counts the runes of text without inline markup
func visibleLen(text string) int {
	n := 0
	for _, span := range parser.ResolveInline(text) {
		switch s := span.(type) {
		case parser.Text:
			n += utf8.RuneCountInString(s.Value)
		case parser.Emphasis:
			n += utf8.RuneCountInString(s.Value)
		case parser.Link:
			n += utf8.RuneCountInString(s.Label)
		}
	}
	return n
}
