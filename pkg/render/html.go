/*
Package render turns parsed articles into HTML where every element carries
its theme style inline, so the markup survives being pasted into an editor
that drops style sheets.
*/
package render

import (
	"bytes"
	"io"
	"strconv"

	"github.com/microcosm-cc/bluemonday"
	"github.com/zctpy/paiban/pkg/parser"
	"github.com/zctpy/paiban/pkg/theme"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// hrStyle is the same for every theme
var hrStyle = theme.Style{{Property: "border-top", Value: "1px solid #eee"}, {Property: "margin", Value: "20px 0"}}

const bullet = "• "

type Renderer struct {
	theme  *theme.Theme
	policy *bluemonday.Policy
}

// New creates a renderer for the given theme, the default builtin theme if t
// is nil
func New(t *theme.Theme) *Renderer {
	if t == nil {
		t = theme.Builtin().Default()
	}
	return &Renderer{theme: t, policy: newPolicy()}
}

func (r *Renderer) Theme() *theme.Theme {
	return r.theme
}

// newPolicy allows exactly the markup the renderer produces. Link and image
// addresses have to be parseable and use a safe scheme, others are dropped.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("section", "h1", "h2", "h3", "p", "blockquote", "ul", "ol", "li", "span", "hr", "a", "img")
	p.AllowAttrs("style").Globally()
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowStandardURLs()
	p.RequireNoFollowOnLinks(false)
	p.AllowDataURIImages()
	return p
}

// HTML parses text and renders it
func (r *Renderer) HTML(text string) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, parser.Parse(text)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Render writes blocks wrapped in the themed container to w
func (r *Renderer) Render(w io.Writer, blocks []parser.Block) error {
	var buf bytes.Buffer
	if err := html.Render(&buf, r.Document(blocks)); err != nil {
		return err
	}
	_, err := r.policy.SanitizeReader(&buf).WriteTo(w)
	return err
}

// Document returns the container node holding the rendered blocks
func (r *Renderer) Document(blocks []parser.Block) *html.Node {
	container := r.element(atom.Section, theme.Container)
	for _, n := range r.Blocks(blocks) {
		container.AppendChild(n)
	}
	return container
}

// Blocks renders each block into a detached node
func (r *Renderer) Blocks(blocks []parser.Block) []*html.Node {
	nodes := make([]*html.Node, 0, len(blocks))
	for _, b := range blocks {
		nodes = append(nodes, r.block(b))
	}
	return nodes
}

func (r *Renderer) block(b parser.Block) *html.Node {
	switch b := b.(type) {
	case parser.Heading:
		var n *html.Node
		switch b.Level {
		case 1:
			n = r.element(atom.H1, theme.H1)
		case 2:
			n = r.element(atom.H2, theme.H2)
		default:
			n = r.element(atom.H3, theme.H3)
		}
		r.inline(n, b.Text)
		return n
	case parser.Blockquote:
		n := r.element(atom.Blockquote, theme.Blockquote)
		r.inline(n, b.Text)
		return n
	case parser.Image:
		return r.element(atom.Img, theme.Image,
			html.Attribute{Key: "src", Val: b.Src},
			html.Attribute{Key: "alt", Val: b.Alt})
	case parser.HorizontalRule:
		return newElement(atom.Hr, hrStyle)
	case parser.List:
		return r.list(b)
	case parser.Paragraph:
		n := r.element(atom.P, theme.P)
		r.inline(n, b.Text)
		return n
	}
	return &html.Node{Type: html.CommentNode, Data: "unknown block"}
}

// list renders items with a visible marker, ordered items are numbered from 1
func (r *Renderer) list(l parser.List) *html.Node {
	a := atom.Ul
	if l.Ordered {
		a = atom.Ol
	}
	n := r.element(a, theme.List)
	for i, item := range l.Items {
		li := r.element(atom.Li, theme.ListItem)
		marker := bullet
		if l.Ordered {
			marker = strconv.Itoa(i+1) + ". "
		}
		li.AppendChild(textNode(marker))
		r.inline(li, item)
		n.AppendChild(li)
	}
	return n
}

// inline appends the spans of text to parent. Empty literal runs are skipped.
func (r *Renderer) inline(parent *html.Node, text string) {
	for _, span := range parser.ResolveInline(text) {
		switch s := span.(type) {
		case parser.Emphasis:
			n := r.element(atom.Span, theme.Strong)
			n.AppendChild(textNode(s.Value))
			parent.AppendChild(n)
		case parser.Link:
			n := r.element(atom.A, theme.Link,
				html.Attribute{Key: "href", Val: s.Href},
				html.Attribute{Key: "target", Val: "_blank"},
				html.Attribute{Key: "rel", Val: "noopener noreferrer"})
			n.AppendChild(textNode(s.Label))
			parent.AppendChild(n)
		case parser.Text:
			if s.Value != "" {
				parent.AppendChild(textNode(s.Value))
			}
		}
	}
}

func (r *Renderer) element(a atom.Atom, k theme.Key, attrs ...html.Attribute) *html.Node {
	return newElement(a, r.theme.Style(k), attrs...)
}

func newElement(a atom.Atom, style theme.Style, attrs ...html.Attribute) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a, Attr: attrs}
	if css := style.CSS(); css != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: css})
	}
	return n
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
