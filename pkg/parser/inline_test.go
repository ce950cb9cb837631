package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{"empty", "", []Span{Text{}}},
		{"plain", "just text", []Span{Text{Value: "just text"}}},
		{"bold at end", "Hello **world**", []Span{Text{Value: "Hello "}, Emphasis{Value: "world"}}},
		{"bold only", "**a**", []Span{Emphasis{Value: "a"}}},
		{"empty bold", "****", []Span{Emphasis{}}},
		{
			"link in the middle",
			"See [docs](http://x.com) now",
			[]Span{Text{Value: "See "}, Link{Label: "docs", Href: "http://x.com"}, Text{Value: " now"}},
		},
		{
			"adjacent tokens keep an empty run",
			"**a****b**",
			[]Span{Emphasis{Value: "a"}, Text{}, Emphasis{Value: "b"}},
		},
		{
			"bold then link",
			"**a**[b](c)",
			[]Span{Emphasis{Value: "a"}, Text{}, Link{Label: "b", Href: "c"}},
		},
		{"non greedy bold", "**a** and **b**", []Span{Emphasis{Value: "a"}, Text{Value: " and "}, Emphasis{Value: "b"}}},
		{"triple star", "***a**", []Span{Emphasis{Value: "*a"}}},
		{"unmatched bold", "a **b c", []Span{Text{Value: "a **b c"}}},
		{"unmatched then matched", "** x **y**", []Span{Emphasis{Value: " x "}, Text{Value: "y**"}}},
		{"lone markers", "**", []Span{Text{Value: "**"}}},
		{"unclosed bracket", "[docs](http://x", []Span{Text{Value: "[docs](http://x"}}},
		{"bracket without paren", "[docs] (x)", []Span{Text{Value: "[docs] (x)"}}},
		{"empty link", "[]()", []Span{Link{}}},
		{"label with bracket", "[a]b](c)", []Span{Link{Label: "a]b", Href: "c"}}},
		{"href stops at first paren", "[a](b(c))", []Span{Link{Label: "a", Href: "b(c"}, Text{Value: ")"}}},
		{"label up to first close-open", "[a](b) [c](d)", []Span{Link{Label: "a", Href: "b"}, Text{Value: " "}, Link{Label: "c", Href: "d"}}},
		{"bold wraps link", "**[x](y)**", []Span{Emphasis{Value: "[x](y)"}}},
		{"link wraps bold", "[**x**](y)", []Span{Link{Label: "**x**", Href: "y"}}},
		{"bold starts first", "**a [b** c](d)", []Span{Emphasis{Value: "a [b"}, Text{Value: " c](d)"}}},
		{"link starts first", "[a **b](c) d**", []Span{Link{Label: "a **b", Href: "c"}, Text{Value: " d**"}}},
		{"image markup stays literal", "see ![a](b)", []Span{Text{Value: "see !"}, Link{Label: "a", Href: "b"}}},
		{"bold does not cross lines", "**a\nb**", []Span{Text{Value: "**a\nb**"}}},
		{"link does not cross lines", "[a\n](b)", []Span{Text{Value: "[a\n](b)"}}},
		{"unicode", "中文**加粗**和[链接](https://例子.cn)", []Span{
			Text{Value: "中文"}, Emphasis{Value: "加粗"}, Text{Value: "和"}, Link{Label: "链接", Href: "https://例子.cn"},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveInline(tc.input))
		})
	}
}

func TestResolveInlineRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"Hello **world**",
		"See [docs](http://x.com) now",
		"**a****b**[c](d)",
		"** x **y**",
		"[a](b(c))",
		"***a** [b [c](d) e](f)**",
		"**a\nb** [x\n](y) **c**",
		"unterminated [link](",
	}
	for _, input := range inputs {
		var b strings.Builder
		for _, span := range ResolveInline(input) {
			b.WriteString(span.Source())
		}
		assert.Equal(t, input, b.String())
	}
}

func TestResolveInlineIdempotent(t *testing.T) {
	input := "a **b** [c](d) **e"
	first := ResolveInline(input)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, ResolveInline(input))
	}
}

func TestSpanKinds(t *testing.T) {
	assert.Equal(t, KindText, Text{}.Kind())
	assert.Equal(t, KindEmphasis, Emphasis{}.Kind())
	assert.Equal(t, KindLink, Link{}.Kind())
	assert.Equal(t, "emphasis", KindEmphasis.String())
	assert.Equal(t, "list", List{}.Kind().String())
}
