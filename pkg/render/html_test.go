package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zctpy/paiban/pkg/parser"
	"github.com/zctpy/paiban/pkg/theme"
)

// testTheme styles every element with its own key, `x: <key>`
func testTheme() *theme.Theme {
	styles := map[theme.Key]theme.Style{}
	for _, k := range theme.Keys {
		styles[k] = theme.Style{{Property: "x", Value: string(k)}}
	}
	return &theme.Theme{ID: "test", Styles: styles}
}

func wrap(inner string) string {
	return `<section style="x: container">` + inner + `</section>`
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", wrap("")},
		{"h1 with bold", "# Hello **w**", wrap(`<h1 style="x: h1">Hello <span style="x: strong">w</span></h1>`)},
		{"h2", "## B", wrap(`<h2 style="x: h2">B</h2>`)},
		{"h3", "### C", wrap(`<h3 style="x: h3">C</h3>`)},
		{"paragraph", "plain text", wrap(`<p style="x: p">plain text</p>`)},
		{"blockquote", "> q", wrap(`<blockquote style="x: blockquote">q</blockquote>`)},
		{
			"link",
			"See [docs](http://x.com) now",
			wrap(`<p style="x: p">See <a href="http://x.com" target="_blank" rel="noopener noreferrer" style="x: link">docs</a> now</p>`),
		},
		{"image", "![cat](cat.png)", wrap(`<img src="cat.png" alt="cat" style="x: image"/>`)},
		{"hr", "---", wrap(`<hr style="border-top: 1px solid #eee; margin: 20px 0"/>`)},
		{
			"unordered",
			"- a\n- **b**",
			wrap(`<ul style="x: list"><li style="x: listItem">• a</li><li style="x: listItem">• <span style="x: strong">b</span></li></ul>`),
		},
		{
			"ordered is renumbered",
			"7. a\n9. b",
			wrap(`<ol style="x: list"><li style="x: listItem">1. a</li><li style="x: listItem">2. b</li></ol>`),
		},
		{"text is escaped", "1 < 2 & 3", wrap(`<p style="x: p">1 &lt; 2 &amp; 3</p>`)},
		{"markup in source is text", "<b>hi</b>", wrap(`<p style="x: p">&lt;b&gt;hi&lt;/b&gt;</p>`)},
		{
			"adjacent bold",
			"**a****b**",
			wrap(`<p style="x: p"><span style="x: strong">a</span><span style="x: strong">b</span></p>`),
		},
	}

	r := New(testTheme())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := r.HTML(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHTMLUnsafeLinks(t *testing.T) {
	r := New(testTheme())

	t.Run("javascript href is dropped", func(t *testing.T) {
		got, err := r.HTML("[x](javascript:alert(1))")
		require.NoError(t, err)
		assert.NotContains(t, got, "javascript")
		assert.Contains(t, got, ">x</a>")
	})

	t.Run("attribute can't be broken out of", func(t *testing.T) {
		got, err := r.HTML(`[x](http://a.com/"onmouseover="alert)`)
		require.NoError(t, err)
		assert.NotContains(t, got, `onmouseover="`)
	})

	t.Run("rel is not extended", func(t *testing.T) {
		got, err := r.HTML("[x](https://example.com)")
		require.NoError(t, err)
		assert.Contains(t, got, `rel="noopener noreferrer"`)
		assert.NotContains(t, got, "nofollow")
	})

	t.Run("relative and mail links are kept", func(t *testing.T) {
		got, err := r.HTML("[a](./a.html) [m](mailto:me@example.com)")
		require.NoError(t, err)
		assert.Contains(t, got, `href="./a.html"`)
		assert.Contains(t, got, `href="mailto:me@example.com"`)
	})
}

func TestBuiltinThemes(t *testing.T) {
	doc := "# Title\n\n## Part\n\nSome **bold** and [a link](https://example.com).\n\n> quote\n\n- one\n- two\n\n1. first\n\n---\n\n![pic](https://example.com/p.png)"
	for _, th := range theme.Builtin().Themes() {
		t.Run(th.ID, func(t *testing.T) {
			got, err := New(th).HTML(doc)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, "<section style="))
			for _, tag := range []string{"<h1 ", "<h2 ", "<p ", "<span ", "<a ", "<blockquote ", "<ul ", "<ol ", "<li ", "<hr ", "<img "} {
				assert.Contains(t, got, tag)
			}
			h1 := th.Style(theme.H1).CSS()
			assert.Contains(t, got, `<h1 style="`+strings.ReplaceAll(h1, `"`, "&#34;")+`">Title</h1>`)
		})
	}
}

func TestNewDefaultTheme(t *testing.T) {
	r := New(nil)
	assert.Equal(t, "classic", r.Theme().ID)
}

func TestBlocks(t *testing.T) {
	r := New(testTheme())
	nodes := r.Blocks(parser.Parse("# a\n- b\n- c\ntext"))
	require.Len(t, nodes, 3)
	assert.Equal(t, "h1", nodes[0].Data)
	assert.Equal(t, "ul", nodes[1].Data)
	assert.Equal(t, "p", nodes[2].Data)
}
