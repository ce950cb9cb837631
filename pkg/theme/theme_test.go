package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	c := Builtin()
	assert.Equal(t, []string{"classic", "ink_black", "elegant", "minimal"}, c.IDs())
	assert.Equal(t, "classic", c.Default().ID)

	for _, th := range c.Themes() {
		t.Run(th.ID, func(t *testing.T) {
			assert.NotEmpty(t, th.Name)
			assert.True(t, strings.HasPrefix(th.PreviewColor, "#"))
			for _, k := range Keys {
				assert.NotEmpty(t, th.Style(k), "missing style %s", k)
			}
		})
	}

	t.Run("declaration order is kept", func(t *testing.T) {
		classic, err := c.Get("classic")
		require.NoError(t, err)
		assert.Equal(t, "font-size: 22px; font-weight: bold; border-bottom: 1px solid #e2e8f0; "+
			"padding-bottom: 15px; margin-bottom: 24px; margin-top: 10px; color: #1e293b; line-height: 1.4",
			classic.Style(H1).CSS())
	})

	t.Run("aliases share the base styles", func(t *testing.T) {
		classic, _ := c.Get("classic")
		elegant, _ := c.Get("elegant")
		assert.Equal(t, classic.Style(Container), elegant.Style(Container))
		assert.Equal(t, classic.Style(Image), elegant.Style(Image))

		ink, _ := c.Get("ink_black")
		color, _ := ink.Style(Container).Get("color")
		assert.Equal(t, "#171717", color)
	})
}

func TestGetUnknown(t *testing.T) {
	_, err := Builtin().Get("neon")
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Contains(t, err.Error(), `"neon"`)
}

func TestStyle(t *testing.T) {
	s := Style{{"color", "red"}, {"margin", "0"}}

	t.Run("css", func(t *testing.T) {
		assert.Equal(t, "color: red; margin: 0", s.CSS())
		assert.Equal(t, "", Style(nil).CSS())
	})

	t.Run("merge", func(t *testing.T) {
		merged := s.Merge(Style{{"margin", "4px"}, {"padding", "1px"}})
		assert.Equal(t, Style{{"color", "red"}, {"margin", "4px"}, {"padding", "1px"}}, merged)
		// original is untouched
		assert.Equal(t, Style{{"color", "red"}, {"margin", "0"}}, s)
	})

	t.Run("get", func(t *testing.T) {
		v, ok := s.Get("margin")
		assert.True(t, ok)
		assert.Equal(t, "0", v)
		_, ok = s.Get("padding")
		assert.False(t, ok)
	})
}

func TestLoad(t *testing.T) {
	t.Run("inherit from builtin", func(t *testing.T) {
		c, err := Load(strings.NewReader(`
- id: night
  base: ink_black
  name: Night
  styles:
    p:
      color: "#eeeeee"
      font-size: 15px
`))
		require.NoError(t, err)
		night, err := c.Get("night")
		require.NoError(t, err)
		assert.Equal(t, "Night", night.Name)
		assert.Equal(t, "#171717", night.PreviewColor)
		assert.Equal(t, "margin: 0 0 20px 0; line-height: 1.8; color: #eeeeee; font-size: 15px", night.Style(P).CSS())

		ink, _ := Builtin().Get("ink_black")
		assert.Equal(t, ink.Style(H2), night.Style(H2))
	})

	t.Run("merge keys", func(t *testing.T) {
		c, err := Load(strings.NewReader(`
- id: merged
  styles:
    p: &p
      color: red
      margin: "0"
    blockquote:
      <<: *p
      color: blue
`))
		require.NoError(t, err)
		th, _ := c.Get("merged")
		assert.Equal(t, "color: blue; margin: 0", th.Style(Blockquote).CSS())
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := Load(strings.NewReader("- name: nameless\n"))
		assert.ErrorIs(t, err, ErrInvalidTheme)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(strings.NewReader("- id: x\n  styles:\n    table:\n      color: red\n"))
		assert.ErrorIs(t, err, ErrInvalidTheme)
		assert.Contains(t, err.Error(), `"table"`)
	})

	t.Run("unknown base", func(t *testing.T) {
		_, err := Load(strings.NewReader("- id: x\n  base: nope\n"))
		assert.ErrorIs(t, err, ErrUnknownTheme)
	})

	t.Run("non scalar value", func(t *testing.T) {
		_, err := Load(strings.NewReader("- id: x\n  styles:\n    p:\n      color: [red]\n"))
		assert.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		c, err := Load(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, c.IDs())
		assert.Nil(t, c.Default())
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: classic\n  base: classic\n  name: Mine\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)

	merged := Builtin().With(c)
	assert.Equal(t, []string{"classic", "ink_black", "elegant", "minimal"}, merged.IDs())
	classic, _ := merged.Get("classic")
	assert.Equal(t, "Mine", classic.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
