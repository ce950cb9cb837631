// Package theme holds the style tables used to render articles.
package theme

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Key names the element a style applies to
type Key string

const (
	Container  Key = "container"
	H1         Key = "h1"
	H2         Key = "h2"
	H3         Key = "h3"
	P          Key = "p"
	Blockquote Key = "blockquote"
	List       Key = "list"
	ListItem   Key = "listItem"
	Strong     Key = "strong"
	Link       Key = "link"
	Image      Key = "image"
)

// Keys lists every style key a theme can set
var Keys = []Key{Container, H1, H2, H3, P, Blockquote, List, ListItem, Strong, Link, Image}

func validKey(k Key) bool {
	for _, v := range Keys {
		if v == k {
			return true
		}
	}
	return false
}

var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrInvalidTheme = errors.New("invalid theme")
)

type Theme struct {
	ID           string        `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	PreviewColor string        `yaml:"previewColor" json:"previewColor"`
	Base         string        `yaml:"base,omitempty" json:"-"`
	Styles       map[Key]Style `yaml:"styles" json:"-"`
}

// Style returns the style for k, empty if the theme doesn't set it
func (t *Theme) Style(k Key) Style {
	return t.Styles[k]
}

// inherit fills the theme from base: styles of t override base ones per
// property.
func (t *Theme) inherit(base *Theme) {
	styles := make(map[Key]Style, len(Keys))
	for k, s := range base.Styles {
		styles[k] = s
	}
	for k, s := range t.Styles {
		styles[k] = styles[k].Merge(s)
	}
	t.Styles = styles
	if t.Name == "" {
		t.Name = base.Name
	}
	if t.PreviewColor == "" {
		t.PreviewColor = base.PreviewColor
	}
}

func (t *Theme) validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidTheme)
	}
	for k := range t.Styles {
		if !validKey(k) {
			return fmt.Errorf("%w: %s: unknown style key %q", ErrInvalidTheme, t.ID, k)
		}
	}
	return nil
}

// Catalog is an ordered set of themes
type Catalog struct {
	themes []*Theme
	byID   map[string]*Theme
}

func newCatalog() *Catalog {
	return &Catalog{byID: map[string]*Theme{}}
}

// add appends t or replaces the theme with the same id in place
func (c *Catalog) add(t *Theme) {
	if old, ok := c.byID[t.ID]; ok {
		for i, v := range c.themes {
			if v == old {
				c.themes[i] = t
			}
		}
	} else {
		c.themes = append(c.themes, t)
	}
	c.byID[t.ID] = t
}

// Get returns the theme with the given id
func (c *Catalog) Get(id string) (*Theme, error) {
	t, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	return t, nil
}

// Default returns the first theme of the catalog
func (c *Catalog) Default() *Theme {
	if len(c.themes) == 0 {
		return nil
	}
	return c.themes[0]
}

func (c *Catalog) Themes() []*Theme {
	return append([]*Theme(nil), c.themes...)
}

func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.themes))
	for _, t := range c.themes {
		ids = append(ids, t.ID)
	}
	return ids
}

// With returns a new catalog holding the themes of c followed by the themes
// of other. Themes of other replace the ones of c with the same id.
func (c *Catalog) With(other *Catalog) *Catalog {
	merged := newCatalog()
	for _, t := range c.themes {
		merged.add(t)
	}
	if other != nil {
		for _, t := range other.themes {
			merged.add(t)
		}
	}
	return merged
}

//go:embed themes.yaml
var builtinYAML string

var (
	builtin     *Catalog
	builtinOnce sync.Once
)

// Builtin returns the catalog of embedded themes
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := load(strings.NewReader(builtinYAML), nil)
		if err != nil {
			panic(fmt.Sprintf("theme: builtin themes: %v", err))
		}
		builtin = c
	})
	return builtin
}

// Load reads a YAML list of themes. A theme may name a builtin theme as its
// `base` to inherit its styles.
func Load(r io.Reader) (*Catalog, error) {
	return load(r, Builtin())
}

// LoadFile reads themes from a YAML file, see Load
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func load(r io.Reader, parent *Catalog) (*Catalog, error) {
	var themes []*Theme
	if err := yaml.NewDecoder(r).Decode(&themes); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	c := newCatalog()
	for _, t := range themes {
		if t.Base != "" {
			base, ok := c.byID[t.Base]
			if !ok && parent != nil {
				base, ok = parent.byID[t.Base]
			}
			if !ok {
				return nil, fmt.Errorf("%w: %s: base %q: %w", ErrInvalidTheme, t.ID, t.Base, ErrUnknownTheme)
			}
			t.inherit(base)
		}
		if err := t.validate(); err != nil {
			return nil, err
		}
		c.add(t)
	}
	return c, nil
}
