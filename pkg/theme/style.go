package theme

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decl is a single CSS declaration
type Decl struct {
	Property string
	Value    string
}

// Style is an ordered list of CSS declarations
type Style []Decl

// CSS renders the style as the value of a style attribute
func (s Style) CSS() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// Get returns the value of property p
func (s Style) Get(p string) (string, bool) {
	for _, d := range s {
		if d.Property == p {
			return d.Value, true
		}
	}
	return "", false
}

// Merge returns a copy of s where declarations of o replace the ones with
// the same property; new properties are appended.
func (s Style) Merge(o Style) Style {
	merged := make(Style, len(s), len(s)+len(o))
	copy(merged, s)
outer:
	for _, d := range o {
		for i := range merged {
			if merged[i].Property == d.Property {
				merged[i].Value = d.Value
				continue outer
			}
		}
		merged = append(merged, d)
	}
	return merged
}

// UnmarshalYAML decodes a mapping of properties to values keeping the
// order of the document.
func (s *Style) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: style must be a mapping", node.Line)
	}
	var base Style
	style := make(Style, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		// <<: *anchor
		if key.Value == "<<" && (key.Tag == "!!merge" || key.Tag == "") {
			var merged Style
			if err := merged.UnmarshalYAML(val); err != nil {
				return err
			}
			base = base.Merge(merged)
			continue
		}
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: value of %q must be a scalar", val.Line, key.Value)
		}
		style = append(style, Decl{Property: key.Value, Value: val.Value})
	}
	*s = base.Merge(style)
	return nil
}
