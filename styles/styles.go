// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package styles loads catalogs of user-defined styling tags.
//
// A catalog names colors and styles. Every name becomes a styling tag:
//
//	colors:
//	  accent: "#5f87ff"
//	styles:
//	  header:
//	    foreground: accent
//	    bold: true
//
// makes <accent> and <header> available to a parser. Catalogs are read from
// YAML or TOML.
package styles // import "akhil.cc/minimark/styles"

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/internal/logging"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/text"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of a catalog.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf guesses the format of a catalog file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("unknown catalog format for %s: use .yaml, .yml or .toml", path)
}

// StyleDef is a style definition in a catalog. Unset decorations are left
// to inherit.
type StyleDef struct {
	Foreground    string `yaml:"foreground,omitempty" toml:"foreground,omitempty"`
	Bold          *bool  `yaml:"bold,omitempty" toml:"bold,omitempty"`
	Italic        *bool  `yaml:"italic,omitempty" toml:"italic,omitempty"`
	Underlined    *bool  `yaml:"underlined,omitempty" toml:"underlined,omitempty"`
	Strikethrough *bool  `yaml:"strikethrough,omitempty" toml:"strikethrough,omitempty"`
	Obfuscated    *bool  `yaml:"obfuscated,omitempty" toml:"obfuscated,omitempty"`
	Font          string `yaml:"font,omitempty" toml:"font,omitempty"`
	Insertion     string `yaml:"insertion,omitempty" toml:"insertion,omitempty"`
}

// Catalog is a set of named colors and styles.
type Catalog struct {
	Colors map[string]string   `yaml:"colors" toml:"colors"`
	Styles map[string]StyleDef `yaml:"styles" toml:"styles"`
}

//go:embed default.yaml
var embeddedCatalog []byte

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(embeddedCatalog, YAML)
	if err != nil {
		panic("styles: bad built-in catalog: " + err.Error())
	}
	return c
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.GetLogger("styles").Debug().
		Str("path", path).
		Int("colors", len(c.Colors)).
		Int("styles", len(c.Styles)).
		Msg("Style catalog loaded")
	return c, nil
}

// Parse decodes and validates a catalog.
func Parse(data []byte, format Format) (*Catalog, error) {
	var c Catalog
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &c)
	case TOML:
		err = toml.Unmarshal(data, &c)
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// color resolves a catalog color, a named color or a hex color.
func (c *Catalog) color(name string) (text.Color, bool) {
	if v, ok := c.Colors[name]; ok {
		name = v
	}
	if strings.HasPrefix(name, "#") {
		return text.ParseHex(name)
	}
	return text.Named(name)
}

// Validate checks that every color resolves.
func (c *Catalog) Validate() error {
	for _, name := range sortedKeys(c.Colors) {
		if _, ok := text.ParseHex(c.Colors[name]); !ok {
			if _, ok := text.Named(c.Colors[name]); !ok {
				return fmt.Errorf("color %s: unable to parse a color from %q", name, c.Colors[name])
			}
		}
	}
	for _, name := range sortedKeys(c.Styles) {
		fg := c.Styles[name].Foreground
		if fg == "" {
			continue
		}
		if _, ok := c.color(fg); !ok {
			return fmt.Errorf("style %s: unknown foreground %q", name, fg)
		}
	}
	return nil
}

// Ops returns the style ops of a style definition.
func (c *Catalog) Ops(def StyleDef) []text.StyleOp {
	var ops []text.StyleOp
	if def.Foreground != "" {
		if col, ok := c.color(def.Foreground); ok {
			ops = append(ops, text.WithColor(col))
		}
	}
	for _, d := range []struct {
		on  *bool
		dec text.Decoration
	}{
		{def.Bold, text.Bold},
		{def.Italic, text.Italic},
		{def.Underlined, text.Underlined},
		{def.Strikethrough, text.Strikethrough},
		{def.Obfuscated, text.Obfuscated},
	} {
		if d.on != nil {
			ops = append(ops, text.WithDecoration(d.dec, *d.on))
		}
	}
	if def.Font != "" {
		ops = append(ops, text.WithFont(def.Font))
	}
	if def.Insertion != "" {
		ops = append(ops, text.WithInsertion(def.Insertion))
	}
	return ops
}

// Names returns the tag names the catalog defines, sorted.
func (c *Catalog) Names() []string {
	seen := make(map[string]struct{}, len(c.Colors)+len(c.Styles))
	for n := range c.Colors {
		seen[strings.ToLower(n)] = struct{}{}
	}
	for n := range c.Styles {
		seen[strings.ToLower(n)] = struct{}{}
	}
	return sortedKeys(seen)
}

// Resolver returns a resolver with one argument-free styling tag per color
// and style. A style shadows a color of the same name.
func (c *Catalog) Resolver() tag.Resolver {
	b := tag.NewBuilder()
	for name := range c.Colors {
		col, _ := c.color(name)
		b.Tag(name, &ast.Styling{Ops: []text.StyleOp{text.WithColor(col)}})
	}
	for name, def := range c.Styles {
		b.Tag(name, &ast.Styling{Ops: c.Ops(def)})
	}
	return b.Build()
}

// Merge returns a catalog with the entries of other added to c. Entries of
// other win.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	out := &Catalog{
		Colors: make(map[string]string, len(c.Colors)+len(other.Colors)),
		Styles: make(map[string]StyleDef, len(c.Styles)+len(other.Styles)),
	}
	for _, src := range []*Catalog{c, other} {
		for k, v := range src.Colors {
			out.Colors[k] = v
		}
		for k, v := range src.Styles {
			out.Styles[k] = v
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
