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

package styles_test

import (
	"os"
	"path/filepath"
	"testing"

	"akhil.cc/minimark"
	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/styles"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `
colors:
  brand: "#123456"
styles:
  title:
    foreground: brand
    bold: true
    italic: false
  link:
    foreground: blue
    underlined: true
    insertion: copied
`

const tomlCatalog = `
[colors]
brand = "#123456"

[styles.title]
foreground = "brand"
bold = true
italic = false

[styles.link]
foreground = "blue"
underlined = true
insertion = "copied"
`

func styleOf(t *testing.T, r tag.Resolver, name string) text.Style {
	t.Helper()
	require.True(t, r.Has(name), name)
	tg, err := r.Resolve(name, nil, nil)
	require.NoError(t, err)
	s, ok := tg.(*ast.Styling)
	require.True(t, ok)
	var st text.Style
	st.Apply(s.Ops...)
	return st
}

func TestParse(t *testing.T) {
	for format, data := range map[styles.Format]string{
		styles.YAML: yamlCatalog,
		styles.TOML: tomlCatalog,
	} {
		t.Run(string(format), func(t *testing.T) {
			c, err := styles.Parse([]byte(data), format)
			require.NoError(t, err)
			assert.Equal(t, []string{"brand", "link", "title"}, c.Names())

			r := c.Resolver()
			title := styleOf(t, r, "title")
			require.NotNil(t, title.Color)
			assert.Equal(t, text.RGB(0x12, 0x34, 0x56), *title.Color)
			assert.Equal(t, text.True, title.Decoration(text.Bold))
			assert.Equal(t, text.False, title.Decoration(text.Italic))
			assert.Equal(t, text.NotSet, title.Decoration(text.Underlined))

			link := styleOf(t, r, "link")
			assert.Equal(t, "blue", link.Color.String())
			assert.Equal(t, "copied", link.Insertion)

			brand := styleOf(t, r, "brand")
			assert.Equal(t, "#123456", brand.Color.Hex())
		})
	}
}

func TestValidate(t *testing.T) {
	_, err := styles.Parse([]byte("colors:\n  x: notacolor\n"), styles.YAML)
	assert.ErrorContains(t, err, `color x: unable to parse a color from "notacolor"`)

	_, err = styles.Parse([]byte("styles:\n  y:\n    foreground: nope\n"), styles.YAML)
	assert.ErrorContains(t, err, `style y: unknown foreground "nope"`)

	_, err = styles.Parse([]byte("colors: ["), styles.YAML)
	assert.Error(t, err)

	_, err = styles.Parse(nil, styles.Format("ini"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlCatalog), 0644))
	c, err := styles.Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Styles, 2)

	_, err = styles.Load(filepath.Join(dir, "catalog.ini"))
	assert.Error(t, err)
	_, err = styles.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultCatalog(t *testing.T) {
	c := styles.Default()
	assert.Contains(t, c.Names(), "error")

	p := minimark.New()
	comp, err := p.Deserialize("<error>boom</error> <unknown>", c.Resolver())
	require.NoError(t, err)
	assert.Equal(t, "boom <unknown>", comp.PlainText())
	assert.True(t, comp.Children[0].Style.Has(text.Bold))
}

func TestMerge(t *testing.T) {
	a, err := styles.Parse([]byte(yamlCatalog), styles.YAML)
	require.NoError(t, err)
	b, err := styles.Parse([]byte("colors:\n  brand: \"#ffffff\"\n"), styles.YAML)
	require.NoError(t, err)

	m := a.Merge(b)
	assert.Equal(t, "#ffffff", m.Colors["brand"])
	assert.Len(t, m.Styles, 2)
	assert.Equal(t, "#123456", a.Colors["brand"], "inputs are not modified")
}
