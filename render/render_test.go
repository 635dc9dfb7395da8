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

package render_test

import (
	"fmt"
	"strings"
	"testing"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/render"
	"akhil.cc/minimark/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tagNode(name string, t ast.Tag) ast.Node {
	return ast.Node{Kind: ast.TagNode, Parts: []ast.TagPart{{Value: name}}, Tag: t}
}

func textNode(s string) ast.Node {
	return ast.Node{Kind: ast.TextNode, Value: s}
}

func TestNesting(t *testing.T) {
	tree := ast.NewTree("<bold><italic>x</italic></bold>y")
	bold := tree.Add(tree.Root(), tagNode("bold", &ast.Styling{Ops: []text.StyleOp{text.WithDecoration(text.Bold, true)}}))
	italic := tree.Add(bold, tagNode("italic", &ast.Styling{Ops: []text.StyleOp{text.WithDecoration(text.Italic, true)}}))
	tree.Add(italic, textNode("x"))
	tree.Add(tree.Root(), ast.Node{Kind: ast.ValueNode, Value: "y"})

	c := render.Tree(tree)
	require.Len(t, c.Children, 2)
	assert.True(t, c.Style.IsEmpty())

	b := c.Children[0]
	assert.True(t, b.Style.Has(text.Bold))
	require.Len(t, b.Children, 1)
	i := b.Children[0]
	assert.True(t, i.Style.Has(text.Italic))
	require.Len(t, i.Children, 1)
	assert.Equal(t, "x", i.Children[0].Content)
	assert.Equal(t, "y", c.Children[1].Content)
	assert.Equal(t, "xy", c.PlainText())
}

func TestInsertingIsCopied(t *testing.T) {
	value := text.New("hi")
	tree := ast.NewTree("<a><a>")
	tree.Add(tree.Root(), tagNode("a", &ast.Inserting{Value: value}))
	tree.Add(tree.Root(), tagNode("a", &ast.Inserting{Value: value}))

	c := render.Tree(tree)
	require.Len(t, c.Children, 2)
	c.Children[0].Content = "changed"
	assert.Equal(t, "hi", value.Content)
	assert.Equal(t, "hi", c.Children[1].Content)
}

type call struct {
	content string
	depth   int
}

func TestModifyingDepth(t *testing.T) {
	var (
		visited  []string
		post     int
		applied  []call
		children []int
	)
	mod := &ast.Modifying{
		Visit: func(n *ast.Node) { visited = append(visited, n.Value) },
		PostVisit: func() {
			post++
		},
		Apply: func(c *text.Component, depth int) *text.Component {
			applied = append(applied, call{c.Content, depth})
			children = append(children, len(c.Children))
			return c
		},
	}
	tree := ast.NewTree("<mod>ab")
	m := tree.Add(tree.Root(), tagNode("mod", mod))
	tree.Add(m, textNode("a"))
	tree.Add(m, textNode("b"))

	c := render.Tree(tree)

	assert.Equal(t, []string{"a", "b"}, visited)
	assert.Equal(t, 1, post)
	assert.Equal(t, []call{{"", 0}, {"a", 1}, {"b", 1}}, applied)
	assert.Equal(t, []int{0, 0, 0}, children, "apply must see nodes without children")
	require.Len(t, c.Children, 1)
	assert.Len(t, c.Children[0].Children, 2)
	assert.Equal(t, "ab", c.PlainText())
}

func TestModifyingNested(t *testing.T) {
	var applied []call
	mod := &ast.Modifying{
		Apply: func(c *text.Component, depth int) *text.Component {
			applied = append(applied, call{c.Content, depth})
			if c.Content != "" {
				return text.New(strings.ToUpper(c.Content))
			}
			return c
		},
	}
	// <mod>a<bold>b</bold>c
	tree := ast.NewTree("")
	m := tree.Add(tree.Root(), tagNode("mod", mod))
	tree.Add(m, textNode("a"))
	b := tree.Add(m, tagNode("bold", &ast.Styling{}))
	tree.Add(b, textNode("b"))
	tree.Add(m, textNode("c"))

	c := render.Tree(tree)
	assert.Equal(t, []call{{"", 0}, {"a", 1}, {"", 1}, {"b", 2}, {"c", 1}}, applied)
	assert.Equal(t, "ABC", c.PlainText())
}

func TestModify(t *testing.T) {
	in := text.New("root").Append(text.New("a").Append(text.New("b")), text.New("c"))
	var order []string
	out := render.Modify(in, func(c *text.Component, depth int) *text.Component {
		order = append(order, fmt.Sprintf("%s%d", c.Content, depth))
		return text.New(c.Content + "!")
	})
	assert.Equal(t, []string{"root0", "a1", "b2", "c1"}, order)
	assert.Equal(t, "root!a!b!c!", out.PlainText())
	assert.Equal(t, "rootabc", in.PlainText(), "input must not be modified")
}

func TestDeepNesting(t *testing.T) {
	tree := ast.NewTree("")
	id := tree.Root()
	for i := 0; i < 100000; i++ {
		id = tree.Add(id, tagNode("bold", &ast.Styling{}))
	}
	tree.Add(id, textNode("x"))
	assert.Equal(t, "x", render.Tree(tree).PlainText())
}
