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

// Package text defines the styled node tree produced by deserializing markup.
//
// A Component holds literal content, a Style and an ordered list of children.
// Children inherit every style property they leave unset from their parent.
package text // import "akhil.cc/minimark/text"

import (
	"fmt"
	"strings"
)

// Component is a node of styled text.
type Component struct {
	Content  string
	Style    Style
	Children []*Component
}

// New returns a component with the given literal content.
func New(content string) *Component {
	return &Component{Content: content}
}

// Empty returns a component with no content, suitable as a container.
func Empty() *Component {
	return &Component{}
}

// Styled returns a component with the given content and style ops applied.
func Styled(content string, ops ...StyleOp) *Component {
	c := New(content)
	c.Style.Apply(ops...)
	return c
}

// Append adds children to c and returns c.
func (c *Component) Append(children ...*Component) *Component {
	c.Children = append(c.Children, children...)
	return c
}

// Shallow returns a copy of c without its children.
func (c *Component) Shallow() *Component {
	return &Component{Content: c.Content, Style: c.Style}
}

// Clone returns a deep copy of c. Hover components are shared.
func (c *Component) Clone() *Component {
	if c == nil {
		return nil
	}
	out := c.Shallow()
	if len(c.Children) > 0 {
		out.Children = make([]*Component, len(c.Children))
		for i, ch := range c.Children {
			out.Children[i] = ch.Clone()
		}
	}
	return out
}

// PlainText returns the concatenated content of c and its descendants.
func (c *Component) PlainText() string {
	var b strings.Builder
	c.Walk(func(n *Component, _ int) bool {
		b.WriteString(n.Content)
		return true
	})
	return b.String()
}

// Walk visits c and its descendants in document order. The walk descends
// into a node's children only if fn returns true for it.
func (c *Component) Walk(fn func(c *Component, depth int) bool) {
	if c == nil {
		return
	}
	type frame struct {
		c     *Component
		depth int
	}
	stack := []frame{{c, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.c, f.depth) {
			continue
		}
		for i := len(f.c.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.c.Children[i], f.depth + 1})
		}
	}
}

// String returns a compact debug representation of the tree.
func (c *Component) String() string {
	var b strings.Builder
	c.Walk(func(n *Component, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(&b, "%q", n.Content)
		if d := n.Style.describe(); d != "" {
			b.WriteString(" ")
			b.WriteString(d)
		}
		b.WriteString("\n")
		return true
	})
	return b.String()
}

func (s Style) describe() string {
	var parts []string
	if s.Color != nil {
		parts = append(parts, "color="+s.Color.String())
	}
	for _, d := range Decorations() {
		switch s.Decorations[d] {
		case True:
			parts = append(parts, d.String())
		case False:
			parts = append(parts, "!"+d.String())
		}
	}
	if s.Click != nil {
		parts = append(parts, fmt.Sprintf("click=%s:%q", s.Click.Action, s.Click.Value))
	}
	if s.Hover != nil {
		parts = append(parts, fmt.Sprintf("hover=%q", s.Hover.Value.PlainText()))
	}
	if s.Insertion != "" {
		parts = append(parts, fmt.Sprintf("insertion=%q", s.Insertion))
	}
	if s.Font != "" {
		parts = append(parts, "font="+s.Font)
	}
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, " ") + "]"
}
