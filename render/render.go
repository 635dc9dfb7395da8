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

// Package render converts an element tree into styled text components.
//
// Rendering never recurses on the Go stack, so arbitrarily deep nesting in
// the input is safe to render.
package render // import "akhil.cc/minimark/render"

import (
	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/text"
)

// Tree renders the whole tree under an empty root component.
func Tree(t *ast.Tree) *text.Component {
	return Node(t, t.Root())
}

type frame struct {
	id   ast.NodeID
	comp *text.Component
	next int // index of the next child to render
}

// Node renders the subtree rooted at id.
func Node(t *ast.Tree, id ast.NodeID) *text.Component {
	stack := []frame{{id: id, comp: enter(t, id)}}
	for {
		top := &stack[len(stack)-1]
		n := t.Node(top.id)
		if top.next < len(n.Children) {
			child := n.Children[top.next]
			top.next++
			stack = append(stack, frame{id: child, comp: enter(t, child)})
			continue
		}
		comp := leave(n, top.comp)
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return comp
		}
		parent := &stack[len(stack)-1]
		parent.comp.Append(comp)
	}
}

// enter creates the base component of a node before its children are
// rendered. Modifying tags see every descendant here.
func enter(t *ast.Tree, id ast.NodeID) *text.Component {
	n := t.Node(id)
	switch n.Kind {
	case ast.TextNode, ast.ValueNode:
		return text.New(n.Value)
	case ast.TagNode:
		switch tg := n.Tag.(type) {
		case *ast.Inserting:
			if tg.Value == nil {
				return text.Empty()
			}
			return tg.Value.Clone()
		case *ast.Styling:
			c := text.Empty()
			c.Style.Apply(tg.Ops...)
			return c
		case *ast.Modifying:
			if tg.Visit != nil {
				t.Walk(id, func(d ast.NodeID, _ int) bool {
					if d != id {
						tg.Visit(t.Node(d))
					}
					return true
				})
			}
			if tg.PostVisit != nil {
				tg.PostVisit()
			}
			return text.Empty()
		}
	}
	return text.Empty()
}

func leave(n *ast.Node, c *text.Component) *text.Component {
	if n.Kind != ast.TagNode {
		return c
	}
	if m, ok := n.Tag.(*ast.Modifying); ok && m.Apply != nil {
		return Modify(c, m.Apply)
	}
	return c
}

// Modify rebuilds c by calling apply on c at depth 0 and on every descendant
// at its depth, each node before its children and siblings left to right.
// apply receives a copy of the node without children; the rebuilt children
// are appended to whatever apply returns.
func Modify(c *text.Component, apply func(c *text.Component, depth int) *text.Component) *text.Component {
	type job struct {
		c      *text.Component
		depth  int
		parent *text.Component
	}
	var root *text.Component
	stack := []job{{c: c}}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out := apply(j.c.Shallow(), j.depth)
		if out == nil {
			out = text.Empty()
		}
		if j.parent == nil {
			root = out
		} else {
			j.parent.Append(out)
		}
		for i := len(j.c.Children) - 1; i >= 0; i-- {
			stack = append(stack, job{c: j.c.Children[i], depth: j.depth + 1, parent: out})
		}
	}
	return root
}
