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

// Package xml dumps a component tree as an XML document. It keeps the
// tree structure and the styles exactly as set on each component, which
// makes it useful for inspecting what a parse produced.
package xml // import "akhil.cc/minimark/gen/xml"

import (
	"context"
	"io"

	"akhil.cc/minimark/gen"
	"akhil.cc/minimark/text"
	"github.com/beevik/etree"
)

// Gen returns the Generator to dump c as XML.
func Gen(c *text.Component) *gen.Generator {
	return GenContext(context.Background(), c)
}

// GenContext is like Gen but includes a context.
func GenContext(ctx context.Context, c *text.Component) *gen.Generator {
	return gen.New(ctx, c, Emit)
}

// Emit writes the XML document for c to w.
func Emit(ctx context.Context, c *text.Component, w, _ io.Writer) error {
	doc, err := Document(ctx, c)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}

// Document builds the XML document for c. Each component becomes a
// <component> element; content is its text and style properties are
// attributes. Hover text is a nested <hover> element.
func Document(ctx context.Context, c *text.Component) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	if c == nil {
		c = text.Empty()
	}

	type frame struct {
		c      *text.Component
		parent *etree.Element
	}
	stack := []frame{{c, &doc.Element}}
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		el := element(f.parent, f.c)
		if hv := f.c.Style.Hover; hv != nil && hv.Value != nil {
			stack = append(stack, frame{hv.Value, el.CreateElement("hover")})
		}
		for i := len(f.c.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.c.Children[i], el})
		}
	}
	doc.Indent(2)
	return doc, nil
}

func element(parent *etree.Element, c *text.Component) *etree.Element {
	el := parent.CreateElement("component")
	st := c.Style
	if st.Color != nil {
		el.CreateAttr("color", st.Color.String())
	}
	for _, d := range text.Decorations() {
		switch st.Decoration(d) {
		case text.True:
			el.CreateAttr(d.String(), "true")
		case text.False:
			el.CreateAttr(d.String(), "false")
		}
	}
	if st.Click != nil {
		el.CreateAttr("click-action", string(st.Click.Action))
		el.CreateAttr("click-value", st.Click.Value)
	}
	if st.Insertion != "" {
		el.CreateAttr("insertion", st.Insertion)
	}
	if st.Font != "" {
		el.CreateAttr("font", st.Font)
	}
	if c.Content != "" {
		el.CreateAttr("content", c.Content)
	}
	return el
}
