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

// Package html converts a component into an HTML fragment.
// Text is automatically escaped.
// The component tree is flattened into runs of equally styled text.
//
// Styles correspond to the following HTML:
// 	Color                       <span style="color:#rrggbb"></span>
// 	Bold                        font-weight:bold
// 	Italic                      font-style:italic
// 	Underlined, Strikethrough   text-decoration:underline line-through
// 	Obfuscated                  <span class="obfuscated"></span>
// 	Font                        <span data-font=""></span>
// 	Click (open_url)            <a href=""></a>
// 	Click (other actions)       <span data-click-action="" data-click-value=""></span>
// 	Hover                       <span title=""></span>
// 	Insertion                   <span data-insertion=""></span>
// 	Newline                     <br>
package html // import "akhil.cc/minimark/gen/html"

import (
	"context"
	"io"
	"strings"

	"akhil.cc/minimark/gen"
	"akhil.cc/minimark/text"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Gen returns the Generator to convert the given component into HTML output.
func Gen(c *text.Component) *gen.Generator {
	return gen.New(context.TODO(), c, Emit)
}

// GenContext is like Gen but includes a context.
//
// The provided context is used to halt HTML generation
// after writing a run of text.
func GenContext(ctx context.Context, c *text.Component) *gen.Generator {
	return gen.New(ctx, c, Emit)
}

// Emit writes c to w as a sequence of HTML nodes.
func Emit(ctx context.Context, c *text.Component, w, _ io.Writer) error {
	for _, s := range gen.Merge(gen.Segments(c)) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := Node(s).Render(w); err != nil {
			return err
		}
	}
	return nil
}

// Node returns the HTML for one segment.
func Node(s gen.Segment) g.Node {
	body := lines(s.Text)
	st := s.Style
	var attrs []g.Node
	if css := css(st); css != "" {
		attrs = append(attrs, g.Attr("style", css))
	}
	if st.Has(text.Obfuscated) {
		attrs = append(attrs, g.Attr("class", "obfuscated"))
	}
	if st.Font != "" {
		attrs = append(attrs, g.Attr("data-font", st.Font))
	}
	if st.Hover != nil && st.Hover.Value != nil {
		attrs = append(attrs, g.Attr("title", st.Hover.Value.PlainText()))
	}
	if st.Insertion != "" {
		attrs = append(attrs, g.Attr("data-insertion", st.Insertion))
	}
	if cl := st.Click; cl != nil && cl.Action == text.OpenURL {
		return h.A(append(append([]g.Node{g.Attr("href", cl.Value)}, attrs...), body...)...)
	} else if cl != nil {
		attrs = append(attrs,
			g.Attr("data-click-action", string(cl.Action)),
			g.Attr("data-click-value", cl.Value))
	}
	if len(attrs) == 0 {
		return g.Group(body)
	}
	return h.Span(append(attrs, body...)...)
}

// lines turns newlines into <br> elements.
func lines(s string) []g.Node {
	var nodes []g.Node
	for i, l := range strings.Split(s, "\n") {
		if i > 0 {
			nodes = append(nodes, h.Br())
		}
		if l != "" {
			nodes = append(nodes, g.Text(l))
		}
	}
	return nodes
}

func css(st text.Style) string {
	var decls []string
	if st.Color != nil {
		decls = append(decls, "color:"+st.Color.Hex())
	}
	if st.Has(text.Bold) {
		decls = append(decls, "font-weight:bold")
	}
	if st.Has(text.Italic) {
		decls = append(decls, "font-style:italic")
	}
	var deco []string
	if st.Has(text.Underlined) {
		deco = append(deco, "underline")
	}
	if st.Has(text.Strikethrough) {
		deco = append(deco, "line-through")
	}
	if len(deco) > 0 {
		decls = append(decls, "text-decoration:"+strings.Join(deco, " "))
	}
	return strings.Join(decls, ";")
}
