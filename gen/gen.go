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

// Package gen holds what the output generators share: a walk over a
// component tree that yields runs of text with their effective style, and
// the Generator that runs a format's emit function against Stdout and
// Stderr.
package gen // import "akhil.cc/minimark/gen"

import (
	"context"
	"io"

	"akhil.cc/minimark/text"
)

// Segment is a run of text and the style it is displayed with, after
// inheritance from every ancestor.
type Segment struct {
	Text  string
	Style text.Style
	Depth int
}

// Walk calls fn for every component with content, in document order. The
// walk stops at the first error, or when ctx is done.
func Walk(ctx context.Context, c *text.Component, fn func(Segment) error) error {
	if c == nil {
		return nil
	}
	type frame struct {
		c     *text.Component
		style text.Style
		depth int
	}
	stack := []frame{{c, c.Style, 0}}
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.c.Content != "" {
			if err := fn(Segment{f.c.Content, f.style, f.depth}); err != nil {
				return err
			}
		}
		for i := len(f.c.Children) - 1; i >= 0; i-- {
			ch := f.c.Children[i]
			stack = append(stack, frame{ch, ch.Style.Inherit(f.style), f.depth + 1})
		}
	}
	return nil
}

// Segments returns every segment of c.
func Segments(c *text.Component) []Segment {
	var segs []Segment
	Walk(context.Background(), c, func(s Segment) error {
		segs = append(segs, s)
		return nil
	})
	return segs
}

// Merge joins adjacent segments with equal styles.
func Merge(segs []Segment) []Segment {
	var out []Segment
	for _, s := range segs {
		if n := len(out); n > 0 && sameStyle(out[n-1].Style, s.Style) {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}

func sameStyle(a, b text.Style) bool {
	if (a.Color == nil) != (b.Color == nil) || (a.Color != nil && *a.Color != *b.Color) {
		return false
	}
	if (a.Click == nil) != (b.Click == nil) || (a.Click != nil && *a.Click != *b.Click) {
		return false
	}
	return a.Decorations == b.Decorations &&
		a.Hover == b.Hover &&
		a.Insertion == b.Insertion &&
		a.Font == b.Font
}

// Emit writes c to w in some output format. Notes about styling the format
// cannot express go to stderr.
type Emit func(ctx context.Context, c *text.Component, w, stderr io.Writer) error
