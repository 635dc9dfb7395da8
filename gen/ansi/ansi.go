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

// Package ansi writes components as text styled with ANSI escape sequences.
//
// Colors and decorations map onto SGR attributes through lipgloss, open_url
// click events become OSC 8 hyperlinks, and obfuscated text blinks. Other
// events have no terminal equivalent and are reported on Stderr.
package ansi // import "akhil.cc/minimark/gen/ansi"

import (
	"context"
	"fmt"
	"io"
	"strings"

	"akhil.cc/minimark/gen"
	"akhil.cc/minimark/text"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gen returns the Generator to write c for the default lipgloss renderer.
func Gen(c *text.Component) *gen.Generator {
	return GenContext(context.Background(), c, nil)
}

// GenContext is like Gen but includes a context and the renderer that
// decides the color profile. A nil renderer means the default renderer.
func GenContext(ctx context.Context, c *text.Component, r *lipgloss.Renderer) *gen.Generator {
	return gen.New(ctx, c, Emitter(r))
}

// Emitter returns the emit function for renderer r.
func Emitter(r *lipgloss.Renderer) gen.Emit {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return func(ctx context.Context, c *text.Component, w, stderr io.Writer) error {
		segs := gen.Segments(c)
		for _, s := range gen.Merge(segs) {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			out := render(Style(r, s.Style), s.Text)
			if cl := s.Style.Click; cl != nil {
				if cl.Action == text.OpenURL && r.ColorProfile() != termenv.Ascii {
					out = termenv.Hyperlink(cl.Value, out)
				} else if cl.Action != text.OpenURL {
					fmt.Fprintf(stderr, "ansi: dropped %s click on %q\n", cl.Action, s.Text)
				}
			}
			if s.Style.Hover != nil {
				fmt.Fprintf(stderr, "ansi: dropped hover %q on %q\n", s.Style.Hover.Value.PlainText(), s.Text)
			}
			if _, err := io.WriteString(w, out); err != nil {
				return err
			}
		}
		return nil
	}
}

// render styles each line on its own, so that lipgloss does not pad the
// lines of multi-line text to a common width.
func render(ls lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = ls.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// Style converts a text style into a lipgloss style on renderer r.
func Style(r *lipgloss.Renderer, st text.Style) lipgloss.Style {
	ls := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if st.Color != nil {
		ls = ls.Foreground(lipgloss.Color(st.Color.Hex()))
	}
	if st.Has(text.Bold) {
		ls = ls.Bold(true)
	}
	if st.Has(text.Italic) {
		ls = ls.Italic(true)
	}
	if st.Has(text.Underlined) {
		ls = ls.Underline(true)
	}
	if st.Has(text.Strikethrough) {
		ls = ls.Strikethrough(true)
	}
	if st.Has(text.Obfuscated) {
		ls = ls.Blink(true)
	}
	return ls
}
