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

package gen_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"akhil.cc/minimark"
	"akhil.cc/minimark/gen"
	"akhil.cc/minimark/gen/ansi"
	"akhil.cc/minimark/gen/html"
	"akhil.cc/minimark/gen/plain"
	"akhil.cc/minimark/gen/xml"
	"akhil.cc/minimark/text"
	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *text.Component {
	t.Helper()
	c, err := minimark.Deserialize(src)
	require.NoError(t, err)
	return c
}

func TestWalk(t *testing.T) {
	c := parse(t, "<red>a<bold>b</bold></red>c")
	segs := gen.Segments(c)
	require.Len(t, segs, 3)

	assert.Equal(t, "a", segs[0].Text)
	assert.Equal(t, "red", segs[0].Style.Color.String())
	assert.False(t, segs[0].Style.Has(text.Bold))

	assert.Equal(t, "b", segs[1].Text)
	assert.Equal(t, "red", segs[1].Style.Color.String(), "color is inherited")
	assert.True(t, segs[1].Style.Has(text.Bold))
	assert.Equal(t, 3, segs[1].Depth)

	assert.Equal(t, "c", segs[2].Text)
	assert.Nil(t, segs[2].Style.Color)
}

func TestWalkStops(t *testing.T) {
	c := parse(t, "a<bold>b</bold>c")
	stop := errors.New("stop")
	var seen []string
	err := gen.Walk(context.Background(), c, func(s gen.Segment) error {
		seen = append(seen, s.Text)
		if s.Text == "b" {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, []string{"a", "b"}, seen)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = gen.Walk(ctx, c, func(gen.Segment) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMerge(t *testing.T) {
	c := parse(t, "a<bold>b</bold><bold>c</bold>d")
	got := gen.Merge(gen.Segments(c))
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Text)
	assert.Equal(t, "bc", got[1].Text)
	assert.Equal(t, "d", got[2].Text)
}

func TestGenerator(t *testing.T) {
	c := parse(t, "<bold>hi</bold> there")

	b, err := plain.Gen(c).Output()
	require.NoError(t, err)
	assert.Equal(t, "hi there", string(b))

	g := plain.Gen(c)
	assert.EqualError(t, g.Wait(), "not started")

	g = plain.Gen(c)
	var out bytes.Buffer
	g.Stdout = &out
	_, err = g.Output()
	assert.EqualError(t, err, "Stdout already set")
	require.NoError(t, g.Run())
	assert.Equal(t, "hi there", out.String())
	assert.EqualValues(t, len("hi there"), g.Written())
	assert.EqualError(t, g.Start(), "already started")

	g = plain.Gen(c)
	r, err := g.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, g.Start())
	piped, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, g.Wait())
	assert.Equal(t, "hi there", string(piped))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = plain.GenContext(ctx, c).Output()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCombinedOutput(t *testing.T) {
	c := parse(t, "<click:run_command:/help>help")
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	b, err := ansi.GenContext(context.Background(), c, r).CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(b), "help")
	assert.Contains(t, string(b), `ansi: dropped run_command click on "help"`)
}

// TestAgree checks that every format carries the same text.
func TestAgree(t *testing.T) {
	src := "<gradient:red:blue>Hello</gradient>, <bold><name>!</bold> <hover:show_text:tip><u>x</u></hover>"
	c := parse(t, src)
	want := c.PlainText()

	p, err := plain.Gen(c).Output()
	require.NoError(t, err)
	assert.Equal(t, want, string(p))

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	a, err := ansi.GenContext(context.Background(), c, r).Output()
	require.NoError(t, err)
	assert.Equal(t, want, string(a))

	hb, err := html.Gen(c).Output()
	require.NoError(t, err)
	assert.Equal(t, want, stripTags(string(hb)))

	doc, err := xml.Document(context.Background(), c)
	require.NoError(t, err)
	var content strings.Builder
	xmlContent(doc.Root(), &content)
	assert.Equal(t, want, content.String())
}

func xmlContent(el *etree.Element, b *strings.Builder) {
	b.WriteString(el.SelectAttrValue("content", ""))
	for _, ch := range el.ChildElements() {
		if ch.Tag != "hover" {
			xmlContent(ch, b)
		}
	}
}

// stripTags removes HTML tags and unescapes the entities html.Emit writes.
func stripTags(s string) string {
	var b strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '<':
			in = true
		case r == '>':
			in = false
		case !in:
			b.WriteRune(r)
		}
	}
	return strings.NewReplacer("&lt;", "<", "&gt;", ">", "&#34;", `"`, "&#39;", "'", "&amp;", "&").Replace(b.String())
}
