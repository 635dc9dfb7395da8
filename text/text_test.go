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

package text_test

import (
	"testing"

	"akhil.cc/minimark/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want text.Color
		ok   bool
	}{
		{"#ff0080", text.RGB(0xff, 0x00, 0x80), true},
		{"#FF0080", text.RGB(0xff, 0x00, 0x80), true},
		{"ff0080", text.Color{}, false},
		{"#ff008", text.Color{}, false},
		{"#gg0080", text.Color{}, false},
		{"", text.Color{}, false},
	} {
		got, ok := text.ParseHex(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
	assert.Equal(t, "#0a0b0c", text.RGB(10, 11, 12).Hex())
}

func TestNamed(t *testing.T) {
	red, ok := text.Named("RED")
	require.True(t, ok)
	assert.Equal(t, "red", red.String())

	grey, ok := text.Named("grey")
	require.True(t, ok)
	gray, _ := text.Named("gray")
	assert.Equal(t, gray, grey)

	_, ok = text.Named("mauve")
	assert.False(t, ok)
	assert.Len(t, text.Names(), 16)
	assert.Equal(t, []string{"dark_grey", "grey"}, text.NameAliases())
	assert.Equal(t, "#010203", text.RGB(1, 2, 3).String())
}

func TestLerp(t *testing.T) {
	black, white := text.RGB(0, 0, 0), text.RGB(0xff, 0xff, 0xff)
	assert.Equal(t, black, text.Lerp(0, black, white))
	assert.Equal(t, white, text.Lerp(1, black, white))
	assert.Equal(t, text.RGB(128, 128, 128), text.Lerp(0.5, black, white))
	assert.Equal(t, white, text.Lerp(7, black, white), "t is clamped")
	assert.Equal(t, black, text.Lerp(-1, black, white), "t is clamped")
}

func TestStyleInherit(t *testing.T) {
	var parent text.Style
	parent.Apply(
		text.WithColor(text.RGB(1, 2, 3)),
		text.WithDecoration(text.Bold, true),
		text.WithFont("uniform"),
	)
	var child text.Style
	child.Apply(text.WithDecoration(text.Bold, false), text.WithInsertion("x"))

	got := child.Inherit(parent)
	require.NotNil(t, got.Color)
	assert.Equal(t, text.RGB(1, 2, 3), *got.Color)
	assert.Equal(t, text.False, got.Decoration(text.Bold), "explicit false wins over the parent")
	assert.Equal(t, text.NotSet, got.Decoration(text.Italic))
	assert.Equal(t, "uniform", got.Font)
	assert.Equal(t, "x", got.Insertion)

	assert.True(t, text.Style{}.IsEmpty())
	assert.False(t, got.IsEmpty())
}

func TestComponent(t *testing.T) {
	c := text.New("a").Append(
		text.Styled("b", text.WithDecoration(text.Italic, true)).Append(text.New("c")),
		text.New("d"),
	)
	assert.Equal(t, "abcd", c.PlainText())

	var order []string
	var depths []int
	c.Walk(func(n *text.Component, depth int) bool {
		order = append(order, n.Content)
		depths = append(depths, depth)
		return n.Content != "b"
	})
	assert.Equal(t, []string{"a", "b", "d"}, order)
	assert.Equal(t, []int{0, 1, 1}, depths)

	clone := c.Clone()
	clone.Children[0].Children[0].Content = "z"
	assert.Equal(t, "abcd", c.PlainText())
	assert.Equal(t, "abzd", clone.PlainText())

	sh := c.Shallow()
	assert.Empty(t, sh.Children)
	assert.Equal(t, "a", sh.Content)

	assert.Equal(t, "\"a\"\n  \"b\" [italic]\n    \"c\"\n  \"d\"\n", c.String())
}

func TestParseClickAction(t *testing.T) {
	a, ok := text.ParseClickAction("OPEN_URL")
	assert.True(t, ok)
	assert.Equal(t, text.OpenURL, a)
	_, ok = text.ParseClickAction("open_door")
	assert.False(t, ok)
}

func TestCompact(t *testing.T) {
	bold := text.WithDecoration(text.Bold, true)
	in := text.Empty().Append(
		text.Empty(),
		text.Styled("", bold).Append(text.New("x")),
		text.Empty().Append(text.New("y")),
	)
	out := text.Compact(in)
	assert.Equal(t, "\"\"\n  \"x\" [bold]\n  \"y\"\n", out.String())
	assert.Equal(t, in.PlainText(), out.PlainText())
	assert.Len(t, in.Children, 3, "input must not be modified")

	assert.Equal(t, "x", text.Compact(text.Empty().Append(text.New("x"))).Content)
	assert.NotNil(t, text.Compact(text.Empty()))
	assert.NotNil(t, text.Compact(nil))
}
