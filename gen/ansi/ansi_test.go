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

package ansi_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"akhil.cc/minimark"
	"akhil.cc/minimark/gen/ansi"
	"akhil.cc/minimark/text"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderer(p termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	return r
}

func output(t *testing.T, src string, p termenv.Profile) (string, string) {
	t.Helper()
	c, err := minimark.Deserialize(src)
	require.NoError(t, err)
	g := ansi.GenContext(context.Background(), c, renderer(p))
	var stdout, stderr bytes.Buffer
	g.Stdout = &stdout
	g.Stderr = &stderr
	require.NoError(t, g.Run())
	return stdout.String(), stderr.String()
}

func TestAscii(t *testing.T) {
	out, _ := output(t, "<red>a\tb</red>\n<bold>line two", termenv.Ascii)
	assert.Equal(t, "a\tb\nline two", out)
}

func TestTrueColor(t *testing.T) {
	out, _ := output(t, "<red>red</red> plain", termenv.TrueColor)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "38;2;255;85;85")
	assert.True(t, strings.HasSuffix(out, " plain"), "%q", out)
}

func TestMultiline(t *testing.T) {
	out, _ := output(t, "<bold>a\nlonger line", termenv.TrueColor)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "  ", "short lines are not padded")
}

func TestHyperlink(t *testing.T) {
	out, stderr := output(t, "<click:open_url:https://example.com>site", termenv.TrueColor)
	assert.Contains(t, out, "\x1b]8;;https://example.com")
	assert.Empty(t, stderr)

	out, _ = output(t, "<click:open_url:https://example.com>site", termenv.Ascii)
	assert.Equal(t, "site", out)

	_, stderr = output(t, "<hover:show_text:tip>x", termenv.Ascii)
	assert.Contains(t, stderr, `dropped hover "tip" on "x"`)
}

func TestStyle(t *testing.T) {
	var st text.Style
	st.Apply(
		text.WithDecoration(text.Bold, true),
		text.WithDecoration(text.Italic, false),
		text.WithDecoration(text.Strikethrough, true),
	)
	ls := ansi.Style(renderer(termenv.TrueColor), st)
	assert.True(t, ls.GetBold())
	assert.False(t, ls.GetItalic())
	assert.True(t, ls.GetStrikethrough())
}
