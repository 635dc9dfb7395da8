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

package parser

import (
	"strings"

	"akhil.cc/minimark/ast"
)

// Escape returns src with every known tag escaped so that it renders as
// literal text. has reports whether a lower-cased tag name is known; the
// reserved names are always known. Tag arguments are escaped recursively.
// Unknown tags are left untouched.
func Escape(src string, has func(name string) bool) string {
	var b strings.Builder
	b.Grow(len(src) + len(src)/8)
	rewrite(&b, src, has, false)
	return b.String()
}

// Strip returns src with every known tag removed. Unknown tags are left
// untouched.
func Strip(src string, has func(name string) bool) string {
	var b strings.Builder
	b.Grow(len(src))
	rewrite(&b, src, has, true)
	return b.String()
}

func known(name string, has func(string) bool) bool {
	lower := strings.ToLower(name)
	return isReset(lower) || name == Pre || has(lower)
}

func rewrite(b *strings.Builder, src string, has func(string) bool, strip bool) {
	inPre := false
	for _, tok := range Tokenize(src) {
		switch tok.Kind {
		case ast.Text:
			if inPre && !strip {
				escapeTagStarts(b, tok.Text(src))
			} else {
				b.WriteString(tok.Text(src))
			}
		case ast.OpenTag, ast.CloseTag:
			name := PartValue(src, tok.Children[0])
			inPre = tok.Kind == ast.OpenTag && tok.Text(src) == preOpen
			if !known(name, has) {
				b.WriteString(tok.Text(src))
				continue
			}
			if strip {
				continue
			}
			b.WriteByte(escape)
			last := tok.Start
			for _, ch := range tok.Children {
				b.WriteString(src[last:ch.Start])
				rewrite(b, src[ch.Start:ch.End], has, false)
				last = ch.End
			}
			b.WriteString(src[last:tok.End])
		}
	}
}

// escapeTagStarts writes s with every unescaped '<' escaped.
func escapeTagStarts(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == escape && i+1 < len(s):
			b.WriteByte(c)
			i++
			b.WriteByte(s[i])
		case c == tagStart:
			b.WriteByte(escape)
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
}
