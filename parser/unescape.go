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

// unescape copies src[start:end], dropping a backslash in front of any byte
// for which escapable reports true.
func unescape(src string, start, end int, escapable func(byte) bool) string {
	if strings.IndexByte(src[start:end], escape) < 0 {
		return src[start:end]
	}
	var b strings.Builder
	b.Grow(end - start)
	for i := start; i < end; i++ {
		c := src[i]
		if c == escape && i+1 < end && escapable(src[i+1]) {
			i++
			c = src[i]
		}
		b.WriteByte(c)
	}
	return b.String()
}

// TextContent returns the literal content of a text token: "\<" becomes "<"
// and "\\" becomes "\".
func TextContent(src string, tok ast.Token) string {
	return unescape(src, tok.Start, tok.End, func(c byte) bool {
		return c == tagStart || c == escape
	})
}

// PartValue returns the value of a tag part token. A part wrapped in matching
// quotes loses them and has its quote character and backslash unescaped.
// An unquoted part has backslash, separator, '>' and both quotes unescaped.
func PartValue(src string, tok ast.Token) string {
	start, end := tok.Start, tok.End
	if start == end {
		return ""
	}
	first := src[start]
	if (first == '\'' || first == '"') && end-start >= 2 && src[end-1] == first {
		return unescape(src, start+1, end-1, func(c byte) bool {
			return c == first || c == escape
		})
	}
	return unescape(src, start, end, func(c byte) bool {
		switch c {
		case escape, separator, tagEnd, '\'', '"':
			return true
		}
		return false
	})
}

// Parts materializes the parts of a tag token. Part 0 is the tag name.
func Parts(src string, tok ast.Token) []ast.TagPart {
	parts := make([]ast.TagPart, len(tok.Children))
	for i, ch := range tok.Children {
		parts[i] = ast.TagPart{Value: PartValue(src, ch), Token: ch}
	}
	return parts
}
