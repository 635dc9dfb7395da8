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

const (
	tagStart  = '<'
	tagEnd    = '>'
	closeMark = '/'
	separator = ':'
	escape    = '\\'
)

// Reserved tag names.
const (
	Reset = "reset"
	Pre   = "pre"
)

const (
	preOpen  = "<" + Pre + ">"
	preClose = "</" + Pre + ">"
)

type state int

const (
	normal state = iota
	inTag
	quoted
)

// Tokenize splits src into TEXT, OPEN_TAG and CLOSE_TAG tokens. Tag tokens
// carry their colon separated parts as TAG_VALUE children.
//
// Tokenize never fails: a '<' that does not start a well formed tag is text.
func Tokenize(src string) []ast.Token {
	var s scanner
	s.scan(src)
	for i := range s.tokens {
		if k := s.tokens[i].Kind; k == ast.OpenTag || k == ast.CloseTag {
			s.tokens[i].Children = splitParts(src, s.tokens[i])
		}
	}
	return s.tokens
}

type scanner struct {
	tokens []ast.Token
	last   int // end of the last emitted token
}

func (s *scanner) emit(start, end int, kind ast.TokenKind) {
	s.tokens = append(s.tokens, ast.Token{Start: start, End: end, Kind: kind})
	s.last = end
}

func (s *scanner) scan(src string) {
	var (
		st     = normal
		marker = -1
		quote  byte
	)
	n := len(src)
	for i := 0; i < n; i++ {
		c := src[i]
		if c == escape && i+1 < n {
			i++
			if st == inTag && src[i] == tagStart {
				// an escaped '<' cannot be part of a tag name
				st = normal
			}
			if i == n-1 && st != normal {
				i, st = marker, normal
			}
			continue
		}
		switch st {
		case normal:
			if c == tagStart {
				marker = i
				st = inTag
			}
		case inTag:
			switch c {
			case tagEnd:
				if i == marker+1 {
					// <> is not a tag
					st = normal
					break
				}
				if s.last != marker {
					s.emit(s.last, marker, ast.Text)
				}
				kind := ast.OpenTag
				if src[marker+1] == closeMark {
					kind = ast.CloseTag
				}
				s.emit(marker, i+1, kind)
				st = normal
				if kind == ast.OpenTag && src[marker:i+1] == preOpen {
					i = s.preformatted(src, i+1) - 1
				}
			case tagStart:
				marker = i
			case '\'', '"':
				if strings.IndexByte(src[i+1:], c) != -1 {
					quote = c
					st = quoted
				}
			}
		case quoted:
			if c == quote {
				st = inTag
			}
		}
		if i == n-1 && st != normal {
			// unterminated tag; rescan what followed the '<' as text
			i, st = marker, normal
		}
	}
	if s.last != n {
		s.emit(s.last, n, ast.Text)
	}
}

// preformatted emits the body of a <pre> region starting at from, and its
// closing tag if present. It returns the index to resume scanning at.
func (s *scanner) preformatted(src string, from int) int {
	j := strings.Index(src[from:], preClose)
	if j < 0 {
		s.emit(from, len(src), ast.Text)
		return len(src)
	}
	j += from
	if j > from {
		s.emit(from, j, ast.Text)
	}
	s.emit(j, j+len(preClose), ast.CloseTag)
	return j + len(preClose)
}

// splitParts splits the interior of a tag token on unquoted separators.
// A separator followed by "//" does not split, so URLs survive intact.
func splitParts(src string, tok ast.Token) []ast.Token {
	start := tok.Start + 1
	if tok.Kind == ast.CloseTag {
		start++
	}
	end := tok.End - 1

	var (
		parts  []ast.Token
		st     = normal
		quote  byte
		marker = start
	)
	for i := start; i < end; i++ {
		c := src[i]
		if c == escape && i+1 < end {
			i++
			continue
		}
		switch st {
		case normal:
			switch c {
			case separator:
				if i+2 < len(src) && src[i+1] == '/' && src[i+2] == '/' {
					break
				}
				parts = append(parts, ast.Token{Start: marker, End: i, Kind: ast.TagValue})
				marker = i + 1
			case '\'', '"':
				quote = c
				st = quoted
			}
		case quoted:
			if c == quote {
				st = normal
			}
		}
	}
	return append(parts, ast.Token{Start: marker, End: end, Kind: ast.TagValue})
}
