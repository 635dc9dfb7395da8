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

// Package parser implements the tokenizer, tree builder and escaper for
// minimark source. It takes in a string and outputs an *ast.Tree.
//
// It is the responsibility of the caller to resolve tag names into tag
// behaviors through a TagProvider.
//
// The tokenizer adheres to the following grammar:
//
//      unicode_char = /* an arbitrary Unicode code point */ .
//      lt           = /* the Unicode code point U+003C */ .
//      gt           = /* the Unicode code point U+003E */ .
//      slash        = /* the Unicode code point U+002F */ .
//      colon        = /* the Unicode code point U+003A */ .
//      quote        = /* the Unicode code point U+0027 or U+0022 */ .
//      backslash    = /* the Unicode code point U+005C */ .
//
//      escaped      = backslash unicode_char .
//      quoted       = quote { escaped | unicode_char } quote .
//      part         = { escaped | quoted | unicode_char } .
//      parts        = part { colon part } .
//      open_tag     = lt parts gt .
//      close_tag    = lt slash parts gt .
//      pre_region   = lt "pre" gt { unicode_char } lt slash "pre" gt .
//      text         = { escaped | unicode_char } .
//      source       = { text | open_tag | close_tag | pre_region } .
//
// A colon followed by "//" does not separate parts, so that
// <click:open_url:https://example.com> has three parts.
//
// Two tag names are reserved. <reset> closes every open tag, and <pre>
// starts a region whose contents are literal text up to the next </pre>.
//
// In the relevant context, the following characters are escaped (in Go syntax):
//
//      '\\', '<', ':', '>', '\'', '"'
//
package parser // import "akhil.cc/minimark/parser"

import (
	"strings"

	"akhil.cc/minimark/ast"
)

// TagProvider decides which tag names exist and resolves them into behaviors.
type TagProvider interface {
	// Has reports whether name, lower-cased, is a known tag.
	Has(name string) bool
	// Resolve returns the behavior for a tag. parts[0] is the name as written.
	// A nil tag or a non-nil error makes the tag literal text.
	Resolve(name string, parts []ast.TagPart, tok ast.Token) (ast.Tag, error)
}

// MustParse is like Parse but panics if the source cannot be parsed.
func MustParse(src string, tags TagProvider, strict bool) *ast.Tree {
	t, err := Parse(src, tags, nil, strict)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return t
}

// Parse tokenizes src and builds its element tree.
func Parse(src string, tags TagProvider, templates map[string]string, strict bool) (*ast.Tree, error) {
	return Build(src, Tokenize(src), tags, templates, strict)
}

// Build builds the element tree of src from its tokens.
//
// Templates are literal replacements looked up by tag name; they are inserted
// as value nodes and never reparsed. In strict mode, <reset>, closing an
// outer tag before an inner one, and leaving tags open at the end of the
// input are errors. In lenient mode the same input is accepted.
func Build(src string, tokens []ast.Token, tags TagProvider, templates map[string]string, strict bool) (*ast.Tree, error) {
	b := &builder{
		src:       src,
		tags:      tags,
		templates: templates,
		strict:    strict,
		tree:      ast.NewTree(src),
	}
	b.cursor = b.tree.Root()
	for _, tok := range tokens {
		var err error
		switch tok.Kind {
		case ast.Text:
			b.text(tok)
		case ast.OpenTag:
			err = b.open(tok)
		case ast.CloseTag:
			err = b.close(tok)
		}
		if err != nil {
			return nil, err
		}
	}
	if strict && b.cursor != b.tree.Root() {
		return nil, b.unclosed()
	}
	return b.tree, nil
}

type builder struct {
	src       string
	tags      TagProvider
	templates map[string]string
	strict    bool
	tree      *ast.Tree
	cursor    ast.NodeID
}

func (b *builder) text(tok ast.Token) {
	b.tree.Add(b.cursor, ast.Node{
		Kind:  ast.TextNode,
		Token: tok,
		Value: TextContent(b.src, tok),
	})
}

func isReset(name string) bool {
	return strings.EqualFold(name, Reset)
}

func (b *builder) open(tok ast.Token) error {
	parts := Parts(b.src, tok)
	name := parts[0].Value
	switch {
	case isReset(name):
		if b.strict {
			return ast.NewError(ast.ErrStructure, b.src,
				"<reset> tags are not allowed when strict mode is enabled", tok)
		}
		b.cursor = b.tree.Root()
		return nil
	case name == Pre:
		// the body was captured by the tokenizer
		return nil
	}
	if v, ok := b.templates[name]; ok {
		b.tree.Add(b.cursor, ast.Node{Kind: ast.ValueNode, Token: tok, Value: v})
		return nil
	}
	lower := strings.ToLower(name)
	if !b.tags.Has(lower) {
		b.text(tok)
		return nil
	}
	t, err := b.tags.Resolve(lower, parts, tok)
	if err != nil || t == nil {
		b.text(tok)
		return nil
	}
	id := b.tree.Add(b.cursor, ast.Node{Kind: ast.TagNode, Token: tok, Parts: parts, Tag: t})
	if _, ok := t.(*ast.Inserting); !ok {
		b.cursor = id
	}
	return nil
}

// closes reports whether a close tag with parts cl closes an open tag with
// parts op: cl must be a prefix of op, comparing names case-insensitively.
func closes(cl, op []ast.TagPart) bool {
	if len(cl) > len(op) {
		return false
	}
	if !strings.EqualFold(cl[0].Value, op[0].Value) {
		return false
	}
	for i := 1; i < len(cl); i++ {
		if cl[i].Value != op[i].Value {
			return false
		}
	}
	return true
}

func (b *builder) close(tok ast.Token) error {
	parts := Parts(b.src, tok)
	name := parts[0].Value
	if isReset(name) || name == Pre {
		return nil
	}
	if !b.tags.Has(strings.ToLower(name)) {
		b.text(tok)
		return nil
	}
	for id := b.cursor; id != b.tree.Root(); {
		n := b.tree.Node(id)
		if n.Kind != ast.TagNode {
			break
		}
		if closes(parts, n.Parts) {
			if id != b.cursor && b.strict {
				cur := b.tree.Node(b.cursor)
				return ast.NewError(ast.ErrStructure, b.src,
					"Unclosed tag encountered; "+cur.Parts[0].Value+" is not closed, because "+name+" was closed first.",
					n.Token, cur.Token, tok)
			}
			b.cursor = n.Parent
			return nil
		}
		id = n.Parent
	}
	// dangling close tags are never an error
	b.text(tok)
	return nil
}

func (b *builder) unclosed() error {
	var open []*ast.Node
	for id := b.cursor; id != b.tree.Root(); id = b.tree.Node(id).Parent {
		open = append(open, b.tree.Node(id))
	}
	names := make([]string, len(open))
	toks := make([]ast.Token, len(open))
	for i := range open {
		n := open[len(open)-1-i]
		names[i] = n.Parts[0].Value
		toks[i] = n.Token
	}
	return ast.NewError(ast.ErrStructure, b.src,
		"All tags must be explicitly closed while in strict mode. End of string found with open tags: "+strings.Join(names, ", "),
		toks...)
}
