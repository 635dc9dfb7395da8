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

// Package minimark deserializes tag-based markup into styled text.
//
// Markup is plain text interleaved with tags:
//
//	<red>Hello <bold>world</bold>!</red> <click:open_url:https://example.com>site
//
// A Parser tokenizes the input, builds an element tree by resolving tag
// names through a chain of tag resolvers, and renders the tree into a
// *text.Component. Unknown tags, bad arguments and unmatched closing tags are
// kept as literal text unless the Parser is strict.
package minimark // import "akhil.cc/minimark"

import (
	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/parser"
	"akhil.cc/minimark/render"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/tag/standard"
	"akhil.cc/minimark/text"
	"github.com/rs/zerolog"
)

// A Parser turns markup into components. It is immutable and safe for
// concurrent use.
type Parser struct {
	tags   tag.Resolver
	strict bool
	debug  func(string)
	logger zerolog.Logger
	post   func(*text.Component) *text.Component
}

// Option configures a Parser.
type Option func(*Parser)

// WithTags replaces the standard tags with r.
func WithTags(r tag.Resolver) Option {
	return func(p *Parser) {
		if r == nil {
			r = tag.Empty()
		}
		p.tags = r
	}
}

// WithStrict makes <reset>, out-of-order closing tags and tags left open at
// the end of the input errors.
func WithStrict(strict bool) Option {
	return func(p *Parser) { p.strict = strict }
}

// WithDebug sends a line-by-line trace of every parse to sink.
func WithDebug(sink func(string)) Option {
	return func(p *Parser) { p.debug = sink }
}

// WithLogger logs tag resolution to l.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// WithPostProcessor transforms every deserialized component before it is
// returned, e.g. text.Compact.
func WithPostProcessor(fn func(*text.Component) *text.Component) Option {
	return func(p *Parser) { p.post = fn }
}

// New returns a Parser with the standard tags, in lenient mode.
func New(opts ...Option) *Parser {
	p := &Parser{
		tags:   standard.Defaults(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Strict reports whether p is strict.
func (p *Parser) Strict() bool {
	return p.strict
}

// Tags returns the resolver p was configured with.
func (p *Parser) Tags() tag.Resolver {
	return p.tags
}

// resolver combines the configured tags with per-call resolvers. Later
// resolvers take priority.
func (p *Parser) resolver(extra []tag.Resolver) tag.Resolver {
	if len(extra) == 0 {
		return p.tags
	}
	return tag.Sequential(append([]tag.Resolver{p.tags}, extra...)...)
}

// Deserialize parses markup into a component. Extra resolvers add to, and
// override, the configured tags for this call only.
func (p *Parser) Deserialize(markup string, resolvers ...tag.Resolver) (*text.Component, error) {
	return p.DeserializeTemplates(markup, nil, resolvers...)
}

// DeserializeTemplates is like Deserialize, but a tag whose name is a key of
// templates is replaced by the literal value. Values are not parsed.
func (p *Parser) DeserializeTemplates(markup string, templates map[string]string, resolvers ...tag.Resolver) (*text.Component, error) {
	ctx := p.newContext(markup, templates, resolvers)
	t, err := ctx.tree()
	if err != nil {
		return nil, err
	}
	c := render.Tree(t)
	if p.post != nil {
		c = p.post(c)
	}
	return c, nil
}

// DeserializeTree parses markup into its element tree without rendering it.
func (p *Parser) DeserializeTree(markup string, resolvers ...tag.Resolver) (*ast.Tree, error) {
	return p.newContext(markup, nil, resolvers).tree()
}

// Escape escapes every known tag in markup so that it renders literally.
func (p *Parser) Escape(markup string, resolvers ...tag.Resolver) string {
	return parser.Escape(markup, p.resolver(resolvers).Has)
}

// Strip removes every known tag from markup.
func (p *Parser) Strip(markup string, resolvers ...tag.Resolver) string {
	return parser.Strip(markup, p.resolver(resolvers).Has)
}

var std = New()

// Deserialize parses markup with the standard tags in lenient mode.
func Deserialize(markup string, resolvers ...tag.Resolver) (*text.Component, error) {
	return std.Deserialize(markup, resolvers...)
}

// Escape escapes the standard tags in markup.
func Escape(markup string, resolvers ...tag.Resolver) string {
	return std.Escape(markup, resolvers...)
}

// Strip removes the standard tags from markup.
func Strip(markup string, resolvers ...tag.Resolver) string {
	return std.Strip(markup, resolvers...)
}
