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

package minimark

import (
	"fmt"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/parser"
	"akhil.cc/minimark/render"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/text"
)

// parseContext is the state of a single parse. It provides tags to the
// tree builder and is the tag.Context seen by tag handlers.
type parseContext struct {
	p         *Parser
	src       string
	templates map[string]string
	extra     []tag.Resolver
	tags      tag.Resolver
}

var (
	_ tag.Context        = (*parseContext)(nil)
	_ parser.TagProvider = (*parseContext)(nil)
)

func (p *Parser) newContext(src string, templates map[string]string, extra []tag.Resolver) *parseContext {
	return &parseContext{
		p:         p,
		src:       src,
		templates: templates,
		extra:     extra,
		tags:      p.resolver(extra),
	}
}

func (c *parseContext) tree() (*ast.Tree, error) {
	c.Debugf("Beginning parsing message %s", c.src)
	t, err := parser.Parse(c.src, c, c.templates, c.p.strict)
	if err != nil {
		c.p.logger.Debug().Err(err).Str("source", c.src).Msg("parse failed")
		return nil, err
	}
	if c.p.debug != nil {
		c.Debugf("Text parsed into element tree:\n%s", t)
	}
	return t, nil
}

func (c *parseContext) Has(name string) bool {
	return c.tags.Has(name)
}

func (c *parseContext) Resolve(name string, parts []ast.TagPart, tok ast.Token) (ast.Tag, error) {
	c.Debugf("Attempting to match node '%s' at column %d", name, tok.Start)
	args := tag.NewArgumentQueue(c, parts[1:])
	t, err := c.tags.Resolve(name, args, c)
	switch {
	case err != nil:
		c.Debugf("Could not match node '%s' - %s", name, err)
		c.p.logger.Debug().Err(err).Str("tag", name).Int("column", tok.Start).Msg("tag left as text")
	case t == nil:
		c.Debugf("Could not match node '%s' - no resolver produced a tag", name)
	default:
		c.Debugf("Successfully matched node '%s' to tag %T", name, t)
		c.p.logger.Trace().Str("tag", name).Int("column", tok.Start).Msgf("resolved %T", t)
	}
	return t, err
}

func (c *parseContext) Strict() bool {
	return c.p.strict
}

func (c *parseContext) Source() string {
	return c.src
}

func (c *parseContext) Debugf(format string, args ...any) {
	if c.p.debug == nil {
		return
	}
	c.p.debug(fmt.Sprintf(format, args...))
}

// Deserialize parses nested markup, such as hover text, with the resolvers
// and templates of the enclosing parse.
func (c *parseContext) Deserialize(markup string) (*text.Component, error) {
	nested := c.p.newContext(markup, c.templates, c.extra)
	t, err := nested.tree()
	if err != nil {
		return nil, err
	}
	return render.Tree(t), nil
}

func (c *parseContext) NewError(msg string, args *tag.ArgumentQueue) *ast.Error {
	return ast.NewError(ast.ErrInvalidArgument, c.src, msg, args.Tokens()...)
}
