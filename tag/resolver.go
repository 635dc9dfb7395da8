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

package tag

import (
	"fmt"
	"strings"

	"akhil.cc/minimark/ast"
)

// Resolver turns a tag name and its arguments into a tag behavior.
//
// Resolve returns nil, nil when the resolver does not know name. Names are
// passed lower-cased.
type Resolver interface {
	Resolve(name string, args *ArgumentQueue, ctx Context) (ast.Tag, error)
	Has(name string) bool
}

// Handler creates a tag from its arguments.
type Handler func(args *ArgumentQueue, ctx Context) (ast.Tag, error)

// Option configures a static tag resolver.
type Option func(*single)

// IgnoreArguments makes the resolver accept and ignore arguments instead of
// failing on them.
func IgnoreArguments() Option {
	return func(s *single) { s.ignoreArgs = true }
}

type single struct {
	name       string
	tag        ast.Tag
	ignoreArgs bool
}

// Single returns a resolver binding one name to a fixed tag. The name is
// matched case-insensitively. Stateful *ast.Modifying tags must be bound
// with Dynamic instead, so that each use gets its own instance.
func Single(name string, t ast.Tag, opts ...Option) Resolver {
	s := &single{name: strings.ToLower(name), tag: t}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *single) Has(name string) bool {
	return strings.ToLower(name) == s.name
}

func (s *single) Resolve(name string, args *ArgumentQueue, ctx Context) (ast.Tag, error) {
	if !s.Has(name) {
		return nil, nil
	}
	if !s.ignoreArgs && args.HasNext() {
		return nil, noArguments(name, args, ctx)
	}
	return s.tag, nil
}

func noArguments(name string, args *ArgumentQueue, ctx Context) error {
	return newError(ctx, ast.ErrInvalidArgument,
		fmt.Sprintf("Tag '<%s>' does not accept any arguments", name), args)
}

type dynamic struct {
	names   map[string]struct{}
	handler Handler
}

// Dynamic returns a resolver that calls h for any of the given names.
//
// Errors returned by h that are not already *ast.Error, and panics inside h,
// are reported as ast.ErrResolverHandler.
func Dynamic(h Handler, names ...string) Resolver {
	d := &dynamic{names: make(map[string]struct{}, len(names)), handler: h}
	for _, n := range names {
		d.names[strings.ToLower(n)] = struct{}{}
	}
	return d
}

func (d *dynamic) Has(name string) bool {
	_, ok := d.names[strings.ToLower(name)]
	return ok
}

func (d *dynamic) Resolve(name string, args *ArgumentQueue, ctx Context) (t ast.Tag, err error) {
	if !d.Has(name) {
		return nil, nil
	}
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, handlerError(name, fmt.Errorf("panic: %v", r), args, ctx)
		}
	}()
	t, err = d.handler(args, ctx)
	if err != nil {
		return nil, handlerError(name, err, args, ctx)
	}
	return t, nil
}

func handlerError(name string, err error, args *ArgumentQueue, ctx Context) error {
	if _, ok := err.(*ast.Error); ok {
		return err
	}
	e := newError(ctx, ast.ErrResolverHandler, "exception thrown while parsing <"+name+">", args)
	e.Wrapped = err
	return e
}

type mapResolver map[string]ast.Tag

// Map returns a resolver for a fixed set of argument-free tags.
func Map(tags map[string]ast.Tag) Resolver {
	m := make(mapResolver, len(tags))
	for name, t := range tags {
		m[strings.ToLower(name)] = t
	}
	return m
}

func (m mapResolver) Has(name string) bool {
	_, ok := m[strings.ToLower(name)]
	return ok
}

func (m mapResolver) Resolve(name string, args *ArgumentQueue, ctx Context) (ast.Tag, error) {
	t, ok := m[strings.ToLower(name)]
	if !ok {
		return nil, nil
	}
	if args.HasNext() {
		return nil, noArguments(name, args, ctx)
	}
	return t, nil
}

type empty struct{}

// Empty returns a resolver that knows no tags.
func Empty() Resolver { return empty{} }

func (empty) Has(string) bool { return false }

func (empty) Resolve(string, *ArgumentQueue, Context) (ast.Tag, error) { return nil, nil }
