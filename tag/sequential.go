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
	"akhil.cc/minimark/ast"
)

// SequentialResolver tries a list of resolvers, most recently added first.
type SequentialResolver struct {
	resolvers []Resolver
}

// Sequential returns a resolver trying rs from last to first. Nested
// sequential resolvers are flattened.
func Sequential(rs ...Resolver) *SequentialResolver {
	return &SequentialResolver{resolvers: flatten(nil, rs)}
}

func flatten(dst []Resolver, rs []Resolver) []Resolver {
	for _, r := range rs {
		switch r := r.(type) {
		case nil:
		case *SequentialResolver:
			dst = append(dst, r.resolvers...)
		case empty:
		default:
			dst = append(dst, r)
		}
	}
	return dst
}

// Has reports whether any resolver knows name.
func (s *SequentialResolver) Has(name string) bool {
	for i := len(s.resolvers) - 1; i >= 0; i-- {
		if s.resolvers[i].Has(name) {
			return true
		}
	}
	return false
}

// Resolve asks each resolver in turn, rewinding args before every attempt.
//
// The first tag found wins, even after earlier failures. If no resolver
// returns a tag, the first error is returned with the others attached as
// suppressed errors. If no resolver knows the name, Resolve returns nil, nil.
func (s *SequentialResolver) Resolve(name string, args *ArgumentQueue, ctx Context) (ast.Tag, error) {
	var primary *ast.Error
	for i := len(s.resolvers) - 1; i >= 0; i-- {
		args.Reset()
		t, err := s.resolvers[i].Resolve(name, args, ctx)
		if err != nil {
			if primary == nil {
				primary = asError(name, err, args, ctx)
			} else {
				primary.Suppress(err)
			}
			continue
		}
		if t != nil {
			return t, nil
		}
	}
	if primary != nil {
		return nil, primary
	}
	return nil, nil
}

func asError(name string, err error, args *ArgumentQueue, ctx Context) *ast.Error {
	if e, ok := err.(*ast.Error); ok {
		return e
	}
	return handlerError(name, err, args, ctx).(*ast.Error)
}

// Builder accumulates tags and resolvers into a single resolver.
type Builder struct {
	tags      map[string]ast.Tag
	resolvers []Resolver
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{tags: make(map[string]ast.Tag)}
}

// Tag binds name to a fixed, argument-free tag.
func (b *Builder) Tag(name string, t ast.Tag) *Builder {
	b.tags[name] = t
	return b
}

// Resolver adds r. Static map resolvers are merged into the builder's own
// tags and sequential resolvers are flattened.
func (b *Builder) Resolver(r Resolver) *Builder {
	switch r := r.(type) {
	case mapResolver:
		for name, t := range r {
			b.tags[name] = t
		}
	default:
		b.resolvers = flatten(b.resolvers, []Resolver{r})
	}
	return b
}

// Resolvers adds each of rs in order.
func (b *Builder) Resolvers(rs ...Resolver) *Builder {
	for _, r := range rs {
		b.Resolver(r)
	}
	return b
}

// Build returns the combined resolver. The builder's own tags take priority
// over every added resolver.
func (b *Builder) Build() Resolver {
	hasTags := len(b.tags) > 0
	switch {
	case len(b.resolvers) == 0 && !hasTags:
		return Empty()
	case len(b.resolvers) == 1 && !hasTags:
		return b.resolvers[0]
	case len(b.resolvers) == 0:
		return Map(b.tags)
	}
	rs := make([]Resolver, len(b.resolvers), len(b.resolvers)+1)
	copy(rs, b.resolvers)
	if hasTags {
		rs = append(rs, Map(b.tags))
	}
	return &SequentialResolver{resolvers: rs}
}
