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
	"strings"
	"sync"

	"akhil.cc/minimark/ast"
)

// absent marks a name that was looked up and not found.
type absent struct{}

// CachingResolver memoizes an argument-free lookup function.
//
// Both hits and misses are cached. Forget and Clear are the only ways to
// invalidate an entry.
type CachingResolver struct {
	lookup func(name string) ast.Tag
	cache  sync.Map // string -> ast.Tag or absent
}

// Caching returns a resolver that calls lookup at most once per name until
// the name is forgotten. The tags lookup returns are shared between parses
// and must not be *ast.Modifying.
func Caching(lookup func(name string) ast.Tag) *CachingResolver {
	return &CachingResolver{lookup: lookup}
}

func (c *CachingResolver) query(name string) ast.Tag {
	name = strings.ToLower(name)
	if v, ok := c.cache.Load(name); ok {
		if t, ok := v.(ast.Tag); ok {
			return t
		}
		return nil
	}
	var v any = absent{}
	if t := c.lookup(name); t != nil {
		v = t
	}
	v, _ = c.cache.LoadOrStore(name, v)
	t, _ := v.(ast.Tag)
	return t
}

// Has reports whether lookup returns a tag for name.
func (c *CachingResolver) Has(name string) bool {
	return c.query(name) != nil
}

// Resolve returns the cached tag for name. Arguments are rejected.
func (c *CachingResolver) Resolve(name string, args *ArgumentQueue, ctx Context) (ast.Tag, error) {
	t := c.query(name)
	if t == nil {
		return nil, nil
	}
	if args.HasNext() {
		return nil, noArguments(name, args, ctx)
	}
	return t, nil
}

// Forget drops the cached entry for name.
func (c *CachingResolver) Forget(name string) {
	c.cache.Delete(strings.ToLower(name))
}

// Clear drops every cached entry.
func (c *CachingResolver) Clear() {
	c.cache.Range(func(k, _ any) bool {
		c.cache.Delete(k)
		return true
	})
}
