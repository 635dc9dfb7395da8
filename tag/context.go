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

// Package tag resolves tag names and their arguments into tag behaviors.
//
// Resolvers are composed into chains: single and dynamic resolvers bind
// names to behaviors, the sequential resolver tries a list of resolvers with
// later ones taking priority, and the caching resolver memoizes lookups of
// tags that take no arguments. Resolvers are safe for concurrent use.
package tag // import "akhil.cc/minimark/tag"

import (
	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/text"
)

// Context is the parse state visible to tag handlers.
type Context interface {
	// Strict reports whether the parse runs in strict mode.
	Strict() bool
	// Source returns the input being parsed.
	Source() string
	// Debugf writes a trace line to the debug sink, if any.
	Debugf(format string, args ...any)
	// Deserialize parses nested markup with the same tags and settings.
	Deserialize(markup string) (*text.Component, error)
	// NewError returns an error positioned at the arguments of args.
	NewError(msg string, args *ArgumentQueue) *ast.Error
}

// Invalid returns an ast.ErrInvalidArgument error positioned at the
// arguments of args. ctx may be nil.
func Invalid(ctx Context, msg string, args *ArgumentQueue) *ast.Error {
	return newError(ctx, ast.ErrInvalidArgument, msg, args)
}

func newError(ctx Context, code ast.ErrorCode, msg string, args *ArgumentQueue) *ast.Error {
	var e *ast.Error
	if ctx != nil {
		e = ctx.NewError(msg, args)
	} else {
		e = ast.NewError(code, "", msg)
		if args != nil {
			e.Tokens = args.Tokens()
		}
	}
	e.Code = code
	return e
}
