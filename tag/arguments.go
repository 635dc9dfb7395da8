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

import "akhil.cc/minimark/ast"

// ArgumentQueue hands out the arguments of a tag in order.
type ArgumentQueue struct {
	ctx   Context
	args  []ast.TagPart
	index int
}

// NewArgumentQueue returns a queue over args. ctx is used to position errors
// and may be nil.
func NewArgumentQueue(ctx Context, args []ast.TagPart) *ArgumentQueue {
	return &ArgumentQueue{ctx: ctx, args: args}
}

// Pop returns the next argument. It fails with ast.ErrMissingArgument once
// the queue is exhausted.
func (q *ArgumentQueue) Pop() (ast.TagPart, error) {
	return q.PopOr("Missing argument for this tag")
}

// PopOr is like Pop but fails with the given message.
func (q *ArgumentQueue) PopOr(msg string) (ast.TagPart, error) {
	if !q.HasNext() {
		var ctx Context
		if q != nil {
			ctx = q.ctx
		}
		return ast.TagPart{}, newError(ctx, ast.ErrMissingArgument, msg, q)
	}
	p := q.args[q.index]
	q.index++
	return p, nil
}

// Peek returns the next argument without consuming it.
func (q *ArgumentQueue) Peek() (ast.TagPart, bool) {
	if !q.HasNext() {
		return ast.TagPart{}, false
	}
	return q.args[q.index], true
}

// HasNext reports whether an argument remains. A nil queue is empty.
func (q *ArgumentQueue) HasNext() bool {
	return q != nil && q.index < len(q.args)
}

// Reset rewinds the queue to its first argument.
func (q *ArgumentQueue) Reset() {
	if q != nil {
		q.index = 0
	}
}

// Len returns the total number of arguments.
func (q *ArgumentQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.args)
}

// Remaining returns the arguments not yet consumed.
func (q *ArgumentQueue) Remaining() []ast.TagPart {
	if q == nil {
		return nil
	}
	return q.args[q.index:]
}

// Tokens returns the tokens of every argument.
func (q *ArgumentQueue) Tokens() []ast.Token {
	if q == nil {
		return nil
	}
	toks := make([]ast.Token, len(q.args))
	for i, a := range q.args {
		toks[i] = a.Token
	}
	return toks
}
