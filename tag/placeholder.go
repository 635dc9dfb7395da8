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
	"akhil.cc/minimark/text"
)

// Unparsed returns a placeholder inserting value as literal text.
func Unparsed(key, value string) Resolver {
	return Single(key, &ast.Inserting{Value: text.New(value)})
}

// Parsed returns a placeholder inserting markup, deserialized with the tags
// of the parse it appears in.
func Parsed(key, markup string) Resolver {
	return Dynamic(func(args *ArgumentQueue, ctx Context) (ast.Tag, error) {
		c, err := ctx.Deserialize(markup)
		if err != nil {
			return nil, err
		}
		return &ast.Inserting{Value: c}, nil
	}, key)
}

// Component returns a placeholder inserting c.
func Component(key string, c *text.Component) Resolver {
	return Single(key, &ast.Inserting{Value: c})
}

// Styling returns a placeholder that styles its content with ops.
func Styling(key string, ops ...text.StyleOp) Resolver {
	return Single(key, &ast.Styling{Ops: ops})
}
