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

// Package plain writes the text of a component without any styling.
package plain // import "akhil.cc/minimark/gen/plain"

import (
	"context"
	"io"

	"akhil.cc/minimark/gen"
	"akhil.cc/minimark/text"
)

// Gen returns the Generator to write c as plain text.
func Gen(c *text.Component) *gen.Generator {
	return GenContext(context.Background(), c)
}

// GenContext is like Gen but includes a context.
func GenContext(ctx context.Context, c *text.Component) *gen.Generator {
	return gen.New(ctx, c, Emit)
}

// Emit writes the content of every segment of c to w.
func Emit(ctx context.Context, c *text.Component, w, _ io.Writer) error {
	return gen.Walk(ctx, c, func(s gen.Segment) error {
		_, err := io.WriteString(w, s.Text)
		return err
	})
}
