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

package standard

import (
	"fmt"
	"strings"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/text"
)

var colorNames = []string{"color", "colour", "c"}

type colors struct{}

// Colors resolves <color:x>, <colour:x>, <c:x>, named colors such as <red>
// and hex colors such as <#ff00aa>.
func Colors() tag.Resolver {
	return colors{}
}

func isColorKeyword(name string) bool {
	for _, n := range colorNames {
		if name == n {
			return true
		}
	}
	return false
}

func (colors) Has(name string) bool {
	if isColorKeyword(name) {
		return true
	}
	_, ok := parseColor(name)
	return ok
}

func (colors) Resolve(name string, args *tag.ArgumentQueue, ctx tag.Context) (ast.Tag, error) {
	value := name
	if isColorKeyword(name) {
		a, err := args.PopOr("Expected to find a color parameter: <name>|#RRGGBB")
		if err != nil {
			return nil, err
		}
		value = a.Value
	}
	c, ok := parseColor(value)
	if !ok {
		if !isColorKeyword(name) {
			return nil, nil
		}
		return nil, colorError(value, args, ctx)
	}
	return &ast.Styling{Ops: []text.StyleOp{text.WithColor(c)}}, nil
}

// parseColor parses a named color or #RRGGBB.
func parseColor(s string) (text.Color, bool) {
	if strings.HasPrefix(s, "#") {
		return text.ParseHex(s)
	}
	return text.Named(s)
}

func colorError(value string, args *tag.ArgumentQueue, ctx tag.Context) *ast.Error {
	return tag.Invalid(ctx, fmt.Sprintf("Unable to parse a color from '%s'. Please use named colours or hex (#RRGGBB) colors.", value), args)
}
