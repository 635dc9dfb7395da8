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
	"strings"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/text"
)

var decorationAliases = map[string]text.Decoration{
	"bold":          text.Bold,
	"b":             text.Bold,
	"italic":        text.Italic,
	"em":            text.Italic,
	"i":             text.Italic,
	"underlined":    text.Underlined,
	"u":             text.Underlined,
	"strikethrough": text.Strikethrough,
	"st":            text.Strikethrough,
	"obfuscated":    text.Obfuscated,
	"obf":           text.Obfuscated,
}

type decorations struct{}

// Decorations resolves the text decorations and their short forms. A leading
// '!' or a false argument turns the decoration off: <!bold>, <bold:false>.
func Decorations() tag.Resolver {
	return decorations{}
}

func lookupDecoration(name string) (text.Decoration, bool, bool) {
	on := true
	if strings.HasPrefix(name, "!") {
		on = false
		name = name[1:]
	}
	d, ok := decorationAliases[name]
	return d, on, ok
}

func (decorations) Has(name string) bool {
	_, _, ok := lookupDecoration(name)
	return ok
}

func (decorations) Resolve(name string, args *tag.ArgumentQueue, ctx tag.Context) (ast.Tag, error) {
	d, on, ok := lookupDecoration(name)
	if !ok {
		return nil, nil
	}
	if on && args.HasNext() {
		a, _ := args.Pop()
		if a.IsFalse() {
			on = false
		} else if !a.IsTrue() {
			return nil, tag.Invalid(ctx, "Expected true or false for decoration "+d.String()+", got '"+a.Value+"'", args)
		}
	}
	return &ast.Styling{Ops: []text.StyleOp{text.WithDecoration(d, on)}}, nil
}
