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

// Package standard provides the default tag catalog.
//
//	<red>, <#ff00aa>, <color:red>        text color
//	<bold>, <b>, <!bold>, <bold:false>   decorations
//	<click:action:value>                 click events
//	<hover:show_text:markup>             hover text
//	<insert:text>                        shift-click insertion
//	<font:key>                           font
//	<newline>, <br>                      line break
//	<gradient>, <rainbow>, <pride>       per-character color
//	<transition:colors...:phase>         a single color along a gradient
//	<reset>, <pre>                       reserved
package standard // import "akhil.cc/minimark/tag/standard"

import (
	"sync"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/text"
)

var (
	defaults     tag.Resolver
	defaultsOnce sync.Once
)

// Defaults returns every standard tag. The resolver is built once and shared.
func Defaults() tag.Resolver {
	defaultsOnce.Do(func() {
		defaults = tag.NewBuilder().Resolvers(
			Reserved(),
			Colors(),
			Decorations(),
			Click(),
			Hover(),
			Insertion(),
			Font(),
			Newline(),
			Gradient(),
			Rainbow(),
			Transition(),
			Pride(),
		).Build()
	})
	return defaults
}

// Reserved reports reset and pre as known tags. They are handled by the
// parser itself and never resolve to a tag.
func Reserved() tag.Resolver {
	return reserved{}
}

type reserved struct{}

func (reserved) Has(name string) bool {
	return name == "reset" || name == "pre"
}

func (reserved) Resolve(string, *tag.ArgumentQueue, tag.Context) (ast.Tag, error) {
	return nil, nil
}

// Newline inserts a line break for <newline> and <br>.
func Newline() tag.Resolver {
	br := &ast.Inserting{Value: text.New("\n")}
	return tag.Sequential(tag.Single("newline", br), tag.Single("br", br))
}
