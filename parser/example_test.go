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

// Examples for parse.go
package parser_test

import (
	"fmt"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/parser"
)

func ExampleTokenize() {
	src := "<click:open_url:https://example.com>here</click>"
	for _, tok := range parser.Tokenize(src) {
		fmt.Println(tok.Kind, tok.Text(src))
		for _, p := range parser.Parts(src, tok) {
			fmt.Println("  part", p.Value)
		}
	}
	// Output:
	// OPEN_TAG <click:open_url:https://example.com>
	//   part click
	//   part open_url
	//   part https://example.com
	// TEXT here
	// CLOSE_TAG </click>
	//   part click
}

func ExampleMustParse() {
	tags := fakeTags{
		"bold":   func() ast.Tag { return &ast.Styling{} },
		"italic": func() ast.Tag { return &ast.Styling{} },
	}
	tree := parser.MustParse("<bold>Hello <italic>World</italic>!</bold>", tags, true)
	fmt.Print(tree)
	// Output:
	// Root
	//   TagNode('bold')
	//     TextNode('Hello ')
	//     TagNode('italic')
	//       TextNode('World')
	//     TextNode('!')
}

func ExampleEscape() {
	known := func(name string) bool { return name == "bold" }
	fmt.Println(parser.Escape("<bold>hi</bold> <unknown>", known))
	fmt.Println(parser.Strip("<bold>hi</bold> <unknown>", known))
	// Output:
	// \<bold>hi\</bold> <unknown>
	// hi <unknown>
}
