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

package minimark_test

import (
	"fmt"

	"akhil.cc/minimark"
	"akhil.cc/minimark/tag"
)

func ExampleParser_Deserialize() {
	p := minimark.New()
	c, err := p.Deserialize("<bold>Hello</bold> <name>!", tag.Unparsed("name", "Steve"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)
	// Output:
	// ""
	//   "" [bold]
	//     "Hello"
	//   " "
	//   "Steve"
	//   "!"
}

func ExampleParser_Deserialize_strict() {
	p := minimark.New(minimark.WithStrict(true))
	_, err := p.Deserialize("<red><bold>x</red>")
	fmt.Println(err)
	// Output:
	// Unclosed tag encountered; bold is not closed, because red was closed first.
	//	<red><bold>x</red>
	//	^~~~^^~~~~^ ^~~~~^
}

func ExampleEscape() {
	fmt.Println(minimark.Escape("<red>not red</red> <unknown>"))
	fmt.Println(minimark.Strip("<red>not red</red> <unknown>"))
	// Output:
	// \<red>not red\</red> <unknown>
	// not red <unknown>
}
