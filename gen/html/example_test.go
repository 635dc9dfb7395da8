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

// Examples for html.go
package html_test

import (
	"fmt"
	"log"
	"os"

	"akhil.cc/minimark"
	"akhil.cc/minimark/gen"
	"akhil.cc/minimark/gen/html"
	"akhil.cc/minimark/text"
)

func ExampleGen() {
	c, err := minimark.Deserialize("<bold>Hello</bold>, <click:open_url:https://go.dev>Gopher</click>!")
	if err != nil {
		log.Fatal(err)
	}
	out, err := html.Gen(c).Output()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", out)
	// Output:
	// <span style="font-weight:bold">Hello</span>, <a href="https://go.dev">Gopher</a>!
}

func ExampleNode() {
	var st text.Style
	st.Apply(text.WithColor(text.RGB(0x55, 0x55, 0xff)), text.WithInsertion("/spawn"))
	if err := html.Node(gen.Segment{Text: "line one\nline two", Style: st}).Render(os.Stdout); err != nil {
		log.Fatal(err)
	}
	fmt.Println()
	// Output:
	// <span style="color:#5555ff" data-insertion="/spawn">line one<br>line two</span>
}
