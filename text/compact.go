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

package text

// Compact returns a copy of c with redundant structure removed: unstyled
// empty components without children are dropped, unstyled empty wrappers
// around a single child are replaced by that child, and a styled empty
// component whose only child is unstyled absorbs the child's content.
// The result renders the same as c.
func Compact(c *Component) *Component {
	if c == nil {
		return Empty()
	}
	type frame struct {
		src  *Component
		out  *Component
		next int
	}
	stack := []frame{{src: c, out: c.Shallow()}}
	for {
		top := &stack[len(stack)-1]
		if top.next < len(top.src.Children) {
			ch := top.src.Children[top.next]
			top.next++
			stack = append(stack, frame{src: ch, out: ch.Shallow()})
			continue
		}
		out := compact(top.out)
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			if out == nil {
				return Empty()
			}
			return out
		}
		if out != nil {
			parent := &stack[len(stack)-1]
			parent.out.Append(out)
		}
	}
}

func compact(c *Component) *Component {
	if c.Content != "" {
		return c
	}
	if c.Style.IsEmpty() {
		switch len(c.Children) {
		case 0:
			return nil
		case 1:
			return c.Children[0]
		}
		return c
	}
	if len(c.Children) == 1 && c.Children[0].Style.IsEmpty() {
		only := c.Children[0]
		c.Content = only.Content
		c.Children = only.Children
	}
	return c
}
