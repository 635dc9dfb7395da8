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

func styling(ops ...text.StyleOp) ast.Tag {
	return &ast.Styling{Ops: ops}
}

// Click resolves <click:action:value>.
func Click() tag.Resolver {
	return tag.Dynamic(func(args *tag.ArgumentQueue, ctx tag.Context) (ast.Tag, error) {
		a, err := args.PopOr("A click tag requires an action of one of open_url, open_file, run_command, suggest_command, change_page, copy_to_clipboard")
		if err != nil {
			return nil, err
		}
		action, ok := text.ParseClickAction(a.Value)
		if !ok {
			return nil, tag.Invalid(ctx, "Unknown click event action '"+a.Value+"'", args)
		}
		v, err := args.PopOr("The click tag requires an action value")
		if err != nil {
			return nil, err
		}
		return styling(text.WithClick(action, v.Value)), nil
	}, "click")
}

// Hover resolves <hover:show_text:markup>. The markup is deserialized with
// the tags of the enclosing parse.
func Hover() tag.Resolver {
	return tag.Dynamic(func(args *tag.ArgumentQueue, ctx tag.Context) (ast.Tag, error) {
		a, err := args.PopOr("A hover tag requires an action of show_text")
		if err != nil {
			return nil, err
		}
		if text.HoverAction(a.Lower()) != text.ShowText {
			return nil, tag.Invalid(ctx, "Don't know how to turn '"+a.Value+"' into a hover event", args)
		}
		v, err := args.PopOr("The hover tag requires text to show")
		if err != nil {
			return nil, err
		}
		c, err := ctx.Deserialize(v.Value)
		if err != nil {
			return nil, err
		}
		return styling(text.WithHover(c)), nil
	}, "hover")
}

// Insertion resolves <insert:text> and <insertion:text>.
func Insertion() tag.Resolver {
	return tag.Dynamic(func(args *tag.ArgumentQueue, ctx tag.Context) (ast.Tag, error) {
		a, err := args.PopOr("A value is required to produce an insertion component")
		if err != nil {
			return nil, err
		}
		return styling(text.WithInsertion(a.Value)), nil
	}, "insert", "insertion")
}

// Font resolves <font:key> and <font:namespace:key>.
func Font() tag.Resolver {
	return tag.Dynamic(func(args *tag.ArgumentQueue, ctx tag.Context) (ast.Tag, error) {
		if !args.HasNext() {
			_, err := args.PopOr("A font tag must have either arguments of either <value> or <namespace:value>")
			return nil, err
		}
		key := strings.Join(ast.Values(args.Remaining()), ":")
		return styling(text.WithFont(key)), nil
	}, "font")
}
