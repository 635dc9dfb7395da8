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
	"fmt"
	"time"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number returns a tag inserting n formatted for a locale.
//
//	<key>               English formatting
//	<key:de-DE>         formatting for the given BCP 47 language tag
//	<key:de-DE:2>       at most two fraction digits
func Number(key string, n float64) Resolver {
	return Dynamic(func(args *ArgumentQueue, ctx Context) (ast.Tag, error) {
		lang := language.English
		if args.HasNext() {
			a, _ := args.Pop()
			if a.Value != "" {
				t, err := language.Parse(a.Value)
				if err != nil {
					return nil, newError(ctx, ast.ErrInvalidArgument,
						fmt.Sprintf("Invalid locale '%s'", a.Value), args)
				}
				lang = t
			}
		}
		var opts []number.Option
		if args.HasNext() {
			a, _ := args.Pop()
			d, ok := a.Int()
			if !ok || d < 0 {
				return nil, newError(ctx, ast.ErrInvalidArgument,
					fmt.Sprintf("Expected a fraction digit count, got '%s'", a.Value), args)
			}
			opts = append(opts, number.MaxFractionDigits(d))
		}
		p := message.NewPrinter(lang)
		return &ast.Inserting{Value: text.New(p.Sprint(number.Decimal(n, opts...)))}, nil
	}, key)
}

var layouts = map[string]string{
	"rfc3339":  time.RFC3339,
	"rfc1123":  time.RFC1123,
	"kitchen":  time.Kitchen,
	"date":     time.DateOnly,
	"time":     time.TimeOnly,
	"datetime": time.DateTime,
}

// Date returns a tag inserting t. The optional argument is either one of
// rfc3339, rfc1123, kitchen, date, time and datetime, or a Go time layout.
// The default layout is RFC 3339.
func Date(key string, t time.Time) Resolver {
	return Dynamic(func(args *ArgumentQueue, ctx Context) (ast.Tag, error) {
		layout := time.RFC3339
		if args.HasNext() {
			a, _ := args.Pop()
			if l, ok := layouts[a.Lower()]; ok {
				layout = l
			} else {
				layout = a.Value
			}
		}
		return &ast.Inserting{Value: text.New(t.Format(layout))}, nil
	}, key)
}

// Choice returns a tag inserting one of two markup arguments depending on
// b, as in <key:'<green>yes':'<red>no'>.
func Choice(key string, b bool) Resolver {
	return Dynamic(func(args *ArgumentQueue, ctx Context) (ast.Tag, error) {
		yes, err := args.PopOr("Missing argument for the true case")
		if err != nil {
			return nil, err
		}
		no, err := args.PopOr("Missing argument for the false case")
		if err != nil {
			return nil, err
		}
		chosen := no.Value
		if b {
			chosen = yes.Value
		}
		c, err := ctx.Deserialize(chosen)
		if err != nil {
			return nil, err
		}
		return &ast.Inserting{Value: c}, nil
	}, key)
}

// Joining returns a tag inserting cs separated by markup arguments:
// <key:separator[:last separator]>. Without arguments cs are concatenated.
func Joining(key string, cs ...*text.Component) Resolver {
	return Dynamic(func(args *ArgumentQueue, ctx Context) (ast.Tag, error) {
		var sep, last *text.Component
		if args.HasNext() {
			a, _ := args.Pop()
			c, err := ctx.Deserialize(a.Value)
			if err != nil {
				return nil, err
			}
			sep, last = c, c
		}
		if args.HasNext() {
			a, _ := args.Pop()
			c, err := ctx.Deserialize(a.Value)
			if err != nil {
				return nil, err
			}
			last = c
		}
		out := text.Empty()
		for i, c := range cs {
			if i > 0 {
				switch {
				case i == len(cs)-1 && last != nil:
					out.Append(last.Clone())
				case sep != nil:
					out.Append(sep.Clone())
				}
			}
			out.Append(c.Clone())
		}
		return &ast.Inserting{Value: out}, nil
	}, key)
}
