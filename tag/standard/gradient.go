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
	"math"
	"unicode/utf8"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/text"
)

// sequence yields one color per character of the text a tag spans.
type sequence interface {
	// init is called once the length of the spanned text is known.
	init(size int)
	// next returns the color of the next character.
	next() text.Color
}

// colorChanger colors every character under a modifying tag. Subtrees that
// carry their own color keep it but still consume colors from the sequence.
type colorChanger struct {
	seq          sequence
	size         int
	disableDepth int
}

func newColorChanger(seq sequence) *ast.Modifying {
	c := &colorChanger{seq: seq, disableDepth: -1}
	return &ast.Modifying{Visit: c.visit, PostVisit: c.postVisit, Apply: c.apply}
}

func (c *colorChanger) visit(n *ast.Node) {
	switch n.Kind {
	case ast.TextNode, ast.ValueNode:
		c.size += utf8.RuneCountInString(n.Value)
	case ast.TagNode:
		if ins, ok := n.Tag.(*ast.Inserting); ok && ins.Value != nil {
			c.size += utf8.RuneCountInString(ins.Value.PlainText())
		}
	}
}

func (c *colorChanger) postVisit() {
	c.seq.init(c.size)
}

func (c *colorChanger) apply(comp *text.Component, depth int) *text.Component {
	if (c.disableDepth != -1 && depth > c.disableDepth) || comp.Style.Color != nil {
		if c.disableDepth == -1 || depth < c.disableDepth {
			c.disableDepth = depth
		}
		for range comp.Content {
			c.seq.next()
		}
		return comp
	}
	c.disableDepth = -1
	if comp.Content == "" {
		return comp
	}
	parent := &text.Component{Style: comp.Style}
	for _, r := range comp.Content {
		parent.Append(text.Styled(string(r), text.WithColor(c.seq.next())))
	}
	return parent
}

type gradient struct {
	colors     []text.Color
	phase      float64
	negative   bool
	index      int
	colorIndex int
	factorStep float64
}

func (g *gradient) init(size int) {
	sector := size / (len(g.colors) - 1)
	if sector < 1 {
		sector = 1
	}
	g.factorStep = 1 / float64(sector+g.index)
	g.phase *= float64(sector)
	g.index = 0
	g.colorIndex = 0
}

func (g *gradient) next() text.Color {
	if g.factorStep*float64(g.index) > 1 {
		g.colorIndex++
		g.index = 0
	}
	if g.colorIndex > len(g.colors)-2 {
		g.colorIndex = len(g.colors) - 2
	}
	factor := g.factorStep * (float64(g.index) + g.phase)
	g.index++
	if factor > 1 {
		factor = 1 - (factor - 1)
	}
	a, b := g.colors[g.colorIndex], g.colors[g.colorIndex+1]
	if g.negative && len(g.colors)%2 != 0 {
		a, b = b, a
	}
	return text.Lerp(factor, a, b)
}

// parseColors reads colors followed by an optional phase in [-1, 1] from
// args. A negative phase reverses the colors.
func parseColors(args *tag.ArgumentQueue, ctx tag.Context) ([]text.Color, float64, bool, error) {
	var (
		colors []text.Color
		phase  float64
	)
	for args.HasNext() {
		a, _ := args.Pop()
		if !args.HasNext() {
			if f, ok := a.Float(); ok {
				if f < -1 || f > 1 {
					return nil, 0, false, tag.Invalid(ctx, fmt.Sprintf("Gradient phase is out of range (%v). Must be in the range [-1.0, 1.0] (inclusive).", f), args)
				}
				phase = f
				break
			}
		}
		c, ok := parseColor(a.Value)
		if !ok {
			return nil, 0, false, colorError(a.Value, args, ctx)
		}
		colors = append(colors, c)
	}
	negative := phase < 0
	if negative {
		phase = 1 + phase
		for i, j := 0, len(colors)-1; i < j; i, j = i+1, j-1 {
			colors[i], colors[j] = colors[j], colors[i]
		}
	}
	return colors, phase, negative, nil
}

// Gradient resolves <gradient:color1:color2:...:phase>. Without colors it
// blends white into black.
func Gradient() tag.Resolver {
	return tag.Dynamic(func(args *tag.ArgumentQueue, ctx tag.Context) (ast.Tag, error) {
		colors, phase, negative, err := parseColors(args, ctx)
		if err != nil {
			return nil, err
		}
		switch len(colors) {
		case 0:
			colors = []text.Color{text.RGB(0xff, 0xff, 0xff), text.RGB(0, 0, 0)}
		case 1:
			return nil, tag.Invalid(ctx, "Invalid gradient, not enough colors. Gradients must have at least two colors.", args)
		}
		return newColorChanger(&gradient{colors: colors, phase: phase, negative: negative}), nil
	}, "gradient")
}

type rainbow struct {
	reversed  bool
	phase     float64
	index     int
	frequency float64
}

func (r *rainbow) init(size int) {
	if size < 1 {
		size = 1
	}
	r.frequency = math.Pi * 2 / float64(size)
	r.index = 0
	if r.reversed {
		r.index = size - 1
	}
}

func (r *rainbow) next() text.Color {
	i := float64(r.index)
	if r.reversed {
		r.index--
	} else {
		r.index++
	}
	channel := func(offset float64) uint8 {
		return uint8(math.Sin(r.frequency*i+offset+r.phase)*127 + 128)
	}
	return text.RGB(channel(2), channel(0), channel(4))
}

// Rainbow resolves <rainbow>, <rainbow:phase>, <rainbow:!> and
// <rainbow:!phase>. The '!' runs the colors backwards.
func Rainbow() tag.Resolver {
	return tag.Dynamic(func(args *tag.ArgumentQueue, ctx tag.Context) (ast.Tag, error) {
		r := &rainbow{}
		if args.HasNext() {
			a, _ := args.Pop()
			v := a.Value
			if len(v) > 0 && v[0] == '!' {
				r.reversed = true
				v = v[1:]
			}
			if v != "" {
				p, ok := ast.TagPart{Value: v}.Int()
				if !ok {
					return nil, tag.Invalid(ctx, "Expected phase, got "+v, args)
				}
				r.phase = float64(p)
			}
		}
		return newColorChanger(r), nil
	}, "rainbow")
}

// Transition resolves <transition:color1:color2:...:phase> to the single
// color found at phase along the gradient of the given colors.
func Transition() tag.Resolver {
	return tag.Dynamic(func(args *tag.ArgumentQueue, ctx tag.Context) (ast.Tag, error) {
		colors, phase, negative, err := parseColors(args, ctx)
		if err != nil {
			return nil, err
		}
		switch len(colors) {
		case 0:
			colors = []text.Color{text.RGB(0xff, 0xff, 0xff), text.RGB(0, 0, 0)}
		case 1:
			return styling(text.WithColor(colors[0])), nil
		}
		return styling(text.WithColor(transition(colors, phase, negative))), nil
	}, "transition")
}

func transition(colors []text.Color, phase float64, negative bool) text.Color {
	n := float64(len(colors) - 1)
	steps := 1 / n
	for i := 1; i < len(colors); i++ {
		val := float64(i) * steps
		if val >= phase {
			factor := 1 + (phase-val)*n
			if negative {
				return text.Lerp(1-factor, colors[i], colors[i-1])
			}
			return text.Lerp(factor, colors[i-1], colors[i])
		}
	}
	return colors[0]
}
