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
	"maps"
	"slices"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/text"
)

func hexes(vs ...uint32) []text.Color {
	cs := make([]text.Color, len(vs))
	for i, v := range vs {
		cs[i] = text.RGB(uint8(v>>16), uint8(v>>8), uint8(v))
	}
	return cs
}

var flags = map[string][]text.Color{
	"pride":       hexes(0xE50000, 0xFF8D00, 0xFFEE00, 0x028121, 0x004CFF, 0x770088),
	"progress":    hexes(0xFFFFFF, 0xFFAFC7, 0x73D7EE, 0x613915, 0x000000, 0xE50000, 0xFF8D00, 0xFFEE00, 0x028121, 0x004CFF, 0x770088),
	"trans":       hexes(0x5BCFFB, 0xF5ABB9, 0xFFFFFF, 0xF5ABB9, 0x5BCFFB),
	"bi":          hexes(0xD60270, 0x9B4F96, 0x0038A8),
	"pan":         hexes(0xFF1C8D, 0xFFD700, 0x1AB3FF),
	"nb":          hexes(0xFCF431, 0xFCFCFC, 0x9D59D2, 0x282828),
	"lesbian":     hexes(0xD62800, 0xFF9B56, 0xFFFFFF, 0xD462A6, 0xA40062),
	"ace":         hexes(0x000000, 0xA4A4A4, 0xFFFFFF, 0x810081),
	"agender":     hexes(0x000000, 0xBABABA, 0xFFFFFF, 0xBAF484, 0xFFFFFF, 0xBABABA, 0x000000),
	"demisexual":  hexes(0x000000, 0xFFFFFF, 0x6E0071, 0xD3D3D3),
	"genderqueer": hexes(0xB57FDD, 0xFFFFFF, 0x49821E),
	"genderfluid": hexes(0xFE76A2, 0xFFFFFF, 0xBF12D7, 0x000000, 0x303CBE),
	"intersex":    hexes(0xFFD800, 0x7902AA, 0xFFD800),
	"aro":         hexes(0x3BA740, 0xA8D47A, 0xFFFFFF, 0xABABAB, 0x000000),
	"baker":       hexes(0xCD66FF, 0xFF6599, 0xFE0000, 0xFE9900, 0xFFFF01, 0x009900, 0x0099CB, 0x350099, 0x990099),
	"philly":      hexes(0x000000, 0x784F17, 0xFE0000, 0xFD8C00, 0xFFE500, 0x119F0B, 0x0644B3, 0xC22EDC),
	"queer":       hexes(0x000000, 0x9AD9EA, 0x00A3E8, 0xB5E51D, 0xFFFFFF, 0xFFC90D, 0xFC6667, 0xFEAEC9, 0x000000),
	"gay":         hexes(0x078E70, 0x26CEAA, 0x98E8C1, 0xFFFFFF, 0x7BADE2, 0x5049CB, 0x3D1A78),
	"bigender":    hexes(0xC479A0, 0xECA6CB, 0xD5C7E8, 0xFFFFFF, 0xD5C7E8, 0x9AC7E8, 0x6C83CF),
	"demigender":  hexes(0x7F7F7F, 0xC3C3C3, 0xFBFF74, 0xFFFFFF, 0xFBFF74, 0xC3C3C3, 0x7F7F7F),
}

// Pride resolves <pride>, <pride:flag> and <pride:flag:phase> to a gradient
// over the colors of a pride flag.
func Pride() tag.Resolver {
	return tag.Dynamic(func(args *tag.ArgumentQueue, ctx tag.Context) (ast.Tag, error) {
		flag := "pride"
		var phase float64
		if args.HasNext() {
			a, _ := args.Pop()
			flag = a.Lower()
			if args.HasNext() {
				p, _ := args.Pop()
				f, ok := p.Float()
				if !ok || f < -1 || f > 1 {
					return nil, tag.Invalid(ctx, "Expected a phase in the range [-1.0, 1.0], got "+p.Value, args)
				}
				phase = f
			}
		}
		preset, ok := flags[flag]
		if !ok {
			return nil, tag.Invalid(ctx, "Unknown pride flag '"+flag+"'", args)
		}
		colors := append([]text.Color(nil), preset...)
		negative := phase < 0
		if negative {
			phase = 1 + phase
			for i, j := 0, len(colors)-1; i < j; i, j = i+1, j-1 {
				colors[i], colors[j] = colors[j], colors[i]
			}
		}
		return newColorChanger(&gradient{colors: colors, phase: phase, negative: negative}), nil
	}, "pride")
}

// Flags returns the sorted names accepted by <pride:flag>.
func Flags() []string {
	return slices.Sorted(maps.Keys(flags))
}
