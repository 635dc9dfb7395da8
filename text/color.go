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

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given channels.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// ParseHex parses a color in the form #rrggbb.
func ParseHex(s string) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	r, g, b := c.RGB255()
	return Color{r, g, b}, true
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	if name, ok := NameOf(c); ok {
		return name
	}
	return c.Hex()
}

// Colorful converts c for use with the go-colorful blending functions.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful converts a go-colorful color, clamping it into the RGB gamut.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{r, g, b}
}

// Lerp linearly interpolates between a and b in RGB space.
// t is clamped to [0, 1].
func Lerp(t float64, a, b Color) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return FromColorful(a.Colorful().BlendRgb(b.Colorful(), t))
}

// HSV returns the color for the given hue, saturation and value, each in [0, 1].
func HSV(h, s, v float64) Color {
	return FromColorful(colorful.Hsv(h*360, s, v))
}

var named = map[string]Color{
	"black":        {0x00, 0x00, 0x00},
	"dark_blue":    {0x00, 0x00, 0xaa},
	"dark_green":   {0x00, 0xaa, 0x00},
	"dark_aqua":    {0x00, 0xaa, 0xaa},
	"dark_red":     {0xaa, 0x00, 0x00},
	"dark_purple":  {0xaa, 0x00, 0xaa},
	"gold":         {0xff, 0xaa, 0x00},
	"gray":         {0xaa, 0xaa, 0xaa},
	"dark_gray":    {0x55, 0x55, 0x55},
	"blue":         {0x55, 0x55, 0xff},
	"green":        {0x55, 0xff, 0x55},
	"aqua":         {0x55, 0xff, 0xff},
	"red":          {0xff, 0x55, 0x55},
	"light_purple": {0xff, 0x55, 0xff},
	"yellow":       {0xff, 0xff, 0x55},
	"white":        {0xff, 0xff, 0xff},
}

// aliases map alternate spellings onto the canonical names above.
var aliases = map[string]string{
	"grey":      "gray",
	"dark_grey": "dark_gray",
}

// Named looks up one of the sixteen named colors. Lookup is case-insensitive.
func Named(name string) (Color, bool) {
	name = strings.ToLower(name)
	if a, ok := aliases[name]; ok {
		name = a
	}
	c, ok := named[name]
	return c, ok
}

// NameOf returns the name of c if it is exactly one of the named colors.
func NameOf(c Color) (string, bool) {
	for name, v := range named {
		if v == c {
			return name, true
		}
	}
	return "", false
}

// Names returns the canonical color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NameAliases returns the alternate spellings accepted by Named.
func NameAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
