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

import "strings"

// Decoration is a text decoration that can be set, unset or left to inherit.
type Decoration int

const (
	Bold Decoration = iota
	Italic
	Underlined
	Strikethrough
	Obfuscated

	decorationCount
)

var decorationNames = [...]string{
	Bold:          "bold",
	Italic:        "italic",
	Underlined:    "underlined",
	Strikethrough: "strikethrough",
	Obfuscated:    "obfuscated",
}

func (d Decoration) String() string {
	if d < 0 || d >= decorationCount {
		return "decoration(?)"
	}
	return decorationNames[d]
}

// Decorations lists every decoration in declaration order.
func Decorations() []Decoration {
	return []Decoration{Bold, Italic, Underlined, Strikethrough, Obfuscated}
}

// State is the tri-state value of a decoration.
type State int8

const (
	NotSet State = iota
	True
	False
)

// StateOf converts b into True or False.
func StateOf(b bool) State {
	if b {
		return True
	}
	return False
}

// ClickAction is the action of a click event.
type ClickAction string

const (
	OpenURL         ClickAction = "open_url"
	OpenFile        ClickAction = "open_file"
	RunCommand      ClickAction = "run_command"
	SuggestCommand  ClickAction = "suggest_command"
	ChangePage      ClickAction = "change_page"
	CopyToClipboard ClickAction = "copy_to_clipboard"
)

var clickActions = map[string]ClickAction{
	string(OpenURL):         OpenURL,
	string(OpenFile):        OpenFile,
	string(RunCommand):      RunCommand,
	string(SuggestCommand):  SuggestCommand,
	string(ChangePage):      ChangePage,
	string(CopyToClipboard): CopyToClipboard,
}

// ParseClickAction looks up a click action by name, case-insensitively.
func ParseClickAction(s string) (ClickAction, bool) {
	a, ok := clickActions[strings.ToLower(s)]
	return a, ok
}

// ClickEvent is attached to text that performs an action when clicked.
type ClickEvent struct {
	Action ClickAction
	Value  string
}

// HoverAction is the action of a hover event. Only show_text is supported.
type HoverAction string

const ShowText HoverAction = "show_text"

// HoverEvent is attached to text that shows a tooltip.
type HoverEvent struct {
	Action HoverAction
	Value  *Component
}

// Style holds the formatting of a component. Zero values mean "inherit".
type Style struct {
	Color       *Color
	Decorations [decorationCount]State
	Click       *ClickEvent
	Hover       *HoverEvent
	Insertion   string
	Font        string
}

// StyleOp mutates a style. Styling tags are expressed as a list of ops.
type StyleOp func(*Style)

// WithColor returns an op that sets the color.
func WithColor(c Color) StyleOp {
	return func(s *Style) { s.Color = &c }
}

// WithDecoration returns an op that sets or unsets d.
func WithDecoration(d Decoration, on bool) StyleOp {
	return func(s *Style) { s.Decorations[d] = StateOf(on) }
}

// WithClick returns an op that attaches a click event.
func WithClick(a ClickAction, value string) StyleOp {
	return func(s *Style) { s.Click = &ClickEvent{Action: a, Value: value} }
}

// WithHover returns an op that attaches a show_text hover event.
func WithHover(c *Component) StyleOp {
	return func(s *Style) { s.Hover = &HoverEvent{Action: ShowText, Value: c} }
}

// WithInsertion returns an op that sets the shift-click insertion.
func WithInsertion(v string) StyleOp {
	return func(s *Style) { s.Insertion = v }
}

// WithFont returns an op that sets the font key.
func WithFont(key string) StyleOp {
	return func(s *Style) { s.Font = key }
}

// Apply runs each op against s in order.
func (s *Style) Apply(ops ...StyleOp) {
	for _, op := range ops {
		op(s)
	}
}

// Decoration reports the state of d.
func (s Style) Decoration(d Decoration) State {
	return s.Decorations[d]
}

// Has reports whether d is explicitly turned on.
func (s Style) Has(d Decoration) bool {
	return s.Decorations[d] == True
}

// IsEmpty reports whether no property of s is set.
func (s Style) IsEmpty() bool {
	return s == Style{}
}

// Inherit returns s with every unset property taken from parent.
func (s Style) Inherit(parent Style) Style {
	if s.Color == nil {
		s.Color = parent.Color
	}
	for i := range s.Decorations {
		if s.Decorations[i] == NotSet {
			s.Decorations[i] = parent.Decorations[i]
		}
	}
	if s.Click == nil {
		s.Click = parent.Click
	}
	if s.Hover == nil {
		s.Hover = parent.Hover
	}
	if s.Insertion == "" {
		s.Insertion = parent.Insertion
	}
	if s.Font == "" {
		s.Font = parent.Font
	}
	return s
}
