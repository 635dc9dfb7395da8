package ast

import (
	"strconv"
	"strings"

	"akhil.cc/minimark/text"
)

// TokenKind classifies a token span.
type TokenKind int

const (
	Text TokenKind = iota
	OpenTag
	CloseTag
	TagValue
)

var kindNames = [...]string{
	Text:     "TEXT",
	OpenTag:  "OPEN_TAG",
	CloseTag: "CLOSE_TAG",
	TagValue: "TAG_VALUE",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Token is a half-open byte span [Start, End) of the source.
// Tag tokens carry their argument parts as TagValue children.
type Token struct {
	Start    int
	End      int
	Kind     TokenKind
	Children []Token
}

// Text returns the source text covered by t.
func (t Token) Text(src string) string {
	return src[t.Start:t.End]
}

// TagPart is one colon-separated piece of a tag, with quotes and escapes removed.
type TagPart struct {
	Value string
	Token Token
}

// Lower returns the value in lower case.
func (p TagPart) Lower() string {
	return strings.ToLower(p.Value)
}

// IsTrue reports whether the value is "true" or "on".
func (p TagPart) IsTrue() bool {
	v := p.Lower()
	return v == "true" || v == "on"
}

// IsFalse reports whether the value is "false" or "off".
func (p TagPart) IsFalse() bool {
	v := p.Lower()
	return v == "false" || v == "off"
}

// Int parses the value as a base 10 integer.
func (p TagPart) Int() (int, bool) {
	n, err := strconv.Atoi(p.Value)
	return n, err == nil
}

// Float parses the value as a 64-bit float.
func (p TagPart) Float() (float64, bool) {
	f, err := strconv.ParseFloat(p.Value, 64)
	return f, err == nil
}

func (p TagPart) String() string {
	return p.Value
}

// Values returns the string values of parts.
func Values(parts []TagPart) []string {
	vs := make([]string, len(parts))
	for i, p := range parts {
		vs[i] = p.Value
	}
	return vs
}

//go:generate sumgen Tag = *Inserting | *Styling | *Modifying
type Tag interface {
	tag()
}

// Inserting is a self-closing tag whose value replaces the tag in the output.
type Inserting struct {
	Value *text.Component
}

// Styling applies style ops to everything that follows until the tag is closed.
type Styling struct {
	Ops []text.StyleOp
}

// Modifying transforms the whole subtree it wraps.
//
// Visit is called once for every descendant of the tag node before rendering,
// then PostVisit once. After the subtree is rendered, Apply is called on the
// rendered node at depth 0 and on every descendant at its depth, parents first.
// Apply receives a copy without children; the children returned by the walk are
// attached beneath the node Apply returns.
//
// A Modifying value is stateful and must not be shared between tag nodes.
type Modifying struct {
	Visit     func(n *Node)
	PostVisit func()
	Apply     func(c *text.Component, depth int) *text.Component
}

func (*Inserting) tag() {}
func (*Styling) tag()   {}
func (*Modifying) tag() {}
