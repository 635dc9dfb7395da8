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

// Tests for parse.go
package parser_test

import (
	"errors"
	"strings"
	"testing"

	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/parser"
	"akhil.cc/minimark/text"
	"github.com/sanity-io/litter"
)

// fakeTags resolves a fixed set of names. A nil factory makes resolution fail.
type fakeTags map[string]func() ast.Tag

func (f fakeTags) Has(name string) bool {
	_, ok := f[name]
	return ok
}

func (f fakeTags) Resolve(name string, parts []ast.TagPart, tok ast.Token) (ast.Tag, error) {
	fn := f[name]
	if fn == nil {
		return nil, errors.New("cannot resolve " + name)
	}
	return fn(), nil
}

func styling() ast.Tag   { return &ast.Styling{} }
func inserting() ast.Tag { return &ast.Inserting{Value: text.New("\n")} }

var testTags = fakeTags{
	"bold":   styling,
	"italic": styling,
	"a":      styling,
	"b":      styling,
	"hover":  styling,
	"br":     inserting,
	"broken": nil,
}

type smallcase struct {
	in   string
	want string
	werr string
}

var dump = litter.Options{
	Compact:           true,
	StripPackageNames: false,
	HidePrivateFields: false,
	Separator:         " ",
}

func outline(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func runCases(t *testing.T, cases []smallcase, templates map[string]string, strict bool) {
	t.Helper()
	for i, test := range cases {
		tree, err := parser.Parse(test.in, testTags, templates, strict)
		if test.werr != "" {
			if err == nil || !strings.Contains(err.Error(), test.werr) {
				t.Errorf("case %d, in %q,\nwant error %q,\ngot %v", i, test.in, test.werr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("case %d, in %q, unexpected error: %v", i, test.in, err)
			continue
		}
		if got := tree.String(); got != test.want {
			t.Errorf("case %d, in %q,\nwant\n%s\ngot\n%s\ntokens %s", i, test.in, test.want, got, dump.Sdump(parser.Tokenize(test.in)))
		}
	}
}

var nestingLenient = []smallcase{
	{"<bold><italic>x</italic></bold>", outline(
		"Root",
		"  TagNode('bold')",
		"    TagNode('italic')",
		"      TextNode('x')",
	), ""},
	{"<bold><italic>x</italic>", outline(
		"Root",
		"  TagNode('bold')",
		"    TagNode('italic')",
		"      TextNode('x')",
	), ""},
	{"<bold><italic>x</bold>y", outline(
		"Root",
		"  TagNode('bold')",
		"    TagNode('italic')",
		"      TextNode('x')",
		"  TextNode('y')",
	), ""},
	{"<bold>a<reset>b", outline(
		"Root",
		"  TagNode('bold')",
		"    TextNode('a')",
		"  TextNode('b')",
	), ""},
	{"<bold>a</reset>b", outline(
		"Root",
		"  TagNode('bold')",
		"    TextNode('a')",
		"    TextNode('b')",
	), ""},
	{"<notarealtag>hi</notarealtag>", outline(
		"Root",
		"  TextNode('<notarealtag>')",
		"  TextNode('hi')",
		"  TextNode('</notarealtag>')",
	), ""},
	{"a</bold>b", outline(
		"Root",
		"  TextNode('a')",
		"  TextNode('</bold>')",
		"  TextNode('b')",
	), ""},
	{"<br>x<bold>y<br>z", outline(
		"Root",
		"  TagNode('br')",
		"  TextNode('x')",
		"  TagNode('bold')",
		"    TextNode('y')",
		"    TagNode('br')",
		"    TextNode('z')",
	), ""},
	{"<broken>x", outline(
		"Root",
		"  TextNode('<broken>')",
		"  TextNode('x')",
	), ""},
	{"<pre><bold>literal</bold></pre>outside", outline(
		"Root",
		"  TextNode('<bold>literal</bold>')",
		"  TextNode('outside')",
	), ""},
	{`a\<bold>b`, outline(
		"Root",
		"  TextNode('a<bold>b')",
	), ""},
	{"<BOLD>x</bold>", outline(
		"Root",
		"  TagNode('BOLD')",
		"    TextNode('x')",
	), ""},
}

func TestBuildLenient(t *testing.T) {
	runCases(t, nestingLenient, nil, false)
}

var nestingStrict = []smallcase{
	{"<bold><italic>x</italic></bold>", outline(
		"Root",
		"  TagNode('bold')",
		"    TagNode('italic')",
		"      TextNode('x')",
	), ""},
	{"<bold><italic>x</italic>", "", "End of string found with open tags: bold"},
	{"<bold><italic>x", "", "End of string found with open tags: bold, italic"},
	{"<bold><italic>x</bold>", "", "Unclosed tag encountered; italic is not closed, because bold was closed first."},
	{"<bold>a<reset>b</bold>", "", "<reset> tags are not allowed when strict mode is enabled"},
	{"<bold>x</bold></italic>", outline(
		"Root",
		"  TagNode('bold')",
		"    TextNode('x')",
		"  TextNode('</italic>')",
	), ""},
}

func TestBuildStrict(t *testing.T) {
	runCases(t, nestingStrict, nil, true)
}

func TestPrefixClose(t *testing.T) {
	matching := []string{"</a>", "</a:b>", "</a:b:c>", "</A>"}
	for _, cl := range matching {
		in := "<a:b:c>x" + cl + "y"
		want := outline(
			"Root",
			"  TagNode('a', 'b', 'c')",
			"    TextNode('x')",
			"  TextNode('y')",
		)
		runCases(t, []smallcase{{in, want, ""}}, nil, true)
	}
	nonMatching := []string{"</b>", "</a:b:c:d>", "</a:c>", "</a:B>"}
	for _, cl := range nonMatching {
		in := "<a:b:c>x" + cl + "y"
		want := outline(
			"Root",
			"  TagNode('a', 'b', 'c')",
			"    TextNode('x')",
			"    TextNode('"+cl+"')",
			"    TextNode('y')",
		)
		runCases(t, []smallcase{{in, want, ""}}, nil, false)
	}
}

func TestTemplates(t *testing.T) {
	cases := []smallcase{
		{"Hi <name>!", outline(
			"Root",
			"  TextNode('Hi ')",
			"  ValueNode('<bold>Steve')",
			"  TextNode('!')",
		), ""},
		{"<bold><name></bold>", outline(
			"Root",
			"  TagNode('bold')",
			"    ValueNode('<bold>Steve')",
		), ""},
	}
	runCases(t, cases, map[string]string{"name": "<bold>Steve"}, true)
}

func TestStructureError(t *testing.T) {
	_, err := parser.Parse("<bold><italic>x</bold>", testTags, nil, true)
	if !errors.Is(err, ast.Structure) {
		t.Fatalf("want structure error, got %v", err)
	}
	var perr *ast.Error
	if !errors.As(err, &perr) {
		t.Fatalf("want *ast.Error, got %T", err)
	}
	if len(perr.Tokens) != 3 {
		t.Fatalf("want 3 tokens, got %s", dump.Sdump(perr.Tokens))
	}
	want := "Unclosed tag encountered; italic is not closed, because bold was closed first.\n" +
		"\t<bold><italic>x</bold>\n" +
		"\t^~~~~^^~~~~~~^ ^~~~~~^"
	if got := err.Error(); got != want {
		t.Errorf("want\n%s\ngot\n%s", want, got)
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParse did not panic on unclosed tag")
		}
	}()
	parser.MustParse("<bold>", testTags, true)
}

func TestDeepNesting(t *testing.T) {
	in := strings.Repeat("<bold>", 100000) + "x"
	tree, err := parser.Parse(in, testTags, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(tree.Nodes); got != 100002 {
		t.Errorf("got %d nodes, want %d", got, 100002)
	}
}
