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

package main

import (
	"fmt"
	"io"
	"strings"

	"akhil.cc/minimark"
	"akhil.cc/minimark/ast"
	"akhil.cc/minimark/parser"
	"akhil.cc/minimark/tag"
	"github.com/spf13/cobra"
)

// setup loads the configuration and builds the parser and the configured
// placeholders, for commands that take no command-specific overrides.
func setup(o *options, cmd *cobra.Command) (*minimark.Parser, []tag.Resolver, error) {
	cfg, err := o.load(cmd, nil)
	if err != nil {
		return nil, nil, err
	}
	p, err := o.parser(cfg)
	if err != nil {
		return nil, nil, err
	}
	rs, err := placeholders(cfg.Placeholders, nil, "")
	if err != nil {
		return nil, nil, err
	}
	return p, rs, nil
}

// textCmd returns a command that rewrites its input with fn.
func textCmd(o *options, name, short, long string, fn func(p *minimark.Parser, src string, rs []tag.Resolver) string) *cobra.Command {
	pfx := "(" + name + ") "
	cmd := &cobra.Command{
		Use:                   name + " [input]",
		Short:                 short,
		Long:                  long,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, rs, err := setup(o, cmd)
			if err != nil {
				return prefix(pfx, err)
			}
			src, err := readInput(cmd, args)
			if err != nil {
				return prefix(pfx, err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), fn(p, src, rs))
			return err
		},
	}
	return withPrefix(cmd, pfx)
}

func newEscapeCmd(o *options) *cobra.Command {
	return textCmd(o, "escape", "Escape every known tag in markup",
		`This command escapes every tag that would be resolved, so that the
markup renders literally. Unknown tags are left untouched.`,
		func(p *minimark.Parser, src string, rs []tag.Resolver) string { return p.Escape(src, rs...) })
}

func newStripCmd(o *options) *cobra.Command {
	return textCmd(o, "strip", "Remove every known tag from markup",
		`This command removes every tag that would be resolved and keeps the
text between them. Unknown tags are left untouched.`,
		func(p *minimark.Parser, src string, rs []tag.Resolver) string { return p.Strip(src, rs...) })
}

// dumpTokens writes one line per token, with tag parts indented below
// their tag.
func dumpTokens(w io.Writer, src string, toks []ast.Token) error {
	var b strings.Builder
	var dump func(toks []ast.Token, depth int)
	dump = func(toks []ast.Token, depth int) {
		for _, t := range toks {
			fmt.Fprintf(&b, "%s%s [%d,%d) %q\n", strings.Repeat("  ", depth), t.Kind, t.Start, t.End, t.Text(src))
			dump(t.Children, depth+1)
		}
	}
	dump(toks, 0)
	_, err := io.WriteString(w, b.String())
	return err
}

func newTokensCmd(o *options) *cobra.Command {
	pfx := "(tokens) "
	cmd := &cobra.Command{
		Use:   "tokens [input]",
		Short: "Dump the tokens of markup",
		Long: `This command prints the tokens of markup with their byte spans.
Tag arguments are listed below their tag.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return prefix(pfx, err)
			}
			return dumpTokens(cmd.OutOrStdout(), src, parser.Tokenize(src))
		},
	}
	return withPrefix(cmd, pfx)
}

func newTreeCmd(o *options) *cobra.Command {
	pfx := "(tree) "
	cmd := &cobra.Command{
		Use:                   "tree [input]",
		Short:                 "Dump the element tree of markup",
		Long:                  `This command prints the element tree markup is parsed into, before rendering.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, rs, err := setup(o, cmd)
			if err != nil {
				return prefix(pfx, err)
			}
			src, err := readInput(cmd, args)
			if err != nil {
				return prefix(pfx, err)
			}
			t, err := p.DeserializeTree(src, rs...)
			if err != nil {
				return prefix(pfx, err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), t.String())
			return err
		},
	}
	return withPrefix(cmd, pfx)
}
