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
	_ "embed"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed syntax.md
var syntaxDoc string

// renderSyntax renders the syntax reference, without color if noColor.
func renderSyntax(noColor bool, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if noColor {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(syntaxDoc)
}

func newSyntaxCmd(o *options) *cobra.Command {
	var (
		width int
		raw   bool
	)
	pfx := "(syntax) "
	cmd := &cobra.Command{
		Use:                   "syntax [--raw] [-w width]",
		Short:                 "Show the markup syntax reference",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := syntaxDoc
			if !raw {
				var err error
				out, err = renderSyntax(o.noColor, width)
				if err != nil {
					return prefix(pfx, err)
				}
			}
			_, err := io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 80, "``word wrap width")
	cmd.Flags().BoolVar(&raw, "raw", false, "``print the markdown source")
	return withPrefix(cmd, pfx)
}
