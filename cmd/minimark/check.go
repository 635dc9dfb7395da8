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
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"akhil.cc/minimark"
	"akhil.cc/minimark/internal/logging"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// result is the outcome of checking one file.
type result struct {
	path string
	err  error
}

// checkFiles parses every file with p in strict mode, concurrently. Results
// are in the order of paths.
func checkFiles(ctx context.Context, p *minimark.Parser, paths []string) ([]result, error) {
	results := make([]result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			_, perr := p.Deserialize(string(b))
			results[i] = result{path, perr}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// report formats the results for the terminal.
func report(results []result) (string, int) {
	var b strings.Builder
	failed := 0
	for _, r := range results {
		if r.err == nil {
			b.WriteString(pterm.Success.Sprintln(r.path))
			continue
		}
		failed++
		b.WriteString(pterm.Error.Sprintln(r.path))
		for _, l := range strings.Split(r.err.Error(), "\n") {
			b.WriteString("    " + l + "\n")
		}
	}
	summary := fmt.Sprintf("%d of %d files valid", len(results)-failed, len(results))
	if failed == 0 {
		b.WriteString(pterm.Info.Sprintln(summary))
	} else {
		b.WriteString(pterm.Warning.Sprintln(summary))
	}
	return b.String(), failed
}

func newCheckCmd(o *options) *cobra.Command {
	pfx := "(check) "
	cmd := &cobra.Command{
		Use:   "check files...",
		Short: "Validate markup files in strict mode",
		Long: `This command parses every file in strict mode and reports the files with
unclosed tags, tags closed out of order or reset tags.`,
		Args:                  cobra.MinimumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("check"), "check")
			defer done()
			if o.noColor {
				pterm.DisableStyling()
			}
			cfg, err := o.load(cmd, map[string]interface{}{"parser.strict": true})
			if err != nil {
				return prefix(pfx, err)
			}
			p, err := o.parser(cfg)
			if err != nil {
				return prefix(pfx, err)
			}
			results, err := checkFiles(cmd.Context(), p, args)
			if err != nil {
				return prefix(pfx, err)
			}
			out, failed := report(results)
			fmt.Fprint(cmd.OutOrStdout(), out)
			if failed > 0 {
				return prefix(pfx, fmt.Errorf("%d file(s) failed", failed))
			}
			return nil
		},
	}
	return withPrefix(cmd, pfx)
}
