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
	"io"
	"os"
	"strings"
	"time"

	"akhil.cc/minimark/gen"
	"akhil.cc/minimark/gen/ansi"
	"akhil.cc/minimark/gen/html"
	"akhil.cc/minimark/gen/plain"
	"akhil.cc/minimark/gen/xml"
	"akhil.cc/minimark/internal/config"
	"akhil.cc/minimark/internal/logging"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/text"
	"github.com/charmbracelet/lipgloss"
	"github.com/kballard/go-shellquote"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// withPrefix makes flag errors of cmd carry the given prefix.
func withPrefix(cmd *cobra.Command, p string) *cobra.Command {
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix(p, err)
		}
		return nil
	})
	return cmd
}

// placeholders turns key=value pairs into parsed placeholder tags. Later
// pairs override earlier ones.
func placeholders(pairs map[string]string, flags []string, vars string) ([]tag.Resolver, error) {
	words, err := shellquote.Split(vars)
	if err != nil {
		return nil, fmt.Errorf("invalid --vars: %w", err)
	}
	values := make(map[string]string, len(pairs))
	for k, v := range pairs {
		values[k] = v
	}
	for _, kv := range append(words, flags...) {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("placeholder %q is not of the form key=value", kv)
		}
		values[k] = v
	}
	rs := make([]tag.Resolver, 0, len(values))
	for k, v := range values {
		rs = append(rs, tag.Parsed(k, v))
	}
	return rs, nil
}

// profile picks the color profile for out.
func profile(mode string, out io.Writer) termenv.Profile {
	switch mode {
	case "never":
		return termenv.Ascii
	case "always":
		return termenv.TrueColor
	}
	f, ok := out.(*os.File)
	if !ok || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// generator returns the generator for format.
func generator(ctx context.Context, cfg *config.Config, c *text.Component, out io.Writer) (*gen.Generator, error) {
	switch cfg.Output.Format {
	case "ansi":
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(profile(cfg.Output.Color, out))
		return ansi.GenContext(ctx, c, r), nil
	case "html":
		return html.GenContext(ctx, c), nil
	case "plain":
		return plain.GenContext(ctx, c), nil
	case "xml":
		return xml.GenContext(ctx, c), nil
	}
	return nil, fmt.Errorf("unknown format %q", cfg.Output.Format)
}

func newRenderCmd(o *options) *cobra.Command {
	var (
		outputfile string
		format     string
		params     []string
		vars       string
		timeout    time.Duration
	)
	prefixRender := "(render) "
	renderCmd := &cobra.Command{
		Use:   "render [input] [-o output] [-f format]",
		Short: "Render markup as ANSI, HTML, plain text or XML",
		Long: `This command deserializes markup and converts it to the chosen format.
Placeholders from the config file, the --vars list and -p flags are
available as tags, in increasing priority. Their values are markup.

If no input file is specified, input is read from
standard input. Similarly, if no output argument is
specified, output is written to standard output.`,
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("render")
			done := logging.LogOperationStart(logger, "render")
			defer done()

			extra := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				extra["output.format"] = strings.ToLower(format)
			}
			cfg, err := o.load(cmd, extra)
			if err != nil {
				return prefix(prefixRender, err)
			}
			p, err := o.parser(cfg)
			if err != nil {
				return prefix(prefixRender, err)
			}
			resolvers, err := placeholders(cfg.Placeholders, params, vars)
			if err != nil {
				return prefix(prefixRender, err)
			}
			src, err := readInput(cmd, args)
			if err != nil {
				return prefix(prefixRender, err)
			}
			c, err := p.Deserialize(src, resolvers...)
			if err != nil {
				return prefix(prefixRender, err)
			}

			out := cmd.OutOrStdout()
			if len(outputfile) != 0 {
				f, err := os.Create(outputfile)
				if err != nil {
					return prefix(prefixRender, err)
				}
				defer f.Close()
				out = f
			}
			ctx := context.Background()
			if timeout > -1 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			g, err := generator(ctx, cfg, c, out)
			if err != nil {
				return prefix(prefixRender, err)
			}
			g.Stdout = out
			g.Stderr = cmd.ErrOrStderr()
			if err := g.Run(); err != nil {
				return prefix(prefixRender, err)
			}
			logger.Debug().Int64("bytes", g.Written()).Str("format", cfg.Output.Format).Msg("rendered")
			return nil
		},
	}
	// pflag includes the argument type when it unquotes its usage.
	// To prevent this behavior we prefix the usage with backquotes ``.
	fs := renderCmd.Flags()
	fs.StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	fs.StringVarP(&format, "format", "f", "", "``output format: ansi, html, plain or xml")
	fs.StringArrayVarP(&params, "placeholder", "p", nil, "``placeholder as key=value, may be repeated")
	fs.StringVar(&vars, "vars", "", "``placeholders as shell words, e.g. 'name=Steve title=\"the Great\"'")
	fs.DurationVarP(&timeout, "timeout", "t", -1, "``timeout used to halt the generator")
	// Set string version of default value to be zero-value to prevent it from being printed by FlagUsages.
	fs.Lookup("timeout").DefValue = "0"
	return withPrefix(renderCmd, prefixRender)
}
