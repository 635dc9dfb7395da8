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
	"os"

	"akhil.cc/minimark"
	"akhil.cc/minimark/internal/config"
	"akhil.cc/minimark/internal/logging"
	"akhil.cc/minimark/styles"
	"akhil.cc/minimark/tag"
	"akhil.cc/minimark/tag/standard"
	"akhil.cc/minimark/text"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options holds the global flags.
type options struct {
	verbosity  int
	configFile string
	strict     bool
	noColor    bool
}

// overrides returns the flags that were set explicitly, keyed like the config.
func (o *options) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := map[string]interface{}{}
	if cmd.Flags().Changed("strict") {
		flags["parser.strict"] = o.strict
	}
	if o.noColor {
		flags["output.color"] = "never"
	}
	return flags
}

// load reads the configuration, with extra overrides from the command.
func (o *options) load(cmd *cobra.Command, extra map[string]interface{}) (*config.Config, error) {
	flags := o.overrides(cmd)
	for k, v := range extra {
		flags[k] = v
	}
	return config.Load(o.configFile, flags)
}

// parser builds the Parser described by cfg: the standard tags, then the
// styling tags of the configured catalogs.
func (o *options) parser(cfg *config.Config) (*minimark.Parser, error) {
	catalog := &styles.Catalog{}
	if cfg.Styles.Builtin {
		catalog = styles.Default()
	}
	for _, path := range cfg.Styles.Files {
		c, err := styles.Load(path)
		if err != nil {
			return nil, err
		}
		catalog = catalog.Merge(c)
	}
	tags := tag.NewBuilder().
		Resolver(standard.Defaults()).
		Resolver(catalog.Resolver()).
		Build()

	opts := []minimark.Option{
		minimark.WithTags(tags),
		minimark.WithStrict(cfg.Parser.Strict),
		minimark.WithLogger(logging.GetLogger("parser")),
	}
	if o.verbosity >= 3 {
		opts = append(opts, minimark.WithDebug(func(s string) {
			log.Trace().Str("component", "parser").Msg(s)
		}))
	}
	if cfg.Parser.Compact {
		opts = append(opts, minimark.WithPostProcessor(text.Compact))
	}
	return minimark.New(opts...), nil
}

func newRootCmd() *cobra.Command {
	o := &options{}
	rootCmd := &cobra.Command{
		Use:   "minimark [command]",
		Short: "markup deserialization and output generation",
		Long: `This CLI utility deserializes minimark markup and runs an output
generator on the result.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(o.verbosity, o.noColor)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if err != nil {
			return prefix("(flags) ", err)
		}
		return nil
	})
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&o.verbosity, "verbose", "v", "``increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVarP(&o.configFile, "config", "c", "", "``config file (TOML or YAML)")
	pf.BoolVar(&o.strict, "strict", false, "``report structural errors instead of keeping them as text")
	pf.BoolVar(&o.noColor, "no-color", false, "``disable colored output")

	rootCmd.AddCommand(
		newRenderCmd(o),
		newEscapeCmd(o),
		newStripCmd(o),
		newCheckCmd(o),
		newTokensCmd(o),
		newTreeCmd(o),
		newSyntaxCmd(o),
	)
	return rootCmd
}

// readInput reads the file named by the first argument, or standard input.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var src io.Reader = cmd.InOrStdin()
	if len(args) != 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		src = f
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(b), nil
}
