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

// Package config loads the minimark CLI configuration.
//
// Sources are merged in order, later ones winning: embedded defaults, the
// config file, MINIMARK_* environment variables and command line flags.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "MINIMARK_"

// Config is the merged CLI configuration.
type Config struct {
	Parser       Parser            `koanf:"parser"`
	Output       Output            `koanf:"output"`
	Styles       Styles            `koanf:"styles"`
	Placeholders map[string]string `koanf:"placeholders"`
}

type Parser struct {
	Strict  bool `koanf:"strict"`
	Compact bool `koanf:"compact"`
}

type Output struct {
	Format string `koanf:"format"`
	Color  string `koanf:"color"`
}

type Styles struct {
	Files   []string `koanf:"files"`
	Builtin bool     `koanf:"builtin"`
}

var (
	formats = []string{"ansi", "html", "plain", "xml"}
	colors  = []string{"auto", "always", "never"}
)

// rawBytesProvider implements a koanf provider for raw bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// parserFor picks the koanf parser for a config file by its extension.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// DefaultPath returns the config file in the XDG config directories, or ""
// if there is none.
func DefaultPath() string {
	for _, name := range []string{"minimark/config.toml", "minimark/config.yaml", "minimark/config.yml"} {
		if p, err := xdg.SearchConfigFile(name); err == nil {
			return p
		}
	}
	return ""
}

// Load merges the configuration sources. path is the config file to read,
// or "" for DefaultPath. flags holds flag overrides keyed like the config,
// e.g. "parser.strict".
func Load(path string, flags map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		section, key, found := strings.Cut(s, "_")
		if !found {
			return s
		}
		return section + "." + key
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func oneOf(field, v string, allowed []string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q: must be one of %s", field, v, strings.Join(allowed, ", "))
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	c.Output.Format = strings.ToLower(c.Output.Format)
	c.Output.Color = strings.ToLower(c.Output.Color)
	if err := oneOf("output.format", c.Output.Format, formats); err != nil {
		return err
	}
	return oneOf("output.color", c.Output.Color, colors)
}
