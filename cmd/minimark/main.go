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

// This CLI utility deserializes minimark markup and runs an output
// generator on the result.
//
// Usage:
//   minimark [command]
//
// Available Commands:
//   check       Validate markup files in strict mode
//   escape      Escape every known tag in markup
//   help        Help about any command
//   render      Render markup as ANSI, HTML, plain text or XML
//   strip       Remove every known tag from markup
//   syntax      Show the markup syntax reference
//   tokens      Dump the tokens of markup
//   tree        Dump the element tree of markup
//
// Flags:
//   -c, --config    config file (TOML or YAML)
//   -h, --help      help for minimark
//       --no-color  disable colored output
//       --strict    report structural errors instead of keeping them as text
//   -v, --verbose   increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)
//
// Use "minimark [command] --help" for more information about a command.
package main

import (
	"errors"
	"os"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
