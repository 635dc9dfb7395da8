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

package gen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"akhil.cc/minimark/text"
)

type syncWriter struct {
	m sync.Mutex
	w io.Writer
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.m.Lock()
	defer s.m.Unlock()
	n, err = s.w.Write(p)
	return
}

// stickyCountWriter counts bytes written and fails every write after the
// first error.
type stickyCountWriter struct {
	n   int64
	err error
	w   io.Writer
}

func (c *stickyCountWriter) Write(p []byte) (n int, err error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err = c.w.Write(p)
	c.err = err
	c.n += int64(n)
	return
}

// Generator represents a non-reusable output generator for a component.
type Generator struct {
	// Stdout and Stderr specify the generator's standard output and standard error.
	//
	// Output is written to standard out. Standard error receives notes about
	// styling the output format cannot express.
	//
	// If Stdout == Stderr, at most one goroutine at a time will call Write.
	Stdout   io.Writer
	Stderr   io.Writer
	ctx      context.Context
	comp     *text.Component
	emit     Emit
	waitdone chan error
	written  int64

	m     sync.Mutex
	pipes []io.Closer
}

// New returns a Generator that runs emit on c.
//
// The provided context is used to halt generation between segments.
func New(ctx context.Context, c *text.Component, emit Emit) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, comp: c, emit: emit}
}

// Start starts the generator but does not wait for it to complete.
func (g *Generator) Start() error {
	if g.waitdone != nil {
		return fmt.Errorf("already started")
	}
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	if g.Stderr == nil {
		g.Stderr = io.Discard
	}
	if g.Stdout == g.Stderr {
		g.Stdout = &syncWriter{w: g.Stdout}
		g.Stderr = g.Stdout
	}
	g.waitdone = make(chan error, 1)
	go func() {
		cw := &stickyCountWriter{w: g.Stdout}
		err := g.emit(g.ctx, g.comp, cw, g.Stderr)
		if err == nil {
			err = cw.err
		}
		g.written = cw.n
		g.m.Lock()
		for _, p := range g.pipes {
			p.Close()
		}
		g.pipes = nil
		g.m.Unlock()
		g.waitdone <- err
	}()
	return nil
}

// Wait waits for the generator to complete and finish copying to
// Stdout and Stderr. It is an error to call Wait before Start
// has been called.
//
// Wait will release any resources associated with the generator.
func (g *Generator) Wait() error {
	if g.waitdone == nil {
		return fmt.Errorf("not started")
	}
	err := <-g.waitdone
	close(g.waitdone)
	return err
}

// Run starts the generator and waits for it to complete, returning
// any errors encountered.
func (g *Generator) Run() error {
	if err := g.Start(); err != nil {
		return err
	}
	return g.Wait()
}

// Written returns the number of bytes written to Stdout. It is only valid
// after Wait returns.
func (g *Generator) Written() int64 {
	return g.written
}

// StdoutPipe returns a pipe that is connected to the generator's
// standard output.
//
// Wait must not be called until all reads from the pipe have completed.
// For the same reason, it is invalid to call Run when using StdoutPipe.
func (g *Generator) StdoutPipe() (io.Reader, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	pr, pw := io.Pipe()
	g.Stdout = pw
	g.pipes = append(g.pipes, pw)
	return pr, nil
}

// StderrPipe returns a pipe that is connected to the generator's
// standard error.
//
// Wait must not be called until all reads from the pipe have completed.
// For the same reason, it is invalid to call Run when using StderrPipe.
func (g *Generator) StderrPipe() (io.Reader, error) {
	if g.Stderr != nil {
		return nil, fmt.Errorf("Stderr already set")
	}
	pr, pw := io.Pipe()
	g.Stderr = pw
	g.pipes = append(g.pipes, pw)
	return pr, nil
}

// Output runs the generator and returns its standard output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var stdout bytes.Buffer
	g.Stdout = &stdout
	err := g.Run()
	return stdout.Bytes(), err
}

// CombinedOutput runs the generator and returns its combined
// standard output and standard error.
func (g *Generator) CombinedOutput() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	if g.Stderr != nil {
		return nil, fmt.Errorf("Stderr already set")
	}
	var b bytes.Buffer
	g.Stdout = &b
	g.Stderr = &b
	err := g.Run()
	return b.Bytes(), err
}
