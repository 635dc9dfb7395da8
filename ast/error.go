package ast

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorCode identifies the kind of a parsing error.
type ErrorCode string

const (
	// ErrStructure is a tag nesting violation in strict mode.
	ErrStructure ErrorCode = "STRUCTURE"
	// ErrMissingArgument is a pop past the end of a tag's arguments.
	ErrMissingArgument ErrorCode = "MISSING_ARGUMENT"
	// ErrInvalidArgument is an argument a tag could not accept.
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrResolverHandler is a failure inside a user supplied tag handler.
	ErrResolverHandler ErrorCode = "RESOLVER_HANDLER"
)

// Error is a parsing error positioned at zero or more tokens of Source.
type Error struct {
	Code       ErrorCode
	Message    string
	Source     string
	Tokens     []Token
	Suppressed []error
	Wrapped    error
}

// NewError returns an error with the given code and message.
func NewError(code ErrorCode, source, msg string, tokens ...Token) *Error {
	return &Error{Code: code, Message: msg, Source: source, Tokens: tokens}
}

// Errorf is like NewError but formats the message. It takes no tokens.
func Errorf(code ErrorCode, source, format string, args ...any) *Error {
	return NewError(code, source, fmt.Sprintf(format, args...))
}

// Wrap returns an error with the given code that wraps err.
func Wrap(err error, code ErrorCode, source, msg string, tokens ...Token) *Error {
	e := NewError(code, source, msg, tokens...)
	e.Wrapped = err
	return e
}

// Error returns the message, followed by the source and an arrow line under
// each token when they are known.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Source != "" {
		b.WriteString("\n\t")
		b.WriteString(e.Source)
		if len(e.Tokens) != 0 {
			b.WriteString("\n\t")
			b.WriteString(e.Arrow())
		}
	}
	return b.String()
}

// Arrow returns a line of the form "  ^~~~^   ^~^" marking each token span.
func (e *Error) Arrow() string {
	if len(e.Tokens) == 0 {
		return ""
	}
	ts := make([]Token, len(e.Tokens))
	copy(ts, e.Tokens)
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Start < ts[j].Start })
	width := 0
	for _, t := range ts {
		width = max(width, t.End)
	}
	chars := make([]byte, width)
	for i := range chars {
		chars[i] = ' '
	}
	for _, t := range ts {
		if t.End <= t.Start {
			continue
		}
		for i := t.Start + 1; i < t.End-1; i++ {
			chars[i] = '~'
		}
		chars[t.Start] = '^'
		chars[t.End-1] = '^'
	}
	return string(chars)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches another *Error by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Suppress records err as a secondary failure.
func (e *Error) Suppress(err error) {
	e.Suppressed = append(e.Suppressed, err)
}

// WithSource returns e with Source set if it was empty.
func (e *Error) WithSource(src string) *Error {
	if e.Source == "" {
		e.Source = src
	}
	return e
}

// Sentinel errors usable with errors.Is.
var (
	Structure       = &Error{Code: ErrStructure}
	MissingArgument = &Error{Code: ErrMissingArgument}
	InvalidArgument = &Error{Code: ErrInvalidArgument}
	ResolverHandler = &Error{Code: ErrResolverHandler}
)
