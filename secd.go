// Package secd reads Lisp source into an arena of s-expressions and compiles
// it into SECD-style instruction lists.
//
// All values live in an object.Arena owned by the caller:
//
//	arena := object.NewArena()
//	defer arena.Close()
//	out, err := secd.Rep("(if t 1 2)", arena)
//	// out == "(ldc t sel (ldc 1 join) (ldc 2 join) stop)"
package secd

import (
	"maps"

	"github.com/hashicorp/go-multierror"

	"github.com/secdlisp/secd/compiler"
	"github.com/secdlisp/secd/errors"
	"github.com/secdlisp/secd/object"
	"github.com/secdlisp/secd/parser"
)

// ErrEmptyInput is returned by Rep when the source holds no form. An
// interactive loop treats it as the signal to stop.
var ErrEmptyInput = errors.ErrEmptyInput

// Option configures reading and compilation.
type Option func(*options)

type options struct {
	env      map[string]any
	filename string
	maxDepth int
}

func collectOptions(opts ...Option) *options {
	o := &options{env: map[string]any{}}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) parserOpts() []parser.Option {
	var opts []parser.Option
	if o.filename != "" {
		opts = append(opts, parser.WithFilename(o.filename))
	}
	if o.maxDepth > 0 {
		opts = append(opts, parser.WithMaxDepth(o.maxDepth))
	}
	return opts
}

func (o *options) compilerOpts() []compiler.Option {
	var opts []compiler.Option
	if len(o.env) > 0 {
		opts = append(opts, compiler.WithEnv(o.env))
	}
	return opts
}

// WithEnv provides the environment compiled code will run against. This
// option is additive, so multiple WithEnv options may be supplied. If the
// same key is supplied multiple times, the last value wins.
func WithEnv(env map[string]any) Option {
	return func(o *options) {
		maps.Copy(o.env, env)
	}
}

// WithFilename sets the filename for the source code being read.
// This is used in error messages.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithMaxDepth limits how deeply lists and quotes may nest in the source.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// Read parses the first form of source into arena. Input after the first
// form is ignored.
func Read(source string, arena *object.Arena, opts ...Option) (object.Handle, error) {
	o := collectOptions(opts...)
	return parser.Read(source, arena, o.parserOpts()...)
}

// ReadAll parses every form of source into arena. On error it returns the
// forms read before the failure.
func ReadAll(source string, arena *object.Arena, opts ...Option) ([]object.Handle, error) {
	o := collectOptions(opts...)
	return parser.New(source, arena, o.parserOpts()...).ReadAll()
}

// Compile lowers an expression already allocated in arena.
func Compile(expr object.Handle, arena *object.Arena, opts ...Option) (object.Handle, error) {
	o := collectOptions(opts...)
	return compiler.Compile(expr, arena, o.compilerOpts()...)
}

// Rep reads one form from source, compiles it, and returns the rendered
// instruction list. Source holding only whitespace and comments yields
// ErrEmptyInput.
func Rep(source string, arena *object.Arena, opts ...Option) (string, error) {
	o := collectOptions(opts...)
	r := parser.New(source, arena, o.parserOpts()...)
	if r.AtEOF() {
		return "", ErrEmptyInput
	}
	expr, err := r.Read()
	if err != nil {
		return "", err
	}
	code, err := compiler.Compile(expr, arena, o.compilerOpts()...)
	if err != nil {
		return "", err
	}
	return arena.Render(code), nil
}

// CompileAll reads every form in source and compiles each one. A read error
// stops immediately. Compile errors are collected so that every failing form
// is reported; the returned Program then holds only the forms that compiled.
func CompileAll(source string, arena *object.Arena, opts ...Option) (*Program, error) {
	o := collectOptions(opts...)
	forms, err := parser.New(source, arena, o.parserOpts()...).ReadAll()
	if err != nil {
		return nil, err
	}
	c := compiler.New(arena, o.compilerOpts()...)
	program := &Program{
		arena:    arena,
		source:   source,
		filename: o.filename,
	}
	var result *multierror.Error
	for _, form := range forms {
		code, err := c.Compile(form)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		program.forms = append(program.forms, form)
		program.code = append(program.code, code)
	}
	return program, result.ErrorOrNil()
}
