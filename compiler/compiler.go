// Package compiler lowers s-expressions into SECD-style instruction lists.
//
// # Output Shape
//
// Compiled code is a flat list living in the same arena as its input. Each
// instruction is an interned mnemonic symbol followed inline by its operands,
// and every program ends with stop:
//
//	42          =>  (ldc 42 stop)
//	(quote a)   =>  (ldc a stop)
//	(if t 1 2)  =>  (ldc t sel (ldc 1 join) (ldc 2 join) stop)
//
// # Continuation Threading
//
// Code is built back to front. Every expression is compiled together with
// the code that must run after it (its continuation) and returns a list that
// runs the expression and then falls into that continuation. The top-level
// continuation is (stop). Branches of an if are compiled against (join), and
// the test of an if is compiled against (sel then-code else-code . code), so
// compound tests compose the same way atomic ones do.
//
// # Supported Forms
//
// Integers, floats, t and nil load themselves. (quote x) loads x unevaluated.
// (if test then [else]) selects between two blocks; a missing else loads nil.
// Other symbols and other pair shapes fail with an unsupported form error,
// as variables and application are not yet lowered.
package compiler

import (
	"github.com/rs/zerolog/log"

	"github.com/secdlisp/secd/errors"
	"github.com/secdlisp/secd/object"
	"github.com/secdlisp/secd/op"
)

// Special form names recognized at the head of a list.
const (
	QuoteForm = "quote"
	IfForm    = "if"
)

// SpecialForms lists the head symbols the compiler can lower.
var SpecialForms = []string{QuoteForm, IfForm}

// Compiler lowers expressions allocated in one arena. A Compiler may be
// reused for any number of expressions from that arena.
type Compiler struct {
	arena *object.Arena

	// Execution environment. Carried for lexical addressing but not yet
	// consulted.
	env map[string]any
}

// New returns a Compiler that reads from and allocates into arena.
func New(arena *object.Arena, options ...Option) *Compiler {
	c := &Compiler{arena: arena}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Compile lowers expr into a new instruction list in arena. This is shorthand
// for creating a Compiler and calling Compile on it once.
func Compile(expr object.Handle, arena *object.Arena, options ...Option) (object.Handle, error) {
	return New(arena, options...).Compile(expr)
}

// Env returns the execution environment supplied with WithEnv.
func (c *Compiler) Env() map[string]any {
	return c.env
}

// Compile lowers expr and returns the head of its instruction list. On
// failure no partial result is returned and the error is a
// *errors.CompileError wrapping the underlying cause.
func (c *Compiler) Compile(expr object.Handle) (object.Handle, error) {
	if c.arena.Closed() {
		return object.Handle{}, c.fail(expr, errors.NewInvalidReference("arena closed"))
	}
	code, err := c.compile(expr, c.arena.List(c.mnemonic(op.Stop)))
	if err != nil {
		log.Debug().Err(err).Msg("compile failed")
		return object.Handle{}, err
	}
	if e := log.Debug(); e.Enabled() {
		e.Str("form", c.arena.Render(expr)).Str("code", c.arena.Render(code)).Msg("compiled")
	}
	return code, nil
}

func (c *Compiler) compile(expr, code object.Handle) (object.Handle, error) {
	node, err := c.arena.Resolve(expr)
	if err != nil {
		return object.Handle{}, c.fail(expr, err)
	}
	if atom, ok := node.Atom(); ok {
		if name, isSymbol := atom.Name(); isSymbol && name != object.NilName && name != object.TName {
			return object.Handle{}, c.fail(expr, &errors.UnsupportedFormError{
				Form:   name,
				Reason: "variable references are not supported",
			})
		}
		return c.emit(op.LoadConst, code, expr), nil
	}
	head, err := node.First()
	if err != nil {
		return object.Handle{}, c.fail(expr, err)
	}
	args, err := node.Rest()
	if err != nil {
		return object.Handle{}, c.fail(expr, err)
	}
	switch {
	case c.arena.IsSymbolNamed(head, QuoteForm):
		return c.compileQuote(expr, args, code)
	case c.arena.IsSymbolNamed(head, IfForm):
		return c.compileIf(expr, args, code)
	}
	return object.Handle{}, c.unsupported(expr, head)
}

func (c *Compiler) compileQuote(expr, args, code object.Handle) (object.Handle, error) {
	parts, err := c.arena.ExtractArgs(QuoteForm, 1, 1, args)
	if err != nil {
		return object.Handle{}, c.fail(expr, err)
	}
	return c.emit(op.LoadConst, code, parts[0]), nil
}

func (c *Compiler) compileIf(expr, args, code object.Handle) (object.Handle, error) {
	parts, err := c.arena.ExtractArgs(IfForm, 2, 3, args)
	if err != nil {
		return object.Handle{}, c.fail(expr, err)
	}
	test, consequence, alternative := parts[0], parts[1], parts[2]

	join := c.arena.List(c.mnemonic(op.Join))
	thenCode, err := c.compile(consequence, join)
	if err != nil {
		return object.Handle{}, err
	}
	elseCode, err := c.compile(alternative, join)
	if err != nil {
		return object.Handle{}, err
	}
	return c.compile(test, c.emit(op.Select, code, thenCode, elseCode))
}

// emit prepends one instruction and its operands to code.
func (c *Compiler) emit(code op.Code, next object.Handle, operands ...object.Handle) object.Handle {
	items := make([]object.Handle, 0, len(operands)+1)
	items = append(items, c.mnemonic(code))
	items = append(items, operands...)
	return c.arena.ListWithTail(next, items...)
}

func (c *Compiler) mnemonic(code op.Code) object.Handle {
	return c.arena.Symbol(op.GetInfo(code).Name)
}

func (c *Compiler) unsupported(expr, head object.Handle) error {
	node, err := c.arena.Resolve(head)
	if err != nil {
		return c.fail(expr, err)
	}
	if atom, ok := node.Atom(); ok {
		if name, isSymbol := atom.Name(); isSymbol {
			ce := c.fail(expr, &errors.UnsupportedFormError{
				Form:   name,
				Reason: "not a special form",
			})
			ce.Suggestions = errors.SuggestSimilar(name, SpecialForms)
			return ce
		}
	}
	return c.fail(expr, &errors.UnsupportedFormError{
		Form:   c.arena.Render(head),
		Reason: "expected quote or if at the head of a list",
	})
}

// fail wraps err with the rendering of the form being compiled.
func (c *Compiler) fail(expr object.Handle, err error) *errors.CompileError {
	var ce *errors.CompileError
	if errors.As(err, &ce) {
		return ce
	}
	return errors.NewCompileError(c.arena.Render(expr), err)
}
