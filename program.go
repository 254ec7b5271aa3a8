package secd

import (
	"strings"

	"github.com/secdlisp/secd/object"
)

// Program is the compiled representation of a source file: each top-level
// form paired with its instruction list. Handles refer into the arena the
// program was compiled in and stop resolving once it is closed.
type Program struct {
	arena *object.Arena
	forms []object.Handle
	code  []object.Handle

	// Metadata
	source   string
	filename string
}

// Source returns the original source code that was compiled.
func (p *Program) Source() string {
	return p.source
}

// Filename returns the filename associated with this program, if any.
func (p *Program) Filename() string {
	return p.filename
}

// Len returns the number of compiled forms.
func (p *Program) Len() int {
	return len(p.code)
}

// Form returns the i-th source form.
func (p *Program) Form(i int) object.Handle {
	return p.forms[i]
}

// Code returns the instruction list of the i-th form.
func (p *Program) Code(i int) object.Handle {
	return p.code[i]
}

// String renders each instruction list on its own line.
func (p *Program) String() string {
	lines := make([]string, len(p.code))
	for i, code := range p.code {
		lines[i] = p.arena.Render(code)
	}
	return strings.Join(lines, "\n")
}
