package object

// Names of the symbols every Arena interns at construction.
const (
	NilName = "nil"
	TName   = "t"
)

// Nil returns the interned nil symbol, which terminates proper lists.
func (a *Arena) Nil() Handle {
	return a.nilHandle
}

// T returns the interned t symbol.
func (a *Arena) T() Handle {
	return a.tHandle
}

// IsNil returns true if h is the interned nil symbol of this arena.
func (a *Arena) IsNil(h Handle) bool {
	return h == a.nilHandle && !a.closed
}
