package object

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"

	"github.com/secdlisp/secd/errors"
)

// Handle is a non-owning reference to a node in an Arena. Handles are
// comparable values; two handles are equal when they name the same slot of
// the same arena. The zero Handle never resolves.
type Handle struct {
	arena uuid.UUID
	index uint32
}

// IsZero returns true for the zero Handle.
func (h Handle) IsZero() bool {
	return h.arena == uuid.Nil
}

func (h Handle) String() string {
	if h.IsZero() {
		return "#<zero>"
	}
	return fmt.Sprintf("#<%s:%d>", h.arena.String()[:8], h.index)
}

// Arena owns every node allocated during a session. Nodes are stored in an
// append-only slot list and live until the arena is closed.
type Arena struct {
	id        uuid.UUID
	nodes     []*Node
	symbols   map[string]Handle
	nilHandle Handle
	tHandle   Handle
	closed    bool
}

// NewArena returns an empty arena with nil and t already interned.
func NewArena() *Arena {
	a := &Arena{
		id:      uuid.Must(uuid.NewV4()),
		nodes:   make([]*Node, 0, 1024),
		symbols: map[string]Handle{},
	}
	a.nilHandle = a.Symbol(NilName)
	a.tHandle = a.Symbol(TName)
	return a
}

// ID returns the session identifier of the arena.
func (a *Arena) ID() uuid.UUID {
	return a.id
}

// Len returns the number of nodes stored in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Closed returns true once Close has been called.
func (a *Arena) Closed() bool {
	return a.closed
}

// Close tears the arena down. Every handle it issued stops resolving, and
// allocation afterwards returns the zero Handle.
func (a *Arena) Close() {
	if a.closed {
		return
	}
	log.Debug().Str("arena", a.id.String()).Int("nodes", len(a.nodes)).Msg("arena closed")
	a.closed = true
	a.nodes = nil
	a.symbols = nil
}

func (a *Arena) store(n *Node) Handle {
	if a.closed {
		return Handle{}
	}
	a.nodes = append(a.nodes, n)
	return Handle{arena: a.id, index: uint32(len(a.nodes) - 1)}
}

// Alloc stores a new leaf node. Symbol atoms passed here are interned.
func (a *Arena) Alloc(atom Atom) Handle {
	if atom.kind == KindSymbol {
		return a.Symbol(atom.name)
	}
	return a.store(&Node{atom: atom})
}

// AllocInt stores a new integer leaf.
func (a *Arena) AllocInt(value int64) Handle {
	return a.store(&Node{atom: NewInt(value)})
}

// AllocFloat stores a new float leaf.
func (a *Arena) AllocFloat(value float64) Handle {
	return a.store(&Node{atom: NewFloat(value)})
}

// Symbol returns the canonical handle for the symbol name, creating the
// node on first request.
func (a *Arena) Symbol(name string) Handle {
	if h, ok := a.symbols[name]; ok {
		return h
	}
	h := a.store(&Node{atom: NewSymbol(name)})
	if !h.IsZero() {
		a.symbols[name] = h
	}
	return h
}

// Cons stores a new pair of two existing handles.
func (a *Arena) Cons(first, rest Handle) Handle {
	return a.store(&Node{pair: true, first: first, rest: rest})
}

// Resolve returns the node behind h. It fails with an invalid reference
// error for the zero handle, a handle issued by another arena, or any handle
// once the arena is closed.
func (a *Arena) Resolve(h Handle) (*Node, error) {
	switch {
	case a.closed:
		return nil, errors.NewInvalidReference("arena closed")
	case h.IsZero():
		return nil, errors.NewInvalidReference("zero handle")
	case h.arena != a.id:
		return nil, errors.NewInvalidReference("handle %s belongs to another arena", h)
	case int(h.index) >= len(a.nodes):
		return nil, errors.NewInvalidReference("handle %s has no node", h)
	}
	return a.nodes[h.index], nil
}

// First resolves h and returns its first field.
func (a *Arena) First(h Handle) (Handle, error) {
	n, err := a.Resolve(h)
	if err != nil {
		return Handle{}, err
	}
	return n.First()
}

// Rest resolves h and returns its rest field.
func (a *Arena) Rest(h Handle) (Handle, error) {
	n, err := a.Resolve(h)
	if err != nil {
		return Handle{}, err
	}
	return n.Rest()
}

// IsSymbolNamed returns true if h resolves to the symbol with the given name.
// Unresolvable handles are not symbols.
func (a *Arena) IsSymbolNamed(h Handle, name string) bool {
	n, err := a.Resolve(h)
	if err != nil {
		return false
	}
	return n.IsSymbolNamed(name)
}
