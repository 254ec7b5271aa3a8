// Package object provides the symbolic expression model: atoms, cons cells
// and the Arena that owns every node created during a session.
//
// Nodes are never constructed free-standing. An Arena allocates them and
// hands out Handles, which are plain values naming a slot in that arena.
// A Handle must be resolved against its arena before the node behind it can
// be inspected:
//
//	arena := object.NewArena()
//	list := arena.List(arena.AllocInt(1), arena.Symbol("a"))
//	node, err := arena.Resolve(list)
//	if err != nil {
//		// stale, foreign, or zero handle
//	}
//	first, _ := node.First()
//
// Because pairs reference each other only through handles, cyclic
// structures cannot leak and a handle can never dangle: resolution either
// yields the live node or fails with an invalid reference error.
//
// An Arena is not safe for concurrent use.
package object

// Node is either an atom or a pair. Nodes are owned by an Arena.
type Node struct {
	atom  Atom
	pair  bool
	first Handle
	rest  Handle
}

// IsAtom returns true if the node is a leaf.
func (n *Node) IsAtom() bool {
	return !n.pair
}

// IsPair returns true if the node is a cons cell.
func (n *Node) IsPair() bool {
	return n.pair
}

// IsInt returns true if the node is an integer atom.
func (n *Node) IsInt() bool {
	return !n.pair && n.atom.kind == KindInt
}

// IsFloat returns true if the node is a float atom.
func (n *Node) IsFloat() bool {
	return !n.pair && n.atom.kind == KindFloat
}

// IsSymbol returns true if the node is a symbol atom.
func (n *Node) IsSymbol() bool {
	return !n.pair && n.atom.kind == KindSymbol
}

// IsSymbolNamed returns true if the node is the symbol with the given name.
func (n *Node) IsSymbolNamed(name string) bool {
	return n.IsSymbol() && n.atom.name == name
}

// Atom returns the atom value and true if the node is a leaf.
func (n *Node) Atom() (Atom, bool) {
	return n.atom, !n.pair
}

// DataType classifies the node for diagnostics.
func (n *Node) DataType() DataType {
	if n.pair {
		return DataType{Shape: ShapePair}
	}
	return DataType{Shape: ShapeAtom, Kind: n.atom.kind}
}

// First returns the first field of a pair.
func (n *Node) First() (Handle, error) {
	if !n.pair {
		return Handle{}, wrongType("first", n)
	}
	return n.first, nil
}

// Rest returns the rest field of a pair.
func (n *Node) Rest() (Handle, error) {
	if !n.pair {
		return Handle{}, wrongType("rest", n)
	}
	return n.rest, nil
}
