package object

// SetFirst replaces the first field of a pair in place.
//
// Only the reader mutates nodes, to patch a list's tail while the list is
// still being read. Atoms, including interned symbols, cannot be mutated.
func (n *Node) SetFirst(h Handle) error {
	if !n.pair {
		return wrongType("set-first", n)
	}
	n.first = h
	return nil
}

// SetRest replaces the rest field of a pair in place.
func (n *Node) SetRest(h Handle) error {
	if !n.pair {
		return wrongType("set-rest", n)
	}
	n.rest = h
	return nil
}
