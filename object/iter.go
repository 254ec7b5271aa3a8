package object

// ListIter is a lazy, forward-only, single-pass iterator over the elements
// of a proper list. Create one with Arena.Iter; a new call starts over.
//
//	it := arena.Iter(list)
//	for it.Next() {
//		use(it.Handle())
//	}
//	if err := it.Err(); err != nil {
//		// dotted list, circular list, or invalid reference
//	}
type ListIter struct {
	arena *Arena
	cur   Handle
	item  Handle
	steps int
	err   error
	done  bool
}

// Iter returns an iterator over the proper list h. Iterating nil yields no
// elements.
func (a *Arena) Iter(h Handle) *ListIter {
	return &ListIter{arena: a, cur: h}
}

// Next advances to the next element and returns true if there is one. It
// returns false at the end of the list or on error.
func (it *ListIter) Next() bool {
	if it.done {
		return false
	}
	if it.arena.IsNil(it.cur) {
		it.done = true
		return false
	}
	n, err := it.arena.Resolve(it.cur)
	if err != nil {
		return it.fail(err)
	}
	if !n.pair {
		return it.fail(wrongType("iterate", n))
	}
	// A proper list cannot have more cells than the arena has nodes.
	it.steps++
	if it.steps > it.arena.Len() {
		return it.fail(wrongTypeCycle(n))
	}
	it.item = n.first
	it.cur = n.rest
	return true
}

func (it *ListIter) fail(err error) bool {
	it.err = err
	it.done = true
	it.item = Handle{}
	return false
}

// Handle returns the current element. Valid only after Next returned true.
func (it *ListIter) Handle() Handle {
	return it.item
}

// Err returns the error that stopped the iteration, if any.
func (it *ListIter) Err() error {
	return it.err
}
