package object

// List builds a proper list of items terminated by nil, allocating one pair
// per item. List() returns nil.
func (a *Arena) List(items ...Handle) Handle {
	return a.ListWithTail(a.nilHandle, items...)
}

// ListWithTail builds a list of items whose final rest is tail. With a
// non-nil atom tail the result is a dotted list. With no items it returns
// tail itself.
func (a *Arena) ListWithTail(tail Handle, items ...Handle) Handle {
	list := tail
	for i := len(items) - 1; i >= 0; i-- {
		list = a.Cons(items[i], list)
	}
	return list
}

// Slice collects the elements of the proper list h.
func (a *Arena) Slice(h Handle) ([]Handle, error) {
	var items []Handle
	it := a.Iter(h)
	for it.Next() {
		items = append(items, it.Handle())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Length returns the number of elements of the proper list h.
func (a *Arena) Length(h Handle) (int, error) {
	count := 0
	it := a.Iter(h)
	for it.Next() {
		count++
	}
	return count, it.Err()
}
