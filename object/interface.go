package object

// Interface converts the expression h to plain Go values: int64, float64,
// string for symbols, []any for proper lists. A dotted list becomes a map
// with "items" and "tail" keys. Structure is converted by value, so circular
// input yields an error.
func (a *Arena) Interface(h Handle) (any, error) {
	return a.toInterface(h, 0)
}

func (a *Arena) toInterface(h Handle, depth int) (any, error) {
	n, err := a.Resolve(h)
	if err != nil {
		return nil, err
	}
	if !n.pair {
		switch n.atom.kind {
		case KindInt:
			return n.atom.i, nil
		case KindFloat:
			return n.atom.f, nil
		default:
			return n.atom.name, nil
		}
	}
	if depth > a.Len() {
		return nil, wrongTypeCycle(n)
	}
	items := []any{}
	cur := h
	for steps := 0; ; steps++ {
		if steps > a.Len() {
			return nil, wrongTypeCycle(n)
		}
		if a.IsNil(cur) {
			return items, nil
		}
		node, err := a.Resolve(cur)
		if err != nil {
			return nil, err
		}
		if !node.pair {
			tail, err := a.toInterface(cur, depth+1)
			if err != nil {
				return nil, err
			}
			return map[string]any{"items": items, "tail": tail}, nil
		}
		item, err := a.toInterface(node.first, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		cur = node.rest
	}
}
