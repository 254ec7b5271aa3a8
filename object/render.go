package object

import (
	"strings"
)

// Render returns the printed form of h: atoms as literals, proper lists as
// (a b c), dotted lists as (a b . c). Handles that do not resolve render as
// #<invalid> and structure reached again while it is being printed renders
// as #<cycle>.
func (a *Arena) Render(h Handle) string {
	var b strings.Builder
	a.render(&b, h, map[uint32]bool{})
	return b.String()
}

func (a *Arena) render(b *strings.Builder, h Handle, active map[uint32]bool) {
	n, err := a.Resolve(h)
	if err != nil {
		b.WriteString("#<invalid>")
		return
	}
	if !n.pair {
		b.WriteString(n.atom.String())
		return
	}
	if active[h.index] {
		b.WriteString("#<cycle>")
		return
	}
	var visited []uint32
	defer func() {
		for _, idx := range visited {
			delete(active, idx)
		}
	}()
	b.WriteByte('(')
	for {
		active[h.index] = true
		visited = append(visited, h.index)
		a.render(b, n.first, active)
		if a.IsNil(n.rest) {
			break
		}
		next, err := a.Resolve(n.rest)
		if err != nil {
			b.WriteString(" . #<invalid>")
			break
		}
		if !next.pair {
			b.WriteString(" . ")
			b.WriteString(next.atom.String())
			break
		}
		if active[n.rest.index] {
			b.WriteString(" . #<cycle>")
			break
		}
		b.WriteByte(' ')
		h, n = n.rest, next
	}
	b.WriteByte(')')
}
