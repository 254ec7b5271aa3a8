package errors

// Shape distinguishes the two variants of an expression node.
type Shape uint8

const (
	ShapeAtom Shape = iota + 1
	ShapePair
)

func (s Shape) String() string {
	switch s {
	case ShapeAtom:
		return "Atom"
	case ShapePair:
		return "Pair"
	default:
		return "Unknown"
	}
}

// Kind is the sub-kind of an atom.
type Kind uint8

const (
	KindNone Kind = iota
	KindInt
	KindFloat
	KindSymbol
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindSymbol:
		return "Symbol"
	default:
		return ""
	}
}

// DataType classifies an observed expression for diagnostics.
type DataType struct {
	Shape Shape
	Kind  Kind
}

// String returns "Pair", or "Atom(Int)" style text for atoms.
func (d DataType) String() string {
	if d.Shape == ShapeAtom && d.Kind != KindNone {
		return "Atom(" + d.Kind.String() + ")"
	}
	return d.Shape.String()
}
