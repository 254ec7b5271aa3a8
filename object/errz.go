package object

import (
	"github.com/secdlisp/secd/errors"
)

// Re-export classification types from the errors package for convenience
type (
	DataType = errors.DataType
	Shape    = errors.Shape
	Kind     = errors.Kind
)

const (
	ShapeAtom = errors.ShapeAtom
	ShapePair = errors.ShapePair

	KindNone   = errors.KindNone
	KindInt    = errors.KindInt
	KindFloat  = errors.KindFloat
	KindSymbol = errors.KindSymbol
)

func wrongType(op string, n *Node) error {
	return &errors.WrongTypeArgumentError{
		Operation: op,
		Expected:  errors.ShapePair,
		Actual:    n.DataType(),
		Value:     n.atom.String(),
	}
}

func wrongTypeCycle(n *Node) error {
	return &errors.WrongTypeArgumentError{
		Operation: "iterate",
		Expected:  errors.ShapePair,
		Actual:    n.DataType(),
		Value:     "#<circular list>",
	}
}
