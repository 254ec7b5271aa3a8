package object

import (
	"math"
	"strconv"
	"strings"
)

// Atom is an immutable scalar leaf value: an integer, a float, or a symbol.
// The zero Atom is not valid; use NewInt, NewFloat or NewSymbol.
type Atom struct {
	kind Kind
	i    int64
	f    float64
	name string
}

// NewInt returns an integer atom.
func NewInt(value int64) Atom {
	return Atom{kind: KindInt, i: value}
}

// NewFloat returns a floating point atom.
func NewFloat(value float64) Atom {
	return Atom{kind: KindFloat, f: value}
}

// NewSymbol returns a symbol atom. Symbols stored in an Arena should be
// created through Arena.Symbol so they are interned.
func NewSymbol(name string) Atom {
	return Atom{kind: KindSymbol, name: name}
}

// Kind returns the sub-kind of the atom.
func (a Atom) Kind() Kind {
	return a.kind
}

// Int returns the integer value and true if the atom is an integer.
func (a Atom) Int() (int64, bool) {
	return a.i, a.kind == KindInt
}

// Float returns the float value and true if the atom is a float.
func (a Atom) Float() (float64, bool) {
	return a.f, a.kind == KindFloat
}

// Name returns the symbol name and true if the atom is a symbol.
func (a Atom) Name() (string, bool) {
	return a.name, a.kind == KindSymbol
}

// Equals compares two atoms structurally. Symbols compare by name. Floats
// compare by value, so NaN is never equal to itself.
func (a Atom) Equals(other Atom) bool {
	if a.kind != other.kind {
		return false
	}
	switch a.kind {
	case KindInt:
		return a.i == other.i
	case KindFloat:
		return a.f == other.f
	case KindSymbol:
		return a.name == other.name
	}
	return false
}

// String renders the atom as it would be written in source. Finite floats
// always carry a decimal point so they read back as floats.
func (a Atom) String() string {
	switch a.kind {
	case KindInt:
		return strconv.FormatInt(a.i, 10)
	case KindFloat:
		return formatFloat(a.f)
	case KindSymbol:
		return a.name
	}
	return "#<invalid atom>"
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}
