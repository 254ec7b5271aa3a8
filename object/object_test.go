package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/secdlisp/secd/errors"
)

func ints(a *Arena, values ...int64) []Handle {
	out := make([]Handle, len(values))
	for i, v := range values {
		out[i] = a.AllocInt(v)
	}
	return out
}

func TestAtomString(t *testing.T) {
	tests := []struct {
		atom     Atom
		expected string
	}{
		{NewInt(42), "42"},
		{NewInt(-7), "-7"},
		{NewFloat(42.3), "42.3"},
		{NewFloat(1), "1.0"},
		{NewFloat(-0.5), "-0.5"},
		{NewFloat(1e21), "1000000000000000000000.0"},
		{NewFloat(1e-7), "0.0000001"},
		{NewFloat(math.Inf(1)), "+Inf"},
		{NewSymbol("foo"), "foo"},
		{Atom{}, "#<invalid atom>"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.atom.String())
	}
}

func TestAtomEquals(t *testing.T) {
	require.True(t, NewInt(1).Equals(NewInt(1)))
	require.False(t, NewInt(1).Equals(NewFloat(1)))
	require.True(t, NewSymbol("a").Equals(NewSymbol("a")))
	require.False(t, NewSymbol("a").Equals(NewSymbol("b")))
	require.False(t, NewFloat(math.NaN()).Equals(NewFloat(math.NaN())))

	v, ok := NewInt(3).Int()
	require.True(t, ok)
	require.Equal(t, int64(3), v)
	_, ok = NewInt(3).Name()
	require.False(t, ok)
}

func TestInterningIsIdentity(t *testing.T) {
	a := NewArena()
	x1 := a.Symbol("x")
	x2 := a.Symbol("x")
	require.Equal(t, x1, x2)

	n1, err := a.Resolve(x1)
	require.Nil(t, err)
	n2, err := a.Resolve(x2)
	require.Nil(t, err)
	require.Same(t, n1, n2)

	// Alloc of a symbol atom goes through the intern table too
	require.Equal(t, x1, a.Alloc(NewSymbol("x")))
	require.Equal(t, a.Nil(), a.Symbol("nil"))
	require.Equal(t, a.T(), a.Symbol("t"))
	require.NotEqual(t, a.Symbol("y"), x1)
}

func TestArenaCounts(t *testing.T) {
	a := NewArena()
	require.Equal(t, 2, a.Len()) // nil and t
	a.List(ints(a, 1, 2, 3)...)
	require.Equal(t, 8, a.Len()) // three ints, three pairs
}

func TestResolveFailures(t *testing.T) {
	a := NewArena()
	other := NewArena()

	_, err := a.Resolve(Handle{})
	require.True(t, errors.Is(err, errors.ErrInvalidReference))

	_, err = a.Resolve(other.AllocInt(1))
	require.True(t, errors.Is(err, errors.ErrInvalidReference))
	require.Contains(t, err.Error(), "another arena")

	h := a.AllocInt(1)
	a.Close()
	require.True(t, a.Closed())
	_, err = a.Resolve(h)
	require.True(t, errors.Is(err, errors.ErrInvalidReference))
	require.Equal(t, "invalid reference: arena closed", err.Error())
	require.True(t, a.AllocInt(2).IsZero())
	a.Close()
}

func TestAccessorTypeSafety(t *testing.T) {
	a := NewArena()
	n, err := a.Resolve(a.AllocInt(42))
	require.Nil(t, err)
	require.True(t, n.IsAtom())
	require.True(t, n.IsInt())
	require.False(t, n.IsPair())

	_, err = n.First()
	require.True(t, errors.Is(err, errors.ErrWrongTypeArgument))
	var wt *errors.WrongTypeArgumentError
	require.True(t, errors.As(err, &wt))
	require.Equal(t, "first", wt.Operation)
	require.Equal(t, errors.ShapePair, wt.Expected)
	require.Equal(t, errors.ShapeAtom, wt.Actual.Shape)
	require.Equal(t, errors.KindInt, wt.Actual.Kind)
	require.Equal(t, "42", wt.Value)

	_, err = n.Rest()
	require.True(t, errors.Is(err, errors.ErrWrongTypeArgument))
	require.True(t, errors.Is(n.SetFirst(a.Nil()), errors.ErrWrongTypeArgument))
	require.True(t, errors.Is(n.SetRest(a.Nil()), errors.ErrWrongTypeArgument))

	_, err = a.First(a.Symbol("s"))
	require.True(t, errors.As(err, &wt))
	require.Equal(t, errors.KindSymbol, wt.Actual.Kind)
}

func TestPairAccessAndMutation(t *testing.T) {
	a := NewArena()
	one, two := a.AllocInt(1), a.AllocInt(2)
	p := a.Cons(one, a.Nil())

	first, err := a.First(p)
	require.Nil(t, err)
	require.Equal(t, one, first)

	n, err := a.Resolve(p)
	require.Nil(t, err)
	require.True(t, n.IsPair())
	require.Equal(t, DataType{Shape: ShapePair}, n.DataType())
	require.Nil(t, n.SetRest(two))
	require.Equal(t, "(1 . 2)", a.Render(p))
	require.Nil(t, n.SetFirst(a.Symbol("a")))
	require.Equal(t, "(a . 2)", a.Render(p))
}

func TestRender(t *testing.T) {
	a := NewArena()
	tests := []struct {
		name     string
		expr     Handle
		expected string
	}{
		{"nil", a.List(), "nil"},
		{"int", a.AllocInt(5), "5"},
		{"proper list", a.List(ints(a, 1, 2, 3)...), "(1 2 3)"},
		{"dotted list", a.ListWithTail(a.AllocInt(3), ints(a, 1, 2)...), "(1 2 . 3)"},
		{"single pair", a.Cons(a.AllocInt(1), a.AllocInt(2)), "(1 . 2)"},
		{"nested", a.List(a.List(a.Symbol("a")), a.List(), a.AllocFloat(2.5)), "((a) nil 2.5)"},
		{"invalid", Handle{}, "#<invalid>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, a.Render(tt.expr))
		})
	}
}

func TestRenderCycle(t *testing.T) {
	a := NewArena()
	p := a.Cons(a.AllocInt(1), a.Nil())
	n, err := a.Resolve(p)
	require.Nil(t, err)
	require.Nil(t, n.SetRest(p))
	require.Equal(t, "(1 . #<cycle>)", a.Render(p))

	q := a.Cons(a.Nil(), a.Nil())
	nq, err := a.Resolve(q)
	require.Nil(t, err)
	require.Nil(t, nq.SetFirst(q))
	require.Equal(t, "(#<cycle>)", a.Render(q))

	// Shared, acyclic structure is printed in full each time
	shared := a.List(a.AllocInt(7))
	require.Equal(t, "((7) (7))", a.Render(a.List(shared, shared)))
}

func TestIter(t *testing.T) {
	a := NewArena()
	items := ints(a, 1, 2, 3)
	list := a.List(items...)

	it := a.Iter(list)
	var got []Handle
	for it.Next() {
		got = append(got, it.Handle())
	}
	require.Nil(t, it.Err())
	require.Equal(t, items, got)
	// Exhausted iterators stay exhausted
	require.False(t, it.Next())

	// A fresh iteration starts over
	count, err := a.Length(list)
	require.Nil(t, err)
	require.Equal(t, 3, count)

	empty, err := a.Slice(a.Nil())
	require.Nil(t, err)
	require.Empty(t, empty)
}

func TestIterDottedList(t *testing.T) {
	a := NewArena()
	list := a.ListWithTail(a.AllocInt(3), ints(a, 1, 2)...)
	it := a.Iter(list)
	require.True(t, it.Next())
	require.True(t, it.Next())
	require.False(t, it.Next())
	require.True(t, errors.Is(it.Err(), errors.ErrWrongTypeArgument))

	_, err := a.Slice(list)
	require.True(t, errors.Is(err, errors.ErrWrongTypeArgument))
	_, err = a.Slice(a.AllocInt(1))
	require.True(t, errors.Is(err, errors.ErrWrongTypeArgument))
}

func TestIterCircularList(t *testing.T) {
	a := NewArena()
	p := a.Cons(a.AllocInt(1), a.Nil())
	n, err := a.Resolve(p)
	require.Nil(t, err)
	require.Nil(t, n.SetRest(p))
	_, err = a.Slice(p)
	require.True(t, errors.Is(err, errors.ErrWrongTypeArgument))
	require.Contains(t, err.Error(), "circular")
}

func TestExtractArgs(t *testing.T) {
	a := NewArena()
	x, y := a.Symbol("x"), a.Symbol("y")

	args, err := a.ExtractArgs("if", 2, 3, a.List(x, y))
	require.Nil(t, err)
	require.Equal(t, []Handle{x, y, a.Nil()}, args)

	args, err = a.ExtractArgs("if", 2, 3, a.List(x, y, x))
	require.Nil(t, err)
	require.Equal(t, []Handle{x, y, x}, args)

	_, err = a.ExtractArgs("if", 2, 3, a.List(x))
	var wn *errors.WrongNumberOfArgumentsError
	require.True(t, errors.As(err, &wn))
	require.Equal(t, errors.WrongNumberOfArgumentsError{Form: "if", Min: 2, Max: 3, Actual: 1}, *wn)

	_, err = a.ExtractArgs("if", 2, 3, a.List(x, y, x, y))
	require.True(t, errors.As(err, &wn))
	require.Equal(t, 4, wn.Actual)

	_, err = a.ExtractArgs("quote", 1, 1, a.ListWithTail(y, x))
	require.True(t, errors.Is(err, errors.ErrWrongTypeArgument))
}

func TestEqual(t *testing.T) {
	a := NewArena()
	l1 := a.List(a.AllocInt(1), a.List(a.Symbol("a"), a.AllocFloat(2.5)))
	l2 := a.List(a.AllocInt(1), a.List(a.Symbol("a"), a.AllocFloat(2.5)))
	l3 := a.List(a.AllocInt(1), a.List(a.Symbol("a"), a.AllocFloat(2.6)))
	dotted := a.ListWithTail(a.AllocInt(2), a.AllocInt(1))

	require.True(t, a.Equal(l1, l1))
	require.True(t, a.Equal(l1, l2))
	require.False(t, a.Equal(l1, l3))
	require.False(t, a.Equal(l1, dotted))
	require.False(t, a.Equal(a.AllocInt(1), a.AllocFloat(1)))
	require.True(t, a.Equal(a.AllocInt(1), a.AllocInt(1)))
	require.False(t, a.Equal(l1, Handle{}))
	require.False(t, a.Equal(Handle{}, Handle{}))
}

func TestEqualCircular(t *testing.T) {
	a := NewArena()
	mk := func() Handle {
		p := a.Cons(a.AllocInt(1), a.Nil())
		n, err := a.Resolve(p)
		require.Nil(t, err)
		require.Nil(t, n.SetRest(p))
		return p
	}
	require.True(t, a.Equal(mk(), mk()))
}

func TestInterface(t *testing.T) {
	a := NewArena()
	v, err := a.Interface(a.List(a.AllocInt(1), a.AllocFloat(2.5), a.Symbol("x"), a.List()))
	require.Nil(t, err)
	require.Equal(t, []any{int64(1), 2.5, "x", "nil"}, v)

	v, err = a.Interface(a.ListWithTail(a.AllocInt(3), a.AllocInt(1), a.AllocInt(2)))
	require.Nil(t, err)
	require.Equal(t, map[string]any{"items": []any{int64(1), int64(2)}, "tail": int64(3)}, v)

	_, err = a.Interface(Handle{})
	require.True(t, errors.Is(err, errors.ErrInvalidReference))

	other := NewArena()
	_, err = a.Interface(a.Cons(a.AllocInt(1), other.AllocInt(2)))
	require.True(t, errors.Is(err, errors.ErrInvalidReference))
}
