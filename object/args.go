package object

import (
	"github.com/secdlisp/secd/errors"
)

// ExtractArgs walks the proper list args, checks that it holds between min
// and max elements, and returns exactly max handles. Missing optional
// trailing arguments are filled with nil. The label names the form in the
// error reported for a wrong count.
func (a *Arena) ExtractArgs(label string, min, max int, args Handle) ([]Handle, error) {
	out := make([]Handle, 0, max)
	count := 0
	it := a.Iter(args)
	for it.Next() {
		if count < max {
			out = append(out, it.Handle())
		}
		count++
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	if count < min || count > max {
		return nil, &errors.WrongNumberOfArgumentsError{
			Form:   label,
			Min:    min,
			Max:    max,
			Actual: count,
		}
	}
	for len(out) < max {
		out = append(out, a.nilHandle)
	}
	return out, nil
}
