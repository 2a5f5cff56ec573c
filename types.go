package seqfn

import (
	"iter"
	"reflect"

	"github.com/pkg/errors"
)

// OfType returns a sequence producing only the values of src whose dynamic
// type is R (or, when R is an interface type, implements R), converted to
// R. Other values, including untyped nils, are skipped.
//
// OfType panics with ErrInvalidArgument if src is nil.
func OfType[R any](src iter.Seq[any]) iter.Seq[R] {
	mustNotNil("OfType", "src", src == nil)

	return func(yield func(R) bool) {
		for item := range src {
			if r, ok := item.(R); ok {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Cast returns a sequence producing every value of src converted to R.
//
// Values are only inspected while the sequence is iterated: when a value
// that cannot be converted is reached, Cast panics with an error wrapping a
// *CastError and carrying the stack of the failing pass. The values
// preceding it have already been yielded at that point. Use TryCast
// to receive the failure as an error instead.
//
// An untyped nil converts to the zero R when R is a pointer, interface,
// map, slice, channel or func type.
//
// Cast panics with ErrInvalidArgument if src is nil.
func Cast[R any](src iter.Seq[any]) iter.Seq[R] {
	mustNotNil("Cast", "src", src == nil)

	return func(yield func(R) bool) {
		i := 0
		for item := range src {
			r, ok := castValue[R](item)
			if !ok {
				panic(errors.WithStack(newCastError[R](i, item)))
			}
			if !yield(r) {
				return
			}
			i++
		}
	}
}

// TryCast is like Cast but reports a value that cannot be converted by
// yielding the zero R with a *CastError, after which the sequence ends.
//
// TryCast panics with ErrInvalidArgument if src is nil.
func TryCast[R any](src iter.Seq[any]) iter.Seq2[R, error] {
	mustNotNil("TryCast", "src", src == nil)

	return func(yield func(R, error) bool) {
		i := 0
		for item := range src {
			r, ok := castValue[R](item)
			if !ok {
				yield(r, newCastError[R](i, item))
				return
			}
			if !yield(r, nil) {
				return
			}
			i++
		}
	}
}

func castValue[R any](v any) (R, bool) {
	if r, ok := v.(R); ok {
		return r, true
	}
	var zero R
	return zero, v == nil && nilable(reflect.TypeFor[R]())
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func newCastError[R any](index int, value any) *CastError {
	return &CastError{
		Index:  index,
		Value:  value,
		Target: reflect.TypeFor[R](),
	}
}
