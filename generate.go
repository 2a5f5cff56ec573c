package seqfn

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"
)

// Range returns a sequence producing count consecutive integers starting
// at start: start, start+1, ..., start+count-1.
//
// The sequence can be iterated any number of times. Range panics with
// ErrOutOfRange if count is negative.
func Range(start, count int) iter.Seq[int] {
	if count < 0 {
		panicArgument("Range", "count", ErrOutOfRange, "can't be less than zero")
	}
	return rangeOf(start, count)
}

// RangeOf is the generic form of Range for any integer type.
//
// RangeOf panics with ErrOutOfRange if count is negative or if the last
// value, start+count-1, is not representable in T.
func RangeOf[T constraints.Integer](start T, count int) iter.Seq[T] {
	if count < 0 {
		panicArgument("RangeOf", "count", ErrOutOfRange, "can't be less than zero")
	}
	if count > 0 && !fits(start, count-1) {
		panicArgument("RangeOf", "count", ErrOutOfRange,
			fmt.Sprintf("%v+%d overflows %T", start, count-1, start))
	}
	return rangeOf(start, count)
}

// fits reports whether start+offset is representable in T. offset must not
// be negative.
func fits[T constraints.Integer](start T, offset int) bool {
	d := T(offset)
	if d < 0 || int(d) != offset {
		return false
	}
	return start+d >= start
}

func rangeOf[T constraints.Integer](start T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		v := start
		for range count {
			if !yield(v) {
				return
			}
			v++
		}
	}
}
