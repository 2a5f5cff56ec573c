package seqfn

import (
	"iter"

	"github.com/KasperOmsK/seqfn/internal/iterx"
)

// All reports whether predicate holds for every value of src.
//
// All is eager: it consumes src on the calling goroutine and stops at the
// first value for which predicate returns false. It returns true for an
// empty src.
//
// All panics with ErrInvalidArgument if src or predicate is nil.
func All[T any](src iter.Seq[T], predicate Predicate[T]) bool {
	mustNotNil("All", "src", src == nil)
	mustNotNil("All", "predicate", predicate == nil)

	for item := range src {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Any reports whether predicate holds for at least one value of src,
// stopping at the first match. It returns false for an empty src.
//
// Any panics with ErrInvalidArgument if src or predicate is nil.
func Any[T any](src iter.Seq[T], predicate Predicate[T]) bool {
	mustNotNil("Any", "src", src == nil)
	mustNotNil("Any", "predicate", predicate == nil)

	for item := range src {
		if predicate(item) {
			return true
		}
	}
	return false
}

// Count consumes src and returns the number of values it produced.
//
// Count panics with ErrInvalidArgument if src is nil.
func Count[T any](src iter.Seq[T]) int {
	mustNotNil("Count", "src", src == nil)

	n := 0
	for range src {
		n++
	}
	return n
}

// CountFunc consumes src and returns the number of values for which
// predicate returns true.
//
// CountFunc panics with ErrInvalidArgument if src or predicate is nil.
func CountFunc[T any](src iter.Seq[T], predicate Predicate[T]) int {
	mustNotNil("CountFunc", "src", src == nil)
	mustNotNil("CountFunc", "predicate", predicate == nil)

	n := 0
	for item := range src {
		if predicate(item) {
			n++
		}
	}
	return n
}

// ToSlice consumes src and returns its values in order.
//
// The returned slice is owned by the caller; it never shares memory with
// src. For an empty src the result is an empty, non-nil slice.
//
// ToSlice panics with ErrInvalidArgument if src is nil.
func ToSlice[T any](src iter.Seq[T]) []T {
	mustNotNil("ToSlice", "src", src == nil)

	buf, n := iterx.Buffer(src)
	return buf[:n:n]
}

// TryCollect consumes src until the first non-nil error and returns the
// values collected so far together with that error.
func TryCollect[T any](src iter.Seq2[T, error]) ([]T, error) {
	mustNotNil("TryCollect", "src", src == nil)

	var out []T
	for item, err := range src {
		if err != nil {
			return out, err
		}
		out = append(out, item)
	}
	return out, nil
}
