package seqfn

import (
	"iter"
)

type (

	// Selector is a pure mapping function used by Select that transforms a
	// value of type In into a value of type Out.
	Selector[In, Out any] func(in In) Out

	// TrySelector is a mapping function that may return an error.
	//
	// Errors are yielded alongside the zero Out value by TrySelect while
	// successful values continue through the sequence.
	TrySelector[In, Out any] func(in In) (Out, error)

	// Predicate represents a filtering function that returns true when the
	// provided value should be included in the output sequence.
	Predicate[T any] func(item T) bool
)

// Where returns a sequence that yields, in source order, only the values of
// src for which predicate returns true.
//
// The predicate is evaluated again on every pass over the returned
// sequence, so values added to or removed from src after Where returns are
// observed by later passes.
//
// Where panics with ErrInvalidArgument if src or predicate is nil.
func Where[T any](src iter.Seq[T], predicate Predicate[T]) iter.Seq[T] {
	mustNotNil("Where", "src", src == nil)
	mustNotNil("Where", "predicate", predicate == nil)

	return func(yield func(T) bool) {
		for in := range src {
			if predicate(in) {
				if !yield(in) {
					return
				}
			}
		}
	}
}

// Select transforms each value of src using selector and returns a sequence
// producing the mapped values, one per input value, in source order.
//
// selector is invoked exactly once per value per pass; results are never
// cached.
//
// Select panics with ErrInvalidArgument if src or selector is nil.
func Select[In, Out any](src iter.Seq[In], selector Selector[In, Out]) iter.Seq[Out] {
	mustNotNil("Select", "src", src == nil)
	mustNotNil("Select", "selector", selector == nil)

	return func(yield func(Out) bool) {
		for in := range src {
			if !yield(selector(in)) {
				return
			}
		}
	}
}

// SelectMany transforms each value of src using selector and returns a
// sequence producing the flattened output values.
//
// SelectMany is equivalent to calling Flatten(Select(src, selector)).
func SelectMany[In, Out any](src iter.Seq[In], selector Selector[In, []Out]) iter.Seq[Out] {
	mustNotNil("SelectMany", "src", src == nil)
	mustNotNil("SelectMany", "selector", selector == nil)

	return Flatten(Select(src, selector))
}

// TrySelect transforms each value of src using selector.
//
// Successful results are yielded with a nil error. A failing call yields
// the zero Out value together with its error; iteration then continues
// with the next value unless the consumer stops. Use TryCollect to stop at
// the first error.
//
// TrySelect panics with ErrInvalidArgument if src or selector is nil.
func TrySelect[In, Out any](src iter.Seq[In], selector TrySelector[In, Out]) iter.Seq2[Out, error] {
	mustNotNil("TrySelect", "src", src == nil)
	mustNotNil("TrySelect", "selector", selector == nil)

	return func(yield func(Out, error) bool) {
		for in := range src {
			if !yield(selector(in)) {
				return
			}
		}
	}
}

// Flatten converts a sequence of slices into a sequence of their elements,
// emitting the items of each slice in order.
func Flatten[T any](src iter.Seq[[]T]) iter.Seq[T] {
	mustNotNil("Flatten", "src", src == nil)

	return func(yield func(T) bool) {
		for slice := range src {
			for _, item := range slice {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Chunk groups the values of src into slices of the given size and returns
// a sequence producing those slices.
//
// The final chunk may be smaller than size. Every chunk has its own backing
// array, so callers may retain chunks across iterations.
//
// Chunk panics with ErrOutOfRange if size is not positive.
func Chunk[T any](src iter.Seq[T], size int) iter.Seq[[]T] {
	mustNotNil("Chunk", "src", src == nil)
	if size <= 0 {
		panicArgument("Chunk", "size", ErrOutOfRange, "must be positive")
	}

	return func(yield func([]T) bool) {
		var chunk []T
		for item := range src {
			if chunk == nil {
				chunk = make([]T, 0, size)
			}
			chunk = append(chunk, item)

			// full chunks go out before the next value is pulled
			if len(chunk) == size {
				if !yield(chunk) {
					return
				}
				chunk = nil
			}
		}

		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// GroupAdjacent groups consecutive values of src sharing the same key and
// returns a sequence producing slices of those grouped values.
//
// GroupAdjacent does not reorder values. When the key returned by keyFunc
// changes, the current group is emitted and a new group is started.
//
// For example, given input values:
//
//	A, A, B, B, A
//
// GroupAdjacent will emit:
//
//	[A, A], [B, B], [A]
func GroupAdjacent[T any, K comparable](src iter.Seq[T], keyFunc KeyFunc[T, K]) iter.Seq[[]T] {
	mustNotNil("GroupAdjacent", "src", src == nil)
	mustNotNil("GroupAdjacent", "keyFunc", keyFunc == nil)

	return func(yield func([]T) bool) {
		var (
			group    []T
			groupKey K
		)
		for item := range src {
			k := keyFunc(item)
			switch {
			case group == nil:
				group, groupKey = []T{item}, k
			case k == groupKey:
				group = append(group, item)
			default:
				if !yield(group) {
					return
				}
				group, groupKey = []T{item}, k
			}
		}

		if group != nil {
			yield(group)
		}
	}
}

// Concat returns a sequence producing every value of each source in turn.
//
// Sources are consumed one after the other on the caller's goroutine.
func Concat[T any](srcs ...iter.Seq[T]) iter.Seq[T] {
	for _, src := range srcs {
		mustNotNil("Concat", "srcs", src == nil)
	}

	if len(srcs) == 1 {
		return srcs[0]
	}

	return func(yield func(T) bool) {
		for _, src := range srcs {
			for item := range src {
				if !yield(item) {
					return
				}
			}
		}
	}
}

// Tap returns a sequence that calls fn with every value of src just before
// yielding it.
//
// Tap panics with ErrInvalidArgument if fn is nil.
func Tap[T any](src iter.Seq[T], fn func(T)) iter.Seq[T] {
	mustNotNil("Tap", "src", src == nil)
	mustNotNil("Tap", "fn", fn == nil)

	return func(yield func(T) bool) {
		for item := range src {
			fn(item)
			if !yield(item) {
				return
			}
		}
	}
}
