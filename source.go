package seqfn

import (
	"iter"

	"github.com/KasperOmsK/seqfn/internal/iterx"
	"github.com/emirpasic/gods/containers"
)

// Live returns a sequence over the slice currently stored in *s.
//
// The slice header is read again at the start of every pass, so values
// appended to or removed from the variable after Live returns are seen by
// later passes. Modifying *s while a pass is in progress is not supported.
//
// Live panics with ErrInvalidArgument if s is nil.
func Live[T any](s *[]T) iter.Seq[T] {
	mustNotNil("Live", "s", s == nil)

	return func(yield func(T) bool) {
		iterx.FromSlice(*s)(yield)
	}
}

// FromContainer returns an untyped sequence over the values of c, such as a
// gods arraylist holding values of mixed types. Pass it to OfType or Cast
// to recover typed values.
//
// Every pass starts from the container's current contents.
func FromContainer(c containers.Container) iter.Seq[any] {
	mustNotNil("FromContainer", "c", c == nil)

	return func(yield func(any) bool) {
		for _, item := range c.Values() {
			if !yield(item) {
				return
			}
		}
	}
}

// Untyped converts a typed sequence into a sequence of any.
func Untyped[T any](src iter.Seq[T]) iter.Seq[any] {
	mustNotNil("Untyped", "src", src == nil)

	return func(yield func(any) bool) {
		for item := range src {
			if !yield(item) {
				return
			}
		}
	}
}
