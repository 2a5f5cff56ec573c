package iterx

import (
	"iter"
)

// initialCapacity is the size of the first buffer allocated by Buffer.
const initialCapacity = 4

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Buffer drains seq into a growable buffer and returns it together with the
// number of elements actually written. Only buf[:n] is meaningful.
//
// The buffer starts small and doubles whenever it is full, so the total
// copying cost stays linear in n.
func Buffer[T any](seq iter.Seq[T]) (buf []T, n int) {
	buf = make([]T, initialCapacity)
	for item := range seq {
		if n == len(buf) {
			grown := make([]T, len(buf)*2)
			copy(grown, buf)
			buf = grown
		}
		buf[n] = item
		n++
	}
	return buf, n
}
