/*
Package seqfn provides deferred, composable operators over iter.Seq:
filtering, mapping, ordering, reversal, type filtering, casting, counting
and range generation.

Every operator returning a sequence is lazy. Calling it only validates the
arguments and captures them; nothing is read from the source until the
result is iterated. Each pass over the result reads the source again, so a
sequence built over a mutable collection reflects the collection's state at
the time of the pass, not at the time the operator was called:

	numbers := []int{1, 2, 3, 4}
	big := seqfn.Where(seqfn.Live(&numbers), func(n int) bool { return n > 2 })

	numbers = append(numbers, 5)

	for n := range big {
		fmt.Println(n) // 3, 4, 5
	}

OrderBy, OrderByFunc and Reverse need random access, so every pass first
copies the source into a private buffer and then sorts or reverses that
snapshot. The ordering is stable: values with equal keys keep their source
order.

All, Any, Count, CountFunc and ToSlice are eager and consume the source on
the calling goroutine.

# Errors

Passing a nil source, predicate, selector or key function is a programming
error: the operator panics immediately with an error wrapping
ErrInvalidArgument. Range panics with ErrOutOfRange for a negative count,
and RangeOf also when the last value would overflow its integer type. Cast
is the one operator whose failure is deferred: it panics with an error
wrapping a *CastError when the offending value is reached during
iteration. TryCast and
TrySelect deliver failures as values of an iter.Seq2 instead.

No operator starts goroutines or takes locks. Mutating a source while one
of its sequences is being iterated is not supported.
*/
package seqfn
