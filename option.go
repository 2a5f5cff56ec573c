package seqfn

import (
	"cmp"
	"fmt"
)

// Option is a value of type T that may be absent. It is the nullable key
// type for OrderByFunc: absent values sort before every present value.
//
// The zero Option is absent.
type Option[T cmp.Ordered] struct {
	value T
	ok    bool
}

func Some[T cmp.Ordered](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T cmp.Ordered]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsPresent() bool {
	return o.ok
}

func (o Option[T]) OrElse(v T) T {
	if !o.ok {
		return v
	}
	return o.value
}

// Compare implements Orderable. Two absent values are equal.
func (o Option[T]) Compare(other Option[T]) int {
	switch {
	case !o.ok && !other.ok:
		return 0
	case !o.ok:
		return -1
	case !other.ok:
		return 1
	default:
		return cmp.Compare(o.value, other.value)
	}
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
