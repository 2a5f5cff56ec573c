package seqfn

import (
	"cmp"
	"iter"
	"reflect"

	"github.com/KasperOmsK/seqfn/internal/iterx"
	"github.com/KasperOmsK/seqfn/internal/sortx"
)

type (
	// KeyFunc extracts the key a value is ordered or grouped by.
	KeyFunc[T, K any] func(item T) K

	// Comparer returns a negative number when a < b, zero when a == b and a
	// positive number when a > b.
	Comparer[K any] func(a, b K) int

	// Orderable is implemented by key types that define their own default
	// ordering.
	Orderable[K any] interface {
		Compare(other K) int
	}
)

// DefaultComparer returns the default ordering of K and reports whether K
// has one.
//
// K has a default ordering when it implements Orderable[K], or when its
// underlying type is an integer, floating-point, string or bool type.
// Floats follow cmp.Compare (NaN first) and false sorts before true.
//
// K may be an interface type embedding Orderable[K]; nil keys of such a
// type sort before all others.
func DefaultComparer[K any]() (Comparer[K], bool) {
	t := reflect.TypeFor[K]()
	if t.Implements(reflect.TypeFor[Orderable[K]]()) {
		return compareOrderable[K], true
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, true
	case reflect.String:
		return func(a, b K) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, true
	case reflect.Bool:
		return func(a, b K) int {
			return compareBool(reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool())
		}, true
	default:
		return nil, false
	}
}

func compareOrderable[K any](a, b K) int {
	oa, aok := any(a).(Orderable[K])
	_, bok := any(b).(Orderable[K])
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	}
	return oa.Compare(b)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// OrderBy returns a sequence producing the values of src in ascending order
// of the keys returned by key, using the natural ordering of K.
//
// See OrderByFunc for the evaluation model.
func OrderBy[T any, K cmp.Ordered](src iter.Seq[T], key KeyFunc[T, K]) iter.Seq[T] {
	mustNotNil("OrderBy", "src", src == nil)
	mustNotNil("OrderBy", "key", key == nil)

	return orderBy(src, key, cmp.Compare[K])
}

// OrderByFunc returns a sequence producing the values of src in ascending
// order of the keys returned by key, as determined by comparer.
//
// Every pass over the returned sequence takes a fresh snapshot of src,
// computes each key once and sorts the snapshot. Values with equal keys
// keep their relative order from src.
//
// A nil comparer selects DefaultComparer[K]. OrderByFunc panics with
// ErrInvalidArgument if src or key is nil, or if comparer is nil and K has
// no default ordering.
func OrderByFunc[T, K any](src iter.Seq[T], key KeyFunc[T, K], comparer Comparer[K]) iter.Seq[T] {
	mustNotNil("OrderByFunc", "src", src == nil)
	mustNotNil("OrderByFunc", "key", key == nil)

	if comparer == nil {
		def, ok := DefaultComparer[K]()
		if !ok {
			panicArgument("OrderByFunc", "comparer", ErrInvalidArgument,
				"no default ordering for key type "+reflect.TypeFor[K]().String())
		}
		comparer = def
	}

	return orderBy(src, key, comparer)
}

type keyed[T, K any] struct {
	item T
	key  K
}

func orderBy[T, K any](src iter.Seq[T], key KeyFunc[T, K], comparer Comparer[K]) iter.Seq[T] {
	return func(yield func(T) bool) {
		buf, n := iterx.Buffer(src)

		pairs := make([]keyed[T, K], n)
		for i, item := range buf[:n] {
			pairs[i] = keyed[T, K]{item: item, key: key(item)}
		}

		sortx.BubbleSortFunc(pairs, func(a, b keyed[T, K]) int {
			return comparer(a.key, b.key)
		})

		for _, p := range pairs {
			if !yield(p.item) {
				return
			}
		}
	}
}

// Reverse returns a sequence producing the values of src in reverse order.
//
// Every pass over the returned sequence takes a fresh snapshot of src, so
// changes made to src before a pass starts are observed by that pass.
//
// Reverse panics with ErrInvalidArgument if src is nil.
func Reverse[T any](src iter.Seq[T]) iter.Seq[T] {
	mustNotNil("Reverse", "src", src == nil)

	return func(yield func(T) bool) {
		buf, n := iterx.Buffer(src)
		for i := n - 1; i >= 0; i-- {
			if !yield(buf[i]) {
				return
			}
		}
	}
}
