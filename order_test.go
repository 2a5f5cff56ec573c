package seqfn_test

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/KasperOmsK/seqfn"
	gocmp "github.com/google/go-cmp/cmp"

	"github.com/stretchr/testify/require"
)

func requireSeqEqual[T any](t *testing.T, expected, actual []T) {
	t.Helper()
	if diff := gocmp.Diff(expected, actual); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func byAbs(a, b int) int {
	return cmp.Compare(abs(a), abs(b))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func optStrings(values ...string) []seqfn.Option[string] {
	out := make([]seqfn.Option[string], len(values))
	for i, v := range values {
		if v == "<nil>" {
			out[i] = seqfn.None[string]()
			continue
		}
		out[i] = seqfn.Some(v)
	}
	return out
}

func TestOrderByFunc_NullableStringKeys(t *testing.T) {
	source := optStrings("one", "two", "three", "four", "<nil>", "five", "six", "seven", "eight", "<nil>", "nine", "ten")

	tests := []struct {
		name     string
		key      seqfn.KeyFunc[seqfn.Option[string], seqfn.Option[int]]
		expected []seqfn.Option[string]
	}{
		{
			name: "length",
			key: func(o seqfn.Option[string]) seqfn.Option[int] {
				s, ok := o.Get()
				if !ok {
					return seqfn.None[int]()
				}
				return seqfn.Some(len(s))
			},
			expected: optStrings("<nil>", "<nil>", "one", "two", "six", "ten", "four", "five", "nine", "three", "seven", "eight"),
		},
		{
			name: "index of e",
			key: func(o seqfn.Option[string]) seqfn.Option[int] {
				s, ok := o.Get()
				if !ok {
					return seqfn.None[int]()
				}
				return seqfn.Some(strings.IndexByte(s, 'e'))
			},
			expected: optStrings("<nil>", "<nil>", "two", "four", "six", "eight", "seven", "ten", "one", "three", "five", "nine"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// nil comparer: Option keys order themselves, absent first.
			actual := seqfn.OrderByFunc(seqOf(source...), tt.key, nil)
			require.Equal(t, tt.expected, collect(actual))
		})
	}
}

func TestOrderBy_Doubles(t *testing.T) {
	actual := seqfn.OrderBy(seqOf(-9.56, 67.908, 45.34, 0.123, -100.453), math.Abs)

	requireSeqEqual(t, []float64{0.123, -9.56, 45.34, 67.908, -100.453}, collect(actual))
}

func TestOrderBy_Integers(t *testing.T) {
	actual := seqfn.OrderBy(seqOf(123, 21, 543, 75, 34, 77777, 1235), func(v int) int { return v % 10 })

	requireSeqEqual(t, []int{21, 123, 543, 34, 75, 1235, 77777}, collect(actual))
}

func TestOrderBy_ObservesAppendAfterCall(t *testing.T) {
	source := []int{1, 2, 3, 4}

	actual := seqfn.OrderBy(seqfn.Live(&source), func(v int) int { return -v })
	source = append(source, 5)

	requireSeqEqual(t, []int{5, 4, 3, 2, 1}, collect(actual))
}

func TestOrderBy_ObservesRemovalAfterCall(t *testing.T) {
	source := []int{1, 2, 3, 4, 5}

	actual := seqfn.OrderBy(seqfn.Live(&source), func(v int) int { return -v })
	source = slices.DeleteFunc(source, func(v int) bool { return v == 5 })

	requireSeqEqual(t, []int{4, 3, 2, 1}, collect(actual))
}

func TestOrderBy_ResnapshotsOnEveryPass(t *testing.T) {
	source := []int{3, 1, 2}
	actual := seqfn.OrderBy(seqfn.Live(&source), func(v int) int { return v })

	require.Equal(t, []int{1, 2, 3}, collect(actual))

	source = append(source, 0)
	require.Equal(t, []int{0, 1, 2, 3}, collect(actual))
	require.Equal(t, []int{3, 1, 2, 0}, source, "ordering must not mutate the source")
}

func TestOrderBy_NilArguments(t *testing.T) {
	requirePanicsWith(t, seqfn.ErrInvalidArgument, func() {
		seqfn.OrderBy(nil, func(v int) int { return v })
	})
	requirePanicsWith(t, seqfn.ErrInvalidArgument, func() {
		seqfn.OrderBy[int, int](seqOf(1), nil)
	})
}

func TestOrderByFunc_IntKeyAbsComparer(t *testing.T) {
	tests := []struct {
		name     string
		source   []int
		key      func(int) int
		expected []int
	}{
		{
			name:     "distance from 100",
			source:   []int{44, 56, 123, 456, 11, 13, 154, 879, 11111},
			key:      func(x int) int { return x - 100 },
			expected: []int{123, 56, 154, 44, 13, 11, 456, 879, 11111},
		},
		{
			name:     "last digit",
			source:   []int{44, 56, 456, 11, 13, 158, 879},
			key:      func(x int) int { return x % 10 },
			expected: []int{11, 13, 44, 56, 456, 158, 879},
		},
		{
			name:     "square root",
			source:   []int{49, 25, 64, 625, 100},
			key:      func(x int) int { return int(math.Sqrt(float64(x))) },
			expected: []int{25, 49, 64, 100, 625},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := seqfn.OrderByFunc(seqOf(tt.source...), tt.key, byAbs)
			requireSeqEqual(t, tt.expected, collect(actual))
		})
	}
}

func TestOrderByFunc_StringKeyCustomComparer(t *testing.T) {
	byLength := func(a, b string) int { return cmp.Compare(len(a), len(b)) }
	byIndexOfOne := func(a, b string) int {
		return cmp.Compare(strings.IndexByte(a, '1'), strings.IndexByte(b, '1'))
	}

	actual := seqfn.OrderByFunc(seqOf(49, 25, 64, 625, 100), strconv.Itoa, byLength)
	requireSeqEqual(t, []int{49, 25, 64, 625, 100}, collect(actual))

	actual = seqfn.OrderByFunc(seqOf(49, 41, 25, 64, 625, 100), strconv.Itoa, byIndexOfOne)
	requireSeqEqual(t, []int{49, 25, 64, 625, 100, 41}, collect(actual))
}

func TestOrderByFunc_NilComparerUsesDefault(t *testing.T) {
	type celsius float32

	actual := seqfn.OrderByFunc(seqOf[celsius](21.5, -3, 0, 12), func(c celsius) celsius { return c }, nil)

	require.Equal(t, []celsius{-3, 0, 12, 21.5}, collect(actual))
}

func TestOrderByFunc_NilArguments(t *testing.T) {
	requirePanicsWith(t, seqfn.ErrInvalidArgument, func() {
		seqfn.OrderByFunc[int, int](seqOf(44, 56, 123), nil, nil)
	})
	requirePanicsWith(t, seqfn.ErrInvalidArgument, func() {
		seqfn.OrderByFunc(nil, func(x int) int { return x % 10 }, byAbs)
	})
}

func TestOrderByFunc_NoDefaultOrdering(t *testing.T) {
	type point struct{ x, y int }

	requirePanicsWith(t, seqfn.ErrInvalidArgument, func() {
		seqfn.OrderByFunc(seqOf(1, 2), func(v int) point { return point{v, v} }, nil)
	})
}

func TestOrderBy_IsStable(t *testing.T) {
	type record struct {
		key int
		pos int
	}

	r := rand.New(rand.NewPCG(7, 11))
	source := make([]record, 100)
	for i := range source {
		source[i] = record{key: r.IntN(5), pos: i}
	}

	actual := collect(seqfn.OrderBy(seqOf(source...), func(rec record) int { return rec.key }))

	require.Len(t, actual, len(source))
	for i := 1; i < len(actual); i++ {
		prev, cur := actual[i-1], actual[i]
		require.LessOrEqual(t, prev.key, cur.key)
		if prev.key == cur.key {
			require.Less(t, prev.pos, cur.pos, "equal keys must keep their source order")
		}
	}
}

func TestOrderBy_IdempotentOnSortedInput(t *testing.T) {
	key := func(v int) int { return v % 7 }
	once := collect(seqfn.OrderBy(seqfn.Range(0, 30), key))
	twice := collect(seqfn.OrderBy(seqOf(once...), key))

	requireSeqEqual(t, once, twice)
}

func TestOrderBy_KeyComputedOncePerElementPerPass(t *testing.T) {
	calls := 0
	ordered := seqfn.OrderBy(seqOf(5, 4, 3, 2, 1), func(v int) int {
		calls++
		return v
	})

	collect(ordered)
	require.Equal(t, 5, calls)
}

func TestOrderBy_StopsEarly(t *testing.T) {
	var out []int
	for v := range seqfn.OrderBy(seqOf(3, 1, 2), func(v int) int { return v }) {
		out = append(out, v)
		break
	}
	require.Equal(t, []int{1}, out)
}

func TestDefaultComparer(t *testing.T) {
	ints, ok := seqfn.DefaultComparer[int]()
	require.True(t, ok)
	require.Negative(t, ints(-1, 2))

	uints, ok := seqfn.DefaultComparer[uint16]()
	require.True(t, ok)
	require.Positive(t, uints(9, 2))

	strs, ok := seqfn.DefaultComparer[string]()
	require.True(t, ok)
	require.Zero(t, strs("a", "a"))

	bools, ok := seqfn.DefaultComparer[bool]()
	require.True(t, ok)
	require.Negative(t, bools(false, true))

	opts, ok := seqfn.DefaultComparer[seqfn.Option[int]]()
	require.True(t, ok)
	require.Negative(t, opts(seqfn.None[int](), seqfn.Some(math.MinInt)))

	_, ok = seqfn.DefaultComparer[[]int]()
	require.False(t, ok)

	_, ok = seqfn.DefaultComparer[any]()
	require.False(t, ok)
}

type priority interface {
	Compare(other priority) int
}

type level int

func (l level) Compare(other priority) int {
	return cmp.Compare(l, other.(level))
}

func TestDefaultComparer_InterfaceKey(t *testing.T) {
	prio, ok := seqfn.DefaultComparer[priority]()
	require.True(t, ok)
	require.Negative(t, prio(level(1), level(2)))
	require.Negative(t, prio(nil, level(-5)))
	require.Positive(t, prio(level(-5), nil))
	require.Zero(t, prio(nil, nil))
}

func TestOrderByFunc_InterfaceKeyDefaultOrdering(t *testing.T) {
	src := seqOf[priority](level(3), nil, level(1), level(2), nil)

	sorted := seqfn.OrderByFunc(src, func(p priority) priority { return p }, nil)

	require.Equal(t, []priority{nil, nil, level(1), level(2), level(3)}, collect(sorted))
}

type reverseFixture[T any] struct {
	source   []T
	expected []T
}

func (f reverseFixture[T]) run(t *testing.T) {
	t.Run("initial sequence", func(t *testing.T) {
		source := slices.Clone(f.source)
		requireSeqEqual(t, f.expected, collect(seqfn.Reverse(seqfn.Live(&source))))
	})

	t.Run("add after call", func(t *testing.T) {
		source := slices.Clone(f.source)
		var zero T
		expected := append([]T{zero}, f.expected...)

		actual := seqfn.Reverse(seqfn.Live(&source))
		source = append(source, zero)

		requireSeqEqual(t, expected, collect(actual))
	})

	t.Run("remove after call", func(t *testing.T) {
		source := slices.Clone(f.source)

		actual := seqfn.Reverse(seqfn.Live(&source))
		source = source[:len(source)-1]

		requireSeqEqual(t, f.expected[1:], collect(actual))
	})

	t.Run("double reversal", func(t *testing.T) {
		requireSeqEqual(t, f.source, collect(seqfn.Reverse(seqfn.Reverse(seqOf(f.source...)))))
	})

	t.Run("nil source", func(t *testing.T) {
		requirePanicsWith(t, seqfn.ErrInvalidArgument, func() {
			seqfn.Reverse[T](nil)
		})
	})
}

func TestReverse_Fixtures(t *testing.T) {
	t.Run("strings", reverseFixture[*string]{
		source:   []*string{ptr("Beg"), nil, ptr("Life"), ptr("I"), ptr("i"), ptr("I"), nil, ptr("To")},
		expected: []*string{ptr("To"), nil, ptr("I"), ptr("i"), ptr("I"), ptr("Life"), nil, ptr("Beg")},
	}.run)
	t.Run("ints", reverseFixture[int]{
		source:   []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		expected: []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	}.run)
	t.Run("runes", reverseFixture[rune]{
		source:   []rune("0123456789"),
		expected: []rune("9876543210"),
	}.run)
	t.Run("bools", reverseFixture[bool]{
		source:   []bool{true, false, false, true, false},
		expected: []bool{false, true, false, false, true},
	}.run)
}

func TestReverse_Empty(t *testing.T) {
	require.Empty(t, collect(seqfn.Reverse(seqOf[int]())))
}
