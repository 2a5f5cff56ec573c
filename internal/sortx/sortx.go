// Package sortx holds the in-place exchange sort used by the ordering
// operators.
package sortx

// BubbleSortFunc sorts s in place in ascending order as determined by
// compare.
//
// Adjacent elements are swapped only when compare reports a strict
// "greater than", so elements that compare equal never change their
// relative order: the sort is stable. A pass that performs no swap ends
// the sort early.
//
// BubbleSortFunc performs O(n²) comparisons in the worst case.
func BubbleSortFunc[T any](s []T, compare func(a, b T) int) {
	for i := 0; i < len(s); i++ {
		swapped := false
		for j := 1; j < len(s)-i; j++ {
			if compare(s[j-1], s[j]) > 0 {
				s[j-1], s[j] = s[j], s[j-1]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
