package algo

import "sortvis/pkg/step"

// MergeInPlace emits the steps of a merge sort whose merge phase works by
// index rotation instead of a scratch slice. Split announcements match
// Merge; the merge itself yields one step per comparison and one per
// adjacent swap while rotating an out-of-order element into position.
func MergeInPlace(xs []int) Sequence {
	return func(yield func(step.State) bool) {
		mergeSortInPlace(xs, 0, len(xs)-1, yield)
	}
}

func mergeSortInPlace(xs []int, lo, hi int, yield func(step.State) bool) bool {
	if lo >= hi {
		return true
	}
	mid := lo + (hi-lo)/2
	if !yieldSplit(xs, lo, mid, hi, yield) {
		return false
	}
	if !mergeSortInPlace(xs, lo, mid, yield) {
		return false
	}
	if !mergeSortInPlace(xs, mid+1, hi, yield) {
		return false
	}
	return rotateMerge(xs, lo, mid, hi, yield)
}

// rotateMerge merges xs[lo..mid] and xs[mid+1..hi] in place. When the
// head of the right run is smaller it is rotated down to position i one
// adjacent swap at a time, keeping the per-shift yield granularity.
func rotateMerge(xs []int, lo, mid, hi int, yield func(step.State) bool) bool {
	i, j := lo, mid+1
	for i <= mid && j <= hi {
		if !yield(step.Snap(xs, map[int]step.Role{
			i: step.RoleCompareLeft,
			j: step.RoleCompareRight,
		})) {
			return false
		}
		if xs[i] <= xs[j] {
			i++
			continue
		}
		for k := j; k > i; k-- {
			xs[k-1], xs[k] = xs[k], xs[k-1]
			if !yield(step.Snap(xs, map[int]step.Role{
				k - 1: step.RoleWritten,
				k:     step.RoleWritten,
			})) {
				return false
			}
		}
		i++
		mid++
		j++
	}
	return true
}
