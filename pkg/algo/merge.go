package algo

import "sortvis/pkg/step"

// Merge emits the steps of a top-down merge sort over xs. Each recursive
// call announces its (low, mid, high) split before recursing; the merge
// phase yields one step per element selected into the scratch slice and
// one per element written back into place.
func Merge(xs []int) Sequence {
	return func(yield func(step.State) bool) {
		mergeSort(xs, 0, len(xs)-1, yield)
	}
}

func mergeSort(xs []int, lo, hi int, yield func(step.State) bool) bool {
	if lo >= hi {
		return true
	}
	mid := lo + (hi-lo)/2
	if !yieldSplit(xs, lo, mid, hi, yield) {
		return false
	}
	if !mergeSort(xs, lo, mid, yield) {
		return false
	}
	if !mergeSort(xs, mid+1, hi, yield) {
		return false
	}
	return merge(xs, lo, mid, hi, yield)
}

// yieldSplit announces the bounds of the range a call is entering.
// mid overwrites lo when the range has two elements; that collision is
// harmless for rendering.
func yieldSplit(xs []int, lo, mid, hi int, yield func(step.State) bool) bool {
	return yield(step.Snap(xs, map[int]step.Role{
		lo:  step.RoleBoundary,
		hi:  step.RoleBoundary,
		mid: step.RolePivot,
	}))
}

func merge(xs []int, lo, mid, hi int, yield func(step.State) bool) bool {
	scratch := make([]int, 0, hi-lo+1)
	i, j := lo, mid+1
	for i <= mid || j <= hi {
		var src int
		switch {
		case i > mid:
			src = j
			j++
		case j > hi:
			src = i
			i++
		case xs[i] <= xs[j]:
			src = i
			i++
		default:
			src = j
			j++
		}
		scratch = append(scratch, xs[src])
		if !yield(step.Snap(xs, map[int]step.Role{src: step.RoleSelected})) {
			return false
		}
	}
	for k, v := range scratch {
		xs[lo+k] = v
		if !yield(step.Snap(xs, map[int]step.Role{lo + k: step.RoleWrittenBack})) {
			return false
		}
	}
	return true
}
