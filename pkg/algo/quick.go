package algo

import "sortvis/pkg/step"

// Quick emits the steps of a quicksort using Lomuto partitioning on the
// last element. The pivot choice is announced first; partitioning then
// mirrors bubble sort's granularity, one step per comparison against the
// pivot and one per swap.
func Quick(xs []int) Sequence {
	return func(yield func(step.State) bool) {
		quickSort(xs, 0, len(xs)-1, yield)
	}
}

func quickSort(xs []int, lo, hi int, yield func(step.State) bool) bool {
	if lo >= hi {
		return true
	}
	p, ok := partition(xs, lo, hi, yield)
	if !ok {
		return false
	}
	if !quickSort(xs, lo, p-1, yield) {
		return false
	}
	return quickSort(xs, p+1, hi, yield)
}

func partition(xs []int, lo, hi int, yield func(step.State) bool) (int, bool) {
	pivot := xs[hi]
	if !yield(step.Snap(xs, map[int]step.Role{hi: step.RolePivot})) {
		return 0, false
	}
	i := lo
	for j := lo; j < hi; j++ {
		if !yield(step.Snap(xs, map[int]step.Role{
			j:  step.RoleCompareLeft,
			hi: step.RolePivot,
		})) {
			return 0, false
		}
		if xs[j] <= pivot {
			if i != j {
				xs[i], xs[j] = xs[j], xs[i]
				if !yield(step.Snap(xs, map[int]step.Role{
					i: step.RoleWritten,
					j: step.RoleWritten,
				})) {
					return 0, false
				}
			}
			i++
		}
	}
	if i != hi {
		xs[i], xs[hi] = xs[hi], xs[i]
		if !yield(step.Snap(xs, map[int]step.Role{
			i:  step.RoleWritten,
			hi: step.RoleWritten,
		})) {
			return 0, false
		}
	}
	return i, true
}
