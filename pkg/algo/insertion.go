package algo

import "sortvis/pkg/step"

// Insertion emits the steps of an insertion sort over xs. Each new
// element probes backwards through the sorted prefix, one step per
// comparison and one per shift, until it settles.
func Insertion(xs []int) Sequence {
	return func(yield func(step.State) bool) {
		for i := 1; i < len(xs); i++ {
			for j := i; j > 0; j-- {
				if !yield(step.Snap(xs, map[int]step.Role{
					j - 1: step.RoleCompareLeft,
					j:     step.RoleCompareRight,
				})) {
					return
				}
				if xs[j-1] <= xs[j] {
					break
				}
				xs[j-1], xs[j] = xs[j], xs[j-1]
				if !yield(step.Snap(xs, map[int]step.Role{
					j - 1: step.RoleWritten,
					j:     step.RoleWritten,
				})) {
					return
				}
			}
		}
	}
}
