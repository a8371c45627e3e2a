package algo

import "sortvis/pkg/step"

// Bubble emits the steps of a bubble sort over xs: one step per adjacent
// comparison, a second step when the pair is swapped. From the second
// pass on, the suffix already bubbled into place is annotated as settled.
func Bubble(xs []int) Sequence {
	return func(yield func(step.State) bool) {
		n := len(xs)
		for pass := 0; pass < n-1; pass++ {
			swapped := false
			for i := 0; i < n-1-pass; i++ {
				colors := map[int]step.Role{
					i:     step.RoleCompareLeft,
					i + 1: step.RoleCompareRight,
				}
				markSettled(colors, n-pass, n)
				if !yield(step.Snap(xs, colors)) {
					return
				}
				if xs[i] > xs[i+1] {
					xs[i], xs[i+1] = xs[i+1], xs[i]
					swapped = true
					colors = map[int]step.Role{
						i:     step.RoleWritten,
						i + 1: step.RoleWritten,
					}
					markSettled(colors, n-pass, n)
					if !yield(step.Snap(xs, colors)) {
						return
					}
				}
			}
			if !swapped {
				return
			}
		}
	}
}

func markSettled(colors map[int]step.Role, lo, n int) {
	for k := lo; k < n; k++ {
		colors[k] = step.RoleSettled
	}
}
