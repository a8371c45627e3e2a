// Package step defines the observable unit of progress emitted by the
// sorting producers: a snapshot of the array plus sparse per-index role
// annotations. It is purely a shared data shape; every algorithm emits it
// and every front-end consumes it.
package step

import "maps"

// Role tags an array index with its part in the current step. Indices
// absent from a snapshot's Colors render with a neutral default.
type Role string

const (
	// RoleCompareLeft and RoleCompareRight mark the two elements about to
	// be compared.
	RoleCompareLeft  Role = "compare-left"
	RoleCompareRight Role = "compare-right"

	// RolePivot marks a partition pivot or the midpoint of a
	// divide-and-conquer split.
	RolePivot Role = "pivot"

	// RoleBoundary marks the low/high bounds of the range a recursive call
	// is entering.
	RoleBoundary Role = "boundary"

	// RoleWritten marks elements that just changed position in place.
	RoleWritten Role = "written"

	// RoleSelected marks an element chosen into the scratch sequence
	// during a merge.
	RoleSelected Role = "selected"

	// RoleWrittenBack marks an element copied back from scratch into the
	// array.
	RoleWrittenBack Role = "written-back"

	// RoleSettled marks elements already locked into their final position
	// for the remainder of the run.
	RoleSettled Role = "settled"
)

// State is one observable snapshot of a sort in progress.
//
// Result aliases the live array owned by the producer: sorting happens in
// place, so a State is only guaranteed to describe the array at the moment
// it was produced. Consumers that retain snapshots must Clone them first.
type State struct {
	Result []int        `json:"result"`
	Colors map[int]Role `json:"colors,omitempty"`
}

// Snap builds a State over the live array xs with the given annotations.
// The colors map is copied; the array is not.
func Snap(xs []int, colors map[int]Role) State {
	var c map[int]Role
	if len(colors) > 0 {
		c = maps.Clone(colors)
	}
	return State{Result: xs, Colors: c}
}

// Clone returns a State detached from the live array, safe to retain
// across further steps.
func (s State) Clone() State {
	out := State{Result: make([]int, len(s.Result))}
	copy(out.Result, s.Result)
	if len(s.Colors) > 0 {
		out.Colors = maps.Clone(s.Colors)
	}
	return out
}

// Role reports the annotation for index i, or the empty Role if the index
// is unannotated in this step.
func (s State) Role(i int) Role {
	return s.Colors[i]
}
