package algo

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned when a registry key does not exist.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Descriptor pairs a registry key with a display name, a markdown
// description, and a producer constructor.
type Descriptor struct {
	Key         string                   `json:"key"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	New         func(xs []int) *Producer `json:"-"`
}

// The registry is fixed at compile time; there is no dynamic
// registration.
var registry = []Descriptor{
	{
		Key:  "bubble",
		Name: "Bubble Sort",
		Description: "Repeatedly sweeps the array comparing adjacent pairs and " +
			"swapping them when out of order. Each sweep bubbles the largest " +
			"remaining element to the end, which is then marked as settled.",
		New: producerOf(Bubble),
	},
	{
		Key:  "insertion",
		Name: "Insertion Sort",
		Description: "Grows a sorted prefix one element at a time, probing each " +
			"new element backwards through the prefix until it finds its slot.",
		New: producerOf(Insertion),
	},
	{
		Key:  "merge",
		Name: "Merge Sort",
		Description: "Splits the range in half recursively, then merges the " +
			"sorted halves through a scratch slice: elements are *selected* in " +
			"order and *written back* into place.",
		New: producerOf(Merge),
	},
	{
		Key:  "merge-in-place",
		Name: "In-Place Merge Sort",
		Description: "Merge sort without the scratch slice: out-of-order " +
			"elements from the right half are rotated down by adjacent swaps, " +
			"so every shift is visible as its own step.",
		New: producerOf(MergeInPlace),
	},
	{
		Key:  "quick",
		Name: "Quick Sort",
		Description: "Partitions around the last element (Lomuto scheme) and " +
			"recurses on both sides. The pivot is highlighted for the whole " +
			"partition pass.",
		New: producerOf(Quick),
	},
}

func producerOf(seq func([]int) Sequence) func([]int) *Producer {
	return func(xs []int) *Producer {
		return NewProducer(xs, seq(xs))
	}
}

// Registry returns the fixed set of algorithm descriptors in display
// order. The returned slice is a copy; the registry itself is read-only.
func Registry() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// Lookup resolves a registry key.
func Lookup(key string) (Descriptor, error) {
	for _, d := range registry {
		if d.Key == key {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
}

// Default returns the descriptor drivers fall back to when none is
// configured.
func Default() Descriptor {
	return registry[0]
}
