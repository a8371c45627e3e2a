// Package algo implements the instrumented sorting algorithms. Each
// algorithm sorts an int slice in place while lazily emitting a
// step.State at every meaningful point: before a comparison, after a
// write, at the boundaries of a recursive split.
//
// Algorithms are expressed as iter.Seq producers. Delegation between
// producers (merge sort recursing, the merge routine itself) is simply a
// matter of threading the same yield function through: the consumer sees
// one flattened, order-preserving stream with nothing buffered. Helpers
// return false as soon as the consumer stops, unwinding the whole
// delegation stack.
package algo

import (
	"iter"

	"sortvis/pkg/step"
)

// Sequence is the lazy stream of intermediate steps for one sort run.
type Sequence = iter.Seq[step.State]

// Producer is the resumable pull side of one sort run, bound to a single
// array. It is non-restartable: once exhausted it keeps reporting the
// final sorted snapshot.
type Producer struct {
	arr   []int
	next  func() (step.State, bool)
	stop  func()
	final step.State
	done  bool
}

// NewProducer binds seq to xs. The sequence must mutate xs in place; the
// final snapshot is derived from xs after exhaustion.
func NewProducer(xs []int, seq Sequence) *Producer {
	next, stop := iter.Pull(seq)
	return &Producer{arr: xs, next: next, stop: stop}
}

// Next advances the run by exactly one step. It returns the produced
// snapshot and whether the run has completed. The completing call returns
// the fully sorted array with no annotations; every call after that is a
// no-op returning the same final snapshot and done again.
func (p *Producer) Next() (step.State, bool) {
	if p.done {
		return p.final, true
	}
	s, ok := p.next()
	if !ok {
		p.finish()
		return p.final, true
	}
	return s, false
}

// Done reports whether the run has completed.
func (p *Producer) Done() bool {
	return p.done
}

// Close releases the underlying iterator without draining it. Safe to
// call at any time, including after completion.
func (p *Producer) Close() {
	if !p.done {
		p.finish()
	}
}

func (p *Producer) finish() {
	p.stop()
	p.done = true
	p.final = step.State{Result: p.arr}
}
