package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortvis/pkg/algo"
	"sortvis/pkg/step"
)

func TestProducer_NextAfterDoneIsIdempotent(t *testing.T) {
	xs := []int{2, 1}
	p := algo.NewProducer(xs, algo.Bubble(xs))

	var final step.State
	for {
		s, done := p.Next()
		if done {
			final = s
			break
		}
	}
	require.True(t, p.Done())
	assert.Equal(t, []int{1, 2}, final.Result)

	for range 3 {
		s, done := p.Next()
		assert.True(t, done)
		assert.Equal(t, final, s)
	}
}

func TestProducer_EmptyArrayCompletesImmediately(t *testing.T) {
	xs := []int{}
	p := algo.NewProducer(xs, algo.Bubble(xs))

	s, done := p.Next()
	assert.True(t, done)
	assert.Empty(t, s.Result)
	assert.Empty(t, s.Colors)
}

func TestProducer_CloseMidRun(t *testing.T) {
	xs := []int{3, 1, 2}
	p := algo.NewProducer(xs, algo.Bubble(xs))

	_, done := p.Next()
	require.False(t, done)
	p.Close()

	assert.True(t, p.Done())
	s, done := p.Next()
	assert.True(t, done)
	assert.Equal(t, xs, s.Result, "final snapshot reflects the array as abandoned")
}

func TestProducer_FinalAliasesArray(t *testing.T) {
	xs := []int{1}
	p := algo.NewProducer(xs, algo.Bubble(xs))

	s, _ := p.Next()
	xs[0] = 7
	assert.Equal(t, 7, s.Result[0])
}
