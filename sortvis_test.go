package sortvis_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortvis"
	"sortvis/pkg/algo"
	"sortvis/pkg/driver"
)

func testEngine(t *testing.T, opts ...sortvis.Option) *sortvis.Engine {
	t.Helper()
	cfg := driver.DefaultConfig()
	cfg.Length = 6
	opts = append([]sortvis.Option{sortvis.WithConfig(cfg)}, opts...)
	eng, err := sortvis.New(opts...)
	require.NoError(t, err)
	t.Cleanup(eng.Close)
	return eng
}

func TestNew_Defaults(t *testing.T) {
	eng := testEngine(t)
	snap := eng.Snapshot()

	assert.Equal(t, "bubble", snap.Algorithm)
	assert.Len(t, snap.Step.Result, 6)
	assert.False(t, snap.Done)
}

func TestNew_RejectsUnknownAlgorithm(t *testing.T) {
	_, err := sortvis.New(sortvis.WithAlgorithm("bogo"))
	require.ErrorIs(t, err, algo.ErrUnknownAlgorithm)
}

func TestNew_RejectsInvalidLength(t *testing.T) {
	cfg := driver.DefaultConfig()
	cfg.Length = -1
	_, err := sortvis.New(sortvis.WithConfig(cfg))
	require.ErrorIs(t, err, driver.ErrInvalidArrayLength)
}

func TestEngine_AdvanceSortsArray(t *testing.T) {
	eng := testEngine(t, sortvis.WithAlgorithm("insertion"))
	initial := slices.Clone(eng.Snapshot().Step.Result)

	for i := 0; i < 10_000 && !eng.Done(); i++ {
		eng.Advance()
	}
	require.True(t, eng.Done())

	want := slices.Clone(initial)
	slices.Sort(want)
	assert.Equal(t, want, eng.Snapshot().Step.Result)
}

func TestEngine_Algorithms(t *testing.T) {
	eng := testEngine(t)
	assert.Len(t, eng.Algorithms(), 5)
}
