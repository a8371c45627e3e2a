package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortvis/pkg/algo"
)

func TestRegistry_ContainsAllAlgorithms(t *testing.T) {
	var keys []string
	for _, d := range algo.Registry() {
		keys = append(keys, d.Key)
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Description)
		assert.NotNil(t, d.New)
	}
	assert.Equal(t, []string{"bubble", "insertion", "merge", "merge-in-place", "quick"}, keys)
}

func TestLookup(t *testing.T) {
	t.Run("known key", func(t *testing.T) {
		d, err := algo.Lookup("quick")
		require.NoError(t, err)
		assert.Equal(t, "Quick Sort", d.Name)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := algo.Lookup("bogo")
		require.ErrorIs(t, err, algo.ErrUnknownAlgorithm)
		assert.Contains(t, err.Error(), `"bogo"`)
	})
}

func TestDefault_IsBubble(t *testing.T) {
	assert.Equal(t, "bubble", algo.Default().Key)
}
