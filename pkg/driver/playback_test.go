package driver_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortvis/pkg/driver"
)

func TestSetPlaybackMode_InvalidMode(t *testing.T) {
	d := newDriver(t)
	err := d.SetPlaybackMode(driver.PlaybackMode("warp"))
	require.Error(t, err)
	assert.Equal(t, driver.PlaybackStopped, d.Snapshot().Mode)
}

func TestPlayback_RunsToCompletionAndStops(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.SetPlaybackMode(driver.PlaybackFast))

	require.Eventually(t, func() bool {
		snap := d.Snapshot()
		return snap.Done && snap.Mode == driver.PlaybackStopped
	}, 5*time.Second, 5*time.Millisecond, "autoplay must finish the run and revert to stopped")

	steps := d.Snapshot().Steps
	assert.Positive(t, steps)

	// A completed run must not keep ticking.
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, steps, d.Snapshot().Steps)
}

func TestPlayback_StopHaltsAdvancing(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.SetPlaybackMode(driver.PlaybackSlow))
	assert.Equal(t, driver.PlaybackSlow, d.Snapshot().Mode)

	require.NoError(t, d.SetPlaybackMode(driver.PlaybackStopped))
	steps := d.Snapshot().Steps

	time.Sleep(50 * time.Millisecond)
	snap := d.Snapshot()
	assert.Equal(t, steps, snap.Steps, "no steps may land after stop returns")
	assert.Equal(t, driver.PlaybackStopped, snap.Mode)
}

func TestPlayback_RetargetReplacesTimer(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.SetPlaybackMode(driver.PlaybackSlow))
	require.NoError(t, d.SetPlaybackMode(driver.PlaybackFast))
	assert.Equal(t, driver.PlaybackFast, d.Snapshot().Mode)

	require.NoError(t, d.SetPlaybackMode(driver.PlaybackStopped))
}

func TestPlayback_ResetDuringAutoplay(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.SetPlaybackMode(driver.PlaybackFast))

	require.Eventually(t, func() bool {
		return d.Snapshot().Steps > 0
	}, 5*time.Second, time.Millisecond)

	d.Reset()
	snap := d.Snapshot()
	assert.Equal(t, driver.PlaybackStopped, snap.Mode)
	assert.Zero(t, snap.Steps)
	assert.False(t, snap.Started)

	// The joined timer goroutine must not advance the fresh run.
	time.Sleep(25 * time.Millisecond)
	assert.Zero(t, d.Snapshot().Steps)
}

func TestPlayback_SelectAlgorithmStopsAutoplay(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.SetPlaybackMode(driver.PlaybackSlow))

	require.NoError(t, d.SelectAlgorithm("insertion"))
	snap := d.Snapshot()
	assert.Equal(t, driver.PlaybackStopped, snap.Mode)
	assert.Equal(t, "insertion", snap.Algorithm)
}

func TestPlayback_UnknownAlgorithmKeepsPlaying(t *testing.T) {
	d := newDriver(t)
	require.NoError(t, d.SetPlaybackMode(driver.PlaybackFast))

	require.Error(t, d.SelectAlgorithm("bogo"))
	mode := d.Snapshot().Mode

	// Unless the run finished in the meantime, autoplay is still live.
	if !d.Snapshot().Done {
		assert.Equal(t, driver.PlaybackFast, mode)
	}
}

func TestPlayback_OnDoneRunStaysStopped(t *testing.T) {
	d := newDriver(t)
	runToCompletion(t, d)

	require.NoError(t, d.SetPlaybackMode(driver.PlaybackSlow))
	assert.Equal(t, driver.PlaybackStopped, d.Snapshot().Mode)
}
