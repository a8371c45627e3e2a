package observability_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortvis/pkg/driver"
	"sortvis/pkg/observability"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name, algorithm string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "algorithm" && l.GetValue() == algorithm {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func histogramCount(t *testing.T, reg *prometheus.Registry, name string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name && mf.GetType() == dto.MetricType_HISTOGRAM {
			var total uint64
			for _, m := range mf.GetMetric() {
				total += m.GetHistogram().GetSampleCount()
			}
			return total
		}
	}
	return 0
}

func TestMetrics_CountRunLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	cfg := driver.DefaultConfig()
	cfg.Length = 5
	d, err := driver.New(cfg, driver.WithHooks(metrics.Hooks()))
	require.NoError(t, err)
	defer d.Close()

	for !d.Done() {
		d.Advance()
	}
	steps := d.Snapshot().Steps

	assert.Equal(t, float64(1),
		counterValue(t, reg, "sortvis_runs_started_total", "bubble"))
	assert.Equal(t, float64(1),
		counterValue(t, reg, "sortvis_runs_completed_total", "bubble"))
	// The completing advance delivers the final snapshot through OnStep
	// too, so the counter runs one ahead of the driver's step count.
	assert.Equal(t, float64(steps+1),
		counterValue(t, reg, "sortvis_steps_total", "bubble"))
	assert.Equal(t, uint64(1),
		histogramCount(t, reg, "sortvis_run_duration_seconds"))
}

func TestMetrics_ResetStartsNewRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	cfg := driver.DefaultConfig()
	cfg.Length = 4
	d, err := driver.New(cfg, driver.WithHooks(metrics.Hooks()))
	require.NoError(t, err)
	defer d.Close()

	d.Reset()
	assert.Equal(t, float64(2),
		counterValue(t, reg, "sortvis_runs_started_total", "bubble"))
	assert.Equal(t, float64(0),
		counterValue(t, reg, "sortvis_runs_completed_total", "bubble"))
}
