package sortvis

import (
	"log/slog"

	"sortvis/internal/logging"
	"sortvis/pkg/algo"
	"sortvis/pkg/driver"
	"sortvis/pkg/step"
)

// Engine is the high-level entry point for the sortvis library. It wraps
// the driver and provides a simplified API for consumers.
type Engine struct {
	drv    *driver.Driver
	logger *slog.Logger

	cfg       driver.Config
	algorithm string
	hooks     driver.Hooks
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithConfig overrides the driver configuration (array length, value
// range, playback intervals).
func WithConfig(cfg driver.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithAlgorithm sets the initially selected algorithm key.
func WithAlgorithm(key string) Option {
	return func(e *Engine) {
		e.algorithm = key
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers run lifecycle hooks (observability).
func WithHooks(hooks driver.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// New initializes a new Engine with a freshly generated random array.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		cfg:    driver.DefaultConfig(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(eng)
	}

	drvOpts := []driver.Option{
		driver.WithLogger(eng.logger),
		driver.WithHooks(eng.hooks),
	}
	if eng.algorithm != "" {
		if _, err := algo.Lookup(eng.algorithm); err != nil {
			return nil, err
		}
		drvOpts = append(drvOpts, driver.WithAlgorithm(eng.algorithm))
	}

	drv, err := driver.New(eng.cfg, drvOpts...)
	if err != nil {
		return nil, err
	}
	eng.drv = drv
	return eng, nil
}

// Algorithms lists the available algorithm descriptors.
func (e *Engine) Algorithms() []algo.Descriptor {
	return e.drv.Algorithms()
}

// SelectAlgorithm switches the active algorithm, discarding any
// in-flight producer and stopping autoplay. Unknown keys leave the
// engine untouched.
func (e *Engine) SelectAlgorithm(key string) error {
	return e.drv.SelectAlgorithm(key)
}

// Reset generates a new random array and a fresh producer for the
// selected algorithm.
func (e *Engine) Reset() {
	e.drv.Reset()
}

// Advance produces the next step. After completion it is an idempotent
// no-op returning the final sorted snapshot.
func (e *Engine) Advance() (step.State, bool) {
	return e.drv.Advance()
}

// SetPlaybackMode starts or stops timed advancement.
func (e *Engine) SetPlaybackMode(mode driver.PlaybackMode) error {
	return e.drv.SetPlaybackMode(mode)
}

// Done reports whether the current run has completed.
func (e *Engine) Done() bool {
	return e.drv.Done()
}

// Snapshot returns the current driver state for rendering.
func (e *Engine) Snapshot() driver.Snapshot {
	return e.drv.Snapshot()
}

// Close stops playback and releases the current producer.
func (e *Engine) Close() {
	e.drv.Close()
}
