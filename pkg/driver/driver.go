// Package driver owns one sorting run at a time: the selected algorithm,
// its producer, the current step, and playback. All mutation funnels
// through the driver's mutex, so there is exactly one logical timeline of
// step production whether steps come from manual Advance calls or from
// the autoplay ticker.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"sortvis/internal/logging"
	"sortvis/pkg/algo"
	"sortvis/pkg/step"
)

// ErrInvalidArrayLength is returned when the configured array length is
// not positive. The previous array, if any, is retained.
var ErrInvalidArrayLength = errors.New("invalid array length")

// PlaybackMode selects how the driver advances between manual calls.
type PlaybackMode string

const (
	PlaybackStopped PlaybackMode = "stopped"
	PlaybackSlow    PlaybackMode = "slow"
	PlaybackFast    PlaybackMode = "fast"
)

// Config carries the array generation parameters and the two autoplay
// interval constants.
type Config struct {
	Length       int
	MinValue     int
	MaxValue     int
	SlowInterval time.Duration
	FastInterval time.Duration
}

// DefaultConfig returns the stock visualizer parameters.
func DefaultConfig() Config {
	return Config{
		Length:       32,
		MinValue:     5,
		MaxValue:     100,
		SlowInterval: 400 * time.Millisecond,
		FastInterval: 80 * time.Millisecond,
	}
}

// Hooks defines callbacks for run observability. Nil members are
// skipped. Hooks run with the driver lock held and must not call back
// into the Driver.
type Hooks struct {
	OnRunStart    func(algorithm string, size int)
	OnStep        func(algorithm string, s step.State)
	OnRunComplete func(algorithm string, steps int, elapsed time.Duration)
}

// Snapshot is the driver state a front-end renders from. Step.Result
// aliases the live array; Clone before retaining.
type Snapshot struct {
	Algorithm string       `json:"algorithm"`
	Step      step.State   `json:"step"`
	Started   bool         `json:"started"`
	Done      bool         `json:"done"`
	Steps     int          `json:"steps"`
	Mode      PlaybackMode `json:"mode"`
}

// Driver advances one producer at a time. Safe for concurrent use; the
// playback goroutine and external callers serialize on the same mutex.
type Driver struct {
	cfg    Config
	logger *slog.Logger
	hooks  Hooks
	rng    *rand.Rand

	mu        sync.Mutex
	arr       []int
	selected  algo.Descriptor
	producer  *algo.Producer
	current   step.State
	started   bool
	done      bool
	steps     int
	startedAt time.Time
	mode      PlaybackMode

	playGen    int
	playCancel context.CancelFunc
	playDone   chan struct{}
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets a structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithHooks registers run lifecycle callbacks.
func WithHooks(hooks Hooks) Option {
	return func(d *Driver) {
		d.hooks = hooks
	}
}

// WithRand injects the random source used for array generation.
// Producers themselves contain no randomness.
func WithRand(rng *rand.Rand) Option {
	return func(d *Driver) {
		d.rng = rng
	}
}

// WithAlgorithm sets the initially selected algorithm.
func WithAlgorithm(key string) Option {
	return func(d *Driver) {
		if desc, err := algo.Lookup(key); err == nil {
			d.selected = desc
		}
	}
}

// New creates a Driver with a freshly generated random array and a
// producer for the selected (or default) algorithm.
func New(cfg Config, opts ...Option) (*Driver, error) {
	if cfg.Length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidArrayLength, cfg.Length)
	}
	if cfg.MaxValue <= cfg.MinValue {
		def := DefaultConfig()
		cfg.MinValue, cfg.MaxValue = def.MinValue, def.MaxValue
	}
	if cfg.SlowInterval <= 0 {
		cfg.SlowInterval = DefaultConfig().SlowInterval
	}
	if cfg.FastInterval <= 0 {
		cfg.FastInterval = DefaultConfig().FastInterval
	}

	d := &Driver{
		cfg:      cfg,
		logger:   logging.NewNop(),
		selected: algo.Default(),
		mode:     PlaybackStopped,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	d.arr = d.randomArray()
	d.rebind()
	return d, nil
}

// Algorithms lists the available descriptors.
func (d *Driver) Algorithms() []algo.Descriptor {
	return algo.Registry()
}

// SelectAlgorithm switches the active algorithm. An unknown key leaves
// the driver untouched (autoplay included). On success the in-flight
// producer is discarded and a fresh one is bound over the array as it
// currently stands; only Reset draws a new array.
func (d *Driver) SelectAlgorithm(key string) error {
	desc, err := algo.Lookup(key)
	if err != nil {
		return err
	}
	d.stopPlayback()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.producer.Close()
	d.selected = desc
	d.rebind()
	d.logger.Debug("algorithm selected", "algorithm", desc.Key)
	return nil
}

// Reset generates a new random array and binds a fresh producer for the
// currently selected algorithm, stopping autoplay first.
func (d *Driver) Reset() {
	d.stopPlayback()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.producer.Close()
	d.arr = d.randomArray()
	d.rebind()
	d.logger.Debug("reset", "algorithm", d.selected.Key, "length", len(d.arr))
}

// Advance requests the next step from the producer. Once the run is done
// it is a guaranteed no-op that keeps returning the final snapshot.
func (d *Driver) Advance() (step.State, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.advanceLocked()
}

// Done reports whether the current run has completed.
func (d *Driver) Done() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

// Snapshot returns the current driver state.
func (d *Driver) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Snapshot{
		Algorithm: d.selected.Key,
		Step:      d.current,
		Started:   d.started,
		Done:      d.done,
		Steps:     d.steps,
		Mode:      d.mode,
	}
}

// SetPlaybackMode starts, retargets, or stops autoplay. Any previous
// playback is fully stopped (timer goroutine joined) before a new one
// starts. When the producer completes, playback reverts to stopped on
// its own.
func (d *Driver) SetPlaybackMode(mode PlaybackMode) error {
	var interval time.Duration
	switch mode {
	case PlaybackStopped:
		d.stopPlayback()
		return nil
	case PlaybackSlow:
		interval = d.cfg.SlowInterval
	case PlaybackFast:
		interval = d.cfg.FastInterval
	default:
		return fmt.Errorf("invalid playback mode %q", mode)
	}
	d.stopPlayback()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		// Nothing left to play; stay stopped.
		return nil
	}
	d.mode = mode
	d.playGen++
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	d.playCancel, d.playDone = cancel, done
	go d.playLoop(ctx, done, interval)
	d.logger.Debug("playback started", "mode", mode, "interval", interval)
	return nil
}

// Close stops playback and releases the producer.
func (d *Driver) Close() {
	d.stopPlayback()
	d.mu.Lock()
	defer d.mu.Unlock()
	d.producer.Close()
}

// rebind constructs a fresh producer over d.arr and resets run state.
// Caller holds d.mu (or is the constructor).
func (d *Driver) rebind() {
	d.producer = d.selected.New(d.arr)
	d.current = step.State{Result: d.arr}
	d.started = false
	d.done = false
	d.steps = 0
	if d.hooks.OnRunStart != nil {
		d.hooks.OnRunStart(d.selected.Key, len(d.arr))
	}
}

func (d *Driver) randomArray() []int {
	xs := make([]int, d.cfg.Length)
	span := d.cfg.MaxValue - d.cfg.MinValue + 1
	for i := range xs {
		xs[i] = d.cfg.MinValue + d.rng.IntN(span)
	}
	return xs
}

func (d *Driver) advanceLocked() (step.State, bool) {
	if d.done {
		return d.current, true
	}
	if !d.started {
		d.started = true
		d.startedAt = time.Now()
	}
	s, done := d.producer.Next()
	d.current = s
	if !done {
		d.steps++
	}
	if d.hooks.OnStep != nil {
		d.hooks.OnStep(d.selected.Key, s)
	}
	if done {
		d.done = true
		elapsed := time.Since(d.startedAt)
		if d.hooks.OnRunComplete != nil {
			d.hooks.OnRunComplete(d.selected.Key, d.steps, elapsed)
		}
		d.logger.Debug("run complete",
			"algorithm", d.selected.Key, "steps", d.steps, "elapsed", elapsed)
	}
	return s, done
}

// stopPlayback cancels the ticker goroutine and waits for it to exit.
// It must complete before the producer is discarded, so a stale tick can
// never touch a replaced array. Never called from the play loop itself.
func (d *Driver) stopPlayback() {
	d.mu.Lock()
	cancel, done := d.playCancel, d.playDone
	d.playCancel, d.playDone = nil, nil
	d.mode = PlaybackStopped
	d.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

func (d *Driver) playLoop(ctx context.Context, done chan struct{}, interval time.Duration) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.mu.Lock()
			if d.playDone != done {
				// Playback was stopped or replaced between the tick
				// firing and the lock being acquired.
				d.mu.Unlock()
				return
			}
			_, finished := d.advanceLocked()
			if finished {
				d.mode = PlaybackStopped
				d.playCancel()
				d.playCancel, d.playDone = nil, nil
				d.mu.Unlock()
				return
			}
			d.mu.Unlock()
		}
	}
}
