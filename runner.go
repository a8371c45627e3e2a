package sortvis

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sortvis/pkg/driver"
	"sortvis/pkg/step"
)

// Runner handles the interactive loop of the engine using provided IO.
// This allows for easy testing and integration with different frontends.
//
// Step output is the engine owner's concern: register an OnStep hook to
// render frames, so manual stepping and autoplay ticks draw the same
// way. The Runner itself only renders full snapshots on state-changing
// commands (reset, algorithm switch, stop).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer FrameRenderer
}

// FrameRenderer transforms a step snapshot into the text to display.
// This allows for TUI rendering (colored bars) without coupling the core
// package to a terminal library.
type FrameRenderer func(step.State) string

// Run executes the interactive loop until the user quits or input ends.
// Commands: Enter steps once, "s"/"f" start slow/fast autoplay, "x"
// stops it, "r" resets, "a <key>" switches algorithm, "q" quits.
func (r *Runner) Run(engine *Engine) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	reader := bufio.NewReader(r.Input)

	r.render(engine.Snapshot())

	for {
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}
		text, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(text), " ")
		switch cmd {
		case "":
			engine.Advance()
		case "s":
			if err := engine.SetPlaybackMode(driver.PlaybackSlow); err != nil {
				fmt.Fprintln(r.Output, err)
			}
		case "f":
			if err := engine.SetPlaybackMode(driver.PlaybackFast); err != nil {
				fmt.Fprintln(r.Output, err)
			}
		case "x":
			engine.SetPlaybackMode(driver.PlaybackStopped)
			r.render(engine.Snapshot())
		case "r":
			engine.Reset()
			r.render(engine.Snapshot())
		case "a":
			if err := engine.SelectAlgorithm(arg); err != nil {
				fmt.Fprintln(r.Output, err)
				continue
			}
			r.render(engine.Snapshot())
		case "q", "quit", "exit":
			fmt.Fprintln(r.Output, "Bye!")
			return nil
		default:
			fmt.Fprintf(r.Output, "unknown command %q\n", cmd)
		}
	}
}

func (r *Runner) render(snap driver.Snapshot) {
	if r.Renderer != nil {
		fmt.Fprint(r.Output, r.Renderer(snap.Step))
	} else {
		fmt.Fprintln(r.Output, snap.Step.Result)
	}
	if !r.Headless {
		fmt.Fprintf(r.Output, "[%s] steps=%d done=%v\n",
			snap.Algorithm, snap.Steps, snap.Done)
	}
}
