package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"sortvis"
	"sortvis/internal/presentation/tui"
	"sortvis/pkg/driver"
	"sortvis/pkg/step"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the visualizer interactively in the terminal",
	Long: `Starts an interactive session: Enter advances one step, "s" and "f"
start slow/fast autoplay, "x" stops it, "r" resets with a new random
array, "a <key>" switches algorithm, "q" quits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if key, _ := cmd.Flags().GetString("algorithm"); key != "" {
			cfg.Algorithm = key
		}
		if n, _ := cmd.Flags().GetInt("length"); n != 0 {
			cfg.Array.Length = n
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		renderer := tui.NewBarRenderer()
		hooks := driver.Hooks{
			OnStep: func(algorithm string, s step.State) {
				fmt.Println()
				fmt.Print(renderer.Render(s))
			},
			OnRunComplete: func(algorithm string, steps int, elapsed time.Duration) {
				fmt.Printf("sorted by %s in %d steps (%s)\n", algorithm, steps, elapsed.Round(time.Millisecond))
			},
		}

		opts := []sortvis.Option{
			sortvis.WithConfig(cfg.Driver()),
			sortvis.WithLogger(logger),
			sortvis.WithHooks(hooks),
		}
		if cfg.Algorithm != "" {
			opts = append(opts, sortvis.WithAlgorithm(cfg.Algorithm))
		}

		engine, err := sortvis.New(opts...)
		if err != nil {
			return err
		}
		defer engine.Close()

		tui.PrintBanner()
		runner := &sortvis.Runner{
			Input:    os.Stdin,
			Output:   os.Stdout,
			Renderer: renderer.Render,
		}
		return runner.Run(engine)
	},
}

func init() {
	runCmd.Flags().StringP("algorithm", "a", "", "Algorithm key to start with")
	runCmd.Flags().IntP("length", "n", 0, "Array length (overrides config)")
	rootCmd.AddCommand(runCmd)
}
