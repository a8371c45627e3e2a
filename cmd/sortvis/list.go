package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sortvis/internal/presentation/tui"
	"sortvis/pkg/algo"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available sorting algorithms",
	RunE: func(cmd *cobra.Command, args []string) error {
		long, _ := cmd.Flags().GetBool("long")

		if !long {
			for _, d := range algo.Registry() {
				fmt.Printf("%-15s %s\n", d.Key, d.Name)
			}
			return nil
		}

		render := tui.NewMarkdownRenderer()
		for _, d := range algo.Registry() {
			md := fmt.Sprintf("# %s (`%s`)\n\n%s\n", d.Name, d.Key, d.Description)
			out, err := render(md)
			if err != nil {
				return fmt.Errorf("render failed: %w", err)
			}
			fmt.Print(out)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolP("long", "l", false, "Render full descriptions")
	rootCmd.AddCommand(listCmd)
}
