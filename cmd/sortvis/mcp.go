package main

import (
	"github.com/spf13/cobra"

	"sortvis"
	mcpAdapter "sortvis/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes the sorting engine as MCP tools so agent hosts can drive runs step by step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		factory := func(algorithm string, length int) (*sortvis.Engine, error) {
			drvCfg := cfg.Driver()
			if length > 0 {
				drvCfg.Length = length
			}
			opts := []sortvis.Option{
				sortvis.WithConfig(drvCfg),
				sortvis.WithLogger(logger),
			}
			if algorithm == "" {
				algorithm = cfg.Algorithm
			}
			if algorithm != "" {
				opts = append(opts, sortvis.WithAlgorithm(algorithm))
			}
			return sortvis.New(opts...)
		}

		return mcpAdapter.NewServer(factory).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
