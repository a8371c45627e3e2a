package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sortvis"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sortvis",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sortvis version %s\n", strings.TrimSpace(sortvis.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
