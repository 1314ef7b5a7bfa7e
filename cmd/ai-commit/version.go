// Package main provides the ai-commit CLI application.
package main

import (
	"fmt"

	"github.com/ai-commit-toolkit/ai-commit/pkg/version"
	"github.com/spf13/cobra"
)

// versionCmd shows detailed build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		fmt.Printf("ai-commit version: %s\n", info["version"])
		fmt.Printf("  build date: %s\n", info["buildDate"])
		fmt.Printf("  git commit: %s\n", info["gitCommit"])
		fmt.Printf("  go version: %s\n", info["goVersion"])
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
