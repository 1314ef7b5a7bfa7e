// Package main provides the ai-commit CLI application.
package main

import (
	"github.com/ai-commit-toolkit/ai-commit/pkg/version"
	"github.com/spf13/cobra"
)

// globalFlags holds flags shared by all commands
type globalFlags struct {
	config   string
	logLevel string
}

var globalOpts globalFlags

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ai-commit",
	Short: "AI-powered commit message generator",
	Long: `ai-commit generates commit messages for your staged changes.

It extracts the staged diff, decomposes oversized diffs into
file-aligned chunks, and asks an OpenAI-compatible API for a
conventional commit message.`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalOpts.config, "config", "c", "",
		"Path to configuration file (default: search .ai-commit.yaml upward)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (overrides config)")
}
