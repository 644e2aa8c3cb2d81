// Easel is a terminal studio for hosted text-to-image generation.
//
// It sends prompts and generation settings to a hosted inference endpoint
// (the Hugging Face Inference API by default), keeps a rolling gallery of
// the twelve most recent results on disk, and presents everything through
// an interactive terminal studio with dark and light themes. One-shot
// commands cover generation, gallery management, and configuration for
// scripted use.
//
// Usage:
//
//	easel [command] [flags]
//
// Running without arguments launches the interactive studio.
// See 'easel --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/easelart/easel/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "easel",
	Short: "Terminal studio for text-to-image generation",
	Long: `A terminal front-end for hosted text-to-image generation.

Easel sends prompts to a hosted Stable Diffusion XL endpoint, keeps a
rolling gallery of the twelve most recent results on disk, and offers
both an interactive studio and one-shot commands for scripting.

If no command is specified, the interactive studio will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the studio when no subcommand provided
		return runStudio(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("easel %s (commit: %s)\n", version.Version, version.Commit)
	},
}
