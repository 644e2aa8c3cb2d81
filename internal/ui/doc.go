// Package ui provides terminal UI components for easel's one-shot commands.
//
// This package uses Bubbles and Lipgloss to render polished terminal output
// for non-interactive commands such as "easel generate" and the gallery
// subcommands. Unlike the interactive studio TUI, these components follow a
// "run once and exit" pattern - they render output compellingly but don't
// require user interaction.
//
// # Architecture
//
// The UI package provides four main component types:
//
//   - Header: Command banner showing operation name and parameters
//   - Progress: Progress bar with step list showing real-time status
//   - Result: Success/failure/warning boxes with styled information
//   - Confirm: Warning box with a y/N prompt for destructive operations
//
// These components are orchestrated by the Runner, which manages the
// header → progress → result flow for command execution.
//
// # Usage Pattern
//
// One-shot commands use this package by:
//
//  1. Creating a Runner with command metadata
//  2. Calling RunWithResult() with their operation function
//  3. The operation reports progress via a step callback
//  4. Runner handles all UI rendering automatically
//
// Example:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:      "Image Generation",
//	    Command:    "easel generate",
//	    Params:     []ui.Param{{Key: "Aspect", Value: "16:9"}},
//	    TotalSteps: 3,
//	    StepNames:  []string{"Build request", "Generate image", "Save to gallery"},
//	})
//
//	details, err := runner.RunWithResult(ctx, func(onStep ui.StepCallback) ([]ui.Param, error) {
//	    onStep(1, "", ui.StepRunning, "")
//	    // ... do work ...
//	    onStep(1, "", ui.StepComplete, "")
//	    return []ui.Param{{Key: "File", Value: path}}, nil
//	})
//
// # Ordered Parameters
//
// Header parameters and result details are ordered slices of Param rather
// than maps, so output lines always render in the order the command built
// them. This keeps generate output stable across runs.
//
// # Logging Integration
//
// This package expects logging to be controlled via the EASEL_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly. Set EASEL_LOG_LEVEL to
// "debug", "info", "warn", or "error" to enable logging output.
package ui
