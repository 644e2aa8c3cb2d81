package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RunnerConfig holds configuration for a one-shot command execution
type RunnerConfig struct {
	Title      string    // Command title (e.g., "Image Generation")
	Command    string    // Full command (e.g., "easel generate")
	Params     []Param   // Parameters to display in header
	TotalSteps int       // Total number of steps (for progress)
	StepNames  []string  // Names for each step
	Output     io.Writer // Output writer (default: os.Stdout)

	// TroubleshootFunc maps an error to troubleshooting tips shown in
	// the failure box. When nil, a generic tip list is used.
	TroubleshootFunc func(error) []string
}

// Runner orchestrates the UI for a one-shot command execution.
// It manages the header, step progress, and result flow and provides
// a callback for reporting progress.
type Runner struct {
	config    RunnerConfig
	header    *Header
	progress  *Progress
	output    io.Writer
	startTime time.Time
	width     int
}

// NewRunner creates a new runner for a one-shot command
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := GetTerminalWidth()

	header := NewHeader(config.Title, config.Command, config.Params)
	header.SetWidth(width)

	var progress *Progress
	if config.TotalSteps > 0 {
		progress = NewProgress("", config.TotalSteps)
		progress.SetWidth(width)
		if len(config.StepNames) > 0 {
			progress.SetStepNames(config.StepNames)
		}
	}

	return &Runner{
		config:   config,
		header:   header,
		progress: progress,
		output:   config.Output,
		width:    width,
	}
}

// Operation is the function signature for the actual work.
// The operation receives a StepCallback to report progress.
type Operation func(onStep StepCallback) error

// Run executes the operation with UI updates.
// It displays the header, tracks step progress, and shows the result.
func (r *Runner) Run(ctx context.Context, operation Operation) error {
	r.startTime = time.Now()

	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	stepCallback := r.createStepCallback()

	err := operation(stepCallback)
	duration := time.Since(r.startTime)

	if err != nil {
		r.printFailure(err, duration)
	} else {
		r.printSuccess(nil, duration)
	}

	return err
}

// RunWithResult executes the operation and displays its result details.
// Returns the details that were displayed.
func (r *Runner) RunWithResult(ctx context.Context, operation func(onStep StepCallback) ([]Param, error)) ([]Param, error) {
	r.startTime = time.Now()

	_, _ = fmt.Fprintln(r.output, r.header.Render())
	_, _ = fmt.Fprintln(r.output)

	stepCallback := r.createStepCallback()

	details, err := operation(stepCallback)
	duration := time.Since(r.startTime)

	if err != nil {
		r.printFailure(err, duration)
	} else {
		r.printSuccess(details, duration)
	}

	return details, err
}

// createStepCallback creates the step callback function
func (r *Runner) createStepCallback() StepCallback {
	return func(stepNumber int, name string, status StepStatus, message string) {
		if r.progress == nil {
			return
		}

		if name != "" && stepNumber > 0 && stepNumber <= len(r.progress.Steps) {
			r.progress.Steps[stepNumber-1].Name = name
		}

		r.progress.UpdateStep(stepNumber, status, message)

		if status == StepComplete || status == StepFailed || status == StepSkipped {
			step := r.progress.Steps[stepNumber-1]
			_, _ = fmt.Fprintln(r.output, r.progress.renderStepLine(step))
		} else if status == StepRunning {
			// Running steps are overwritten in place when they complete
			step := r.progress.Steps[stepNumber-1]
			_, _ = fmt.Fprint(r.output, r.progress.renderStepLine(step)+"\r")
		}
	}
}

// printSuccess prints a success result with details
func (r *Runner) printSuccess(details []Param, duration time.Duration) {
	_, _ = fmt.Fprintln(r.output)

	details = append(details, Param{Key: "Duration", Value: duration.Round(time.Millisecond).String()})

	result := NewSuccessResult(r.config.Title+" complete", details)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())
}

// printFailure prints a failure result with troubleshooting
func (r *Runner) printFailure(err error, duration time.Duration) {
	_, _ = fmt.Fprintln(r.output)

	var troubleshooting []string
	if r.config.TroubleshootFunc != nil {
		troubleshooting = r.config.TroubleshootFunc(err)
	}
	if len(troubleshooting) == 0 {
		troubleshooting = []string{
			"Check network connectivity to the inference endpoint",
			"Run with EASEL_LOG_LEVEL=debug for request logs",
		}
	}

	result := NewFailureResult(r.config.Title+" failed", err, troubleshooting)
	result.SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, result.Render())
}

// --- Simple helper functions for commands that don't need a full Runner ---

// PrintCommandHeader prints a styled command header
func PrintCommandHeader(title, command string, params []Param) {
	width := GetTerminalWidth()
	header := NewHeader(title, command, params)
	header.SetWidth(width)
	fmt.Println(header.Render())
	fmt.Println()
}

// PrintSuccess prints a styled success result
func PrintSuccess(title string, details []Param) {
	width := GetTerminalWidth()
	result := NewSuccessResult(title, details)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintFailure prints a styled failure result
func PrintFailure(title string, err error, troubleshooting []string) {
	width := GetTerminalWidth()
	result := NewFailureResult(title, err, troubleshooting)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintWarning prints a styled warning result
func PrintWarning(title string, details []Param) {
	width := GetTerminalWidth()
	result := NewWarningResult(title, details)
	result.SetWidth(width)
	fmt.Println()
	fmt.Println(result.Render())
}

// PrintPleaseWait prints a styled wait message for long-running operations.
// The message should describe what's happening, e.g., "Generating image".
// The duration hint sets expectations, e.g., "up to 60 seconds on a cold model".
func PrintPleaseWait(message string, durationHint string) {
	style := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true).
		PaddingLeft(2)

	hintStyle := lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)

	line := style.Render("⏳ " + message)
	if durationHint != "" {
		line += " " + hintStyle.Render("("+durationHint+")")
	}
	line += style.Render("...")

	fmt.Println()
	fmt.Println(line)
	fmt.Println()
}
