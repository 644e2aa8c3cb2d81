package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one labelled value in a command header. Params are a slice, not
// a map, so the display order is the caller's order.
type Param struct {
	Key   string
	Value string
}

// Header represents a command banner with title, command, and parameters.
// Used at the start of one-shot commands to provide context.
type Header struct {
	Title   string  // e.g., "IMAGE GENERATION"
	Command string  // e.g., "easel generate"
	Params  []Param // e.g., {"Aspect", "16:9"}, {"Style", "anime"}
	Width   int     // Terminal width for responsive rendering
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params []Param) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	// Title line - uppercase and bold
	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))

	// Command line - muted
	commandLine := HeaderCommandStyle.Render(h.Command)

	// Build top section
	topSection := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	// Divider line
	dividerWidth := width - 6 // Account for border and padding
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat("─", dividerWidth))

	// Build params section
	var paramLines []string
	for _, p := range h.Params {
		keyStyled := HeaderParamKeyStyle.Render(p.Key + ":")
		valueStyled := HeaderParamValueStyle.Render(p.Value)
		paramLines = append(paramLines, keyStyled+" "+valueStyled)
	}
	paramsSection := strings.Join(paramLines, "\n")

	// Combine all sections vertically
	var content string
	if len(h.Params) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, topSection, divider, paramsSection)
	} else {
		content = topSection
	}

	// Apply rounded border with primary color
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // Account for border characters
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
