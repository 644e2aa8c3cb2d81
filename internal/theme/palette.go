package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the color roles every screen draws from. Styles are
// built from a Palette rather than package-level colors so the active
// theme can change at runtime.
type Palette struct {
	Name string

	// Primary colors
	Primary   lipgloss.Color // Brand color for titles and focus
	Secondary lipgloss.Color // Success and confirmation
	Accent    lipgloss.Color // Selection highlights
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Neutral colors
	Text       lipgloss.Color
	Subtle     lipgloss.Color // Help text, secondary labels
	Border     lipgloss.Color
	Background lipgloss.Color // Status bar and inline editor fill
}

// Dark returns the default dark palette.
func Dark() Palette {
	return Palette{
		Name:       "dark",
		Primary:    lipgloss.Color("#7D56F4"), // Purple
		Secondary:  lipgloss.Color("#43BF6D"), // Green
		Accent:     lipgloss.Color("#FF8B94"), // Pink
		Warning:    lipgloss.Color("#FFA500"), // Orange
		Error:      lipgloss.Color("#FF5F5F"), // Red
		Text:       lipgloss.Color("#FFFFFF"), // White
		Subtle:     lipgloss.Color("#626262"), // Gray
		Border:     lipgloss.Color("#7D56F4"), // Purple (same as primary)
		Background: lipgloss.Color("#1A1A1A"), // Dark gray
	}
}

// Light returns the light palette.
func Light() Palette {
	return Palette{
		Name:       "light",
		Primary:    lipgloss.Color("#5B3DBF"), // Darker purple for light terminals
		Secondary:  lipgloss.Color("#2E8B57"), // Green
		Accent:     lipgloss.Color("#C2185B"), // Pink
		Warning:    lipgloss.Color("#B8860B"), // Orange
		Error:      lipgloss.Color("#C62828"), // Red
		Text:       lipgloss.Color("#1A1A1A"), // Near black
		Subtle:     lipgloss.Color("#8A8A8A"), // Gray
		Border:     lipgloss.Color("#5B3DBF"), // Purple (same as primary)
		Background: lipgloss.Color("#EFEFEF"), // Light gray
	}
}
