package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/easelart/easel/internal/theme"
	"github.com/easelart/easel/internal/version"
)

// Application branding constants
const (
	AppName       = "EASEL STUDIO"
	GitHubURL     = "github.com/easelart/easel"
	GitHubFullURL = "https://github.com/easelart/easel"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 72  // Minimum supported terminal width
	MaxContentWidth   = 120 // Maximum content width before capping
	DefaultBoxPadding = 2   // Default padding inside boxes
)

// Styles bundles every style the screens use, derived from the active
// theme palette. Screens hold a Styles value and receive a fresh one
// when the theme toggles, so colors are never read from package state.
type Styles struct {
	Palette theme.Palette

	// Title style - large, bold
	Title lipgloss.Style

	// Subtitle style
	Subtitle lipgloss.Style

	// Menu item style (unselected)
	MenuItem lipgloss.Style

	// Menu item style (selected)
	SelectedMenuItem lipgloss.Style

	// Help text style
	Help lipgloss.Style

	// Error message style
	Error lipgloss.Style

	// Success message style
	Success lipgloss.Style

	// Info box style
	InfoBox lipgloss.Style

	// Status bar style
	StatusBar lipgloss.Style

	// Spinner style
	Spinner lipgloss.Style

	// Focused input style
	FocusedInput lipgloss.Style

	// Blurred input style
	BlurredInput lipgloss.Style

	// Success box style (for result panels)
	SuccessBox lipgloss.Style

	// Error box style (for result panels)
	ErrorBox lipgloss.Style

	// Warning box style (for result panels)
	WarningBox lipgloss.Style
}

// NewStyles builds the style set for a palette.
func NewStyles(p theme.Palette) Styles {
	return Styles{
		Palette: p,

		Title: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Padding(1, 0).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Italic(true),

		MenuItem: lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(p.Text),

		SelectedMenuItem: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(p.Secondary).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Padding(1, 0),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error),

		Success: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Secondary),

		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Background(p.Background).
			Padding(0, 1),

		Spinner: lipgloss.NewStyle().
			Foreground(p.Primary),

		FocusedInput: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),

		BlurredInput: lipgloss.NewStyle().
			Foreground(p.Subtle),

		SuccessBox: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		ErrorBox: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Error).
			Padding(1, 2),

		WarningBox: lipgloss.NewStyle().
			Foreground(p.Warning).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Warning).
			Padding(1, 2),
	}
}

// RenderTitle renders a title with consistent styling
func (s Styles) RenderTitle(text string) string {
	return s.Title.Render(text)
}

// RenderSubtitle renders a subtitle with consistent styling
func (s Styles) RenderSubtitle(text string) string {
	return s.Subtitle.Render(text)
}

// RenderMenuItem renders a menu item with selection indicator
func (s Styles) RenderMenuItem(text string, selected bool) string {
	if selected {
		return s.SelectedMenuItem.Render("→ " + text)
	}
	return s.MenuItem.Render("  " + text)
}

// RenderError renders an error message
func (s Styles) RenderError(text string) string {
	return s.Error.Render("✗ " + text)
}

// RenderSuccess renders a success message
func (s Styles) RenderSuccess(text string) string {
	return s.Success.Render("✓ " + text)
}

// BuildHeaderContent creates header content with app name, version, theme
// indicator, and GitHub URL
func (s Styles) BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(s.Palette.Text).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(s.Palette.Subtle).
		Render(s.Palette.Name + " • " + GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func (s Styles) BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(s.Palette.Subtle).
		Render(helpText)
}

// RenderApplicationContainer is the wrapper for all screens in the
// application. It provides the full-screen bordered panel with the
// application header on top and a context-sensitive footer pinned to the
// bottom. Pattern:
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    helpText := "context-specific help..."
//	    return m.Styles.RenderApplicationContainer(content, helpText, m.Width, m.Height)
//	}
func (s Styles) RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	header := s.BuildHeaderContent()
	footer := s.BuildFooterContent(footerText)

	// Header section with bottom border
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(s.Palette.Border).
		Width(terminalWidth - 4). // Leave room for outer border
		Padding(0, 1)

	styledHeader := headerStyle.Render(header)

	// Footer section with top border
	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(s.Palette.Border).
		Width(terminalWidth - 4).
		Padding(0, 1)

	styledFooter := footerStyle.Render(footer)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	styledContent := contentStyle.Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.Palette.Border).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	bordered := borderStyle.Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// RenderModal renders a modal centered on screen with a dimmed backdrop.
// Used for the help overlay and the delete/clear confirmations; everything
// else renders inline.
func (s Styles) RenderModal(modalContent string, terminalWidth int, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// InlineEditorStyle returns styling for inline expanded editors
func (s Styles) InlineEditorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top:    "━",
			Bottom: "━",
			Left:   "┃",
			Right:  "┃",
		}).
		BorderForeground(s.Palette.Primary).
		Padding(0, 1)
}

// SafeModalWidth caps a modal width so it never exceeds the terminal.
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 40 {
		maxWidth = 40
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}
