package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmDestructive displays a warning box and prompts the user with a y/N
// question before proceeding with a destructive operation. Returns true if
// the user confirmed, false otherwise (including on read errors, so EOF on
// a non-interactive stdin safely declines).
func ConfirmDestructive(title string, warnings []string, note string) bool {
	width := GetTerminalWidth()
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string

	// Title with warning marker
	titleLine := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render(fmt.Sprintf("   ⚠  WARNING  ─  %s", title))
	lines = append(lines, "")
	lines = append(lines, titleLine)
	lines = append(lines, "")

	// Warning bullet points
	for _, warning := range warnings {
		bulletStyle := lipgloss.NewStyle().Foreground(TextColor)
		lines = append(lines, bulletStyle.Render("   • "+warning))
	}
	lines = append(lines, "")

	// Note in muted text, word-wrapped
	if note != "" {
		noteStyle := lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			Width(width - 12).
			PaddingLeft(3)
		lines = append(lines, noteStyle.Render(note))
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")

	// Double border in warning color
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(content)

	fmt.Println(box)
	fmt.Println()

	// Prompt for confirmation
	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	fmt.Print(promptStyle.Render("Proceed? [y/N]: "))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println()
		return false
	}

	input = strings.ToLower(strings.TrimSpace(input))
	if input == "y" || input == "yes" {
		fmt.Println()
		return true
	}

	fmt.Println()
	cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
	fmt.Println(cancelStyle.Render("  Operation cancelled."))
	fmt.Println()
	return false
}

// ClearGalleryConfirmation is a pre-configured confirmation for clearing the gallery
func ClearGalleryConfirmation(count int) bool {
	noun := "images"
	if count == 1 {
		noun = "image"
	}
	return ConfirmDestructive(
		"CLEAR GALLERY",
		[]string{
			fmt.Sprintf("This will permanently delete all %d saved %s", count, noun),
			"Image files are removed from disk along with their records",
			"There is no undo",
		},
		"Use 'easel gallery export <id>' first to keep copies of images "+
			"you want outside the gallery.",
	)
}
