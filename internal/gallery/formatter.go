package gallery

import (
	"fmt"
	"strings"
	"time"
)

// promptDisplayWidth is how much of a prompt list rows show.
const promptDisplayWidth = 48

// Summary returns a one-line summary of the record for list output.
func (r Record) Summary() string {
	return fmt.Sprintf("%s  %-*s  %-5s  %s",
		r.ShortID(),
		promptDisplayWidth, TruncatePrompt(r.Prompt, promptDisplayWidth),
		r.AspectRatio,
		FormatAge(r.CreatedAt))
}

// FormatDetailed returns a full field-by-field view of a single record.
// imagePath may be empty when the backing file location is unknown.
func (r Record) FormatDetailed(imagePath string) string {
	var b strings.Builder

	b.WriteString("=== Image Details ===\n")
	b.WriteString(fmt.Sprintf("ID:           %s\n", r.ID))
	b.WriteString(fmt.Sprintf("Prompt:       %s\n", r.Prompt))
	b.WriteString(fmt.Sprintf("Aspect Ratio: %s\n", r.AspectRatio))
	b.WriteString(fmt.Sprintf("Created:      %s (%s)\n",
		r.CreatedAt.Local().Format("2006-01-02 15:04:05"), FormatAge(r.CreatedAt)))
	if imagePath != "" {
		b.WriteString(fmt.Sprintf("File:         %s\n", imagePath))
	}

	return b.String()
}

// FormatList returns a numbered gallery listing, newest first.
func FormatList(records []Record) string {
	if len(records) == 0 {
		return "The gallery is empty. Generate an image to fill it.\n"
	}

	var b strings.Builder

	b.WriteString("=== Recent Images ===\n")
	for i, rec := range records {
		b.WriteString(fmt.Sprintf("%2d. %s\n", i+1, rec.Summary()))
	}
	b.WriteString(fmt.Sprintf("\n%d of %d slots used\n", len(records), MaxRecords))

	return b.String()
}

// FormatAge renders a timestamp as a coarse relative age.
func FormatAge(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Local().Format("2006-01-02")
	}
}

// TruncatePrompt shortens a prompt to max runes, marking the cut with an
// ellipsis.
func TruncatePrompt(prompt string, max int) string {
	runes := []rune(prompt)
	if len(runes) <= max {
		return prompt
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
