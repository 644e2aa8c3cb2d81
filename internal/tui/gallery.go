package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/easelart/easel/internal/gallery"
	"github.com/easelart/easel/internal/store"
)

// galleryKeyMap defines key bindings for the gallery screen
type galleryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Detail key.Binding
	Export key.Binding
	Delete key.Binding
	Clear  key.Binding
	Back   key.Binding
	Theme  key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k galleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Detail, k.Export, k.Delete, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k galleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Detail, k.Export},
		{k.Delete, k.Clear, k.Back, k.Theme, k.Quit},
	}
}

// recordItem wraps a gallery Record for use with bubbles/list
type recordItem struct {
	record gallery.Record
}

// Implement list.Item interface
func (r recordItem) FilterValue() string {
	return r.record.Prompt
}

// Title returns the prompt for list display
func (r recordItem) Title() string {
	return gallery.TruncatePrompt(r.record.Prompt, 60)
}

// Description returns record details for list display
func (r recordItem) Description() string {
	return fmt.Sprintf("%s • %s • %s", r.record.ShortID(), r.record.AspectRatio, gallery.FormatAge(r.record.CreatedAt))
}

// recordDelegate is a custom list delegate for rendering gallery cards
type recordDelegate struct {
	styles Styles
	width  int
}

func (d recordDelegate) Height() int { return 7 } // Card height including borders

func (d recordDelegate) Spacing() int { return 1 } // Spacing between cards

func (d recordDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d recordDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	recItem, ok := item.(recordItem)
	if !ok {
		return
	}

	rec := recItem.record
	selected := index == m.Index()

	prompt := gallery.TruncatePrompt(rec.Prompt, 60)

	// Build content lines
	var content strings.Builder

	// Add selection indicator to the prompt line
	if selected {
		content.WriteString(d.styles.SelectedMenuItem.Render("→ " + prompt))
	} else {
		content.WriteString("  " + prompt)
	}
	content.WriteString("\n\n")

	// Record details
	content.WriteString(fmt.Sprintf("  ID:      %s\n", rec.ShortID()))
	content.WriteString(fmt.Sprintf("  Aspect:  %s\n", rec.AspectRatio))
	content.WriteString(fmt.Sprintf("  Created: %s", gallery.FormatAge(rec.CreatedAt)))

	// Create responsive card style
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(d.styles.Palette.Border).
		Padding(0, 2).
		MarginLeft(2)

	// Calculate card width (leave room for margins and borders)
	cardWidth := d.width - 6
	if cardWidth < MinTerminalWidth-6 {
		cardWidth = MinTerminalWidth - 6
	}
	if cardWidth > MaxContentWidth-6 {
		cardWidth = MaxContentWidth - 6
	}

	cardStyle = cardStyle.Width(cardWidth)

	// Highlight selected card
	if selected {
		cardStyle = cardStyle.BorderForeground(d.styles.Palette.Secondary)
	}

	fmt.Fprint(w, cardStyle.Render(content.String()))
}

// GalleryModel represents the recent images screen state
type GalleryModel struct {
	// Services
	Gallery *gallery.Manager
	Blobs   *store.BlobStore

	// Record list
	RecordList list.Model

	// Modal state
	ShowingDetail bool
	ConfirmDelete bool
	ConfirmClear  bool
	ModalCursor   int // For confirm modal buttons

	// UI state
	StatusMessage string
	Width         int
	Height        int
	Styles        Styles

	// Help
	Help help.Model
	Keys galleryKeyMap
}

// NewGalleryModel creates the gallery screen model
func NewGalleryModel(deps Deps, styles Styles) GalleryModel {
	// Initialize record list with custom delegate
	delegate := recordDelegate{styles: styles, width: MinTerminalWidth}
	recordList := list.New([]list.Item{}, delegate, 0, 0)
	recordList.Title = "Recent Images"
	recordList.SetShowStatusBar(false)
	recordList.SetFilteringEnabled(false)
	recordList.SetShowHelp(false)
	recordList.Styles.Title = styles.Title

	// Initialize help
	h := help.New()

	keys := galleryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear all"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "studio"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	return GalleryModel{
		Gallery:    deps.Gallery,
		Blobs:      deps.Blobs,
		RecordList: recordList,
		Styles:     styles,
		Help:       h,
		Keys:       keys,
	}
}

// Init initializes the gallery model
func (m GalleryModel) Init() tea.Cmd {
	return nil
}

// Refresh reloads the record list from the gallery manager. The app calls
// this on every switch to the gallery screen so new generations show up.
func (m *GalleryModel) Refresh() {
	records := m.Gallery.Records()
	items := make([]list.Item, len(records))
	for i, rec := range records {
		items[i] = recordItem{record: rec}
	}
	m.RecordList.SetItems(items)

	// Keep the selection in range after deletions
	if m.RecordList.Index() >= len(items) && len(items) > 0 {
		m.RecordList.Select(len(items) - 1)
	}
}

// SetStyles swaps the style set after a theme change.
func (m *GalleryModel) SetStyles(styles Styles) {
	m.Styles = styles
	m.RecordList.Styles.Title = styles.Title
	m.RecordList.SetDelegate(recordDelegate{styles: styles, width: m.Width})
}

// resizeList propagates the window size to the list and its delegate.
func (m *GalleryModel) resizeList() {
	m.RecordList.SetWidth(m.Width - 4)
	m.RecordList.SetHeight(m.Height - 10) // Leave room for header/footer
	m.RecordList.SetDelegate(recordDelegate{styles: m.Styles, width: m.Width})
}

// Update handles messages and updates the model
func (m GalleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.ConfirmDelete || m.ConfirmClear {
			return m.updateConfirmModal(msg)
		}
		if m.ShowingDetail {
			return m.updateDetailView(msg)
		}
		return m.updateNormalMode(msg)
	}

	var cmd tea.Cmd
	m.RecordList, cmd = m.RecordList.Update(msg)
	return m, cmd
}

// updateNormalMode handles keyboard input in normal list mode
func (m GalleryModel) updateNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		// Back to the studio
		return m, func() tea.Msg { return openStudioMsg{} }

	case "enter":
		if _, ok := m.selectedRecord(); ok {
			m.ShowingDetail = true
		}
		return m, nil

	case "x":
		m.StatusMessage = m.exportSelected()
		return m, nil

	case "d":
		if _, ok := m.selectedRecord(); ok {
			m.ConfirmDelete = true
			m.ModalCursor = 0 // Default to "Delete" button
		}
		return m, nil

	case "c":
		if len(m.RecordList.Items()) > 0 {
			m.ConfirmClear = true
			m.ModalCursor = 0 // Default to "Clear All" button
		}
		return m, nil

	case "t":
		return m, func() tea.Msg { return toggleThemeMsg{} }
	}

	// Let the list handle up/down navigation
	var cmd tea.Cmd
	m.RecordList, cmd = m.RecordList.Update(msg)
	return m, cmd
}

// updateDetailView handles keyboard input while the detail modal is open
func (m GalleryModel) updateDetailView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.ShowingDetail = false

	case "x":
		m.StatusMessage = m.exportSelected()
		m.ShowingDetail = false

	case "d":
		m.ShowingDetail = false
		m.ConfirmDelete = true
		m.ModalCursor = 0
	}

	return m, nil
}

// updateConfirmModal handles input while a delete or clear confirm modal
// is showing
func (m GalleryModel) updateConfirmModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel - close modal
		m.ConfirmDelete = false
		m.ConfirmClear = false
		return m, nil

	case "left", "h":
		if m.ModalCursor > 0 {
			m.ModalCursor--
		}

	case "right", "l":
		if m.ModalCursor < 1 {
			m.ModalCursor++
		}

	case "enter", " ":
		if m.ModalCursor == 0 {
			if m.ConfirmDelete {
				m.deleteSelected()
			} else if m.ConfirmClear {
				m.clearAll()
			}
		}
		m.ConfirmDelete = false
		m.ConfirmClear = false
	}

	return m, nil
}

// selectedRecord returns the record under the cursor, if any.
func (m GalleryModel) selectedRecord() (gallery.Record, bool) {
	item, ok := m.RecordList.SelectedItem().(recordItem)
	if !ok {
		return gallery.Record{}, false
	}
	return item.record, true
}

// deleteSelected removes the record under the cursor and its image.
func (m *GalleryModel) deleteSelected() {
	rec, ok := m.selectedRecord()
	if !ok {
		return
	}

	if err := m.Gallery.Delete(rec.ID); err != nil {
		m.StatusMessage = fmt.Sprintf("Delete failed: %v", err)
	} else {
		m.StatusMessage = fmt.Sprintf("Deleted %s", rec.ShortID())
	}
	m.Refresh()
}

// clearAll removes every record and image from the gallery.
func (m *GalleryModel) clearAll() {
	if err := m.Gallery.Clear(); err != nil {
		m.StatusMessage = fmt.Sprintf("Clear failed: %v", err)
	} else {
		m.StatusMessage = "Gallery cleared"
	}
	m.Refresh()
}

// exportSelected copies the selected image into the current directory and
// returns a status line describing the outcome.
func (m GalleryModel) exportSelected() string {
	rec, ok := m.selectedRecord()
	if !ok {
		return ""
	}

	data, err := m.Blobs.Read(rec.Handle)
	if err != nil {
		return fmt.Sprintf("Export failed: %v", err)
	}

	name := "easel-" + rec.ShortID() + filepath.Ext(rec.Handle)
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Sprintf("Export failed: %v", err)
	}

	return fmt.Sprintf("Exported to %s", name)
}

// View renders the gallery screen
func (m GalleryModel) View() string {
	if m.ConfirmDelete {
		return m.Styles.RenderModal(m.renderDeleteConfirmContent(), m.Width, m.Height)
	}
	if m.ConfirmClear {
		return m.Styles.RenderModal(m.renderClearConfirmContent(), m.Width, m.Height)
	}
	if m.ShowingDetail {
		return m.Styles.RenderModal(m.renderDetailContent(), m.Width, m.Height)
	}

	content := m.renderGalleryContent()
	helpText := m.Help.View(m.Keys)
	return m.Styles.RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// renderGalleryContent renders the record list or the empty state
func (m GalleryModel) renderGalleryContent() string {
	var b strings.Builder

	b.WriteString("\n")

	if m.StatusMessage != "" {
		statusStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Secondary)
		b.WriteString("  " + statusStyle.Render(m.StatusMessage))
		b.WriteString("\n\n")
	}

	if len(m.RecordList.Items()) == 0 {
		warningStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Warning).Bold(true)
		b.WriteString("  ")
		b.WriteString(warningStyle.Render("The gallery is empty"))
		b.WriteString("\n\n")
		b.WriteString("  Generated images land here automatically.\n")
		b.WriteString("  The gallery keeps the last 12; older images are removed.\n")
		b.WriteString("\n")
		b.WriteString("  Press esc to return to the studio and generate one.\n")
		return b.String()
	}

	slots := lipgloss.NewStyle().Foreground(m.Styles.Palette.Subtle).
		Render(fmt.Sprintf("  %d of %d slots used", len(m.RecordList.Items()), gallery.MaxRecords))
	b.WriteString(slots)
	b.WriteString("\n\n")
	b.WriteString(m.RecordList.View())

	return b.String()
}

// renderDetailContent renders the record detail modal
func (m GalleryModel) renderDetailContent() string {
	rec, ok := m.selectedRecord()
	if !ok {
		return ""
	}

	imagePath := ""
	if p, err := m.Blobs.Path(rec.Handle); err == nil {
		imagePath = p
	}

	detail := rec.FormatDetailed(imagePath)

	helpStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Subtle)
	content := lipgloss.JoinVertical(lipgloss.Left,
		detail,
		"",
		helpStyle.Render("x: Export  •  d: Delete  •  Esc: Back"),
	)

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Styles.Palette.Primary).
		Padding(1, 2).
		Width(SafeModalWidth(70, m.Width))

	return modalStyle.Render(content)
}

// renderDeleteConfirmContent renders the delete confirmation modal
func (m GalleryModel) renderDeleteConfirmContent() string {
	rec, _ := m.selectedRecord()

	titleStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Warning).Bold(true)
	title := titleStyle.Render("⚠ DELETE IMAGE")

	textStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Text)
	subtleStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Subtle)

	body := lipgloss.JoinVertical(lipgloss.Left,
		textStyle.Render("  This removes the image and its gallery entry."),
		"",
		subtleStyle.Render(fmt.Sprintf("  ID:     %s", rec.ShortID())),
		subtleStyle.Render(fmt.Sprintf("  Prompt: %s", gallery.TruncatePrompt(rec.Prompt, 48))),
	)

	return m.renderConfirmBox(title, body, "Delete")
}

// renderClearConfirmContent renders the clear-all confirmation modal
func (m GalleryModel) renderClearConfirmContent() string {
	titleStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Warning).Bold(true)
	title := titleStyle.Render("⚠ CLEAR GALLERY")

	textStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Text)
	body := textStyle.Render(fmt.Sprintf("  This removes all %d images and their gallery entries.", len(m.RecordList.Items())))

	return m.renderConfirmBox(title, body, "Clear All")
}

// renderConfirmBox composes a confirm modal with an action and a cancel
// button, the action first.
func (m GalleryModel) renderConfirmBox(title, body, actionLabel string) string {
	buttonStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Styles.Palette.Subtle).
		Foreground(m.Styles.Palette.Subtle).
		Padding(0, 2).
		MarginRight(2)

	selectedButtonStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Styles.Palette.Error).
		Foreground(m.Styles.Palette.Error).
		Bold(true).
		Padding(0, 2).
		MarginRight(2)

	var actionBtn, cancelBtn string
	if m.ModalCursor == 0 {
		actionBtn = selectedButtonStyle.Render("→ " + actionLabel)
	} else {
		actionBtn = buttonStyle.Render("  " + actionLabel)
	}

	if m.ModalCursor == 1 {
		cancelBtn = selectedButtonStyle.Render("→ Cancel")
	} else {
		cancelBtn = buttonStyle.Render("  Cancel")
	}

	buttons := "  " + lipgloss.JoinHorizontal(lipgloss.Left, actionBtn, cancelBtn)

	helpStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Subtle)
	help := helpStyle.Render("  ←/→: Navigate  •  Enter: Confirm  •  Esc: Back")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		buttons,
		"",
		help,
	)

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Styles.Palette.Warning).
		Padding(1, 2).
		Width(SafeModalWidth(70, m.Width))

	return modalStyle.Render(content)
}
