package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/easelart/easel/internal/gallery"
	"github.com/easelart/easel/internal/generate"
	"github.com/easelart/easel/internal/settings"
	"github.com/easelart/easel/internal/store"
)

// generateCompleteMsg reports the outcome of an async generation.
type generateCompleteMsg struct {
	record     gallery.Record
	resource   *generate.ImageResource
	err        error
	persistErr error
	elapsed    time.Duration
}

// studioSection represents which inline editor is active
type studioSection int

const (
	sectionNone studioSection = iota
	sectionText
	sectionEnum
	sectionSlider
)

// Field indices for cursor navigation.
// Navigation order: text fields, settings fields, then the generate button.
const (
	fieldPrompt = iota
	fieldNegative
	fieldAspect
	fieldStyle
	fieldQuality
	fieldSteps
	fieldGuidance
	fieldGenerate
	studioFieldCount
)

// studioKeyMap defines key bindings for the studio screen
type studioKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Generate key.Binding
	Gallery  key.Binding
	Reset    key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k studioKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Generate, k.Gallery, k.Theme, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k studioKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Generate},
		{k.Gallery, k.Reset, k.Theme, k.Help, k.Quit},
	}
}

// generationResult holds the last generation outcome for the inline panel.
type generationResult struct {
	record     gallery.Record
	resource   *generate.ImageResource
	path       string
	err        error
	persistErr error
	elapsed    time.Duration
}

// StudioModel is the main generation screen: prompt, settings, and the
// result panel.
type StudioModel struct {
	// Services
	Client  *generate.Client
	Gallery *gallery.Manager
	Blobs   *store.BlobStore

	// Generation state
	Settings      settings.Settings
	PromptInput   textarea.Model
	NegativeInput textinput.Model

	// Navigation
	Cursor         int
	EditingSection studioSection

	// Inline editor state
	EnumCursor     int     // Option index while an enum picker is open
	SliderSteps    int     // Pending steps while the slider is open
	SliderGuidance float64 // Pending guidance while the slider is open

	// Async generation state
	Generating     bool
	GenerateStart  time.Time
	Spinner        spinner.Model
	LastResult     *generationResult
	cancelGenerate context.CancelFunc

	// UI state
	ShowingHelp   bool
	StatusMessage string
	Width         int
	Height        int
	Styles        Styles

	// Help
	Help help.Model
	Keys studioKeyMap
}

// NewStudioModel creates the studio screen with default settings.
func NewStudioModel(deps Deps, styles Styles) StudioModel {
	promptInput := textarea.New()
	promptInput.Placeholder = "Describe the image you want..."
	promptInput.CharLimit = 500
	promptInput.SetWidth(60)
	promptInput.SetHeight(3)
	promptInput.ShowLineNumbers = false

	negativeInput := textinput.New()
	negativeInput.Placeholder = "Things to avoid (optional)"
	negativeInput.CharLimit = 300
	negativeInput.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	h := help.New()

	keys := studioKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generate"),
		),
		Gallery: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "gallery"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset settings"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	return StudioModel{
		Client:         deps.Client,
		Gallery:        deps.Gallery,
		Blobs:          deps.Blobs,
		Settings:       settings.Default(),
		PromptInput:    promptInput,
		NegativeInput:  negativeInput,
		Cursor:         fieldPrompt,
		EditingSection: sectionNone,
		Spinner:        s,
		Styles:         styles,
		Help:           h,
		Keys:           keys,
	}
}

// Init initializes the studio screen
func (m StudioModel) Init() tea.Cmd {
	return nil
}

// SetStyles swaps the style set after a theme change.
func (m *StudioModel) SetStyles(styles Styles) {
	m.Styles = styles
	m.Spinner.Style = styles.Spinner
}

// Update handles messages and updates the model
func (m StudioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// A running generation blocks everything except its own messages.
	if m.Generating {
		return m.updateGenerating(msg)
	}

	if m.ShowingHelp {
		return m.updateHelpModal(msg)
	}

	switch m.EditingSection {
	case sectionText:
		return m.updateTextEditor(msg)
	case sectionEnum:
		return m.updateEnumEditor(msg)
	case sectionSlider:
		return m.updateSliderEditor(msg)
	}

	return m.updateNormalMode(msg)
}

// updateGenerating handles messages while a generation is in flight.
// Esc aborts the request; all other key input is ignored so only one
// request can run at a time.
func (m StudioModel) updateGenerating(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" && m.cancelGenerate != nil {
			m.cancelGenerate()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case generateCompleteMsg:
		m.Generating = false
		if m.cancelGenerate != nil {
			m.cancelGenerate()
			m.cancelGenerate = nil
		}

		if errors.Is(msg.err, context.Canceled) {
			m.StatusMessage = "Generation cancelled"
			return m, nil
		}

		result := &generationResult{
			record:     msg.record,
			resource:   msg.resource,
			err:        msg.err,
			persistErr: msg.persistErr,
			elapsed:    msg.elapsed,
		}
		if msg.err == nil && msg.resource != nil {
			if p, pathErr := m.Blobs.Path(msg.resource.Handle); pathErr == nil {
				result.path = p
			}
		}
		m.LastResult = result
		return m, nil
	}

	return m, nil
}

// updateNormalMode handles input when no field is being edited
func (m StudioModel) updateNormalMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.StatusMessage = ""

		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "up", "k":
			m.Cursor--
			if m.Cursor < 0 {
				m.Cursor = studioFieldCount - 1
			}

		case "down", "j":
			m.Cursor++
			if m.Cursor >= studioFieldCount {
				m.Cursor = 0
			}

		case "tab":
			// Jump straight to the generate button
			m.Cursor = fieldGenerate

		case "enter", " ":
			return m.startEditing()

		case "g":
			return m.startGenerate()

		case "v":
			return m, func() tea.Msg { return openGalleryMsg{} }

		case "r":
			m.Settings.Reset()
			m.StatusMessage = "Settings reset to defaults"

		case "t":
			return m, func() tea.Msg { return toggleThemeMsg{} }

		case "?":
			m.ShowingHelp = true
		}
	}

	return m, nil
}

// startEditing opens the editor for the focused field, or triggers
// generation when the cursor is on the generate button.
func (m StudioModel) startEditing() (tea.Model, tea.Cmd) {
	switch m.Cursor {
	case fieldPrompt:
		m.EditingSection = sectionText
		m.PromptInput.Focus()
		return m, textarea.Blink

	case fieldNegative:
		m.EditingSection = sectionText
		m.NegativeInput.Focus()
		return m, textinput.Blink

	case fieldAspect, fieldStyle, fieldQuality:
		m.EditingSection = sectionEnum
		m.EnumCursor = m.currentEnumIndex()
		return m, nil

	case fieldSteps:
		m.EditingSection = sectionSlider
		m.SliderSteps = m.Settings.Steps
		return m, nil

	case fieldGuidance:
		m.EditingSection = sectionSlider
		m.SliderGuidance = m.Settings.Guidance
		return m, nil

	case fieldGenerate:
		return m.startGenerate()
	}

	return m, nil
}

// startGenerate kicks off an async generation for the current prompt and
// settings. A second request while one is running is ignored.
func (m StudioModel) startGenerate() (tea.Model, tea.Cmd) {
	if m.Generating {
		return m, nil
	}

	prompt := m.PromptInput.Value()
	if strings.TrimSpace(prompt) == "" {
		m.LastResult = &generationResult{err: generate.NewEmptyPromptError()}
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelGenerate = cancel
	m.Generating = true
	m.GenerateStart = time.Now()
	m.LastResult = nil

	return m, tea.Batch(
		m.Spinner.Tick,
		generateCmd(ctx, m.Client, m.Gallery, prompt, m.NegativeInput.Value(), m.Settings),
	)
}

// generateCmd performs the generation and gallery insertion off the UI
// goroutine and reports the outcome as a message.
func generateCmd(ctx context.Context, client *generate.Client, mgr *gallery.Manager, prompt, negative string, s settings.Settings) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		res, err := client.Generate(ctx, prompt, negative, s)
		if err != nil {
			return generateCompleteMsg{err: err, elapsed: time.Since(start)}
		}

		// The image is on disk either way; a gallery persistence failure
		// is reported separately so the user still gets their image.
		rec, persistErr := mgr.Add(res.Handle, prompt, s.AspectRatio)
		return generateCompleteMsg{
			record:     rec,
			resource:   res,
			persistErr: persistErr,
			elapsed:    time.Since(start),
		}
	}
}

// updateTextEditor handles input while a text field is focused. Leaving a
// field keeps the typed text; there is no cancel. Esc leaves either field;
// enter leaves only the single-line negative field, inside the prompt
// textarea it inserts a newline.
func (m StudioModel) updateTextEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.PromptInput.Blur()
			m.NegativeInput.Blur()
			m.EditingSection = sectionNone
			return m, nil

		case "enter":
			if m.Cursor == fieldNegative {
				m.NegativeInput.Blur()
				m.EditingSection = sectionNone
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	if m.Cursor == fieldPrompt {
		m.PromptInput, cmd = m.PromptInput.Update(msg)
	} else {
		m.NegativeInput, cmd = m.NegativeInput.Update(msg)
	}
	return m, cmd
}

// updateEnumEditor handles input while an option picker is open
func (m StudioModel) updateEnumEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	optionCount := len(m.enumOptions())

	switch keyMsg.String() {
	case "esc":
		// Cancel without saving
		m.EditingSection = sectionNone
		return m, nil

	case "up", "k":
		m.EnumCursor--
		if m.EnumCursor < 0 {
			m.EnumCursor = optionCount - 1
		}
		return m, nil

	case "down", "j":
		m.EnumCursor++
		if m.EnumCursor >= optionCount {
			m.EnumCursor = 0
		}
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx, _ := strconv.Atoi(keyMsg.String())
		if idx > optionCount {
			return m, nil
		}
		m.EnumCursor = idx - 1
		fallthrough

	case "enter", " ":
		m.commitEnumSelection()
		m.EditingSection = sectionNone
		return m, nil
	}

	return m, nil
}

// updateSliderEditor handles input while a numeric slider is open
func (m StudioModel) updateSliderEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		// Cancel without saving
		m.EditingSection = sectionNone
		return m, nil

	case "left", "h", "down", "j":
		if m.Cursor == fieldSteps {
			m.SliderSteps -= settings.StepsStep
			if m.SliderSteps < settings.StepsMin {
				m.SliderSteps = settings.StepsMin
			}
		} else {
			m.SliderGuidance -= settings.GuidanceStep
			if m.SliderGuidance < settings.GuidanceMin {
				m.SliderGuidance = settings.GuidanceMin
			}
		}
		return m, nil

	case "right", "l", "up", "k":
		if m.Cursor == fieldSteps {
			m.SliderSteps += settings.StepsStep
			if m.SliderSteps > settings.StepsMax {
				m.SliderSteps = settings.StepsMax
			}
		} else {
			m.SliderGuidance += settings.GuidanceStep
			if m.SliderGuidance > settings.GuidanceMax {
				m.SliderGuidance = settings.GuidanceMax
			}
		}
		return m, nil

	case "enter", " ":
		if m.Cursor == fieldSteps {
			m.Settings.SetSteps(m.SliderSteps)
		} else {
			m.Settings.SetGuidance(m.SliderGuidance)
		}
		m.EditingSection = sectionNone
		return m, nil
	}

	return m, nil
}

// updateHelpModal handles input when the help modal is visible
func (m StudioModel) updateHelpModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.ShowingHelp = false
	}
	return m, nil
}

// currentEnumIndex returns the option index of the focused field's value.
func (m StudioModel) currentEnumIndex() int {
	switch m.Cursor {
	case fieldAspect:
		for i, a := range settings.AspectRatios() {
			if a == m.Settings.AspectRatio {
				return i
			}
		}
	case fieldStyle:
		for i, p := range settings.StylePresets() {
			if p == m.Settings.StylePreset {
				return i
			}
		}
	case fieldQuality:
		for i, q := range settings.Qualities() {
			if q == m.Settings.Quality {
				return i
			}
		}
	}
	return 0
}

// enumOptions returns the display labels for the focused enum field.
func (m StudioModel) enumOptions() []string {
	switch m.Cursor {
	case fieldAspect:
		ratios := settings.AspectRatios()
		options := make([]string, len(ratios))
		for i, a := range ratios {
			options[i] = string(a)
		}
		return options
	case fieldStyle:
		presets := settings.StylePresets()
		options := make([]string, len(presets))
		for i, p := range presets {
			options[i] = p.Label()
		}
		return options
	case fieldQuality:
		qualities := settings.Qualities()
		options := make([]string, len(qualities))
		for i, q := range qualities {
			options[i] = q.Label()
		}
		return options
	}
	return nil
}

// commitEnumSelection applies the picker selection to the settings.
func (m *StudioModel) commitEnumSelection() {
	switch m.Cursor {
	case fieldAspect:
		m.Settings.SetAspectRatio(settings.AspectRatios()[m.EnumCursor])
	case fieldStyle:
		m.Settings.SetStylePreset(settings.StylePresets()[m.EnumCursor])
	case fieldQuality:
		m.Settings.SetQuality(settings.Qualities()[m.EnumCursor])
	}
}

// View renders the studio screen
func (m StudioModel) View() string {
	if m.ShowingHelp {
		return m.Styles.RenderModal(m.renderHelpContent(), m.Width, m.Height)
	}

	content := m.renderStudioContent()
	helpText := m.Help.View(m.Keys)
	return m.Styles.RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

// renderStudioContent renders the main studio layout
func (m StudioModel) renderStudioContent() string {
	parts := []string{
		m.renderStatusLine(),
		"",
		m.renderPromptSection(),
		"",
		m.renderSettingsSection(),
		"",
		m.renderGenerateButton(),
		"",
		m.renderResultPanel(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderStatusLine shows credential state and transient status messages.
func (m StudioModel) renderStatusLine() string {
	if m.StatusMessage != "" {
		return lipgloss.NewStyle().Foreground(m.Styles.Palette.Secondary).Render("✓ " + m.StatusMessage)
	}

	if !m.Client.HasCredential() {
		warn := lipgloss.NewStyle().Foreground(m.Styles.Palette.Warning).Bold(true)
		return warn.Render("⚠ No API token configured - run 'easel config set-token'")
	}

	galleryCount := m.Gallery.Len()
	status := fmt.Sprintf("%d of %d gallery slots used", galleryCount, gallery.MaxRecords)
	return lipgloss.NewStyle().Foreground(m.Styles.Palette.Subtle).Render(status)
}

// renderPromptSection renders the prompt textarea and the negative field.
func (m StudioModel) renderPromptSection() string {
	title := lipgloss.NewStyle().Foreground(m.Styles.Palette.Primary).Bold(true).Render("Prompt")

	promptSelected := m.Cursor == fieldPrompt
	arrow := "  "
	if promptSelected {
		arrow = "→ "
	}
	labelStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Subtle)
	if promptSelected {
		labelStyle = labelStyle.Foreground(m.Styles.Palette.Secondary).Bold(true)
	}
	promptLabel := arrow + labelStyle.Render("Prompt")
	if promptSelected && m.EditingSection == sectionText {
		promptLabel += lipgloss.NewStyle().Foreground(m.Styles.Palette.Subtle).Render("  (esc when done)")
	}

	promptBox := lipgloss.NewStyle().MarginLeft(4).Render(m.PromptInput.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		promptLabel,
		promptBox,
		m.renderNegativeField(),
	)
}

// renderNegativeField renders the single-line negative prompt input.
func (m StudioModel) renderNegativeField() string {
	selected := m.Cursor == fieldNegative

	arrow := "  "
	if selected {
		arrow = "→ "
	}

	labelStyle := lipgloss.NewStyle().Width(18).Foreground(m.Styles.Palette.Subtle)
	if selected {
		labelStyle = labelStyle.Foreground(m.Styles.Palette.Secondary).Bold(true)
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, arrow, labelStyle.Render("Negative Prompt"), m.NegativeInput.View())
}

// renderSettingsSection renders the generation settings fields, inserting
// the inline editor under the field being edited.
func (m StudioModel) renderSettingsSection() string {
	title := lipgloss.NewStyle().Foreground(m.Styles.Palette.Primary).Bold(true).Render("Settings")

	parts := []string{title}
	for fieldIdx := fieldAspect; fieldIdx <= fieldGuidance; fieldIdx++ {
		parts = append(parts, m.renderSettingField(fieldIdx))

		if m.Cursor == fieldIdx && m.EditingSection == sectionEnum {
			parts = append(parts, m.renderEnumEditorInline())
		}
		if m.Cursor == fieldIdx && m.EditingSection == sectionSlider {
			parts = append(parts, m.renderSliderEditorInline())
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderSettingField renders one settings row.
func (m StudioModel) renderSettingField(fieldIdx int) string {
	selected := m.Cursor == fieldIdx

	var label, value string
	switch fieldIdx {
	case fieldAspect:
		label, value = "Aspect Ratio", string(m.Settings.AspectRatio)
	case fieldStyle:
		label, value = "Style", m.Settings.StylePreset.Label()
	case fieldQuality:
		label, value = "Quality", m.Settings.Quality.Label()
	case fieldSteps:
		label, value = "Steps", fmt.Sprintf("%d", m.Settings.Steps)
	case fieldGuidance:
		label, value = "Guidance", formatGuidance(m.Settings.Guidance)
	}

	arrow := "  "
	if selected {
		arrow = "→ "
	}

	labelStyle := lipgloss.NewStyle().Width(18).Foreground(m.Styles.Palette.Subtle)
	valueStyle := lipgloss.NewStyle()
	if selected {
		labelStyle = labelStyle.Foreground(m.Styles.Palette.Secondary).Bold(true)
		valueStyle = valueStyle.Foreground(m.Styles.Palette.Secondary).Bold(true)
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, arrow, labelStyle.Render(label), valueStyle.Render(value+" ▼"))
}

// renderEnumEditorInline renders the option picker under its field.
func (m StudioModel) renderEnumEditorInline() string {
	options := m.enumOptions()
	current := m.currentEnumIndex()

	var lines []string
	for i, opt := range options {
		cursor := "  "
		if i == m.EnumCursor {
			cursor = "← "
		}

		indicator := "( )"
		if i == current {
			indicator = "(•)"
		}

		style := lipgloss.NewStyle()
		if i == m.EnumCursor {
			style = style.Foreground(m.Styles.Palette.Secondary)
		}

		lines = append(lines, style.Render(fmt.Sprintf("        %s %s %s", indicator, opt, cursor)))
	}

	helpLine := lipgloss.NewStyle().
		Foreground(m.Styles.Palette.Subtle).
		Render("        ↑/↓ select • Enter confirm • Esc cancel")
	lines = append(lines, helpLine)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderSliderEditorInline renders the numeric adjuster under its field.
func (m StudioModel) renderSliderEditorInline() string {
	var value, bounds string
	if m.Cursor == fieldSteps {
		value = fmt.Sprintf("%d", m.SliderSteps)
		bounds = fmt.Sprintf("%d-%d, step %d", settings.StepsMin, settings.StepsMax, settings.StepsStep)
	} else {
		value = formatGuidance(m.SliderGuidance)
		bounds = fmt.Sprintf("%g-%g, step %g", settings.GuidanceMin, settings.GuidanceMax, settings.GuidanceStep)
	}

	valueStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Secondary).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Subtle)

	lines := []string{
		fmt.Sprintf("        ◀ %s ▶  %s", valueStyle.Render(value), helpStyle.Render("("+bounds+")")),
		helpStyle.Render("        ←/→ adjust • Enter confirm • Esc cancel"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderGenerateButton renders the generate button row.
func (m StudioModel) renderGenerateButton() string {
	selected := m.Cursor == fieldGenerate

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 3).
		Foreground(m.Styles.Palette.Subtle).
		BorderForeground(m.Styles.Palette.Border)

	label := "Generate"
	if m.Generating {
		label = "Generating..."
	}

	if selected && !m.Generating {
		style = style.
			Foreground(m.Styles.Palette.Secondary).
			BorderForeground(m.Styles.Palette.Secondary).
			Bold(true)
		label = "▶ " + label
	}

	return "  " + style.Render(label)
}

// renderResultPanel renders the in-flight, success, or failure panel.
func (m StudioModel) renderResultPanel() string {
	if m.Generating {
		elapsed := time.Since(m.GenerateStart).Round(100 * time.Millisecond)
		status := fmt.Sprintf("%s Generating image... (%s)", m.Spinner.View(), elapsed)
		note := lipgloss.NewStyle().
			Foreground(m.Styles.Palette.Subtle).
			Render("  Cold models can take up to a minute on the free tier. Esc cancels.")
		return lipgloss.JoinVertical(lipgloss.Left, m.Styles.Spinner.Render(status), note)
	}

	if m.LastResult == nil {
		return ""
	}

	if m.LastResult.err != nil {
		return m.renderFailurePanel()
	}
	return m.renderSuccessPanel()
}

// renderSuccessPanel renders the panel for a completed generation.
func (m StudioModel) renderSuccessPanel() string {
	res := m.LastResult

	header := m.Styles.SuccessBox.Render(fmt.Sprintf("✓ Image generated in %s", res.elapsed.Round(100*time.Millisecond)))

	details := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("  File:   %s", res.path),
		fmt.Sprintf("  Type:   %s (%d bytes)", res.resource.ContentType, res.resource.Size),
		fmt.Sprintf("  Record: %s", res.record.ShortID()),
	)

	parts := []string{header, details}

	if res.persistErr != nil {
		warn := lipgloss.NewStyle().Foreground(m.Styles.Palette.Warning).
			Render(fmt.Sprintf("  ⚠ Gallery not saved: %v", res.persistErr))
		parts = append(parts, warn)
	}

	hint := lipgloss.NewStyle().Foreground(m.Styles.Palette.Subtle).
		Render("  Press v to browse the gallery")
	parts = append(parts, hint)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderFailurePanel renders the panel for a failed generation.
func (m StudioModel) renderFailurePanel() string {
	err := m.LastResult.err

	header := m.Styles.ErrorBox.Render("✗ " + generate.GetShortErrorMessage(err))

	hintStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Subtle)
	hint := hintStyle.Render(indentLines(generate.GetTroubleshootingHint(err), "  "))

	return lipgloss.JoinVertical(lipgloss.Left, header, hint)
}

// renderHelpContent renders the help modal body.
func (m StudioModel) renderHelpContent() string {
	title := lipgloss.NewStyle().Foreground(m.Styles.Palette.Primary).Bold(true).Render("KEYBOARD SHORTCUTS")

	rows := [][2]string{
		{"↑/k ↓/j", "move between fields"},
		{"enter/space", "edit field / press button"},
		{"tab", "jump to generate"},
		{"g", "generate now"},
		{"esc", "cancel a running generation"},
		{"v", "open the gallery"},
		{"r", "reset settings to defaults"},
		{"t", "toggle dark/light theme"},
		{"?", "this help"},
		{"q", "quit"},
	}

	var lines []string
	keyStyle := lipgloss.NewStyle().Foreground(m.Styles.Palette.Secondary).Width(14)
	for _, row := range rows {
		lines = append(lines, keyStyle.Render(row[0])+row[1])
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{title, ""}, append(lines, "", m.Styles.Subtitle.Render("Press any key to close"))...)...)

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Styles.Palette.Primary).
		Padding(1, 2).
		Width(SafeModalWidth(60, m.Width))

	return modalStyle.Render(content)
}

// formatGuidance renders a guidance value without a trailing ".0" when
// it lands on a whole number.
func formatGuidance(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// indentLines prefixes every line of a multi-line string.
func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
