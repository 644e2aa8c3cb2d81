package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/easelart/easel/internal/gallery"
	"github.com/easelart/easel/internal/generate"
	"github.com/easelart/easel/internal/logging"
	"github.com/easelart/easel/internal/store"
	"github.com/easelart/easel/internal/theme"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenStudio  Screen = "studio"
	ScreenGallery Screen = "gallery"
)

// Messages for screen transitions and shared state changes
type openGalleryMsg struct{}
type openStudioMsg struct{}
type toggleThemeMsg struct{}

// Deps carries the wired application services into the TUI.
type Deps struct {
	Client  *generate.Client
	Gallery *gallery.Manager
	Blobs   *store.BlobStore
	Theme   *theme.Controller
}

// AppModel is the top-level coordinator model that manages screen
// transitions and the shared theme.
type AppModel struct {
	// Current screen state
	CurrentScreen Screen

	// Screen models
	StudioModel  StudioModel
	GalleryModel GalleryModel

	// Shared services
	Theme *theme.Controller

	// UI state
	Width  int
	Height int
}

// NewAppModel creates the application model with both screens wired.
func NewAppModel(deps Deps) AppModel {
	styles := NewStyles(deps.Theme.Palette())

	return AppModel{
		CurrentScreen: ScreenStudio,
		StudioModel:   NewStudioModel(deps, styles),
		GalleryModel:  NewGalleryModel(deps, styles),
		Theme:         deps.Theme,
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.StudioModel.Init()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// Propagate to all screens
		m.StudioModel.Width = msg.Width
		m.StudioModel.Height = msg.Height
		m.GalleryModel.Width = msg.Width
		m.GalleryModel.Height = msg.Height
		m.GalleryModel.resizeList()
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case toggleThemeMsg:
		if err := m.Theme.Toggle(); err != nil {
			logging.Warn("Theme preference not persisted", zap.Error(err))
		}
		styles := NewStyles(m.Theme.Palette())
		m.StudioModel.SetStyles(styles)
		m.GalleryModel.SetStyles(styles)
		return m, nil

	case openGalleryMsg:
		m.CurrentScreen = ScreenGallery
		m.GalleryModel.Refresh()
		return m, nil

	case openStudioMsg:
		m.CurrentScreen = ScreenStudio
		return m, nil
	}

	// Route to current screen
	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenStudio:
		updated, c := m.StudioModel.Update(msg)
		m.StudioModel = updated.(StudioModel)
		cmd = c

	case ScreenGallery:
		updated, c := m.GalleryModel.Update(msg)
		m.GalleryModel = updated.(GalleryModel)
		cmd = c
	}

	return m, cmd
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenStudio:
		return m.StudioModel.View()
	case ScreenGallery:
		return m.GalleryModel.View()
	default:
		return "Unknown screen"
	}
}

// Run launches the studio TUI and blocks until the user quits.
func Run(deps Deps) error {
	p := tea.NewProgram(NewAppModel(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("studio error: %w", err)
	}
	return nil
}
