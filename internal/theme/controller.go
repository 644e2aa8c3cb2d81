package theme

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/easelart/easel/internal/logging"
)

// StateKey is the key the theme preference is stored under. The stored
// value is "true" for dark mode, "false" for light mode.
const StateKey = "darkMode"

// Repository persists the theme preference.
// *store.Value satisfies this interface.
type Repository interface {
	Load() (string, bool)
	Save(value string) error
}

// Controller tracks the active theme and persists changes. Dark mode is
// the default: only an explicit stored "false" selects the light theme,
// so a missing or unreadable preference never surprises the user with a
// bright screen.
type Controller struct {
	mu   sync.Mutex
	repo Repository
	dark bool
}

// NewController creates a controller initialized from persisted state.
func NewController(repo Repository) *Controller {
	c := &Controller{repo: repo, dark: true}
	if raw, ok := repo.Load(); ok && raw == "false" {
		c.dark = false
	}
	return c
}

// IsDark reports whether the dark theme is active.
func (c *Controller) IsDark() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dark
}

// Palette returns the palette for the active theme.
func (c *Controller) Palette() Palette {
	if c.IsDark() {
		return Dark()
	}
	return Light()
}

// Toggle switches between dark and light and persists the choice. The
// in-memory theme flips even if persistence fails, so the session keeps
// the look the user asked for.
func (c *Controller) Toggle() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dark = !c.dark
	logging.Debug("Theme switched", zap.String("theme", c.name()))
	return c.persist()
}

// SetDark selects a theme explicitly and persists the choice.
func (c *Controller) SetDark(dark bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dark == dark {
		return nil
	}
	c.dark = dark
	return c.persist()
}

// persist writes the current preference. Callers hold c.mu.
func (c *Controller) persist() error {
	value := "true"
	if !c.dark {
		value = "false"
	}
	if err := c.repo.Save(value); err != nil {
		return fmt.Errorf("failed to persist theme preference: %w", err)
	}
	return nil
}

func (c *Controller) name() string {
	if c.dark {
		return "dark"
	}
	return "light"
}
