package theme

import (
	"fmt"
	"testing"
)

type memRepo struct {
	value string
	ok    bool
	fail  bool
}

func (m *memRepo) Load() (string, bool) { return m.value, m.ok }

func (m *memRepo) Save(value string) error {
	if m.fail {
		return fmt.Errorf("disk full")
	}
	m.value = value
	m.ok = true
	return nil
}

func TestDefaultIsDark(t *testing.T) {
	tests := []struct {
		name string
		repo *memRepo
	}{
		{"no stored preference", &memRepo{}},
		{"empty value", &memRepo{value: "", ok: true}},
		{"malformed value", &memRepo{value: "yes", ok: true}},
		{"numeric value", &memRepo{value: "1", ok: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.repo)
			if !c.IsDark() {
				t.Error("IsDark() = false, want dark default")
			}
		})
	}
}

func TestStoredPreferenceRestored(t *testing.T) {
	if c := NewController(&memRepo{value: "false", ok: true}); c.IsDark() {
		t.Error("stored light preference should restore light mode")
	}
	if c := NewController(&memRepo{value: "true", ok: true}); !c.IsDark() {
		t.Error("stored dark preference should restore dark mode")
	}
}

func TestTogglePersists(t *testing.T) {
	repo := &memRepo{}
	c := NewController(repo)

	if err := c.Toggle(); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if c.IsDark() {
		t.Error("IsDark() = true after toggling from dark")
	}
	if repo.value != "false" {
		t.Errorf("persisted value = %q, want false", repo.value)
	}

	if err := c.Toggle(); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !c.IsDark() {
		t.Error("IsDark() = false after toggling back")
	}
	if repo.value != "true" {
		t.Errorf("persisted value = %q, want true", repo.value)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	repo := &memRepo{}

	c := NewController(repo)
	if err := c.Toggle(); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	// A fresh controller over the same repository sees the toggled theme.
	if reloaded := NewController(repo); reloaded.IsDark() {
		t.Error("reloaded controller should restore the light preference")
	}
}

func TestToggleSurvivesSaveFailure(t *testing.T) {
	repo := &memRepo{fail: true}
	c := NewController(repo)

	err := c.Toggle()
	if err == nil {
		t.Fatal("Toggle() should surface the persistence failure")
	}
	if c.IsDark() {
		t.Error("the session theme should flip even when persistence fails")
	}
}

func TestSetDark(t *testing.T) {
	repo := &memRepo{}
	c := NewController(repo)

	if err := c.SetDark(false); err != nil {
		t.Fatalf("SetDark() error = %v", err)
	}
	if c.IsDark() {
		t.Error("IsDark() = true after SetDark(false)")
	}

	// Setting the current theme again writes nothing.
	repo.value = "sentinel"
	if err := c.SetDark(false); err != nil {
		t.Fatalf("SetDark() error = %v", err)
	}
	if repo.value != "sentinel" {
		t.Error("SetDark() with the active theme should not rewrite state")
	}
}

func TestPaletteFollowsTheme(t *testing.T) {
	c := NewController(&memRepo{})

	if got := c.Palette(); got.Name != "dark" {
		t.Errorf("Palette().Name = %q, want dark", got.Name)
	}

	if err := c.Toggle(); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if got := c.Palette(); got.Name != "light" {
		t.Errorf("Palette().Name = %q, want light", got.Name)
	}
}

func TestPalettesDiffer(t *testing.T) {
	dark, light := Dark(), Light()

	if dark.Text == light.Text {
		t.Error("dark and light text colors should differ")
	}
	if dark.Background == light.Background {
		t.Error("dark and light backgrounds should differ")
	}
}
