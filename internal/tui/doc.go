// Package tui implements the terminal user interface for the Easel studio.
//
// This package provides an interactive, full-screen TUI for generating images
// from text prompts and browsing the results. Built using the Bubble Tea
// framework, it follows the Elm architecture with immutable state updates and
// a clean Model-Update-View pattern.
//
// # Architecture
//
// The TUI is organized into two main screens:
//   - Studio: Prompt entry, generation settings, and the result panel
//   - Gallery: The rolling list of recent images with detail, export,
//     delete, and clear actions
//
// Both screens use a unified container pattern (RenderApplicationContainer)
// for consistent layout with header, content area, and context-sensitive
// footer. The top-level AppModel owns the screen switch and the shared theme.
//
// # Framework Components
//
// The TUI leverages Bubble Tea framework components throughout:
//   - bubbles/spinner: In-flight generation indicator
//   - bubbles/textarea: Multi-line prompt entry
//   - bubbles/textinput: Negative prompt entry
//   - bubbles/list: Gallery cards with a custom delegate
//   - bubbles/help: Context-aware help system
//   - lipgloss: Styling and layout
//
// # Usage Example
//
//	deps := tui.Deps{
//	    Client:  client,
//	    Gallery: manager,
//	    Blobs:   st.Blobs,
//	    Theme:   themes,
//	}
//	if err := tui.Run(deps); err != nil {
//	    log.Fatal(err)
//	}
//
// # Generation Flow
//
// The typical flow through the studio:
//
//  1. Studio Screen:
//     - Type a prompt (and optionally a negative prompt)
//     - Adjust aspect ratio, style preset, quality, steps, and guidance
//     - Press g (or the Generate button) to send one inference request
//     - The spinner runs while the request is in flight; further input is
//     ignored so only one request runs at a time
//     - Success shows the stored file path; failure shows a short message
//     plus troubleshooting hints
//
//  2. Gallery Screen:
//     - Press v from the studio to browse recent images
//     - Cards show the prompt, short ID, aspect ratio, and age
//     - Enter opens a detail modal, x exports the image to the current
//     directory, d and c open delete and clear confirmations
//
// # Inline Editing System
//
// The studio uses inline editing for all settings fields:
//   - Press Enter on a field to expand it in place
//   - Option pickers: arrow keys or digits select, Enter confirms, ESC
//     cancels
//   - Sliders: arrow keys step the value within its bounds, Enter confirms,
//     ESC cancels
//   - Text fields use bubbles/textinput; Enter or ESC leaves the field with
//     the typed text kept
//
// # Key Bindings
//
// Each screen has context-aware key bindings:
//   - Studio: ↑/↓ navigate fields, Enter edit, Tab jump to generate,
//     g generate, v gallery, r reset settings, t theme, ? help, q quit
//   - Gallery: ↑/↓ navigate, Enter details, x export, d delete, c clear,
//     esc back to studio, t theme, q quit
//   - Confirm modals: ←/→ choose button, Enter confirm, ESC cancel
//
// # Theming
//
// All styling flows from a theme.Palette resolved at startup and on every
// toggle of the t key. The dark palette is the default; the choice persists
// across sessions. Styles are rebuilt from the palette and pushed into both
// screens, so a toggle takes effect immediately everywhere.
//
// # State Management
//
// The TUI maintains immutable state with explicit updates:
//   - Models contain all state (no global variables)
//   - Update() returns new model + commands
//   - View() is pure function of model state
//   - Commands represent async operations
//
// Generation runs as a command off the UI goroutine and reports back with a
// single completion message carrying the gallery record, the stored image
// resource, and any error.
package tui
