// Package theme manages the dark/light appearance preference and the
// color palettes derived from it.
//
// The preference persists across sessions under StateKey; dark is the
// default whenever no usable preference exists. Screens obtain their
// colors through Controller.Palette rather than fixed constants so a
// toggle takes effect on the next render.
package theme
