// Package settings holds the generation parameter domain: aspect ratio,
// style preset, quality tier and the two numeric sliders (steps, guidance).
//
// The enums are closed sets; setters ignore out-of-domain values and the
// numeric setters clamp and snap to the slider increments, so a Settings
// value initialized via Default can never leave its domain. Parse and
// Validate helpers exist for command-line input, where rejecting bad
// values beats silently correcting them.
package settings
