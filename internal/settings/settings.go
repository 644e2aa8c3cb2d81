package settings

import "math"

// AspectRatio represents the aspect ratio for generated images.
type AspectRatio string

const (
	AspectRatio1x1  AspectRatio = "1:1"
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio3x4  AspectRatio = "3:4"
	AspectRatio3x2  AspectRatio = "3:2" // Photo landscape
	AspectRatio2x3  AspectRatio = "2:3" // Photo portrait
)

// StylePreset represents a named visual style appended to the prompt to
// bias generation.
type StylePreset string

const (
	StylePhotographic StylePreset = "photographic"
	StyleDigitalArt   StylePreset = "digital-art"
	StyleAnime        StylePreset = "anime"
	StyleCinematic    StylePreset = "cinematic"
	StyleFantasy      StylePreset = "fantasy"
	StyleNeonPunk     StylePreset = "neon-punk"
	StyleAbstract     StylePreset = "abstract"
)

// Quality represents the output quality tier.
type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHD       Quality = "hd"
)

// Numeric slider domains.
const (
	StepsMin  = 20
	StepsMax  = 50
	StepsStep = 5

	GuidanceMin  = 1.0
	GuidanceMax  = 20.0
	GuidanceStep = 0.5
)

// Defaults, also the reset tuple.
const (
	DefaultAspectRatio = AspectRatio1x1
	DefaultStylePreset = StylePhotographic
	DefaultQuality     = QualityStandard
	DefaultSteps       = 30
	DefaultGuidance    = 7.5
)

// Settings holds the current generation parameters. Every field always
// holds a value from its domain once initialized via Default.
type Settings struct {
	AspectRatio AspectRatio
	StylePreset StylePreset
	Quality     Quality
	Steps       int
	Guidance    float64
}

// Default returns settings holding the documented default tuple.
func Default() Settings {
	return Settings{
		AspectRatio: DefaultAspectRatio,
		StylePreset: DefaultStylePreset,
		Quality:     DefaultQuality,
		Steps:       DefaultSteps,
		Guidance:    DefaultGuidance,
	}
}

// Reset restores the default tuple atomically, regardless of prior state.
func (s *Settings) Reset() {
	*s = Default()
}

// SetAspectRatio replaces the aspect ratio. Out-of-domain values are
// ignored, keeping the closed-set invariant.
func (s *Settings) SetAspectRatio(a AspectRatio) {
	if a.Valid() {
		s.AspectRatio = a
	}
}

// SetStylePreset replaces the style preset. Out-of-domain values are
// ignored.
func (s *Settings) SetStylePreset(p StylePreset) {
	if p.Valid() {
		s.StylePreset = p
	}
}

// SetQuality replaces the quality tier. Out-of-domain values are ignored.
func (s *Settings) SetQuality(q Quality) {
	if q.Valid() {
		s.Quality = q
	}
}

// SetSteps replaces the step count, clamped to [StepsMin, StepsMax] and
// snapped to the nearest multiple of StepsStep.
func (s *Settings) SetSteps(v int) {
	if v < StepsMin {
		v = StepsMin
	}
	if v > StepsMax {
		v = StepsMax
	}
	offset := v - StepsMin
	v = StepsMin + (offset+StepsStep/2)/StepsStep*StepsStep
	if v > StepsMax {
		v = StepsMax
	}
	s.Steps = v
}

// SetGuidance replaces the guidance scale, clamped to
// [GuidanceMin, GuidanceMax] and snapped to the nearest GuidanceStep.
func (s *Settings) SetGuidance(v float64) {
	if v < GuidanceMin {
		v = GuidanceMin
	}
	if v > GuidanceMax {
		v = GuidanceMax
	}
	v = math.Round(v/GuidanceStep) * GuidanceStep
	if v > GuidanceMax {
		v = GuidanceMax
	}
	s.Guidance = v
}

// Valid reports whether the value is in the aspect ratio domain.
func (a AspectRatio) Valid() bool {
	switch a {
	case AspectRatio1x1, AspectRatio16x9, AspectRatio9x16,
		AspectRatio4x3, AspectRatio3x4, AspectRatio3x2, AspectRatio2x3:
		return true
	}
	return false
}

// Valid reports whether the value is in the style preset domain.
func (p StylePreset) Valid() bool {
	switch p {
	case StylePhotographic, StyleDigitalArt, StyleAnime, StyleCinematic,
		StyleFantasy, StyleNeonPunk, StyleAbstract:
		return true
	}
	return false
}

// Valid reports whether the value is in the quality domain.
func (q Quality) Valid() bool {
	return q == QualityStandard || q == QualityHD
}

// AspectRatios returns the selectable aspect ratios in display order.
func AspectRatios() []AspectRatio {
	return []AspectRatio{
		AspectRatio1x1, AspectRatio16x9, AspectRatio9x16,
		AspectRatio4x3, AspectRatio3x4, AspectRatio3x2, AspectRatio2x3,
	}
}

// StylePresets returns the selectable style presets in display order.
func StylePresets() []StylePreset {
	return []StylePreset{
		StylePhotographic, StyleDigitalArt, StyleAnime, StyleCinematic,
		StyleFantasy, StyleNeonPunk, StyleAbstract,
	}
}

// Qualities returns the selectable quality tiers in display order.
func Qualities() []Quality {
	return []Quality{QualityStandard, QualityHD}
}

// Label returns a human-friendly name for the preset.
func (p StylePreset) Label() string {
	switch p {
	case StylePhotographic:
		return "Photographic"
	case StyleDigitalArt:
		return "Digital Art"
	case StyleAnime:
		return "Anime"
	case StyleCinematic:
		return "Cinematic"
	case StyleFantasy:
		return "Fantasy"
	case StyleNeonPunk:
		return "Neon Punk"
	case StyleAbstract:
		return "Abstract"
	default:
		return string(p)
	}
}

// Label returns a human-friendly name for the quality tier.
func (q Quality) Label() string {
	switch q {
	case QualityHD:
		return "HD"
	default:
		return "Standard"
	}
}
