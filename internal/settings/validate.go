package settings

import (
	"fmt"
	"strings"
)

// ParseAspectRatio parses a user-supplied aspect ratio string.
func ParseAspectRatio(s string) (AspectRatio, error) {
	a := AspectRatio(strings.TrimSpace(s))
	if !a.Valid() {
		return "", fmt.Errorf("invalid aspect ratio %q (valid: %s)", s, joinAspectRatios())
	}
	return a, nil
}

// ParseStylePreset parses a user-supplied style preset string.
func ParseStylePreset(s string) (StylePreset, error) {
	p := StylePreset(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid style preset %q (valid: %s)", s, joinStylePresets())
	}
	return p, nil
}

// ParseQuality parses a user-supplied quality string.
func ParseQuality(s string) (Quality, error) {
	q := Quality(strings.ToLower(strings.TrimSpace(s)))
	if !q.Valid() {
		return "", fmt.Errorf("invalid quality %q (valid: standard, hd)", s)
	}
	return q, nil
}

// ValidateSteps checks a user-supplied step count against the slider
// domain. Unlike SetSteps it rejects rather than snaps, so typos on the
// command line fail loudly.
func ValidateSteps(v int) error {
	if v < StepsMin || v > StepsMax {
		return fmt.Errorf("steps must be %d-%d, got %d", StepsMin, StepsMax, v)
	}
	if (v-StepsMin)%StepsStep != 0 {
		return fmt.Errorf("steps must be a multiple of %d between %d and %d, got %d", StepsStep, StepsMin, StepsMax, v)
	}
	return nil
}

// ValidateGuidance checks a user-supplied guidance scale against the
// slider domain.
func ValidateGuidance(v float64) error {
	if v < GuidanceMin || v > GuidanceMax {
		return fmt.Errorf("guidance must be %.1f-%.1f, got %g", GuidanceMin, GuidanceMax, v)
	}
	steps := v / GuidanceStep
	if steps != float64(int64(steps)) {
		return fmt.Errorf("guidance must be a multiple of %g, got %g", GuidanceStep, v)
	}
	return nil
}

func joinAspectRatios() string {
	var b strings.Builder
	for i, a := range AspectRatios() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(a))
	}
	return b.String()
}

func joinStylePresets() string {
	var b strings.Builder
	for i, p := range StylePresets() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(p))
	}
	return b.String()
}
