package settings

import "testing"

func TestDefault(t *testing.T) {
	s := Default()

	if s.AspectRatio != AspectRatio1x1 {
		t.Errorf("Default().AspectRatio = %v, want %v", s.AspectRatio, AspectRatio1x1)
	}
	if s.StylePreset != StylePhotographic {
		t.Errorf("Default().StylePreset = %v, want %v", s.StylePreset, StylePhotographic)
	}
	if s.Quality != QualityStandard {
		t.Errorf("Default().Quality = %v, want %v", s.Quality, QualityStandard)
	}
	if s.Steps != 30 {
		t.Errorf("Default().Steps = %v, want 30", s.Steps)
	}
	if s.Guidance != 7.5 {
		t.Errorf("Default().Guidance = %v, want 7.5", s.Guidance)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := Default()
	s.SetAspectRatio(AspectRatio16x9)
	s.SetStylePreset(StyleNeonPunk)
	s.SetQuality(QualityHD)
	s.SetSteps(50)
	s.SetGuidance(19.5)

	s.Reset()

	want := Default()
	if s != want {
		t.Errorf("Reset() = %+v, want %+v", s, want)
	}
}

func TestSettersReplaceOnlyTargetField(t *testing.T) {
	s := Default()
	s.SetStylePreset(StyleAnime)

	if s.StylePreset != StyleAnime {
		t.Errorf("StylePreset = %v, want %v", s.StylePreset, StyleAnime)
	}
	// Everything else untouched
	if s.AspectRatio != AspectRatio1x1 || s.Quality != QualityStandard ||
		s.Steps != 30 || s.Guidance != 7.5 {
		t.Errorf("SetStylePreset() modified unrelated fields: %+v", s)
	}
}

func TestEnumSettersIgnoreInvalid(t *testing.T) {
	s := Default()

	s.SetAspectRatio("5:4")
	if s.AspectRatio != AspectRatio1x1 {
		t.Errorf("SetAspectRatio(invalid) changed value to %v", s.AspectRatio)
	}

	s.SetStylePreset("vaporwave")
	if s.StylePreset != StylePhotographic {
		t.Errorf("SetStylePreset(invalid) changed value to %v", s.StylePreset)
	}

	s.SetQuality("ultra")
	if s.Quality != QualityStandard {
		t.Errorf("SetQuality(invalid) changed value to %v", s.Quality)
	}
}

func TestSetStepsClampAndSnap(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{20, 20},
		{50, 50},
		{30, 30},
		{10, 20},  // below min clamps
		{99, 50},  // above max clamps
		{33, 35},  // snaps up
		{32, 30},  // snaps down
		{22, 20},
		{48, 50},
	}

	for _, tt := range tests {
		s := Default()
		s.SetSteps(tt.in)
		if s.Steps != tt.want {
			t.Errorf("SetSteps(%d) = %d, want %d", tt.in, s.Steps, tt.want)
		}
	}
}

func TestSetGuidanceClampAndSnap(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1, 1},
		{20, 20},
		{7.5, 7.5},
		{0.2, 1},    // below min clamps
		{25, 20},    // above max clamps
		{7.3, 7.5},  // snaps up
		{7.2, 7},    // snaps down
		{19.9, 20},
	}

	for _, tt := range tests {
		s := Default()
		s.SetGuidance(tt.in)
		if s.Guidance != tt.want {
			t.Errorf("SetGuidance(%g) = %g, want %g", tt.in, s.Guidance, tt.want)
		}
	}
}

func TestDomainSizes(t *testing.T) {
	if got := len(AspectRatios()); got != 7 {
		t.Errorf("len(AspectRatios()) = %d, want 7", got)
	}
	if got := len(StylePresets()); got != 7 {
		t.Errorf("len(StylePresets()) = %d, want 7", got)
	}
	if got := len(Qualities()); got != 2 {
		t.Errorf("len(Qualities()) = %d, want 2", got)
	}

	for _, a := range AspectRatios() {
		if !a.Valid() {
			t.Errorf("AspectRatio %q should be valid", a)
		}
	}
	for _, p := range StylePresets() {
		if !p.Valid() {
			t.Errorf("StylePreset %q should be valid", p)
		}
	}
	for _, q := range Qualities() {
		if !q.Valid() {
			t.Errorf("Quality %q should be valid", q)
		}
	}
}

func TestStyleLabels(t *testing.T) {
	if got := StyleDigitalArt.Label(); got != "Digital Art" {
		t.Errorf("StyleDigitalArt.Label() = %q, want %q", got, "Digital Art")
	}
	if got := QualityHD.Label(); got != "HD" {
		t.Errorf("QualityHD.Label() = %q, want %q", got, "HD")
	}
}
