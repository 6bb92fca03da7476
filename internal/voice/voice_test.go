package voice

import "testing"

func TestLanguageFromCode(t *testing.T) {
	cases := map[string]Language{
		"en": English, "EN-US": English, "english": English,
		"es": Spanish, "es-MX": Spanish, "spanish": Spanish,
	}
	for code, want := range cases {
		got, ok := LanguageFromCode(code)
		if !ok {
			t.Errorf("LanguageFromCode(%q) not recognized", code)
			continue
		}
		if got != want {
			t.Errorf("LanguageFromCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestLanguageFromCodeUnknown(t *testing.T) {
	if _, ok := LanguageFromCode("fr"); ok {
		t.Error("expected French to be unrecognized")
	}
}

func TestConfigRateClamp(t *testing.T) {
	c := NewConfig(English).WithRate(10000)
	if c.Rate != 500 {
		t.Errorf("expected rate clamped to 500, got %d", c.Rate)
	}
	c = c.WithRate(-5)
	if c.Rate != 50 {
		t.Errorf("expected rate clamped to 50, got %d", c.Rate)
	}
}

func TestConfigPitchClamp(t *testing.T) {
	c := NewConfig(English).WithPitch(500)
	if c.Pitch != 100 {
		t.Errorf("expected pitch clamped to 100, got %d", c.Pitch)
	}
}

func TestConfigVolumeCapsAt200(t *testing.T) {
	c := NewConfig(English).WithVolume(9999)
	if c.Volume != 200 {
		t.Errorf("expected volume capped at 200, got %d", c.Volume)
	}
}

func TestEffectivePitchHz(t *testing.T) {
	c := NewConfig(English).WithVariant(Male1).WithPitch(100)
	want := 100.0 * 1.5
	if got := c.EffectivePitchHz(); got != want {
		t.Errorf("EffectivePitchHz() = %f, want %f", got, want)
	}
}

func TestRateMultiplier(t *testing.T) {
	c := NewConfig(English).WithRate(350)
	if got := c.RateMultiplier(); got != 2.0 {
		t.Errorf("RateMultiplier() = %f, want 2.0", got)
	}
}
