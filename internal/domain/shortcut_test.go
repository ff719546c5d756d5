package domain

import "testing"

func TestDisplayModeValid(t *testing.T) {
	tests := []struct {
		mode DisplayMode
		want bool
	}{
		{DisplayAuto, true},
		{DisplayIcon, true},
		{DisplayText, true},
		{"", false},
		{"AUTO", false},
		{"image", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := tt.mode.Valid(); got != tt.want {
				t.Errorf("DisplayMode(%q).Valid() = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.BackgroundImage != "" {
		t.Errorf("BackgroundImage = %q, want empty", s.BackgroundImage)
	}
	if s.BlurStrength < MinBlurStrength || s.BlurStrength > MaxBlurStrength {
		t.Errorf("BlurStrength = %d, out of range", s.BlurStrength)
	}
}
