package validate

import (
	"testing"

	"github.com/MrSnakeDoc/newtab/internal/domain"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "#4F46E5", want: "#4f46e5", wantOK: true},
		{input: "10b981", want: "#10b981", wantOK: true},
		{input: "#abc", want: "#aabbcc", wantOK: true},
		{input: " #ffffff ", want: "#ffffff", wantOK: true},
		{input: "#12345g", wantOK: false},
		{input: "red", wantOK: false},
		{input: "", wantOK: false},
		{input: "#1234567", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseColor(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeColorFallsBackToFirstPreset(t *testing.T) {
	if got := NormalizeColor("not-a-color"); got != Presets[0] {
		t.Errorf("NormalizeColor() = %q, want %q", got, Presets[0])
	}
	for _, p := range Presets {
		if got := NormalizeColor(p); got != p {
			t.Errorf("preset %q normalized to %q", p, got)
		}
	}
}

func TestParseDisplayMode(t *testing.T) {
	tests := []struct {
		input string
		want  domain.DisplayMode
	}{
		{"auto", domain.DisplayAuto},
		{"icon", domain.DisplayIcon},
		{"text", domain.DisplayText},
		{" TEXT ", domain.DisplayText},
		{"", domain.DisplayAuto},
		{"banner", domain.DisplayAuto},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseDisplayMode(tt.input); got != tt.want {
				t.Errorf("ParseDisplayMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampBlur(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 0},
		{0, 0},
		{20, 20},
		{40, 40},
		{41, 40},
		{1000, 40},
	}
	for _, tt := range tests {
		if got := ClampBlur(tt.in); got != tt.want {
			t.Errorf("ClampBlur(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
