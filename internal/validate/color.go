package validate

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/MrSnakeDoc/newtab/internal/domain"
)

// Presets are the swatches offered by the add form. Presets[0] is the
// fallback for missing or unparseable colors.
var Presets = []string{
	"#4f46e5",
	"#0ea5e9",
	"#10b981",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#ec4899",
	"#64748b",
}

// DefaultColor returns the fallback preset.
func DefaultColor() string {
	return Presets[0]
}

// ParseColor canonicalizes "#rgb", "#rrggbb" or the same without "#"
// into lower-case "#rrggbb".
func ParseColor(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return "", false
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return "", false
		}
	}

	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

// NormalizeColor returns the canonical color or DefaultColor.
func NormalizeColor(raw string) string {
	if c, ok := ParseColor(raw); ok {
		return c
	}
	return DefaultColor()
}

// ParseDisplayMode maps raw input to a DisplayMode; anything unknown is auto.
func ParseDisplayMode(raw string) domain.DisplayMode {
	m := domain.DisplayMode(strings.ToLower(strings.TrimSpace(raw)))
	if m.Valid() {
		return m
	}
	return domain.DisplayAuto
}

// ClampBlur clamps n into [MinBlurStrength, MaxBlurStrength].
func ClampBlur(n int) int {
	switch {
	case n < domain.MinBlurStrength:
		return domain.MinBlurStrength
	case n > domain.MaxBlurStrength:
		return domain.MaxBlurStrength
	default:
		return n
	}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
