package persist

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

// FaviconFunc derives an icon URL for a shortcut URL, "" when it cannot.
type FaviconFunc func(rawURL string) string

// DecodeShortcuts parses a stored shortcut array element by element.
// Elements without string id/url/name, with a non-http(s) url, or with a
// duplicate id are dropped; the rest are coerced into valid shortcuts.
// It returns the kept shortcuts and the number of dropped elements.
// A value that is not a JSON array yields an empty collection.
func DecodeShortcuts(raw string, favicon FaviconFunc) ([]domain.Shortcut, int) {
	shortcuts := []domain.Shortcut{}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		return shortcuts, 0
	}

	seen := make(map[string]bool, len(elems))
	dropped := 0
	for _, elem := range elems {
		s, ok := decodeShortcut(elem, favicon)
		if !ok || seen[s.ID] {
			dropped++
			continue
		}
		seen[s.ID] = true
		shortcuts = append(shortcuts, s)
	}

	return shortcuts, dropped
}

func decodeShortcut(elem json.RawMessage, favicon FaviconFunc) (domain.Shortcut, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
		return domain.Shortcut{}, false
	}

	id, ok := stringField(fields, "id")
	if !ok || id == "" {
		return domain.Shortcut{}, false
	}
	rawURL, ok := stringField(fields, "url")
	if !ok {
		return domain.Shortcut{}, false
	}
	name, ok := stringField(fields, "name")
	if !ok {
		return domain.Shortcut{}, false
	}
	canonical, err := validate.ValidateHTTPURL(rawURL)
	if err != nil {
		return domain.Shortcut{}, false
	}

	s := domain.Shortcut{
		ID:          id,
		URL:         canonical,
		Name:        name,
		Color:       validate.DefaultColor(),
		DisplayMode: domain.DisplayAuto,
	}

	if c, ok := stringField(fields, "color"); ok {
		s.Color = validate.NormalizeColor(c)
	}
	if m, ok := stringField(fields, "displayMode"); ok {
		s.DisplayMode = validate.ParseDisplayMode(m)
	}

	if iconURL, ok := stringField(fields, "iconUrl"); ok && validate.IsHTTPURL(iconURL) {
		s.IconURL = iconURL
	} else if favicon != nil {
		s.IconURL = favicon(canonical)
	}

	return s, true
}

// DecodeSettings parses stored settings, falling back to defaults per field.
// An invalid background is discarded and blurStrength is clamped.
func DecodeSettings(raw string) domain.Settings {
	s := domain.DefaultSettings()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		return s
	}

	if bg, ok := stringField(fields, "backgroundImage"); ok {
		if canonical, err := validate.ValidateHTTPURL(bg); err == nil {
			s.BackgroundImage = canonical
		}
	}

	if v, ok := fields["blurEnabled"]; ok {
		var b bool
		if isLiteral(v, 't', 'f') && json.Unmarshal(v, &b) == nil {
			s.BlurEnabled = b
		}
	}

	if v, ok := fields["blurStrength"]; ok {
		var f float64
		if isLiteral(v, numberStart...) && json.Unmarshal(v, &f) == nil {
			s.BlurStrength = clampFloat(f)
		}
	}

	return s
}

// stringField returns fields[key] when it is a JSON string.
// null, numbers and objects are treated as absent.
func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	v, ok := fields[key]
	if !ok || !isLiteral(v, '"') {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

var numberStart = []byte("-0123456789")

func isLiteral(v json.RawMessage, first ...byte) bool {
	v = bytes.TrimSpace(v)
	if len(v) == 0 {
		return false
	}
	for _, b := range first {
		if v[0] == b {
			return true
		}
	}
	return false
}

func clampFloat(f float64) int {
	switch {
	case math.IsNaN(f) || f < domain.MinBlurStrength:
		return domain.MinBlurStrength
	case f > domain.MaxBlurStrength:
		return domain.MaxBlurStrength
	default:
		return validate.ClampBlur(int(math.Round(f)))
	}
}
