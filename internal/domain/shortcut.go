package domain

// DisplayMode controls how a shortcut tile is rendered.
type DisplayMode string

const (
	// DisplayAuto shows the remote icon when available, else the initial.
	DisplayAuto DisplayMode = "auto"
	// DisplayIcon prefers the remote icon (falls back like auto).
	DisplayIcon DisplayMode = "icon"
	// DisplayText always shows the initial glyph.
	DisplayText DisplayMode = "text"
)

// Valid reports whether m is one of the enumerated modes.
func (m DisplayMode) Valid() bool {
	switch m {
	case DisplayAuto, DisplayIcon, DisplayText:
		return true
	default:
		return false
	}
}

// Shortcut is a user-configured tile linking to a URL.
//
// Shortcuts are created once and are read-only afterwards; the only
// mutation is deletion. The collection is persisted as a whole snapshot.
type Shortcut struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is opaque and unique within the collection.
	ID string `json:"id"`

	// ─────────────────────────────
	// Target
	// ─────────────────────────────

	// URL is always an absolute http or https URL.
	URL string `json:"url"`

	// Name is the user label, stored trimmed.
	Name string `json:"name"`

	// ─────────────────────────────
	// Presentation
	// ─────────────────────────────

	// Color is a "#rrggbb" string.
	Color string `json:"color"`

	// IconURL is the favicon service URL, empty when none could be derived.
	IconURL string `json:"iconUrl,omitempty"`

	// DisplayMode is always one of auto, icon, text.
	DisplayMode DisplayMode `json:"displayMode"`
}

// Draft holds raw, unvalidated input for a new shortcut.
// It is what the add form submits and what seed sources produce.
type Draft struct {
	URL         string `json:"url"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	DisplayMode string `json:"displayMode"`
}
