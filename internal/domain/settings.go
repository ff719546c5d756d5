package domain

const (
	// MinBlurStrength and MaxBlurStrength bound Settings.BlurStrength.
	MinBlurStrength = 0
	MaxBlurStrength = 40

	// DefaultBlurStrength is used when nothing valid was persisted.
	DefaultBlurStrength = 12
)

// Settings holds the page background configuration.
// It always has a value; there is no "missing settings" state.
type Settings struct {
	// BackgroundImage is an absolute http/https URL, or empty for none.
	BackgroundImage string `json:"backgroundImage,omitempty"`

	BlurEnabled bool `json:"blurEnabled"`

	// BlurStrength is always within [MinBlurStrength, MaxBlurStrength].
	BlurStrength int `json:"blurStrength"`
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() Settings {
	return Settings{
		BlurEnabled:  false,
		BlurStrength: DefaultBlurStrength,
	}
}
