package state

import (
	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/icon"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

// Tile is one rendered shortcut.
type Tile struct {
	ID          string             `json:"id"`
	URL         string             `json:"url"`
	Name        string             `json:"name"`
	Label       string             `json:"label"`
	Color       string             `json:"color"`
	DisplayMode domain.DisplayMode `json:"displayMode"`
	Display     icon.Display       `json:"display"`
	Armed       bool               `json:"armed"`
}

// Board is everything the page needs to render.
type Board struct {
	Tiles    []Tile          `json:"tiles"`
	Settings domain.Settings `json:"settings"`
	Armed    string          `json:"armed,omitempty"`
	AddForm  struct {
		AddForm
		CanSubmit bool `json:"canSubmit"`
	} `json:"addForm"`
	SettingsForm struct {
		SettingsForm
		CanApply bool `json:"canApply"`
	} `json:"settingsForm"`
	Presets []string `json:"presets"`
}

// Tiles renders the collection with the icon decision and truncated labels.
func (s *Store) Tiles() []Tile {
	armed := s.Armed()
	shortcuts := s.idx.All()

	tiles := make([]Tile, 0, len(shortcuts))
	for _, sc := range shortcuts {
		tiles = append(tiles, Tile{
			ID:          sc.ID,
			URL:         sc.URL,
			Name:        sc.Name,
			Label:       validate.TruncateLabel(sc.Name, s.labelMax),
			Color:       sc.Color,
			DisplayMode: sc.DisplayMode,
			Display:     s.icons.Display(sc),
			Armed:       sc.ID == armed,
		})
	}
	return tiles
}

// Board returns the full page view.
func (s *Store) Board() Board {
	var b Board
	b.Tiles = s.Tiles()
	b.Settings = s.Settings()
	b.Armed = s.Armed()

	add := s.AddDraft()
	b.AddForm.AddForm = add
	b.AddForm.CanSubmit = add.CanSubmit()

	set := s.SettingsDraft()
	b.SettingsForm.SettingsForm = set
	b.SettingsForm.CanApply = set.CanApply()

	b.Presets = append([]string(nil), validate.Presets...)
	return b
}
