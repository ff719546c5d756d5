package state

import (
	"strings"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

// AddForm is the add-shortcut panel's draft.
type AddForm struct {
	Open  bool         `json:"open"`
	Draft domain.Draft `json:"draft"`
}

// CanSubmit mirrors the enabled state of the submit button.
func (f AddForm) CanSubmit() bool {
	if strings.TrimSpace(f.Draft.Name) == "" {
		return false
	}
	normalized := validate.NormalizeURL(f.Draft.URL)
	return normalized != "" && validate.IsHTTPURL(normalized)
}

// SettingsForm is the settings panel's draft.
type SettingsForm struct {
	Open            bool   `json:"open"`
	BackgroundDraft string `json:"backgroundDraft"`
}

// CanApply mirrors the enabled state of the apply button. A blank draft is
// allowed and clears the background.
func (f SettingsForm) CanApply() bool {
	trimmed := strings.TrimSpace(f.BackgroundDraft)
	return trimmed == "" || validate.IsHTTPURL(trimmed)
}

func emptyDraft() domain.Draft {
	return domain.Draft{
		Color:       validate.DefaultColor(),
		DisplayMode: string(domain.DisplayAuto),
	}
}

// ─── Panels ──────────────────────────────────────────────────────────────

func (s *Store) OpenAddPanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addOpen = true
	s.settingsOpen = false
}

// CloseAddPanel hides the panel; the draft is kept for the next open.
func (s *Store) CloseAddPanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addOpen = false
}

// OpenSettingsPanel seeds the background draft from the current settings.
func (s *Store) OpenSettingsPanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settingsOpen = true
	s.addOpen = false
	s.bgDraft = s.settings.BackgroundImage
}

func (s *Store) CloseSettingsPanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settingsOpen = false
}

// ─── Drafts ──────────────────────────────────────────────────────────────

func (s *Store) SetAddDraft(d domain.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addDraft = d
}

func (s *Store) AddDraft() AddForm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return AddForm{Open: s.addOpen, Draft: s.addDraft}
}

// SubmitAddDraft runs AddShortcut with the current draft. On failure the
// draft and panel are left as they are.
func (s *Store) SubmitAddDraft() (domain.Shortcut, error) {
	d := s.AddDraft().Draft
	return s.AddShortcut(d.URL, d.Name, d.Color, d.DisplayMode)
}

func (s *Store) SetBackgroundDraft(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bgDraft = raw
}

func (s *Store) SettingsDraft() SettingsForm {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SettingsForm{Open: s.settingsOpen, BackgroundDraft: s.bgDraft}
}

// SubmitBackgroundDraft applies the current background draft.
func (s *Store) SubmitBackgroundDraft() error {
	return s.ApplyBackground(s.SettingsDraft().BackgroundDraft)
}
