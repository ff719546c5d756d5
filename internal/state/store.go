package state

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/icon"
	"github.com/MrSnakeDoc/newtab/internal/index"
	"github.com/MrSnakeDoc/newtab/internal/logger"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

// DefaultLabelMaxChars is the tile label width in user-perceived characters.
const DefaultLabelMaxChars = 12

var (
	ErrInvalidURL = errors.New("url must be an absolute http or https address")
	ErrEmptyName  = errors.New("name must not be empty")
)

// Loader supplies the persisted state at startup.
type Loader interface {
	LoadShortcuts(ctx context.Context) []domain.Shortcut
	LoadSettings(ctx context.Context) domain.Settings
}

// Saver receives a snapshot after every mutation. It must not block.
type Saver interface {
	SaveShortcuts(shortcuts []domain.Shortcut)
	SaveSettings(settings domain.Settings)
}

// Store is the authoritative in-memory state: the shortcut collection,
// the settings record and the transient UI state around them.
type Store struct {
	idx      *index.MemoryIndex
	icons    *icon.Resolver
	saver    Saver
	logger   logger.Logger
	labelMax int
	newID    func() string

	mu           sync.RWMutex
	settings     domain.Settings
	armed        string
	addOpen      bool
	settingsOpen bool
	addDraft     domain.Draft
	bgDraft      string
}

// NewStore creates a store with default settings and an empty collection.
// A nil saver keeps everything in memory.
func NewStore(idx *index.MemoryIndex, icons *icon.Resolver, saver Saver, log logger.Logger, labelMax int) *Store {
	if labelMax <= 0 {
		labelMax = DefaultLabelMaxChars
	}
	return &Store{
		idx:      idx,
		icons:    icons,
		saver:    saver,
		logger:   log,
		labelMax: labelMax,
		newID:    func() string { return uuid.New().String() },
		settings: domain.DefaultSettings(),
		addDraft: emptyDraft(),
	}
}

// Load replaces the in-memory state with what the loader returns.
func (s *Store) Load(ctx context.Context, l Loader) {
	shortcuts := l.LoadShortcuts(ctx)
	settings := l.LoadSettings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.idx.Replace(shortcuts)
	s.settings = settings
	s.armed = ""

	s.logger.Info("state loaded",
		logger.Int("shortcuts", s.idx.Count()),
		logger.Bool("background", settings.BackgroundImage != ""))
}

// ─── Shortcuts ───────────────────────────────────────────────────────────

// AddShortcut validates the draft values and appends a new shortcut.
// On success the add form is reset and its panel closed.
func (s *Store) AddShortcut(draftURL, draftName, color, displayMode string) (domain.Shortcut, error) {
	sc, err := s.buildShortcut(draftURL, draftName, color, displayMode)
	if err != nil {
		return domain.Shortcut{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for !s.idx.Append(sc) {
		sc.ID = s.newID()
	}
	s.addDraft = emptyDraft()
	s.addOpen = false
	s.saveShortcutsLocked()

	s.logger.Debug("shortcut added",
		logger.String("id", sc.ID),
		logger.String("url", sc.URL))
	return sc, nil
}

func (s *Store) buildShortcut(draftURL, draftName, color, displayMode string) (domain.Shortcut, error) {
	normalized := validate.NormalizeURL(draftURL)
	if normalized == "" {
		return domain.Shortcut{}, ErrInvalidURL
	}
	canonical, err := validate.ValidateHTTPURL(normalized)
	if err != nil {
		return domain.Shortcut{}, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	name := strings.TrimSpace(draftName)
	if name == "" {
		return domain.Shortcut{}, ErrEmptyName
	}

	return domain.Shortcut{
		ID:          s.newID(),
		URL:         canonical,
		Name:        name,
		Color:       validate.NormalizeColor(color),
		IconURL:     s.icons.FaviconURL(canonical),
		DisplayMode: validate.ParseDisplayMode(displayMode),
	}, nil
}

// RemoveShortcut deletes id if present and always clears the armed state.
func (s *Store) RemoveShortcut(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.armed = ""
	if !s.idx.Delete(id) {
		return
	}
	s.saveShortcutsLocked()
	s.logger.Debug("shortcut removed", logger.String("id", id))
}

// Shortcuts returns the collection in display order.
func (s *Store) Shortcuts() []domain.Shortcut {
	return s.idx.All()
}

// Shortcut looks up one shortcut by id.
func (s *Store) Shortcut(id string) (domain.Shortcut, bool) {
	return s.idx.Get(id)
}

// Empty reports whether the collection has no shortcuts.
func (s *Store) Empty() bool {
	return s.idx.Count() == 0
}

// MarkIconFailed records an icon load failure. Unknown ids are accepted.
func (s *Store) MarkIconFailed(id string) {
	s.icons.MarkFailed(id)
}

// ─── Armed for deletion ──────────────────────────────────────────────────

// Arm marks id as the single shortcut showing its delete affordance.
// Ids not in the collection are ignored.
func (s *Store) Arm(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.idx.Get(id); !ok {
		return
	}
	s.armed = id
}

func (s *Store) Disarm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.armed = ""
}

func (s *Store) Armed() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.armed
}

// ─── Settings ────────────────────────────────────────────────────────────

func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ApplyBackground sets the background image. Blank input clears it; any
// other value must be an http(s) URL or the current background is kept.
func (s *Store) ApplyBackground(draftURL string) error {
	trimmed := strings.TrimSpace(draftURL)

	var canonical string
	if trimmed != "" {
		c, err := validate.ValidateHTTPURL(trimmed)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidURL, err)
		}
		canonical = c
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.BackgroundImage = canonical
	s.bgDraft = canonical
	s.saveSettingsLocked()
	return nil
}

func (s *Store) ClearBackground() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.BackgroundImage = ""
	s.bgDraft = ""
	s.saveSettingsLocked()
}

func (s *Store) SetBlurEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.BlurEnabled = enabled
	s.saveSettingsLocked()
}

// SetBlurStrength stores n clamped into the valid range.
func (s *Store) SetBlurStrength(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.BlurStrength = validate.ClampBlur(n)
	s.saveSettingsLocked()
}

// ─── Persistence ─────────────────────────────────────────────────────────

// Snapshots are taken under s.mu so the saver sees them in mutation order.

func (s *Store) saveShortcutsLocked() {
	if s.saver == nil {
		return
	}
	s.saver.SaveShortcuts(s.idx.All())
}

func (s *Store) saveSettingsLocked() {
	if s.saver == nil {
		return
	}
	s.saver.SaveSettings(s.settings)
}
