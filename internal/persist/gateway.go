package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/logger"
	"github.com/MrSnakeDoc/newtab/internal/store"
)

const (
	// KeyShortcuts holds the serialized shortcut array.
	KeyShortcuts = "shortcuts"
	// KeySettings holds the serialized settings object.
	KeySettings = "settings"
)

// Gateway loads and saves the two persisted records through a KV store.
//
// Loads are total: whatever the store returns (or throws), the caller
// gets a valid value. Saves are best effort and never report failure.
type Gateway struct {
	kv      store.KV
	favicon FaviconFunc
	logger  logger.Logger
}

// NewGateway creates a gateway. favicon may be nil, in which case
// shortcuts stored without iconUrl load without one.
func NewGateway(kv store.KV, favicon FaviconFunc, log logger.Logger) *Gateway {
	return &Gateway{
		kv:      kv,
		favicon: favicon,
		logger:  log,
	}
}

// LoadShortcuts returns the persisted collection, or an empty one.
func (g *Gateway) LoadShortcuts(ctx context.Context) (shortcuts []domain.Shortcut) {
	shortcuts = []domain.Shortcut{}
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("recovered while loading shortcuts",
				logger.String("panic", fmt.Sprint(r)))
			shortcuts = []domain.Shortcut{}
		}
	}()

	raw, ok := g.read(ctx, KeyShortcuts)
	if !ok {
		return shortcuts
	}

	loaded, dropped := DecodeShortcuts(raw, g.favicon)
	if dropped > 0 {
		g.logger.Warn("dropped malformed shortcuts",
			logger.Int("dropped", dropped),
			logger.Int("kept", len(loaded)))
	}
	return loaded
}

// ShortcutsRecorded reports whether a shortcuts record exists, even an
// empty one. Read errors other than a missing key count as recorded, so a
// flaky store never triggers a first-run import.
func (g *Gateway) ShortcutsRecorded(ctx context.Context) bool {
	if g.kv == nil {
		return false
	}
	_, err := g.kv.Get(ctx, KeyShortcuts)
	return !errors.Is(err, store.ErrNotFound)
}

// SaveShortcuts writes the collection snapshot. Failures are logged only.
func (g *Gateway) SaveShortcuts(ctx context.Context, shortcuts []domain.Shortcut) {
	if shortcuts == nil {
		shortcuts = []domain.Shortcut{}
	}
	g.write(ctx, KeyShortcuts, shortcuts)
}

// LoadSettings returns the persisted settings, or defaults.
func (g *Gateway) LoadSettings(ctx context.Context) (settings domain.Settings) {
	settings = domain.DefaultSettings()
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("recovered while loading settings",
				logger.String("panic", fmt.Sprint(r)))
			settings = domain.DefaultSettings()
		}
	}()

	raw, ok := g.read(ctx, KeySettings)
	if !ok {
		return settings
	}
	return DecodeSettings(raw)
}

// SaveSettings writes the settings. Failures are logged only.
func (g *Gateway) SaveSettings(ctx context.Context, settings domain.Settings) {
	g.write(ctx, KeySettings, settings)
}

func (g *Gateway) read(ctx context.Context, key string) (string, bool) {
	if g.kv == nil {
		return "", false
	}
	raw, err := g.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			g.logger.Debug("nothing persisted yet", logger.String("key", key))
		} else {
			g.logger.Warn("failed to read from store, using defaults",
				logger.String("key", key),
				logger.Error(err))
		}
		return "", false
	}
	return raw, true
}

func (g *Gateway) write(ctx context.Context, key string, v any) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Warn("recovered while writing to store",
				logger.String("key", key),
				logger.String("panic", fmt.Sprint(r)))
		}
	}()

	if g.kv == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		g.logger.Warn("failed to marshal record", logger.String("key", key), logger.Error(err))
		return
	}
	if err := g.kv.Set(ctx, key, string(data)); err != nil {
		g.logger.Warn("failed to persist record, keeping in-memory state",
			logger.String("key", key),
			logger.Error(err))
		return
	}
	g.logger.Debug("record persisted", logger.String("key", key), logger.Int("bytes", len(data)))
}
