package persist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/logger"
	"github.com/MrSnakeDoc/newtab/internal/store"
)

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, error) {
	return "", errors.New("storage disabled")
}

func (failingKV) Set(context.Context, string, string) error {
	return errors.New("quota exceeded")
}

type panickingKV struct{}

func (panickingKV) Get(context.Context, string) (string, error) { panic("backend exploded") }
func (panickingKV) Set(context.Context, string, string) error   { panic("backend exploded") }

func newTestGateway(kv store.KV) *Gateway {
	return NewGateway(kv, testFavicon, logger.New("error", false))
}

func TestGateway_ShortcutsRoundTrip(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(store.NewMemory())

	in := []domain.Shortcut{
		{ID: "1", URL: "https://go.dev/", Name: "Go", Color: "#4f46e5", IconURL: testFavicon("https://go.dev/"), DisplayMode: domain.DisplayAuto},
		{ID: "2", URL: "https://pkg.go.dev/", Name: "Packages", Color: "#0ea5e9", DisplayMode: domain.DisplayText, IconURL: testFavicon("https://pkg.go.dev/")},
	}
	g.SaveShortcuts(ctx, in)

	assert.Equal(t, in, g.LoadShortcuts(ctx))
}

func TestGateway_SettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(store.NewMemory())

	in := domain.Settings{BackgroundImage: "https://img.example/bg.jpg", BlurEnabled: true, BlurStrength: 33}
	g.SaveSettings(ctx, in)

	assert.Equal(t, in, g.LoadSettings(ctx))
}

func TestGateway_MissingKeysYieldDefaults(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(store.NewMemory())

	shortcuts := g.LoadShortcuts(ctx)
	assert.NotNil(t, shortcuts)
	assert.Empty(t, shortcuts)
	assert.Equal(t, domain.DefaultSettings(), g.LoadSettings(ctx))
}

func TestGateway_SavedNilCollectionIsEmptyArray(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	g := newTestGateway(kv)

	g.SaveShortcuts(ctx, nil)

	raw, err := kv.Get(ctx, KeyShortcuts)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestGateway_CorruptValues(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, KeyShortcuts, `[{"id":"ok","url":"https://ok.example/","name":"OK"},{"broken":`))
	require.NoError(t, kv.Set(ctx, KeySettings, `{"blurEnabled":`))
	g := newTestGateway(kv)

	// Truncated JSON cannot be split into elements, so nothing survives.
	assert.Empty(t, g.LoadShortcuts(ctx))
	assert.Equal(t, domain.DefaultSettings(), g.LoadSettings(ctx))
}

func TestGateway_FailingStoreIsSwallowed(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(failingKV{})

	assert.NotPanics(t, func() {
		g.SaveShortcuts(ctx, []domain.Shortcut{{ID: "x", URL: "https://x.example/", Name: "X"}})
		g.SaveSettings(ctx, domain.DefaultSettings())
	})
	assert.Empty(t, g.LoadShortcuts(ctx))
	assert.Equal(t, domain.DefaultSettings(), g.LoadSettings(ctx))
}

func TestGateway_PanickingStoreIsRecovered(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(panickingKV{})

	assert.NotPanics(t, func() {
		assert.Empty(t, g.LoadShortcuts(ctx))
		assert.Equal(t, domain.DefaultSettings(), g.LoadSettings(ctx))
		g.SaveShortcuts(ctx, nil)
		g.SaveSettings(ctx, domain.DefaultSettings())
	})
}

func TestGateway_NilStore(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(nil)

	assert.Empty(t, g.LoadShortcuts(ctx))
	assert.Equal(t, domain.DefaultSettings(), g.LoadSettings(ctx))
	g.SaveSettings(ctx, domain.DefaultSettings())
}

func TestGateway_ShortcutsRecorded(t *testing.T) {
	ctx := context.Background()

	kv := store.NewMemory()
	g := newTestGateway(kv)
	assert.False(t, g.ShortcutsRecorded(ctx), "fresh store")

	g.SaveShortcuts(ctx, nil)
	assert.True(t, g.ShortcutsRecorded(ctx), "an emptied collection is still a record")
	assert.Empty(t, g.LoadShortcuts(ctx))

	assert.True(t, newTestGateway(failingKV{}).ShortcutsRecorded(ctx))
	assert.False(t, NewGateway(nil, nil, logger.New("error", false)).ShortcutsRecorded(ctx))
}
