package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/logger"
	"github.com/MrSnakeDoc/newtab/internal/persist"
	"github.com/MrSnakeDoc/newtab/internal/store"
)

type fakeAdder struct {
	existing int
	added    []domain.Draft
	fail     string
}

func (f *fakeAdder) Empty() bool { return f.existing == 0 && len(f.added) == 0 }

func (f *fakeAdder) AddShortcut(u, n, c, m string) (domain.Shortcut, error) {
	if n == f.fail {
		return domain.Shortcut{}, errors.New("rejected")
	}
	f.added = append(f.added, domain.Draft{URL: u, Name: n, Color: c, DisplayMode: m})
	return domain.Shortcut{ID: n, URL: u, Name: n}, nil
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const servicesYAML = `---
- Media:
    - Jellyfin:
        href: https://jellyfin.home.lan
    - Sonarr:
        href: https://sonarr.home.lan
`

const bookmarksYAML = `---
- Dev:
    - Github:
        - abbr: GH
          href: https://github.com/
    - Jellyfin again:
        - abbr: JF
          href: HTTPS://JELLYFIN.home.lan/
`

const bookmarkHTML = `<DL><p>
<DT><A HREF="https://go.dev/">Go</A>
</DL>`

func TestSeederImportsAllSources(t *testing.T) {
	adder := &fakeAdder{}
	s := NewSeeder(adder, nil, SeedSources{
		ServicesFile:  writeFile(t, "services.yaml", servicesYAML),
		BookmarksFile: writeFile(t, "bookmarks.yaml", bookmarksYAML),
		HTMLFile:      writeFile(t, "bookmarks.html", bookmarkHTML),
	}, logger.New("error", false))

	n := s.Seed(context.Background())

	assert.Equal(t, 4, n, "duplicate jellyfin url is imported once")
	names := make([]string, 0, len(adder.added))
	for _, d := range adder.added {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Jellyfin", "Sonarr", "Github", "Go"}, names)
}

func TestSeederSkipsNonEmptyCollection(t *testing.T) {
	adder := &fakeAdder{existing: 1}
	s := NewSeeder(adder, nil, SeedSources{
		ServicesFile: writeFile(t, "services.yaml", servicesYAML),
	}, logger.New("error", false))

	assert.Equal(t, 0, s.Seed(context.Background()))
	assert.Empty(t, adder.added)
}

func TestSeederToleratesBrokenSources(t *testing.T) {
	adder := &fakeAdder{fail: "Sonarr"}
	s := NewSeeder(adder, nil, SeedSources{
		ServicesFile:  writeFile(t, "services.yaml", servicesYAML),
		BookmarksFile: filepath.Join(t.TempDir(), "missing.yaml"),
		HTMLFile:      writeFile(t, "broken.yaml", "::: not yaml :::"),
	}, logger.New("error", false))

	assert.Equal(t, 1, s.Seed(context.Background()))
	require.Len(t, adder.added, 1)
	assert.Equal(t, "Jellyfin", adder.added[0].Name)
}

func TestSeederLimit(t *testing.T) {
	adder := &fakeAdder{}
	s := NewSeeder(adder, nil, SeedSources{
		ServicesFile: writeFile(t, "services.yaml", servicesYAML),
		Limit:        1,
	}, logger.New("error", false))

	assert.Equal(t, 1, s.Seed(context.Background()))
}

func TestSeederRespectsEmptiedCollection(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, persist.KeyShortcuts, "[]"))
	gateway := persist.NewGateway(kv, nil, logger.New("error", false))

	adder := &fakeAdder{}
	s := NewSeeder(adder, gateway, SeedSources{
		ServicesFile: writeFile(t, "services.yaml", servicesYAML),
	}, logger.New("error", false))

	assert.Equal(t, 0, s.Seed(ctx))
	assert.Empty(t, adder.added)
}

func TestSeederRunsOnFirstStart(t *testing.T) {
	gateway := persist.NewGateway(store.NewMemory(), nil, logger.New("error", false))

	adder := &fakeAdder{}
	s := NewSeeder(adder, gateway, SeedSources{
		ServicesFile: writeFile(t, "services.yaml", servicesYAML),
	}, logger.New("error", false))

	assert.Equal(t, 2, s.Seed(context.Background()))
}
