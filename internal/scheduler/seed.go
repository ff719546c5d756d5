package scheduler

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/logger"
	"github.com/MrSnakeDoc/newtab/internal/sources/homepage"
	"github.com/MrSnakeDoc/newtab/internal/sources/netscape"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

// Adder is the part of the store the seeder needs.
type Adder interface {
	Empty() bool
	AddShortcut(draftURL, draftName, color, displayMode string) (domain.Shortcut, error)
}

// Records tells whether the collection was ever persisted.
type Records interface {
	ShortcutsRecorded(ctx context.Context) bool
}

// SeedSources lists the optional files to import from. Empty paths are skipped.
type SeedSources struct {
	ServicesFile  string // homepage services.yaml
	BookmarksFile string // homepage bookmarks.yaml
	HTMLFile      string // browser bookmark export
	HTMLFolder    string // restrict the export to this folder
	Limit         int    // 0 means no limit
}

// Seeder fills a never-persisted collection from the configured sources.
type Seeder struct {
	store   Adder
	records Records
	sources SeedSources
	logger  logger.Logger
}

// NewSeeder creates a new seeder. With nil records only an empty
// in-memory collection is checked.
func NewSeeder(store Adder, records Records, sources SeedSources, log logger.Logger) *Seeder {
	return &Seeder{
		store:   store,
		records: records,
		sources: sources,
		logger:  log,
	}
}

// Seed imports drafts through the store's AddShortcut so every seeded
// shortcut passes the same validation as one typed by hand. It only runs on
// first start: a collection the user emptied stays empty. A broken source is
// logged and skipped.
func (s *Seeder) Seed(ctx context.Context) int {
	if !s.store.Empty() {
		s.logger.Debug("collection not empty, skipping seed import")
		return 0
	}
	if s.records != nil && s.records.ShortcutsRecorded(ctx) {
		s.logger.Debug("shortcuts already persisted, skipping seed import")
		return 0
	}

	drafts := s.collect(ctx)
	if len(drafts) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(drafts))
	added := 0
	for _, d := range drafts {
		if ctx.Err() != nil {
			break
		}
		if s.sources.Limit > 0 && added >= s.sources.Limit {
			break
		}

		canonical, err := validate.ValidateHTTPURL(validate.NormalizeURL(d.URL))
		if err != nil {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}

		if _, err := s.store.AddShortcut(d.URL, d.Name, d.Color, d.DisplayMode); err != nil {
			s.logger.Warn("skipping seed entry",
				logger.String("url", d.URL),
				logger.Error(err))
			continue
		}
		added++
	}

	s.logger.Info("seeded shortcuts", logger.Int("count", added))
	return added
}

// collect reads every configured source concurrently and returns their
// drafts in source order (services, bookmarks, export).
func (s *Seeder) collect(ctx context.Context) []domain.Draft {
	type source struct {
		kind string
		path string
		read func() ([]domain.Draft, error)
	}
	sources := []source{
		{"services", s.sources.ServicesFile, s.readServices},
		{"bookmarks", s.sources.BookmarksFile, s.readBookmarks},
		{"bookmark export", s.sources.HTMLFile, func() ([]domain.Draft, error) {
			return netscape.ParseFile(s.sources.HTMLFile, s.sources.HTMLFolder)
		}},
	}

	results := make([][]domain.Draft, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		if src.path == "" {
			continue
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			drafts, err := src.read()
			s.logSource(src.kind, src.path, err)
			results[i] = drafts
			return nil // a broken source never blocks the others
		})
	}
	_ = g.Wait()

	var drafts []domain.Draft
	for _, r := range results {
		drafts = append(drafts, r...)
	}
	return drafts
}

func (s *Seeder) readServices() ([]domain.Draft, error) {
	config, err := homepage.NewLoader(s.sources.ServicesFile).Load()
	if err != nil {
		return nil, err
	}
	return homepage.NewMapper().MapServices(config)
}

func (s *Seeder) readBookmarks() ([]domain.Draft, error) {
	config, err := homepage.NewBookmarkLoader(s.sources.BookmarksFile).Load()
	if err != nil {
		return nil, err
	}
	return homepage.NewBookmarkMapper().MapBookmarks(config)
}

func (s *Seeder) logSource(kind, path string, err error) {
	if err != nil {
		s.logger.Warn("failed to read seed source",
			logger.String("source", kind),
			logger.String("path", path),
			logger.Error(err))
		return
	}
	s.logger.Debug("read seed source",
		logger.String("source", kind),
		logger.String("path", path))
}
