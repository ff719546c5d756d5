package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MrSnakeDoc/newtab/internal/config"
	"github.com/MrSnakeDoc/newtab/internal/gesture"
	"github.com/MrSnakeDoc/newtab/internal/httpserver"
	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
	"github.com/MrSnakeDoc/newtab/internal/icon"
	"github.com/MrSnakeDoc/newtab/internal/index"
	"github.com/MrSnakeDoc/newtab/internal/logger"
	"github.com/MrSnakeDoc/newtab/internal/persist"
	"github.com/MrSnakeDoc/newtab/internal/redis"
	"github.com/MrSnakeDoc/newtab/internal/scheduler"
	"github.com/MrSnakeDoc/newtab/internal/state"
	"github.com/MrSnakeDoc/newtab/internal/store"
	redisstore "github.com/MrSnakeDoc/newtab/internal/store/redis"
	"github.com/MrSnakeDoc/newtab/internal/store/sqlite"
	"github.com/MrSnakeDoc/newtab/internal/utils"
	"github.com/MrSnakeDoc/newtab/internal/version"
)

// kvBackend is a key-value store the app owns and must close.
type kvBackend interface {
	store.KV
	store.Pinger
}

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *httpserver.Server
	kv     kvBackend
	closer io.Closer // nil for the memory backend
	writer *scheduler.Writer
	seeder *scheduler.Seeder
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.NewWithOptions(logger.Options{
		Level:      cfg.LogLevel,
		Pretty:     cfg.PrettyLog,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})

	// Open the store early - fail fast if it is unusable
	kv, closer, err := openStore(context.Background(), cfg, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to open %s store: %v", cfg.StoreBackend, err)
		os.Exit(1)
	}
	loggerClient.Info("store initialized", logger.String("backend", cfg.StoreBackend))

	icons := icon.NewResolver(cfg.FaviconServiceURL)
	gateway := persist.NewGateway(kv, icons.FaviconURL, loggerClient.With(logger.String("component", "persist")))
	writer := scheduler.NewWriter(gateway, loggerClient.With(logger.String("component", "writer")), cfg.WriteTimeout)

	board := state.NewStore(index.NewMemoryIndex(), icons, writer, loggerClient, cfg.LabelMaxChars)
	board.Load(context.Background(), gateway)

	seeder := scheduler.NewSeeder(board, gateway, scheduler.SeedSources{
		ServicesFile:  cfg.SeedServicesFile,
		BookmarksFile: cfg.SeedBookmarksFile,
		HTMLFile:      cfg.SeedHTMLFile,
		HTMLFolder:    cfg.SeedHTMLFolder,
		Limit:         cfg.SeedLimit,
	}, loggerClient.With(logger.String("component", "seed")))

	gestures := gesture.NewController(board, cfg.LongPressDelay, nil, loggerClient.With(logger.String("component", "gesture")))

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		Store:        board,
		Gestures:     gestures,
		KV:           kv,
		StoreBackend: cfg.StoreBackend,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:    cfg,
		logger: loggerClient,
		server: server,
		kv:     kv,
		closer: closer,
		writer: writer,
		seeder: seeder,
	}
}

// openStore connects the configured backend.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (kvBackend, io.Closer, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		log.Infof("Opening SQLite store at %s", cfg.SQLitePath)
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case config.BackendRedis:
		log.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		s := redisstore.NewStore(client)
		return s, s, nil

	case config.BackendMemory:
		log.Warn("memory store selected, shortcuts are lost on restart")
		return store.NewMemory(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting newtab v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Info(version.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the background writer before anything can mutate the board
	if err := a.writer.Start(ctx); err != nil {
		return fmt.Errorf("failed to start writer: %w", err)
	}

	if n := a.seeder.Seed(ctx); n > 0 {
		a.logger.Info("seeded empty board", logger.Int("shortcuts", n))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to stop server: %w", err)
	}

	// Drain pending writes, then release the store
	a.writer.Stop()
	if utils.CloseLogged(a.closer, a.cfg.StoreBackend+" store", a.logger) && a.closer != nil {
		a.logger.Info("✅ Store closed cleanly")
	}

	_ = a.logger.Sync()
	if runErr != nil {
		return runErr
	}
	a.logger.Info("✅ newtab stopped cleanly")
	return nil
}
