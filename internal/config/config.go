package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel      string // "debug" | "info" | "warn" | "error"
	PrettyLog     bool   // true => zap dev (color), false => zap prod (JSON)
	LogFile       string // optional, also write JSON logs to this rotating file
	LogMaxSizeMB  int    // rotate after this size
	LogMaxBackups int    // rotated files to keep (0 = all)
	LogMaxAgeDays int    // days to keep rotated files (0 = forever)

	StoreBackend string        // "sqlite" | "redis" | "memory"
	SQLitePath   string        // database file for the sqlite backend
	WriteTimeout time.Duration // bound on a single background write

	FaviconServiceURL string        // base URL of the favicon service
	LongPressDelay    time.Duration // press duration that arms deletion
	LabelMaxChars     int           // tile label width in characters

	SeedServicesFile  string // optional homepage services.yaml imported into an empty board
	SeedBookmarksFile string // optional homepage bookmarks.yaml
	SeedHTMLFile      string // optional browser bookmark export
	SeedHTMLFolder    string // only import links under this folder of the export
	SeedLimit         int    // max shortcuts to seed (0 = no limit)

	// Redis (only read when StoreBackend is "redis")
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts    []string // optional, restrict access to specific Host headers
	AllowedCIDRS    []string // optional, restrict access to specific IP (e.g. "1.2.3.4, 5.6.7.8")
	TrustProxy      bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
	RateLimitBurst  int      // mutating requests allowed in a burst per IP
	RateLimitPerMin int      // sustained mutating requests per minute per IP
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("NEWTAB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("NEWTAB_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:      getenv("NEWTAB_LOG_LEVEL", "info"),
		PrettyLog:     mustBool("NEWTAB_PRETTY_LOG", true),
		LogFile:       getenv("NEWTAB_LOG_FILE", ""),
		LogMaxSizeMB:  getenvInt("NEWTAB_LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getenvInt("NEWTAB_LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getenvInt("NEWTAB_LOG_MAX_AGE_DAYS", 28),

		// Storage
		StoreBackend: strings.ToLower(getenv("NEWTAB_STORE_BACKEND", BackendSQLite)),
		SQLitePath:   getenv("NEWTAB_SQLITE_PATH", "/data/newtab.db"),
		WriteTimeout: mustDuration("NEWTAB_WRITE_TIMEOUT", 5*time.Second),

		// Board behavior
		FaviconServiceURL: getenv("NEWTAB_FAVICON_SERVICE_URL", "https://www.google.com/s2/favicons"),
		LongPressDelay:    mustDuration("NEWTAB_LONG_PRESS_DELAY", 480*time.Millisecond),
		LabelMaxChars:     getenvInt("NEWTAB_LABEL_MAX_CHARS", 12),

		// Seed import
		SeedServicesFile:  getenv("NEWTAB_SEED_SERVICES_FILE", ""),
		SeedBookmarksFile: getenv("NEWTAB_SEED_BOOKMARKS_FILE", ""),
		SeedHTMLFile:      getenv("NEWTAB_SEED_HTML_FILE", ""),
		SeedHTMLFolder:    getenv("NEWTAB_SEED_HTML_FOLDER", ""),
		SeedLimit:         getenvInt("NEWTAB_SEED_LIMIT", 0),

		// Access restrictions
		AllowedHosts:    splitAndTrim(getenv("NEWTAB_ALLOWED_HOSTS", "")),
		AllowedCIDRS:    parseAllowedIPs(getenv("NEWTAB_ALLOWED_CIDRS", "")),
		TrustProxy:      mustBool("NEWTAB_TRUST_PROXY", false),
		RateLimitBurst:  getenvInt("NEWTAB_RATE_LIMIT_BURST", 30),
		RateLimitPerMin: getenvInt("NEWTAB_RATE_LIMIT_PER_MIN", 120),
	}

	switch cfg.StoreBackend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		loadRedis(cfg)
	default:
		panic(fmt.Sprintf("❌ FATAL: NEWTAB_STORE_BACKEND must be one of sqlite, redis, memory (got %q)", cfg.StoreBackend))
	}

	if cfg.LongPressDelay <= 0 {
		panic("❌ FATAL: NEWTAB_LONG_PRESS_DELAY must be positive")
	}
	if cfg.LabelMaxChars <= 0 {
		panic("❌ FATAL: NEWTAB_LABEL_MAX_CHARS must be positive")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// loadRedis reads the redis settings; address and DB are required.
func loadRedis(cfg *Config) {
	cfg.RedisAddr = requireEnv("NEWTAB_REDIS_ADDR")
	cfg.RedisUser = getenv("NEWTAB_REDIS_USERNAME", "default")
	cfg.RedisPasswordRequired = mustBool("NEWTAB_REDIS_PASSWORD_REQUIRED", true)
	cfg.RedisPassword = getenv("NEWTAB_REDIS_PASSWORD", "")
	cfg.RedisDB = requireEnvInt("NEWTAB_REDIS_DB")
	cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
	cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
	cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
	cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
	cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
	cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
	cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
	cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
	cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("❌ FATAL: NEWTAB_REDIS_PASSWORD is required when NEWTAB_REDIS_PASSWORD_REQUIRED=true")
	}
}

// helpers
func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func requireEnvInt(key string) int {
	v := requireEnv(key)
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
}

// getenvInt falls back to def when the value is unset or not an integer.
func getenvInt(key string, def int) int {
	if i, err := strconv.Atoi(getenv(key, "")); err == nil {
		return i
	}
	return def
}

// mustBool and mustDuration fall back to def when unset and panic on a
// value that does not parse.
func mustBool(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid boolean value for %s: %s", key, v))
	}
	return b
}

func mustDuration(key string, def time.Duration) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid duration value for %s: %s", key, v))
	}
	return d
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
