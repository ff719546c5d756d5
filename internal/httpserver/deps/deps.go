package deps

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/newtab/internal/gesture"
	"github.com/MrSnakeDoc/newtab/internal/logger"
	"github.com/MrSnakeDoc/newtab/internal/state"
	"github.com/MrSnakeDoc/newtab/internal/store"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	TimeNow      func() time.Time // for testing, defaults to time.Now
	AllowedHosts []string         // Host headers allowed to access the server
	AllowedCIDRS []string         // IPs allowed to access the server
	TrustProxy   bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)

	Store        *state.Store        // authoritative board state
	Gestures     *gesture.Controller // tap vs long-press classification
	KV           store.Pinger        // key-value backend, pinged by readyz
	StoreBackend string              // "sqlite" | "redis" | "memory"

	// RateLimit guards mutating routes; nil means no limit.
	RateLimit func(http.Handler) http.Handler
}

// Now returns d.TimeNow() or time.Now().
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
