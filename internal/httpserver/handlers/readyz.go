package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/newtab/internal/httpserver/deps"
	"github.com/MrSnakeDoc/newtab/internal/logger"
)

type storeStatus struct {
	Backend string `json:"backend"`
	OK      bool   `json:"ok"`
	Impact  string `json:"impact,omitempty"`
	Error   string `json:"error,omitempty"`
}

type readyzResponse struct {
	Ready     bool        `json:"ready"`
	Shortcuts int         `json:"shortcuts"`
	Store     storeStatus `json:"store"`
}

// Readyz pings the key-value store. A failing store still serves the board
// from memory, so it is reported as degraded with a 503.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := checkStore(r.Context(), d)

		resp := readyzResponse{
			Ready:     status.OK,
			Shortcuts: len(d.Store.Shortcuts()),
			Store:     status,
		}

		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, d.Logger, code, resp)
	}
}

func checkStore(ctx context.Context, d deps.Deps) storeStatus {
	s := storeStatus{Backend: d.StoreBackend}
	if d.KV == nil {
		s.OK = true
		s.Impact = "in-memory only"
		return s
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.KV.Ping(ctx); err != nil {
		d.Logger.Warn("store ping failed", logger.String("backend", d.StoreBackend), logger.Error(err))
		s.Impact = "changes are kept in memory only"
		s.Error = err.Error()
		return s
	}
	s.OK = true
	return s
}
