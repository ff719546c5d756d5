package icon

import (
	"sync"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

// Kind is what a tile renders.
type Kind string

const (
	KindIcon    Kind = "icon"
	KindInitial Kind = "initial"
)

// Display is the render-time decision for one shortcut.
type Display struct {
	Kind    Kind   `json:"kind"`
	IconURL string `json:"iconUrl,omitempty"`
	Initial string `json:"initial"`
}

// Resolver derives favicon URLs and remembers, per shortcut id, which icons
// failed to load during this process lifetime.
type Resolver struct {
	base string

	mu     sync.RWMutex
	failed map[string]struct{} // shortcut ID -> failed once
}

// NewResolver creates a resolver for the given favicon service base URL.
func NewResolver(base string) *Resolver {
	if base == "" {
		base = DefaultServiceURL
	}
	return &Resolver{
		base:   base,
		failed: make(map[string]struct{}),
	}
}

// FaviconURL returns the service URL for rawURL, or "" when it cannot be built.
func (r *Resolver) FaviconURL(rawURL string) string {
	u, _ := ResolveFaviconURL(r.base, rawURL)
	return u
}

// MarkFailed records that the icon for shortcut id failed to load.
// The flag is never cleared. Ids that no longer exist are accepted.
func (r *Resolver) MarkFailed(id string) {
	if id == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.failed[id] = struct{}{}
}

// Failed reports whether an icon failure was recorded for id.
func (r *Resolver) Failed(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.failed[id]
	return ok
}

// Display decides between the remote icon and the initial glyph.
func (r *Resolver) Display(s domain.Shortcut) Display {
	d := Display{
		Kind:    KindInitial,
		Initial: validate.DeriveInitial(s.Name, s.URL),
	}

	if s.DisplayMode == domain.DisplayText {
		return d
	}
	if s.IconURL == "" || r.Failed(s.ID) {
		return d
	}

	d.Kind = KindIcon
	d.IconURL = s.IconURL
	return d
}
