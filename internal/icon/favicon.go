package icon

import (
	"net/url"

	"github.com/MrSnakeDoc/newtab/internal/validate"
)

const (
	// DefaultServiceURL is the favicon service used when none is configured.
	DefaultServiceURL = "https://www.google.com/s2/favicons"

	// Size is the requested icon edge in pixels.
	Size = "128"
)

// ResolveFaviconURL builds the favicon service URL for the origin of rawURL:
// <base>?domain_url=<escaped origin>&sz=128
// It reports false when rawURL is not an absolute http(s) URL.
func ResolveFaviconURL(base, rawURL string) (string, bool) {
	origin, ok := validate.Origin(rawURL)
	if !ok {
		return "", false
	}
	if base == "" {
		base = DefaultServiceURL
	}
	return base + "?domain_url=" + url.QueryEscape(origin) + "&sz=" + Size, true
}
