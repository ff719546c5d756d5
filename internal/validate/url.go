package validate

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when a candidate is not an absolute http(s) URL.
var ErrInvalidURL = errors.New("invalid http url")

// NormalizeURL trims raw and prefixes "https://" unless it already starts
// with http:// or https:// (case-insensitive).
// The result is only syntactically normalized; it may still fail ValidateHTTPURL.
func NormalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return s
	}
	return "https://" + s
}

// ValidateHTTPURL parses candidate as an absolute URL and returns its
// canonical form. Only the http and https schemes are accepted.
//
// Canonical form: lower-cased scheme and host, default port dropped,
// empty path replaced by "/".
// Example: "https://Example.com:443" -> "https://example.com/"
func ValidateHTTPURL(candidate string) (string, error) {
	s := strings.TrimSpace(candidate)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	// url.Parse lower-cases the scheme already
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme %q not allowed", ErrInvalidURL, u.Scheme)
	}
	if u.Opaque != "" || u.Hostname() == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	// "https://ftp://x.com" parses with host "ftp:"
	if strings.HasSuffix(u.Host, ":") {
		return "", fmt.Errorf("%w: empty port in %q", ErrInvalidURL, u.Host)
	}

	host := strings.ToLower(u.Hostname())
	port := u.Port()
	if isDefaultPort(u.Scheme, port) {
		port = ""
	}
	if port != "" {
		u.Host = net.JoinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		u.Host = "[" + host + "]"
	} else {
		u.Host = host
	}

	if u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}

	return u.String(), nil
}

// IsHTTPURL reports whether candidate passes ValidateHTTPURL.
func IsHTTPURL(candidate string) bool {
	_, err := ValidateHTTPURL(candidate)
	return err == nil
}

// Origin returns "scheme://host[:port]" for an absolute http(s) URL.
func Origin(raw string) (string, bool) {
	canonical, err := ValidateHTTPURL(raw)
	if err != nil {
		return "", false
	}
	u, err := url.Parse(canonical)
	if err != nil {
		return "", false
	}
	return u.Scheme + "://" + u.Host, true
}

func isDefaultPort(scheme, port string) bool {
	return (scheme == "http" && port == "80") || (scheme == "https" && port == "443")
}
