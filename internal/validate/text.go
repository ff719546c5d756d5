package validate

import (
	"net/url"
	"strings"

	"github.com/rivo/uniseg"
)

const (
	// Ellipsis is appended to truncated labels.
	Ellipsis = "..."

	// PlaceholderInitial is shown when neither name nor host yields a glyph.
	PlaceholderInitial = "?"
)

// TruncateLabel trims text and cuts it to maxChars user-perceived
// characters (grapheme clusters), appending Ellipsis when cut.
func TruncateLabel(text string, maxChars int) string {
	s := strings.TrimSpace(text)
	if uniseg.GraphemeClusterCount(s) <= maxChars {
		return s
	}
	if maxChars <= 0 {
		return Ellipsis
	}

	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for n := 0; n < maxChars && g.Next(); n++ {
		b.WriteString(g.Str())
	}
	b.WriteString(Ellipsis)
	return b.String()
}

// DeriveInitial returns the glyph shown in place of a remote icon:
// the first character of the trimmed name as typed, else the first
// character of the URL host without "www.", upper-cased, else
// PlaceholderInitial.
func DeriveInitial(name, rawURL string) string {
	if first := firstGrapheme(strings.TrimSpace(name)); first != "" {
		return first
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return PlaceholderInitial
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if first := firstGrapheme(host); first != "" {
		return strings.ToUpper(first)
	}
	return PlaceholderInitial
}

// EscapeForCSSURL escapes text for use inside a quoted CSS url("...").
// Quotes and backslashes are escaped; line breaks are dropped since CSS
// strings cannot contain them.
func EscapeForCSSURL(text string) string {
	return cssURLReplacer.Replace(text)
}

var cssURLReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`'`, `\'`,
	"\n", "",
	"\r", "",
	"\f", "",
)

func firstGrapheme(s string) string {
	if s == "" {
		return ""
	}
	g := uniseg.NewGraphemes(s)
	if !g.Next() {
		return ""
	}
	return g.Str()
}
