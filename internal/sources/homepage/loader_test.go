package homepage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoaderLoad(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantHref string
	}{
		{
			name: "plain href",
			yaml: `---
- Media:
    - Jellyfin:
        icon: jellyfin.svg
        href: https://jellyfin.home.arpa
        description: Movies
        widget:
          type: jellyfin
`,
			wantHref: "https://jellyfin.home.arpa",
		},
		{
			name: "templated href becomes empty",
			yaml: `---
- Media:
    - Jellyfin:
        href: {{HOMEPAGE_VAR_JELLYFIN_URL}}
`,
			wantHref: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := NewLoader(writeSeed(t, "services.yaml", tt.yaml)).Load()
			require.NoError(t, err)
			require.Len(t, config, 1)
			assert.Equal(t, tt.wantHref, config[0]["Media"][0]["Jellyfin"].Href)
		})
	}
}

func TestLoaderErrors(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	assert.ErrorContains(t, err, "failed to read services file")

	_, err = NewLoader(writeSeed(t, "services.yaml", "- [unbalanced")).Load()
	assert.ErrorContains(t, err, "failed to parse services yaml")

	_, err = NewBookmarkLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	assert.ErrorContains(t, err, "failed to read bookmarks file")
}

func TestStripTemplateVariables(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"href: {{HOMEPAGE_VAR_URL}}", `href: ""`},
		{"user: {{HOMEPAGE_VAR_A}} pass: {{HOMEPAGE_FILE_B}}", `user: "" pass: ""`},
		{"plain text", "plain text"},
	}
	for _, tt := range tests {
		if got := string(stripTemplateVariables([]byte(tt.in))); got != tt.want {
			t.Errorf("stripTemplateVariables(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBookmarkLoaderLoad(t *testing.T) {
	path := writeSeed(t, "bookmarks.yaml", `---
- Developer:
    - Github:
        - abbr: GH
          href: https://github.com/
    - Docs:
        - abbr: GO
          href: https://go.dev/doc/
`)

	config, err := NewBookmarkLoader(path).Load()
	require.NoError(t, err)

	drafts, err := NewBookmarkMapper().MapBookmarks(config)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	urls := []string{drafts[0].URL, drafts[1].URL}
	assert.ElementsMatch(t, []string{"https://github.com/", "https://go.dev/doc/"}, urls)
}
