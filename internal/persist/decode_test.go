package persist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/newtab/internal/domain"
	"github.com/MrSnakeDoc/newtab/internal/icon"
	"github.com/MrSnakeDoc/newtab/internal/validate"
)

func testFavicon(rawURL string) string {
	u, _ := icon.ResolveFaviconURL("https://icons.test/s2", rawURL)
	return u
}

func TestDecodeShortcuts_KeepsWellFormedSubset(t *testing.T) {
	raw := `[
		{"id":"a","url":"https://a.example/","name":"A","color":"#10b981","displayMode":"text","iconUrl":"https://icons.test/a.png"},
		{"id":"b","url":"https://b.example/","name":"B"},
		{"id":42,"url":"https://c.example/","name":"C"},
		{"id":"d","url":"https://d.example/"},
		{"id":"e","url":"ftp://e.example/","name":"E"},
		"just a string",
		null,
		17,
		{"id":"f","url":"https://f.example/","name":"F","color":12,"displayMode":"banner","iconUrl":null},
		{"id":"a","url":"https://dup.example/","name":"Duplicate"},
		{"id":"","url":"https://g.example/","name":"G"}
	]`

	got, dropped := DecodeShortcuts(raw, testFavicon)

	require.Len(t, got, 3)
	assert.Equal(t, 8, dropped)

	assert.Equal(t, domain.Shortcut{
		ID:          "a",
		URL:         "https://a.example/",
		Name:        "A",
		Color:       "#10b981",
		IconURL:     "https://icons.test/a.png",
		DisplayMode: domain.DisplayText,
	}, got[0])

	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, validate.DefaultColor(), got[1].Color)
	assert.Equal(t, domain.DisplayAuto, got[1].DisplayMode)
	assert.Equal(t, testFavicon("https://b.example/"), got[1].IconURL)

	assert.Equal(t, "f", got[2].ID)
	assert.Equal(t, validate.DefaultColor(), got[2].Color)
	assert.Equal(t, domain.DisplayAuto, got[2].DisplayMode)
	assert.Equal(t, testFavicon("https://f.example/"), got[2].IconURL)
}

func TestDecodeShortcuts_NotAnArray(t *testing.T) {
	for _, raw := range []string{"", "{", `{"id":"a"}`, "null", `"[]"`, "not json at all"} {
		t.Run(raw, func(t *testing.T) {
			got, _ := DecodeShortcuts(raw, testFavicon)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestDecodeShortcuts_InvalidColorFallsBack(t *testing.T) {
	got, _ := DecodeShortcuts(`[{"id":"a","url":"https://a.example/","name":"A","color":"chartreuse"}]`, nil)
	require.Len(t, got, 1)
	assert.Equal(t, validate.DefaultColor(), got[0].Color)
	assert.Empty(t, got[0].IconURL, "nil favicon func leaves iconUrl absent")
}

func TestDecodeShortcuts_RoundTrip(t *testing.T) {
	in := []domain.Shortcut{
		{ID: "1", URL: "https://go.dev/", Name: "Go", Color: "#4f46e5", IconURL: testFavicon("https://go.dev/"), DisplayMode: domain.DisplayAuto},
		{ID: "2", URL: "http://localhost:8080/admin", Name: "Admin", Color: "#ef4444", IconURL: testFavicon("http://localhost:8080/admin"), DisplayMode: domain.DisplayIcon},
		{ID: "3", URL: "https://news.ycombinator.com/", Name: "HN", Color: "#f59e0b", DisplayMode: domain.DisplayText, IconURL: "https://icons.test/hn.png"},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	got, dropped := DecodeShortcuts(string(data), testFavicon)
	assert.Zero(t, dropped)
	assert.Equal(t, in, got)
}

func TestDecodeSettings(t *testing.T) {
	defaults := domain.DefaultSettings()

	tests := []struct {
		name string
		raw  string
		want domain.Settings
	}{
		{name: "empty", raw: "", want: defaults},
		{name: "garbage", raw: "<<<", want: defaults},
		{name: "array", raw: "[]", want: defaults},
		{
			name: "well formed",
			raw:  `{"backgroundImage":"https://img.example/bg.jpg","blurEnabled":true,"blurStrength":20}`,
			want: domain.Settings{BackgroundImage: "https://img.example/bg.jpg", BlurEnabled: true, BlurStrength: 20},
		},
		{
			name: "invalid background discarded",
			raw:  `{"backgroundImage":"javascript:alert(1)","blurEnabled":true,"blurStrength":5}`,
			want: domain.Settings{BlurEnabled: true, BlurStrength: 5},
		},
		{
			name: "strength clamped high",
			raw:  `{"blurStrength":400}`,
			want: domain.Settings{BlurStrength: domain.MaxBlurStrength},
		},
		{
			name: "strength clamped low",
			raw:  `{"blurStrength":-3}`,
			want: domain.Settings{BlurStrength: domain.MinBlurStrength},
		},
		{
			name: "fractional strength rounded",
			raw:  `{"blurStrength":7.6}`,
			want: domain.Settings{BlurStrength: 8},
		},
		{
			name: "wrong types ignored",
			raw:  `{"backgroundImage":5,"blurEnabled":"yes","blurStrength":"10"}`,
			want: defaults,
		},
		{
			name: "null strength keeps default",
			raw:  `{"blurStrength":null}`,
			want: defaults,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeSettings(tt.raw))
		})
	}
}
