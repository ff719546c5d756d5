package icon

import (
	"testing"

	"github.com/MrSnakeDoc/newtab/internal/domain"
)

func TestResolveFaviconURL(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "origin only",
			base:   "https://icons.example/s2",
			input:  "https://github.com/golang/go",
			want:   "https://icons.example/s2?domain_url=https%3A%2F%2Fgithub.com&sz=128",
			wantOK: true,
		},
		{
			name:   "port kept",
			base:   "https://icons.example/s2",
			input:  "http://localhost:3000/x",
			want:   "https://icons.example/s2?domain_url=http%3A%2F%2Flocalhost%3A3000&sz=128",
			wantOK: true,
		},
		{
			name:   "default base",
			input:  "https://example.com",
			want:   DefaultServiceURL + "?domain_url=https%3A%2F%2Fexample.com&sz=128",
			wantOK: true,
		},
		{name: "no scheme", input: "example.com", wantOK: false},
		{name: "garbage", input: "http://[::1", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveFaviconURL(tt.base, tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ResolveFaviconURL() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ResolveFaviconURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolverDisplay(t *testing.T) {
	r := NewResolver("")
	withIcon := domain.Shortcut{
		ID:          "a",
		URL:         "https://github.com/",
		Name:        "GitHub",
		IconURL:     r.FaviconURL("https://github.com/"),
		DisplayMode: domain.DisplayAuto,
	}

	tests := []struct {
		name     string
		shortcut domain.Shortcut
		want     Kind
	}{
		{name: "auto with icon", shortcut: withIcon, want: KindIcon},
		{name: "icon mode with icon", shortcut: with(withIcon, func(s *domain.Shortcut) { s.DisplayMode = domain.DisplayIcon }), want: KindIcon},
		{name: "text mode", shortcut: with(withIcon, func(s *domain.Shortcut) { s.DisplayMode = domain.DisplayText }), want: KindInitial},
		{name: "no icon url", shortcut: with(withIcon, func(s *domain.Shortcut) { s.IconURL = "" }), want: KindInitial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Display(tt.shortcut)
			if got.Kind != tt.want {
				t.Errorf("Display().Kind = %v, want %v", got.Kind, tt.want)
			}
			if got.Initial != "G" {
				t.Errorf("Display().Initial = %q, want %q", got.Initial, "G")
			}
		})
	}
}

func TestResolverFailureIsPerShortcut(t *testing.T) {
	r := NewResolver("")
	iconURL := r.FaviconURL("https://example.com/")
	a := domain.Shortcut{ID: "a", URL: "https://example.com/", Name: "A", IconURL: iconURL, DisplayMode: domain.DisplayAuto}
	b := domain.Shortcut{ID: "b", URL: "https://example.com/", Name: "B", IconURL: iconURL, DisplayMode: domain.DisplayAuto}

	r.MarkFailed("a")

	if got := r.Display(a).Kind; got != KindInitial {
		t.Errorf("failed shortcut Kind = %v, want %v", got, KindInitial)
	}
	if got := r.Display(b).Kind; got != KindIcon {
		t.Errorf("sibling with same iconUrl Kind = %v, want %v", got, KindIcon)
	}

	// A re-added shortcut gets a fresh id and starts over.
	readded := a
	readded.ID = "c"
	if got := r.Display(readded).Kind; got != KindIcon {
		t.Errorf("re-added shortcut Kind = %v, want %v", got, KindIcon)
	}
}

func TestResolverMarkFailedUnknownIDIsSafe(t *testing.T) {
	r := NewResolver("")
	r.MarkFailed("deleted-long-ago")
	r.MarkFailed("")

	if !r.Failed("deleted-long-ago") {
		t.Error("Failed() = false after MarkFailed")
	}
	if r.Failed("") {
		t.Error("empty id should never be recorded")
	}
}

func with(s domain.Shortcut, mutate func(*domain.Shortcut)) domain.Shortcut {
	mutate(&s)
	return s
}
