package validate

import (
	"errors"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "bare host", input: "example.com", want: "https://example.com"},
		{name: "trimmed", input: "  example.com/path ", want: "https://example.com/path"},
		{name: "http kept", input: "http://example.com", want: "http://example.com"},
		{name: "https kept", input: "https://example.com", want: "https://example.com"},
		{name: "upper-case scheme kept", input: "HTTPS://Example.com", want: "HTTPS://Example.com"},
		{name: "other scheme prefixed", input: "ftp://x.com", want: "https://ftp://x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.input); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare host has no scheme", input: "example.com", wantErr: true},
		{name: "normalized bare host", input: NormalizeURL("example.com"), want: "https://example.com/"},
		{name: "ftp rejected", input: "ftp://x.com", wantErr: true},
		{name: "ftp rejected after normalization", input: NormalizeURL("ftp://x.com"), wantErr: true},
		{name: "javascript rejected", input: "javascript:alert(1)", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "not a url", input: "not a url", wantErr: true},
		{name: "normalized not a url", input: NormalizeURL("not a url"), wantErr: true},
		{name: "scheme only", input: "https://", wantErr: true},
		{name: "opaque", input: "https:example.com", wantErr: true},
		{name: "upper-case canonicalized", input: "HTTPS://Example.COM", want: "https://example.com/"},
		{name: "default port dropped", input: "https://example.com:443/a", want: "https://example.com/a"},
		{name: "http default port dropped", input: "http://example.com:80", want: "http://example.com/"},
		{name: "custom port kept", input: "http://localhost:8080", want: "http://localhost:8080/"},
		{name: "query kept", input: "https://example.com/search?q=go", want: "https://example.com/search?q=go"},
		{name: "ipv6", input: "http://[::1]:8080", want: "http://[::1]:8080/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateHTTPURL(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ValidateHTTPURL(%q) = %q, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidURL) {
					t.Errorf("error = %v, want ErrInvalidURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateHTTPURL(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ValidateHTTPURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOrigin(t *testing.T) {
	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{input: "https://www.example.com/a/b?c=d", want: "https://www.example.com", wantOK: true},
		{input: "http://localhost:8080/x", want: "http://localhost:8080", wantOK: true},
		{input: "https://example.com:443", want: "https://example.com", wantOK: true},
		{input: "example.com", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Origin(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Origin(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Origin(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
