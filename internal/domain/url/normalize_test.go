package url

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
		{name: "http scheme unchanged", input: "http://example.com", want: "http://example.com"},
		{name: "https scheme unchanged", input: "https://example.com", want: "https://example.com"},
		{name: "file scheme unchanged", input: "file:///path/to/file.html", want: "file:///path/to/file.html"},
		{name: "about scheme unchanged", input: "about:blank", want: "about:blank"},
		{name: "domain gets https", input: "example.com", want: "https://example.com"},
		{name: "domain with path gets https", input: "example.com/path", want: "https://example.com/path"},
		{name: "surrounding spaces trimmed", input: "  example.com ", want: "https://example.com"},
		{name: "bare word gets https", input: "localhost", want: "https://localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHostname(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "https://www.google.com", want: "www.google.com"},
		{input: "http://example.com:8080/path", want: "example.com"},
		{input: "about:blank", want: ""},
		{input: "example.com", want: ""},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Hostname(tt.input); got != tt.want {
				t.Errorf("Hostname(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
