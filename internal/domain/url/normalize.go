// Package url provides URL helpers for user-typed addresses.
package url

import (
	"net/url"
	"strings"
)

// Normalize trims the input and adds an https:// prefix when no scheme the
// shell knows how to load is present. Empty input stays empty.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if HasScheme(input) {
		return input
	}
	return "https://" + input
}

// HasScheme reports whether input already starts with a loadable scheme.
func HasScheme(input string) bool {
	switch {
	case strings.HasPrefix(input, "http://"):
		return true
	case strings.HasPrefix(input, "https://"):
		return true
	case strings.HasPrefix(input, "file://"):
		return true
	case strings.HasPrefix(input, "about:"):
		return true
	}
	return false
}

// Hostname returns the host part of an http(s) URL, or "" when the input is
// not one. Used as a placeholder title until the page reports its own.
func Hostname(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http") {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}
