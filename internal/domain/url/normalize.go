// Package url provides URL classification and search helpers for the new-tab page.
package url

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

var (
	privateClassB = regexp.MustCompile(`^172\.(1[6-9]|2[0-9]|3[0-1])\.`)
	ipv4Literal   = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+$`)
)

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if strings.Contains(input, "://") || strings.HasPrefix(input, "about:") {
		return input
	}

	// Looks like a URL (contains . and no spaces)
	if strings.Contains(input, ".") && !strings.Contains(input, " ") {
		return "https://" + input
	}

	return input
}

// Hostname returns the lowercased host of an absolute URL without port.
// The boolean is false when the URL does not parse or has no host.
func Hostname(rawURL string) (string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return "", false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", false
	}
	return host, true
}

// IsLocalOrPrivate reports whether a URL points at a host whose favicon must
// not be requested from a third-party proxy: localhost, the browser's newtab
// page, loopback or private IPv4 ranges and any IP literal. URLs that cannot
// be parsed are treated as private.
func IsLocalOrPrivate(rawURL string) bool {
	host, ok := Hostname(rawURL)
	if !ok {
		return true
	}

	switch {
	case host == "localhost", host == "newtab":
		return true
	case strings.HasPrefix(host, "127."),
		strings.HasPrefix(host, "10."),
		strings.HasPrefix(host, "192.168."):
		return true
	case privateClassB.MatchString(host):
		return true
	case ipv4Literal.MatchString(host):
		return true
	case strings.Contains(host, ":") && net.ParseIP(host) != nil:
		// IPv6 literal
		return true
	}
	return false
}
