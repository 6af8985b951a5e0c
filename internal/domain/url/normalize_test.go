package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLocalOrPrivate(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "public host", url: "https://example.com/path", want: false},
		{name: "public host with port", url: "https://example.com:8443", want: false},
		{name: "localhost", url: "http://localhost:3000/app", want: true},
		{name: "uppercase localhost", url: "http://LOCALHOST/", want: true},
		{name: "newtab", url: "chrome://newtab/", want: true},
		{name: "loopback", url: "http://127.0.0.1:8080", want: true},
		{name: "class A private", url: "http://10.1.2.3/", want: true},
		{name: "class B private low", url: "http://172.16.0.1/", want: true},
		{name: "class B private high", url: "http://172.31.255.1/", want: true},
		{name: "class C private", url: "http://192.168.1.1/x", want: true},
		{name: "public IPv4 literal", url: "http://8.8.8.8/", want: true},
		{name: "IPv6 literal", url: "http://[::1]:8080/", want: true},
		{name: "172 outside private range is still an IP", url: "http://172.32.0.1/", want: true},
		{name: "host starting with 10 but not an IP", url: "https://10.example.com", want: true},
		{name: "no scheme", url: "example.com", want: true},
		{name: "malformed", url: "http://%zz", want: true},
		{name: "empty", url: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLocalOrPrivate(tt.url))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize("  "))
	assert.Equal(t, "https://github.com", Normalize("github.com"))
	assert.Equal(t, "http://example.com", Normalize("http://example.com"))
	assert.Equal(t, "chrome://settings", Normalize("chrome://settings"))
	assert.Equal(t, "about:blank", Normalize("about:blank"))
	assert.Equal(t, "not a url", Normalize("not a url"))
}

func TestHostname(t *testing.T) {
	host, ok := Hostname("https://WWW.Example.com:443/a")
	assert.True(t, ok)
	assert.Equal(t, "www.example.com", host)

	_, ok = Hostname("/relative/path")
	assert.False(t, ok)
}
