// Package favicon derives bookmark icon URLs from a favicon proxy service.
package favicon

import (
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	domainurl "github.com/bnema/mytab/internal/domain/url"
)

// DefaultProxyTemplate is the Google favicon service; %s is the hostname.
const DefaultProxyTemplate = "https://www.google.com/s2/favicons?domain=%s&sz=64"

// Resolver builds proxy favicon URLs while keeping private hosts private.
type Resolver struct {
	template atomic.Value // string
}

// NewResolver creates a resolver. An empty template selects DefaultProxyTemplate.
func NewResolver(template string) *Resolver {
	r := &Resolver{}
	r.SetTemplate(template)
	return r
}

// SetTemplate swaps the proxy template; safe to call while resolving.
func (r *Resolver) SetTemplate(template string) {
	if !strings.Contains(template, "%s") {
		template = DefaultProxyTemplate
	}
	r.template.Store(template)
}

// Template returns the active proxy template.
func (r *Resolver) Template() string {
	return r.template.Load().(string)
}

// SafeURL returns the proxy icon URL for pageURL's host, or "" when the URL
// is unparsable or points at a local or private host.
func (r *Resolver) SafeURL(pageURL string) string {
	if domainurl.IsLocalOrPrivate(pageURL) {
		return ""
	}
	host, ok := domainurl.Hostname(pageURL)
	if !ok {
		return ""
	}
	return fmt.Sprintf(r.Template(), url.QueryEscape(host))
}
