package httpapi

import (
	"log"
	"net/http"
	"strings"

	"taam-menu/internal/service"
)

// Paths the rewriter never touches.
var rewriteExclusions = []string{"/api/", "/static/", "/health", "/favicon.ico"}

// HostRewriter serves wildcard-subdomain traffic through the dynamic
// storefront route: a request for <name>.<root> with path P is forwarded
// internally as /<name>P while the URL the client sees stays unchanged.
// It wraps the router so the rewrite happens before route matching.
type HostRewriter struct {
	next       http.Handler
	rootDomain string
}

func NewHostRewriter(next http.Handler, rootDomain string) *HostRewriter {
	return &HostRewriter{
		next:       next,
		rootDomain: strings.ToLower(rootDomain),
	}
}

func (h *HostRewriter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if path := h.rewrittenPath(r.Host, r.URL.Path); path != "" {
		log.Printf("[rewrite] %s%s -> %s", r.Host, r.URL.Path, path)
		w.Header().Set("X-Rewritten-Path", path)
		r.URL.Path = path
	}
	h.next.ServeHTTP(w, r)
}

// rewrittenPath returns the internal path for a subdomain request, or ""
// when the request passes through untouched.
func (h *HostRewriter) rewrittenPath(host, path string) string {
	for _, prefix := range rewriteExclusions {
		if strings.HasPrefix(path, prefix) {
			return ""
		}
	}

	host = canonicalHost(host)
	if host == h.rootDomain {
		return ""
	}
	if !strings.HasSuffix(host, "."+h.rootDomain) {
		// Unknown hosts, including malformed single-label ones, pass through.
		return ""
	}

	subdomain := service.CandidateFromHost(host)
	if subdomain == "" {
		return ""
	}

	if path == "/" {
		return "/" + subdomain
	}
	return "/" + subdomain + path
}

// canonicalHost lowercases and strips a trailing dot and any port before
// matching.
func canonicalHost(host string) string {
	host = strings.ToLower(host)
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	return strings.TrimSuffix(host, ".")
}
