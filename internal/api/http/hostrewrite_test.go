package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewrittenPath(t *testing.T) {
	rewriter := NewHostRewriter(nil, "taam.menu")

	tests := []struct {
		name     string
		host     string
		path     string
		expected string
	}{
		{"root_domain_untouched", "taam.menu", "/dashboard", ""},
		{"subdomain_root_path", "bobscafe.taam.menu", "/", "/bobscafe"},
		{"subdomain_with_path", "bobscafe.taam.menu", "/menu", "/bobscafe/menu"},
		{"nested_subdomain_uses_first_label", "bobscafe.rest.taam.menu", "/qr", "/bobscafe/qr"},
		{"uppercase_host_canonicalized", "BobsCafe.TAAM.MENU", "/menu", "/bobscafe/menu"},
		{"port_stripped", "bobscafe.taam.menu:8080", "/", "/bobscafe"},
		{"trailing_dot_stripped", "bobscafe.taam.menu.", "/", "/bobscafe"},
		{"api_path_excluded", "bobscafe.taam.menu", "/api/cart", ""},
		{"static_path_excluded", "bobscafe.taam.menu", "/static/app.css", ""},
		{"health_excluded", "bobscafe.taam.menu", "/health", ""},
		{"favicon_excluded", "bobscafe.taam.menu", "/favicon.ico", ""},
		{"foreign_host_passes_through", "example.com", "/", ""},
		{"suffix_without_dot_boundary", "eviltaam.menu", "/", ""},
		{"single_label_host", "localhost", "/", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, rewriter.rewrittenPath(testCase.host, testCase.path))
		})
	}
}

func TestHostRewriter_ServeHTTP(t *testing.T) {
	var gotPath string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	})
	rewriter := NewHostRewriter(next, "taam.menu")

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	req.Host = "bobscafe.taam.menu"
	recorder := httptest.NewRecorder()

	rewriter.ServeHTTP(recorder, req)

	assert.Equal(t, "/bobscafe/menu", gotPath)
	assert.Equal(t, "/bobscafe/menu", recorder.Header().Get("X-Rewritten-Path"))
}

func TestHostRewriter_RootDomainPassesThrough(t *testing.T) {
	var gotPath string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	})
	rewriter := NewHostRewriter(next, "taam.menu")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Host = "taam.menu"
	recorder := httptest.NewRecorder()

	rewriter.ServeHTTP(recorder, req)

	assert.Equal(t, "/dashboard", gotPath)
	assert.Empty(t, recorder.Header().Get("X-Rewritten-Path"))
}
