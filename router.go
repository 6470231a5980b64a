package romserve

import (
	"net/http"
	"strings"
)

// Router serves GET requests from an immutable asset table and declines
// everything under its ignored prefixes. It holds no mutable state, so one
// Router may be shared by any number of goroutines.
type Router struct {
	table           Table
	ignoredPrefixes []string
	defaultDocument string
}

// NewRouter creates a Router over table. The table is referenced, not copied,
// and must not be modified afterwards. ignoredPrefixes is copied.
//
// Duplicate table paths and overlapping prefixes are not checked: the first
// matching record or prefix wins. Use Table.Validate to check a table ahead of
// time.
func NewRouter(table Table, ignoredPrefixes []string, cfg RouterConfig) *Router {
	defaultDocument := cfg.DefaultDocument
	if defaultDocument == "" {
		defaultDocument = DefaultDocument
	}

	prefixes := make([]string, len(ignoredPrefixes))
	copy(prefixes, ignoredPrefixes)

	return &Router{
		table:           table,
		ignoredPrefixes: prefixes,
		defaultDocument: defaultDocument,
	}
}

// CanHandle reports whether the router accepts the request. It is a pre-filter,
// not a membership test: any non-ignored GET is accepted, whether or not the
// path is in the table.
func (r *Router) CanHandle(method, path string) bool {
	if method != http.MethodGet {
		return false
	}
	return !r.IsIgnored(path)
}

// Handle answers the request. The boolean is false when the request is
// declined (non-GET or ignored path), in which case the Response is empty and
// nothing must be sent. Otherwise the Response is either the matching asset
// (200) or a plain-text 404 echoing the original path.
//
// Handle repeats the CanHandle checks and is safe to call without it. path
// must already be stripped of any query string.
func (r *Router) Handle(method, path string) (Response, bool) {
	if !r.CanHandle(method, path) {
		return Response{}, false
	}

	asset, found := r.Lookup(path)
	if !found {
		return notFound(path), true
	}

	resp := Response{
		Status:      http.StatusOK,
		ContentType: asset.ContentType,
		Body:        asset.body(),
	}
	if asset.Compressed {
		resp.ContentEncoding = EncodingGzip
	}
	return resp, true
}

// Lookup finds the asset for path after rewriting "/" to the default
// document. Comparison is exact and case-sensitive. Ignored prefixes are not
// consulted.
func (r *Router) Lookup(path string) (Asset, bool) {
	if path == "/" {
		path = r.defaultDocument
	}

	for _, asset := range r.table {
		if asset.IsSentinel() {
			break
		}
		if asset.Path == path {
			return asset, true
		}
	}

	return Asset{}, false
}

// IsIgnored reports whether path starts with one of the ignored prefixes.
func (r *Router) IsIgnored(path string) bool {
	for _, prefix := range r.ignoredPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Table returns the table the router was created with.
func (r *Router) Table() Table {
	return r.table
}

// IgnoredPrefixes returns a copy of the ignored prefixes in match order.
func (r *Router) IgnoredPrefixes() []string {
	prefixes := make([]string, len(r.ignoredPrefixes))
	copy(prefixes, r.ignoredPrefixes)
	return prefixes
}

// DefaultDocument returns the path served for "/".
func (r *Router) DefaultDocument() string {
	return r.defaultDocument
}

func notFound(path string) Response {
	return Response{
		Status:      http.StatusNotFound,
		ContentType: "text/plain",
		Body:        []byte(notFoundPrefix + path),
	}
}
