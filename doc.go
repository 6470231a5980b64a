// Package romserve provides a static asset router that serves a read-only,
// build-time table of embedded files.
//
// The router matches a request's method and path against the table and either
// serves the asset, answers with a plain-text 404, or declines the request so
// that another handler in the host's chain can answer it. Paths under the
// configured ignored prefixes (APIs, CGI and other dynamic content) are always
// declined.
//
// # Key Components
//
//   - Asset: one embedded file (path, content, length, content type, gzip flag)
//   - Table: the ordered asset list, optionally terminated by a sentinel record
//   - Router: the framework-agnostic lookup exposing CanHandle and Handle
//   - Response: the single response produced for an accepted request
//
// # Example Usage
//
//	table := romserve.Table{
//	    {Path: "/index.htm", Content: index, Length: len(index), ContentType: "text/html"},
//	    {Path: "/app.js", Content: appJS, Length: len(appJS), ContentType: "text/javascript", Compressed: true},
//	}
//	router := romserve.NewRouter(table, []string{"/api"}, romserve.RouterConfig{})
//
//	if router.CanHandle("GET", "/") {
//	    resp, _ := router.Handle("GET", "/")
//	    // resp.Status == 200, resp.Body == index
//	}
//
// See the http package for net/http adapters and the assetfs package for
// building a Table from an fs.FS.
package romserve
