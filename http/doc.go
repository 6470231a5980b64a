// Package http adapts the romserve asset router to net/http.
//
// The router itself is framework-agnostic: it only answers CanHandle and
// Handle for a method and path. This package maps those two operations onto
// the two handler-chaining styles a host server can use.
//
// # Async-chain style
//
// Middleware wraps the next handler. When the router declines a request
// (non-GET or an ignored prefix), nothing is written and the request continues
// down the chain:
//
//	router := romserve.NewRouter(table, []string{"/api"}, romserve.RouterConfig{})
//	mux.Handle("/", romhttp.Middleware(router)(apiHandler))
//
// # Synchronous-chain style
//
// Chain holds RequestHandlers and asks each in turn. A handler that returns
// false from Handle passes the request to the next one; true means the
// request was fully answered:
//
//	chain := romhttp.NewChain(
//	    romhttp.NewPrefixHandler("/api", apiHandler),
//	    romhttp.NewAssetHandler(router),
//	)
//	http.ListenAndServe(":8080", chain)
//
// # Server wiring
//
// Handler builds the complete server used by the romserve command: CORS,
// request IDs, request logging, panic recovery, prometheus metrics, a small
// JSON API under the API prefix, and the asset router as the catch-all.
//
//	handler := romhttp.NewHandler(&romhttp.HandlerConfig{APIPrefix: "/api"}, router)
//	http.ListenAndServe(":8080", handler.Router())
package http
