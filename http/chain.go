package http

import (
	"net/http"
	"slices"
	"strings"
)

// RequestHandler is one link in a Chain. CanHandle must be cheap and free of
// side effects. Handle returns true when it fully answered the request and
// false to let the next handler try.
type RequestHandler interface {
	CanHandle(method, uri string) bool
	Handle(w http.ResponseWriter, r *http.Request) bool
}

// Chain dispatches each request to the first RequestHandler that accepts it.
type Chain struct {
	handlers []RequestHandler
	notFound http.HandlerFunc
}

// NewChain creates a Chain that tries handlers in the given order.
func NewChain(handlers ...RequestHandler) *Chain {
	return &Chain{
		handlers: handlers,
		notFound: writeDefaultNotFound,
	}
}

// Add appends a handler to the end of the chain.
func (c *Chain) Add(h RequestHandler) *Chain {
	c.handlers = append(c.handlers, h)
	return c
}

// NotFound replaces the response sent when no handler answers.
func (c *Chain) NotFound(h http.HandlerFunc) {
	c.notFound = h
}

func (c *Chain) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, h := range c.handlers {
		if !h.CanHandle(r.Method, r.URL.Path) {
			continue
		}
		if h.Handle(w, r) {
			return
		}
	}
	c.notFound(w, r)
}

// AssetHandler puts an asset router into a Chain.
type AssetHandler struct {
	router  AssetRouter
	metrics *Metrics
}

// NewAssetHandler wraps router as a RequestHandler.
func NewAssetHandler(router AssetRouter) *AssetHandler {
	return &AssetHandler{router: router}
}

func (h *AssetHandler) CanHandle(method, uri string) bool {
	return h.router.CanHandle(method, uri)
}

func (h *AssetHandler) Handle(w http.ResponseWriter, r *http.Request) bool {
	resp, ok := h.router.Handle(r.Method, r.URL.Path)
	if !ok {
		h.metrics.observeOutcome(outcomeDeclined)
		return false
	}

	if resp.Status == http.StatusNotFound {
		h.metrics.observeOutcome(outcomeNotFound)
	} else {
		h.metrics.observeOutcome(outcomeServed)
	}
	WriteResponse(w, resp)
	return true
}

// PrefixHandler puts a dynamic http.Handler into a Chain for the prefix path
// itself and every path below it: "/api" matches "/api" and "/api/x" but not
// "/apix". An empty method list accepts all methods.
type PrefixHandler struct {
	prefix  string
	methods []string
	handler http.Handler
}

// NewPrefixHandler creates a PrefixHandler. The handler always answers once
// selected.
func NewPrefixHandler(prefix string, handler http.Handler, methods ...string) *PrefixHandler {
	return &PrefixHandler{
		prefix:  prefix,
		methods: methods,
		handler: handler,
	}
}

func (h *PrefixHandler) CanHandle(method, uri string) bool {
	if !h.matches(uri) {
		return false
	}
	return len(h.methods) == 0 || slices.Contains(h.methods, method)
}

func (h *PrefixHandler) matches(uri string) bool {
	rest, ok := strings.CutPrefix(uri, h.prefix)
	if !ok {
		return false
	}
	return rest == "" || rest[0] == '/' || strings.HasSuffix(h.prefix, "/")
}

func (h *PrefixHandler) Handle(w http.ResponseWriter, r *http.Request) bool {
	h.handler.ServeHTTP(w, r)
	return true
}
