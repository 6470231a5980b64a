package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/sagarc03/romserve"
)

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type HandlerConfig struct {
	// APIPrefix mounts the JSON API. Empty disables it.
	APIPrefix string
	// Metrics enables prometheus collection and {APIPrefix}/metrics.
	Metrics bool
	CORS    CORSConfig
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Handler wires the asset router, the JSON API and the middleware stack.
type Handler struct {
	config  HandlerConfig
	router  AssetRouter
	metrics *Metrics
	logger  *slog.Logger
}

// NewHandler creates a new Handler with the given configuration and router.
func NewHandler(config *HandlerConfig, router AssetRouter) *Handler {
	h := &Handler{
		config: *config,
		router: router,
		logger: config.Logger,
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	if config.Metrics {
		h.metrics = NewMetrics()
	}
	return h
}

// Router returns the server as a chi router. API routes take precedence;
// every other path goes through the asset router, and whatever it declines is
// answered with a JSON error.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(h.middlewares()...)

	if h.config.APIPrefix != "" {
		h.registerAPI(r)
	}

	r.Handle("/*", assetMiddleware(h.router, h.metrics)(http.HandlerFunc(h.handleDeclined)))

	return r
}

// ChainRouter returns the same server built as a synchronous handler chain:
// the API prefix handler first, then the asset handler.
func (h *Handler) ChainRouter() http.Handler {
	chain := NewChain()

	if h.config.APIPrefix != "" {
		api := chi.NewRouter()
		api.NotFound(h.handleAPINotFound)
		h.registerAPI(api)
		chain.Add(NewPrefixHandler(h.config.APIPrefix, api))
	}

	chain.Add(&AssetHandler{router: h.router, metrics: h.metrics})
	chain.NotFound(h.handleDeclined)

	var handler http.Handler = chain
	mws := h.middlewares()
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}

func (h *Handler) middlewares() []func(http.Handler) http.Handler {
	var mws []func(http.Handler) http.Handler

	if h.config.CORS.Enabled {
		mws = append(mws, cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	mws = append(mws,
		RequestID,
		RequestLogger(h.logger),
		Recoverer(h.logger),
		h.metrics.Middleware,
	)

	return mws
}

func (h *Handler) registerAPI(r chi.Router) {
	r.Route(h.config.APIPrefix, func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/assets", h.handleListAssets)
		r.Get("/assets/*", h.handleGetAsset)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
		r.NotFound(h.handleAPINotFound)
	})
}

// handleDeclined answers requests the asset router would not take.
func (h *Handler) handleDeclined(w http.ResponseWriter, r *http.Request) {
	if !h.router.IsIgnored(r.URL.Path) && r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		HandleError(w, ErrMethodNotAllowed)
		return
	}
	WriteError(w, http.StatusNotFound, "not_found", "No handler for path")
}

func (h *Handler) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, "not_found", "Unknown API endpoint")
}

type healthResponse struct {
	Status string `json:"status"`
	Assets int    `json:"assets"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Assets: h.router.Table().Len(),
	})
}

// ListResult is the body of GET {api}/assets.
type ListResult struct {
	Items []romserve.Asset `json:"items"`
	Count int              `json:"count"`
}

func (h *Handler) handleListAssets(w http.ResponseWriter, r *http.Request) {
	entries := h.router.Table().Entries()

	items := make([]romserve.Asset, len(entries))
	copy(items, entries)

	_ = WriteJSON(w, http.StatusOK, ListResult{Items: items, Count: len(items)})
}

func (h *Handler) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	path := "/" + chi.URLParam(r, "*")

	if path != "/" && !romserve.IsValidAssetPath(path) {
		HandleError(w, romserve.ErrInvalidInput)
		return
	}

	asset, ok := h.router.Lookup(path)
	if !ok {
		HandleError(w, romserve.ErrNotFound)
		return
	}

	_ = WriteJSON(w, http.StatusOK, asset)
}
