package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"psaxe.dev/internal/cache"
	"psaxe.dev/internal/models"
	"psaxe.dev/internal/page"
	"psaxe.dev/internal/render"
	"psaxe.dev/internal/services"
)

// PageOptions configures a PageHandler
type PageOptions struct {
	Content         *services.ContentService
	Renderer        *render.Renderer
	Cache           cache.Cache
	CacheTTL        time.Duration
	RevealThreshold float64
	ImageAvailable  func() bool
	Logger          *slog.Logger
	Registry        prometheus.Registerer
}

// PageHandler serves the rendered portfolio page
type PageHandler struct {
	opts    PageOptions
	renders *prometheus.CounterVec
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(opts PageOptions) *PageHandler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewMemoryCache()
	}
	if opts.ImageAvailable == nil {
		opts.ImageAvailable = func() bool { return false }
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	return &PageHandler{
		opts: opts,
		renders: promauto.With(opts.Registry).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "portfolio",
				Subsystem: "page",
				Name:      "renders_total",
				Help:      "Page responses by menu state and cache outcome",
			},
			[]string{"menu", "cache"},
		),
	}
}

// Index handles GET /. The query parameter menu=open renders the mobile
// drawer open, which lets the drawer work without the client script. A nav
// parameter activates a drawer link and redirects to its section.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state := page.ParseMenuState(r.URL.Query().Get("menu"))
	if label := r.URL.Query().Get("nav"); label != "" {
		h.navigate(w, r, state, label)
		return
	}

	imageAvailable := h.opts.ImageAvailable()
	key := pageCacheKey(state, imageAvailable)

	body, err := h.opts.Cache.Get(ctx, key)
	switch {
	case err == nil:
		h.renders.WithLabelValues(state.String(), "hit").Inc()
		writeHTML(w, body)
		return
	case !errors.Is(err, cache.ErrCacheMiss):
		h.opts.Logger.Warn("page cache read failed", "key", key, "error", err)
	}

	p := h.newPage(state, imageAvailable)
	body, err = h.opts.Renderer.RenderBytes(p.View())
	if err != nil {
		h.opts.Logger.Error("render page", "menu", state.String(), "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	if err := h.opts.Cache.Set(ctx, key, body, h.opts.CacheTTL); err != nil {
		h.opts.Logger.Warn("page cache write failed", "key", key, "error", err)
	}
	h.renders.WithLabelValues(state.String(), "miss").Inc()
	writeHTML(w, body)
}

// navigate runs a drawer link through the page component: the drawer closes
// and the browser is sent to the section anchor.
func (h *PageHandler) navigate(w http.ResponseWriter, r *http.Request, state page.MenuState, label string) {
	p := h.newPage(state, false)
	host := &redirectHost{}
	if err := p.Mount(host); err != nil {
		h.opts.Logger.Error("mount page", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load page")
		return
	}
	defer p.Unmount()

	if _, err := p.ClickNav(label); err != nil {
		if errors.Is(err, page.ErrUnknownNavItem) {
			respondError(w, http.StatusNotFound, "Unknown navigation item")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to navigate")
		return
	}

	h.renders.WithLabelValues(p.MenuState().String(), "redirect").Inc()
	http.Redirect(w, r, "/"+host.scrolledTo, http.StatusSeeOther)
}

func (h *PageHandler) newPage(state page.MenuState, imageAvailable bool) *page.Page {
	p := page.New(h.opts.Content,
		page.WithRevealThreshold(h.opts.RevealThreshold),
		page.WithImageAvailable(imageAvailable),
	)
	if state == page.MenuOpen {
		p.ToggleMenu()
	}
	return p
}

func pageCacheKey(state page.MenuState, imageAvailable bool) string {
	if imageAvailable {
		return "page:" + state.String() + ":img"
	}
	return "page:" + state.String() + ":initials"
}

// redirectHost is the host for a single server-side request. There is no
// pointer or viewport; scrolling becomes the redirect target.
type redirectHost struct {
	scrolledTo string
}

func (h *redirectHost) SubscribePointer(func(models.Position)) func() {
	return func() {}
}

func (h *redirectHost) ObserveVisibility(string, float64, func(bool)) func() {
	return func() {}
}

func (h *redirectHost) ScrollTo(anchor string) {
	h.scrolledTo = anchor
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
