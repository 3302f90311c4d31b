package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	applog "tutorial-landing/pkg/log"
)

// NewRouter wires every route of the landing page server. metrics may be nil.
func NewRouter(h *Handlers, publicDir string, metrics http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(applog.Middleware(h.Logger))

	r.Get("/", h.PageHandler)
	r.Get("/play/{id}", h.PlayHandler)
	r.Get("/feed", h.FeedHandler)
	r.Get("/api/videos/{id}", h.VideoHandler)

	r.Post("/admin/reload", h.ReloadHandler)
	r.Get("/admin/thumbnails/{id}", h.ThumbnailHandler)

	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	if publicDir != "" {
		r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir(publicDir))))
	}

	return r
}
