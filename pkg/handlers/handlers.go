package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"tutorial-landing/pkg/models"
	"tutorial-landing/pkg/render"
	"tutorial-landing/pkg/services"
)

// Handlers serves the landing page and its JSON endpoints
type Handlers struct {
	Service  *services.Service
	Builder  *render.Builder
	Renderer render.Renderer
	Tracker  render.Tracker
	Thumbs   *services.ThumbnailChecker
	Logger   zerolog.Logger
}

func stateFrom(r *http.Request) render.State {
	return render.State{ShowAll: r.URL.Query().Get("view") == "all"}
}

// PageHandler handles requests for the landing page. ?view=all shows every video.
func (h *Handlers) PageHandler(w http.ResponseWriter, r *http.Request) {
	c, err := h.Service.PageContent()
	if err != nil {
		h.serverError(w, "failed to load content", err)
		return
	}

	h.writePage(w, h.Builder.Build(c, stateFrom(r)))
}

// PlayHandler renders the landing page with the player open and records the play
func (h *Handlers) PlayHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, err := h.Service.PageContent()
	if err != nil {
		h.serverError(w, "failed to load content", err)
		return
	}

	video, ok := c.Video(id)
	if !ok {
		h.Logger.Info().Str("video_id", id).Msg("video not found")
		http.NotFound(w, r)
		return
	}

	page := h.Builder.Build(c, stateFrom(r))
	page.State.Playing = video.ID
	render.Play(r.Context(), &page.Modal.Modal, render.PlayActionFor(video), h.Tracker)

	h.writePage(w, page)
}

// FeedHandler handles requests for the video feed (JSON)
func (h *Handlers) FeedHandler(w http.ResponseWriter, _ *http.Request) {
	videos, err := h.Service.GetVideos()
	if err != nil {
		h.serverError(w, "failed to load videos", err)
		return
	}
	if videos == nil {
		videos = []models.Video{}
	}
	h.writeJSON(w, http.StatusOK, videos)
}

// VideoHandler returns one video with any background enrichment applied
func (h *Handlers) VideoHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	video, err := h.Service.GetVideo(id)
	var notFound *services.NotFoundError
	switch {
	case errors.As(err, &notFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": notFound.Error()})
	case err != nil:
		h.serverError(w, "failed to load video", err)
	default:
		h.writeJSON(w, http.StatusOK, video)
	}
}

func (h *Handlers) writePage(w http.ResponseWriter, page render.Page) {
	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, page); err != nil {
		h.serverError(w, "failed to render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		h.serverError(w, "failed to encode response", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (h *Handlers) serverError(w http.ResponseWriter, msg string, err error) {
	h.Logger.Error().Err(err).Msg(msg)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
