package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tutorial-landing/pkg/services"
)

// ReloadHandler drops the cached content so the next page view rereads the files
func (h *Handlers) ReloadHandler(w http.ResponseWriter, _ *http.Request) {
	h.Service.Reload()
	h.Logger.Info().Msg("content cache cleared")

	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "reloaded",
	})
}

// ThumbnailHandler checks the thumbnail candidates of one video and reports the first usable one
func (h *Handlers) ThumbnailHandler(w http.ResponseWriter, r *http.Request) {
	if h.Thumbs == nil {
		http.Error(w, "Thumbnail checks are disabled", http.StatusNotImplemented)
		return
	}

	video, err := h.Service.GetVideo(chi.URLParam(r, "id"))
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": notFound.Error()})
		return
	}
	if err != nil {
		h.serverError(w, "failed to load video", err)
		return
	}

	candidates := services.Candidates(video.ID, video.Thumbnail)
	best, ok := h.Thumbs.Best(r.Context(), candidates)

	h.writeJSON(w, http.StatusOK, map[string]any{
		"videoId":    video.ID,
		"current":    video.Thumbnail,
		"candidates": candidates,
		"best":       best,
		"found":      ok,
	})
}
