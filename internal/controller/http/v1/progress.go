package v1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/file_storage/internal/domain"
)

type ProgressProvider interface {
	Progress(id string) (domain.UploadProgress, bool)
}

type ProgressHandler struct {
	progress ProgressProvider
}

func NewProgressHandler(progress ProgressProvider) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

func (h *ProgressHandler) GetUploadProgress(w http.ResponseWriter, r *http.Request) {
	p, ok := h.progress.Progress(chi.URLParam(r, "id"))
	if !ok {
		writeErrorMessage(w, http.StatusNotFound, "Upload not found", "")
		return
	}

	writeJSON(w, http.StatusOK, p)
}
