package v1

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/file_storage/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// writeError maps service errors to responses. Internal causes are logged
// and never sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeErrorMessage(w, http.StatusBadRequest, validationErr.Reason, "")

	case errors.Is(err, domain.ErrInvalidFileID):
		writeErrorMessage(w, http.StatusBadRequest, "Invalid ID", "The specified ID is not valid")

	case errors.Is(err, domain.ErrFileNotFound):
		writeErrorMessage(w, http.StatusNotFound, "File not found", "")

	case errors.Is(err, domain.ErrStorage):
		log.ErrorContext(r.Context(), "storage error", slog.String("err", err.Error()))
		writeErrorMessage(w, http.StatusInternalServerError, "Storage Error", "An error occurred with the file storage service")

	default:
		log.ErrorContext(r.Context(), "request failed", slog.String("err", err.Error()))
		writeErrorMessage(w, http.StatusInternalServerError, "Something went wrong", "")
	}
}
