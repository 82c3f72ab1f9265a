package v1

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/file_storage/internal/domain"
	"github.com/kurochkinivan/file_storage/internal/files"
)

const (
	// multipartOverhead covers boundaries and form fields on top of the file.
	multipartOverhead = 1 << 20
	exportPageSize    = 100
)

type Uploader interface {
	Begin(filename string) (string, error)
	Upload(ctx context.Context, uploadID string, payload *domain.Payload) (*domain.File, error)
	Reject(ctx context.Context, uploadID string, err error) error
}

type FilesService interface {
	Files(ctx context.Context, page, limit uint64) (*files.Page, error)
	Details(ctx context.Context, id string) (*files.FileDetails, error)
	DownloadURL(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

type FilesHandler struct {
	log           *slog.Logger
	uploader      Uploader
	files         FilesService
	maxUploadSize int64
}

func NewFilesHandler(log *slog.Logger, uploader Uploader, filesService FilesService, maxUploadSize int64) *FilesHandler {
	return &FilesHandler{
		log:           log,
		uploader:      uploader,
		files:         filesService,
		maxUploadSize: maxUploadSize,
	}
}

type BeginUploadRequest struct {
	Filename string `json:"filename"`
}

type BeginUploadResponse struct {
	UploadID string `json:"upload_id"`
	Message  string `json:"message"`
}

func (h *FilesHandler) BeginUpload(w http.ResponseWriter, r *http.Request) {
	var req BeginUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	uploadID, err := h.uploader.Begin(req.Filename)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, BeginUploadResponse{
		UploadID: uploadID,
		Message:  "Upload tracking initialized",
	})
}

type UploadFileResponse struct {
	Message string       `json:"message"`
	File    *domain.File `json:"file"`
}

func (h *FilesHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)

	form, err := readUploadForm(r, h.maxUploadSize)
	defer func() {
		if err := form.Close(); err != nil {
			h.log.WarnContext(r.Context(), "failed to remove spooled upload", slog.String("err", err.Error()))
		}
	}()

	if err != nil {
		if form.uploadID != "" {
			err = h.uploader.Reject(r.Context(), form.uploadID, err)
		}
		writeError(w, r, h.log, err)
		return
	}

	uploaded, err := h.uploader.Upload(r.Context(), form.uploadID, form.payload())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, UploadFileResponse{
		Message: "File uploaded successfully",
		File:    uploaded,
	})
}

type ListFilesResponse struct {
	Files      []*domain.File `json:"files"`
	Pagination Pagination     `json:"pagination"`
}

func (h *FilesHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	result, err := h.files.Files(r.Context(), page, limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, ListFilesResponse{
		Files:      result.Files,
		Pagination: newPagination(page, limit, result.Total),
	})
}

// ExportFiles writes the whole catalog as CSV, newest first.
func (h *FilesHandler) ExportFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	first, err := h.files.Files(ctx, 1, exportPageSize)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="files.csv"`)

	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if err := enc.EncodeHeader(domain.File{}); err != nil {
		h.log.ErrorContext(ctx, "failed to encode csv header", slog.String("err", err.Error()))
		return
	}

	result := first
	for page := uint64(1); ; page++ {
		if page > 1 {
			result, err = h.files.Files(ctx, page, exportPageSize)
			if err != nil {
				h.log.ErrorContext(ctx, "export interrupted", slog.Uint64("page", page), slog.String("err", err.Error()))
				break
			}
		}

		if err := enc.Encode(result.Files); err != nil {
			h.log.ErrorContext(ctx, "failed to encode csv rows", slog.String("err", err.Error()))
			break
		}

		if len(result.Files) == 0 || page*exportPageSize >= uint64(result.Total) {
			break
		}
	}

	cw.Flush()
}

func (h *FilesHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	url, err := h.files.DownloadURL(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

func (h *FilesHandler) GetFileDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.files.Details(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, details)
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *FilesHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	if err := h.files.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "File deleted successfully"})
}
