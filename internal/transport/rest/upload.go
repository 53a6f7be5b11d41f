package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/service/media"
)

type mediaService interface {
	Upload(ctx context.Context, in media.Upload) (string, error)
	DeleteByAddress(ctx context.Context, address string) media.CleanupResult
}

// multipartSlack covers the multipart framing around the file part.
const multipartSlack = 64 << 10

// UploadHandler stores images and removes them again.
type UploadHandler struct {
	svc      mediaService
	maxBytes int64
	log      *slog.Logger
}

// NewUploadHandler creates an UploadHandler. maxBytes caps a single file.
func NewUploadHandler(svc mediaService, maxBytes int64, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "upload")}
}

type uploadResponse struct {
	Address string `json:"address"`
}

type cleanupResponse struct {
	Address string `json:"address"`
	Status  string `json:"status"`
}

func toCleanupResponse(res media.CleanupResult) cleanupResponse {
	return cleanupResponse{Address: res.Address, Status: string(res.Status)}
}

// Upload handles POST /api/admin/uploads?kind= with a multipart "file" part.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartSlack)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeServiceError(w, r, h.log, h.tooLarge())
			return
		}
		writeServiceError(w, r, h.log, domain.NewValidationError("file", "required"))
		return
	}
	defer file.Close()

	if header.Size > h.maxBytes {
		writeServiceError(w, r, h.log, h.tooLarge())
		return
	}

	addr, err := h.svc.Upload(r.Context(), media.Upload{
		Kind:        media.Kind(r.URL.Query().Get("kind")),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, uploadResponse{Address: addr})
}

func (h *UploadHandler) tooLarge() error {
	return domain.NewValidationError("file", fmt.Sprintf("exceeds %d bytes", h.maxBytes))
}

type deleteUploadRequest struct {
	Address string `json:"address"`
}

// Delete handles POST /api/admin/uploads/delete. It never fails on storage
// errors; the outcome is reported in the body.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteUploadRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCleanupResponse(h.svc.DeleteByAddress(r.Context(), req.Address)))
}

type discardUploadsRequest struct {
	Addresses []string `json:"addresses"`
}

// Discard handles POST /api/admin/uploads/discard: the console sends the
// images it uploaded for a form that was closed without saving.
func (h *UploadHandler) Discard(w http.ResponseWriter, r *http.Request) {
	var req discardUploadsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var pending media.PendingUploads
	for _, a := range req.Addresses {
		pending.Track(a)
	}

	results := pending.Discard(r.Context(), h.svc)
	out := make([]cleanupResponse, len(results))
	for i, res := range results {
		out[i] = toCleanupResponse(res)
	}
	writeJSON(w, http.StatusOK, out)
}
