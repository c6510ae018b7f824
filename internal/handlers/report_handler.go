package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"medreports-backend/internal/middleware"
	"medreports-backend/internal/models"
	"medreports-backend/internal/services"
	"medreports-backend/utils/response"
)

// maxRequestBody bounds the whole multipart body. It sits above the report
// size cap so an over-cap file still reaches the service's own check and
// gets the cap error rather than a parse failure.
const maxRequestBody = services.MaxFileSize + 1*1024*1024

var previewContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	admin := middleware.UserFromContext(r.Context())
	if admin == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := r.ParseMultipartForm(maxRequestBody); err != nil {
		response.Error(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse multipart form: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to get file from form")
		return
	}
	defer file.Close()

	targetEmail := r.FormValue("user_email")
	if targetEmail == "" {
		response.Error(w, http.StatusBadRequest, "'user_email' field is required")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	result, err := h.service.Upload(r.Context(), admin, targetEmail, header.Filename, data)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	reports, err := h.service.List(r.Context(), user)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to list reports")
		return
	}

	response.JSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	report, f, ok := h.fetch(w, r)
	if !ok {
		return
	}
	defer f.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.OriginalName))
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", report.FileSize))
	w.WriteHeader(http.StatusOK)
	io.Copy(w, f)
}

// Preview serves the bytes inline with a content type guessed from the
// stored extension, so browsers can render images and PDFs directly.
func (h *ReportHandler) Preview(w http.ResponseWriter, r *http.Request) {
	report, f, ok := h.fetch(w, r)
	if !ok {
		return
	}
	defer f.Close()

	contentType := previewContentTypes[strings.ToLower(filepath.Ext(report.FileName))]
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", report.FileSize))
	w.WriteHeader(http.StatusOK)
	io.Copy(w, f)
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.reportID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, nil, "Report deleted successfully")
}

func (h *ReportHandler) fetch(w http.ResponseWriter, r *http.Request) (*models.Report, io.ReadCloser, bool) {
	user := middleware.UserFromContext(r.Context())
	if user == nil {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return nil, nil, false
	}

	id, ok := h.reportID(w, r)
	if !ok {
		return nil, nil, false
	}

	report, f, err := h.service.Fetch(r.Context(), user, id)
	if err != nil {
		h.writeError(w, err)
		return nil, nil, false
	}
	return report, f, true
}

func (h *ReportHandler) reportID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		response.Error(w, http.StatusNotFound, "Report not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReportHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrFileTypeNotAllowed):
		response.Error(w, http.StatusBadRequest, "File type not allowed. Accepted: .jpg, .jpeg, .png, .gif, .pdf")
	case errors.Is(err, services.ErrFileTooLarge):
		response.Error(w, http.StatusBadRequest, "File size exceeds 5MB limit")
	case errors.Is(err, services.ErrUserNotFound):
		response.Error(w, http.StatusNotFound, "User with this email not found")
	case errors.Is(err, services.ErrReportNotFound):
		response.Error(w, http.StatusNotFound, "Report not found")
	case errors.Is(err, services.ErrFileMissing):
		response.Error(w, http.StatusNotFound, "File not found on server")
	case errors.Is(err, services.ErrAccessDenied):
		response.Error(w, http.StatusForbidden, "Access denied")
	default:
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
