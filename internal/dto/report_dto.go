package dto

import (
	"time"

	"github.com/google/uuid"

	"medreports-backend/internal/models"
)

type ReportResponse struct {
	ID           uuid.UUID       `json:"id"`
	FileName     string          `json:"file_name"`
	OriginalName string          `json:"original_name"`
	FileType     models.FileType `json:"file_type"`
	FileSize     int64           `json:"file_size"`
	UserEmail    string          `json:"user_email"`
	// UploadedBy carries the uploading admin's email, not their id.
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewReportResponse(r *models.Report, uploaderEmail string) ReportResponse {
	return ReportResponse{
		ID:           r.ID,
		FileName:     r.FileName,
		OriginalName: r.OriginalName,
		FileType:     r.FileType,
		FileSize:     r.FileSize,
		UserEmail:    r.UserEmail,
		UploadedBy:   uploaderEmail,
		CreatedAt:    r.CreatedAt,
	}
}
