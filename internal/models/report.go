package models

import (
	"time"

	"github.com/google/uuid"
)

type FileType string

const (
	FileTypePDF   FileType = "pdf"
	FileTypeImage FileType = "image"
)

type Report struct {
	ID uuid.UUID `db:"id" json:"id"`

	// FileName is the generated on-disk name; OriginalName is what the
	// client called the file and is only used for display and downloads.
	FileName     string   `db:"file_name" json:"file_name"`
	OriginalName string   `db:"original_name" json:"original_name"`
	FileType     FileType `db:"file_type" json:"file_type"`
	FileSize     int64    `db:"file_size" json:"file_size"`
	FilePath     string   `db:"file_path" json:"-"`

	UserEmail  string    `db:"user_email" json:"user_email"`
	UserID     uuid.UUID `db:"user_id" json:"user_id"`
	UploadedBy uuid.UUID `db:"uploaded_by" json:"uploaded_by"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
