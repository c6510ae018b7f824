package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"medreports-backend/internal/dto"
	"medreports-backend/internal/models"
	"medreports-backend/internal/repository"
	"medreports-backend/internal/storage"
)

// MaxFileSize caps a single report upload at 5 MiB.
const MaxFileSize = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
}

var (
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrFileTooLarge       = errors.New("file size exceeds 5MB limit")
	ErrReportNotFound     = errors.New("report not found")
	ErrFileMissing        = errors.New("file not found on server")
	ErrAccessDenied       = errors.New("access denied")
)

// unknownUploader stands in when the uploading admin's account is gone.
const unknownUploader = "unknown"

type ReportService struct {
	reports repository.ReportRepository
	users   repository.UserRepository
	files   *storage.LocalStorage
}

func NewReportService(reports repository.ReportRepository, users repository.UserRepository, files *storage.LocalStorage) *ReportService {
	return &ReportService{reports: reports, users: users, files: files}
}

// Upload stores the file bytes and then the metadata record. The write order
// means a crash in between leaves an orphaned file on disk; accepted, no
// compensation.
func (s *ReportService) Upload(ctx context.Context, admin *models.User, targetEmail, originalName string, data []byte) (*dto.ReportResponse, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return nil, ErrFileTypeNotAllowed
	}
	if int64(len(data)) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	target, err := s.users.GetByEmail(ctx, targetEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve target user: %w", err)
	}

	name, path, err := s.files.Save(originalName, data)
	if err != nil {
		return nil, err
	}

	fileType := models.FileTypeImage
	if ext == ".pdf" {
		fileType = models.FileTypePDF
	}

	report := &models.Report{
		ID:           uuid.New(),
		FileName:     name,
		OriginalName: originalName,
		FileType:     fileType,
		FileSize:     int64(len(data)),
		FilePath:     path,
		UserEmail:    target.Email,
		UserID:       target.ID,
		UploadedBy:   admin.ID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	resp := dto.NewReportResponse(report, admin.Email)
	return &resp, nil
}

// List returns every report for admins and only the requester's own for
// plain users, newest first. A missing uploader account degrades to a
// placeholder instead of failing the listing.
func (s *ReportService) List(ctx context.Context, requester *models.User) ([]dto.ReportResponse, error) {
	var (
		reports []models.Report
		err     error
	)
	if requester.IsAdmin() {
		reports, err = s.reports.ListAll(ctx)
	} else {
		reports, err = s.reports.ListByUserID(ctx, requester.ID)
	}
	if err != nil {
		return nil, err
	}

	uploaderEmails := make(map[uuid.UUID]string)
	result := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		email, ok := uploaderEmails[r.UploadedBy]
		if !ok {
			email = unknownUploader
			if uploader, err := s.users.GetByID(ctx, r.UploadedBy); err == nil {
				email = uploader.Email
			}
			uploaderEmails[r.UploadedBy] = email
		}
		result = append(result, dto.NewReportResponse(r, email))
	}
	return result, nil
}

// Fetch resolves a report and opens its backing file for download or preview.
// Existence is checked before ownership, so an unknown id reads as not-found
// even to users who could never have accessed it.
func (s *ReportService) Fetch(ctx context.Context, requester *models.User, id uuid.UUID) (*models.Report, io.ReadCloser, error) {
	report, err := s.getReport(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !requester.IsAdmin() && report.UserID != requester.ID {
		return nil, nil, ErrAccessDenied
	}

	f, err := s.files.Open(report.FilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrFileMissing
		}
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	return report, f, nil
}

// Delete removes the backing file and the metadata record. Both removals are
// attempted even if the first fails, with the errors combined.
func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	report, err := s.getReport(ctx, id)
	if err != nil {
		return err
	}

	var result error
	if err := s.files.Remove(report.FilePath); err != nil {
		result = multierror.Append(result, err)
	}
	if err := s.reports.Delete(ctx, id); err != nil {
		result = multierror.Append(result, err)
	}
	return result
}

func (s *ReportService) getReport(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}
