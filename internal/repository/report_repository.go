package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"medreports-backend/internal/database"
	"medreports-backend/internal/models"
)

// ReportRepository defines persistence operations for report metadata.
// Listings come back newest-first.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	ListAll(ctx context.Context) ([]models.Report, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) ReportRepository {
	return &reportRepository{db: db}
}

const reportColumns = "id, file_name, original_name, file_type, file_size, file_path, user_email, user_id, uploaded_by, created_at"

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		insert into reports (` + reportColumns + `)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		report.ID, report.FileName, report.OriginalName, report.FileType, report.FileSize,
		report.FilePath, report.UserEmail, report.UserID, report.UploadedBy, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	var report models.Report
	query := "select " + reportColumns + " from reports where id = $1"
	if err := r.db.GetContext(ctx, &report, query, id); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) ListAll(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	query := "select " + reportColumns + " from reports order by created_at desc"
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func (r *reportRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	query := "select " + reportColumns + " from reports where user_id = $1 order by created_at desc"
	if err := r.db.SelectContext(ctx, &reports, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func (r *reportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, "delete from reports where id = $1", id); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}
