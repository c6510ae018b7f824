package services

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"medreports-backend/internal/models"
)

// In-memory repositories mirroring the sql.ErrNoRows contract of the real ones.

type memUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) error {
	u := *user
	r.users[user.ID] = &u
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (r *memUserRepo) ListByRole(_ context.Context, role models.UserRole) ([]models.User, error) {
	var result []models.User
	for _, u := range r.users {
		if u.Role == role {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

type memReportRepo struct {
	reports map[uuid.UUID]*models.Report
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: make(map[uuid.UUID]*models.Report)}
}

func (r *memReportRepo) Create(_ context.Context, report *models.Report) error {
	rep := *report
	r.reports[report.ID] = &rep
	return nil
}

func (r *memReportRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Report, error) {
	if rep, ok := r.reports[id]; ok {
		return rep, nil
	}
	return nil, sql.ErrNoRows
}

func (r *memReportRepo) ListAll(_ context.Context) ([]models.Report, error) {
	var result []models.Report
	for _, rep := range r.reports {
		result = append(result, *rep)
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *memReportRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]models.Report, error) {
	var result []models.Report
	for _, rep := range r.reports {
		if rep.UserID == userID {
			result = append(result, *rep)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (r *memReportRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.reports, id)
	return nil
}

func sortNewestFirst(reports []models.Report) {
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
}
