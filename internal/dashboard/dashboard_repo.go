package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"

	"go-workflow/internal/authz"
	"go-workflow/internal/domain"
	"go-workflow/internal/request"
)

type statusCount struct {
	Status domain.RequestStatus
	Count  int64
}

type typeCount struct {
	RequestType domain.RequestType
	Count       int64
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountByStatus(ctx context.Context, scope authz.Scope) (map[domain.RequestStatus]int64, error)
	CountByType(ctx context.Context, scope authz.Scope) (map[domain.RequestType]int64, error)
	CountCompletedSince(ctx context.Context, scope authz.Scope, since time.Time) (int64, error)
	Recent(ctx context.Context, scope authz.Scope, limit int) ([]request.Request, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Counts are grouped in the database; the caller's scope becomes WHERE
// clauses so a scoped-down role never aggregates rows it cannot see.
func (r *repository) CountByStatus(ctx context.Context, scope authz.Scope) (map[domain.RequestStatus]int64, error) {
	var rows []statusCount
	err := request.ApplyScope(r.db.WithContext(ctx).Model(&request.Request{}), scope).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.RequestStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *repository) CountByType(ctx context.Context, scope authz.Scope) (map[domain.RequestType]int64, error) {
	var rows []typeCount
	err := request.ApplyScope(r.db.WithContext(ctx).Model(&request.Request{}), scope).
		Select("request_type, COUNT(*) AS count").
		Group("request_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.RequestType]int64, len(rows))
	for _, row := range rows {
		counts[row.RequestType] = row.Count
	}
	return counts, nil
}

func (r *repository) CountCompletedSince(ctx context.Context, scope authz.Scope, since time.Time) (int64, error) {
	var count int64
	err := request.ApplyScope(r.db.WithContext(ctx).Model(&request.Request{}), scope).
		Where("status = ?", domain.StatusCompleted).
		Where("updated_at >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *repository) Recent(ctx context.Context, scope authz.Scope, limit int) ([]request.Request, error) {
	var requests []request.Request
	err := request.ApplyScope(r.db.WithContext(ctx).Model(&request.Request{}), scope).
		Order("created_at DESC").
		Limit(limit).
		Find(&requests).Error
	return requests, err
}
