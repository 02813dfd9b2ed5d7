package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"go-workflow/internal/authz"
	"go-workflow/internal/domain"
)

const recentLimit = 5

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Stats(ctx context.Context, caller authz.Caller) (DashboardStats, error)
}

type service struct {
	repo   Repository
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l}
}

// Stats aggregates within the caller's scope. Concurrent callers resolving
// to the same scope share one round of queries via singleflight.
func (s *service) Stats(ctx context.Context, caller authz.Caller) (DashboardStats, error) {
	key := scopeKey(authz.VisibleScope(caller))

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.collect(ctx, authz.VisibleScope(caller))
	})
	if err != nil {
		return DashboardStats{}, err
	}
	return v.(DashboardStats), nil
}

func (s *service) collect(ctx context.Context, scope authz.Scope) (DashboardStats, error) {
	byStatus, err := s.repo.CountByStatus(ctx, scope)
	if err != nil {
		s.logger.Error("count by status failed", zap.Error(err))
		return DashboardStats{}, err
	}
	byType, err := s.repo.CountByType(ctx, scope)
	if err != nil {
		s.logger.Error("count by type failed", zap.Error(err))
		return DashboardStats{}, err
	}

	now := time.Now().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	completedThisMonth, err := s.repo.CountCompletedSince(ctx, scope, startOfMonth)
	if err != nil {
		s.logger.Error("count completed failed", zap.Error(err))
		return DashboardStats{}, err
	}

	recent, err := s.repo.Recent(ctx, scope, recentLimit)
	if err != nil {
		s.logger.Error("recent requests failed", zap.Error(err))
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		CompletedThisMonth: completedThisMonth,
		ByStatus:           make(map[string]int64, len(domain.RequestStatuses())),
		ByType:             make(map[string]int64, len(domain.RequestTypes())),
		Recent:             make([]RecentRequest, 0, len(recent)),
	}

	for _, status := range domain.RequestStatuses() {
		count := byStatus[status]
		stats.ByStatus[string(status)] = count
		stats.Total += count
	}
	stats.Pending = stats.ByStatus[string(domain.StatusSubmitted)] +
		stats.ByStatus[string(domain.StatusPendingApproval)]
	stats.InProgress = stats.ByStatus[string(domain.StatusInProgress)]

	for _, reqType := range domain.RequestTypes() {
		stats.ByType[string(reqType)] = byType[reqType]
	}

	for _, r := range recent {
		stats.Recent = append(stats.Recent, RecentRequest{
			ID:          r.ID.String(),
			Title:       r.Title,
			RequestType: string(r.RequestType),
			Status:      string(r.Status),
			Priority:    string(r.Priority),
			RequesterID: r.RequesterID.String(),
			CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return stats, nil
}

func scopeKey(scope authz.Scope) string {
	if scope.All {
		return "all"
	}
	return fmt.Sprintf("type=%s;requester=%s", scope.RequestType, scope.RequesterID)
}
