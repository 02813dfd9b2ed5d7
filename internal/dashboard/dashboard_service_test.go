package dashboard_test

import (
	"context"
	"testing"
	"time"

	"go-workflow/internal/authz"
	"go-workflow/internal/dashboard"
	"go-workflow/internal/domain"
	"go-workflow/internal/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeDashboardRepository struct {
	countByStatusFn       func(ctx context.Context, scope authz.Scope) (map[domain.RequestStatus]int64, error)
	countByTypeFn         func(ctx context.Context, scope authz.Scope) (map[domain.RequestType]int64, error)
	countCompletedSinceFn func(ctx context.Context, scope authz.Scope, since time.Time) (int64, error)
	recentFn              func(ctx context.Context, scope authz.Scope, limit int) ([]request.Request, error)
}

func (f *fakeDashboardRepository) CountByStatus(ctx context.Context, scope authz.Scope) (map[domain.RequestStatus]int64, error) {
	if f.countByStatusFn != nil {
		return f.countByStatusFn(ctx, scope)
	}
	return map[domain.RequestStatus]int64{}, nil
}

func (f *fakeDashboardRepository) CountByType(ctx context.Context, scope authz.Scope) (map[domain.RequestType]int64, error) {
	if f.countByTypeFn != nil {
		return f.countByTypeFn(ctx, scope)
	}
	return map[domain.RequestType]int64{}, nil
}

func (f *fakeDashboardRepository) CountCompletedSince(ctx context.Context, scope authz.Scope, since time.Time) (int64, error) {
	if f.countCompletedSinceFn != nil {
		return f.countCompletedSinceFn(ctx, scope, since)
	}
	return 0, nil
}

func (f *fakeDashboardRepository) Recent(ctx context.Context, scope authz.Scope, limit int) ([]request.Request, error) {
	if f.recentFn != nil {
		return f.recentFn(ctx, scope, limit)
	}
	return nil, nil
}

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("totals and pending derive from the status breakdown", func(t *testing.T) {
		repo := &fakeDashboardRepository{
			countByStatusFn: func(ctx context.Context, scope authz.Scope) (map[domain.RequestStatus]int64, error) {
				assert.True(t, scope.All)
				return map[domain.RequestStatus]int64{
					domain.StatusSubmitted:       3,
					domain.StatusPendingApproval: 2,
					domain.StatusApproved:        1,
					domain.StatusInProgress:      2,
					domain.StatusCompleted:       4,
				}, nil
			},
			countByTypeFn: func(ctx context.Context, scope authz.Scope) (map[domain.RequestType]int64, error) {
				return map[domain.RequestType]int64{
					domain.TypePurchase: 6,
					domain.TypeLeave:    4,
				}, nil
			},
			countCompletedSinceFn: func(ctx context.Context, scope authz.Scope, since time.Time) (int64, error) {
				assert.Equal(t, 1, since.Day())
				return 2, nil
			},
		}
		svc := dashboard.NewService(repo)

		admin := authz.Caller{ID: uuid.New().String(), Role: domain.RoleAdmin}
		stats, err := svc.Stats(ctx, admin)

		assert.NoError(t, err)
		assert.Equal(t, int64(12), stats.Total)
		assert.Equal(t, int64(5), stats.Pending)
		assert.Equal(t, int64(2), stats.InProgress)
		assert.Equal(t, int64(2), stats.CompletedThisMonth)
		assert.Equal(t, int64(0), stats.ByStatus["rejected"])
		assert.Equal(t, int64(0), stats.ByType["it_support"])
		assert.Len(t, stats.ByStatus, 7)
		assert.Len(t, stats.ByType, 3)
	})

	t.Run("empty scope still yields zero-filled breakdowns", func(t *testing.T) {
		svc := dashboard.NewService(&fakeDashboardRepository{})

		employee := authz.Caller{ID: uuid.New().String(), Role: domain.RoleEmployee}
		stats, err := svc.Stats(ctx, employee)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.Total)
		assert.Equal(t, int64(0), stats.Pending)
		assert.Equal(t, int64(0), stats.InProgress)
		assert.Len(t, stats.ByStatus, 7)
		assert.Len(t, stats.ByType, 3)
		assert.Empty(t, stats.Recent)
	})

	t.Run("scope narrows to the caller's own requests", func(t *testing.T) {
		employeeID := uuid.New().String()
		repo := &fakeDashboardRepository{
			countByStatusFn: func(ctx context.Context, scope authz.Scope) (map[domain.RequestStatus]int64, error) {
				assert.False(t, scope.All)
				assert.Equal(t, employeeID, scope.RequesterID)
				return map[domain.RequestStatus]int64{domain.StatusSubmitted: 1}, nil
			},
		}
		svc := dashboard.NewService(repo)

		stats, err := svc.Stats(ctx, authz.Caller{ID: employeeID, Role: domain.RoleEmployee})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), stats.Total)
	})

	t.Run("recent requests are flattened", func(t *testing.T) {
		repo := &fakeDashboardRepository{
			recentFn: func(ctx context.Context, scope authz.Scope, limit int) ([]request.Request, error) {
				assert.Equal(t, 5, limit)
				return []request.Request{
					{
						ID:          uuid.New(),
						Title:       "New laptop",
						RequestType: domain.TypePurchase,
						Status:      domain.StatusSubmitted,
						Priority:    domain.PriorityHigh,
						RequesterID: uuid.New(),
						CreatedAt:   time.Now().UTC(),
					},
				}, nil
			},
		}
		svc := dashboard.NewService(repo)

		stats, err := svc.Stats(ctx, authz.Caller{ID: uuid.New().String(), Role: domain.RoleAdmin})

		assert.NoError(t, err)
		if assert.Len(t, stats.Recent, 1) {
			assert.Equal(t, "New laptop", stats.Recent[0].Title)
			assert.Equal(t, "purchase", stats.Recent[0].RequestType)
		}
	})
}
