package request_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"go-workflow/internal/authz"
	"go-workflow/internal/domain"
	"go-workflow/internal/messaging/kafka"
	"go-workflow/internal/profile"
	"go-workflow/internal/request"
	requesterrors "go-workflow/internal/request/errors"
	"go-workflow/internal/timeline"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRequestRepository struct {
	withTxFn         func(tx *sql.Tx) request.Repository
	createFn         func(ctx context.Context, r *request.Request) error
	findByIDFn       func(ctx context.Context, id string) (*request.Request, error)
	listFn           func(ctx context.Context, scope authz.Scope, filter request.Filter) ([]request.Request, error)
	countFn          func(ctx context.Context, scope authz.Scope, filter request.Filter) (int64, error)
	updateStatusFn   func(ctx context.Context, id string, expected, target domain.RequestStatus, updatedAt time.Time) (int64, error)
	updateAssigneeFn func(ctx context.Context, id string, expected domain.RequestStatus, assigneeID string, updatedAt time.Time) (int64, error)
	updatePriorityFn func(ctx context.Context, id string, priority domain.RequestPriority) error
}

func (f *fakeRequestRepository) WithTx(tx *sql.Tx) request.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeRequestRepository) Create(ctx context.Context, r *request.Request) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	return nil
}

func (f *fakeRequestRepository) FindByID(ctx context.Context, id string) (*request.Request, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRequestRepository) List(ctx context.Context, scope authz.Scope, filter request.Filter) ([]request.Request, error) {
	if f.listFn != nil {
		return f.listFn(ctx, scope, filter)
	}
	return nil, nil
}

func (f *fakeRequestRepository) Count(ctx context.Context, scope authz.Scope, filter request.Filter) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx, scope, filter)
	}
	return 0, nil
}

func (f *fakeRequestRepository) UpdateStatus(ctx context.Context, id string, expected, target domain.RequestStatus, updatedAt time.Time) (int64, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, expected, target, updatedAt)
	}
	return 1, nil
}

func (f *fakeRequestRepository) UpdateAssignee(ctx context.Context, id string, expected domain.RequestStatus, assigneeID string, updatedAt time.Time) (int64, error) {
	if f.updateAssigneeFn != nil {
		return f.updateAssigneeFn(ctx, id, expected, assigneeID, updatedAt)
	}
	return 1, nil
}

func (f *fakeRequestRepository) UpdatePriority(ctx context.Context, id string, priority domain.RequestPriority) error {
	if f.updatePriorityFn != nil {
		return f.updatePriorityFn(ctx, id, priority)
	}
	return nil
}

type fakeTimelineRepository struct {
	createFn        func(ctx context.Context, e *timeline.Entry) error
	findByRequestFn func(ctx context.Context, requestID string) ([]timeline.Entry, error)
}

func (f *fakeTimelineRepository) WithTx(tx *sql.Tx) timeline.Repository {
	return f
}

func (f *fakeTimelineRepository) Create(ctx context.Context, e *timeline.Entry) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeTimelineRepository) FindByRequest(ctx context.Context, requestID string) ([]timeline.Entry, error) {
	if f.findByRequestFn != nil {
		return f.findByRequestFn(ctx, requestID)
	}
	return nil, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type fakeProfileService struct {
	getByUserIDFn func(ctx context.Context, userID string) (*profile.Profile, error)
}

func (f *fakeProfileService) GetByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	if f.getByUserIDFn != nil {
		return f.getByUserIDFn(ctx, userID)
	}
	return &profile.Profile{UserID: uuid.MustParse(userID), Department: "Engineering"}, nil
}

func (f *fakeProfileService) GetRole(ctx context.Context, userID string) (domain.AppRole, error) {
	return domain.RoleEmployee, nil
}

func (f *fakeProfileService) ListUsers(ctx context.Context) ([]profile.UserResponse, error) {
	return nil, nil
}

func (f *fakeProfileService) AssignRole(ctx context.Context, userID string, role string) (profile.UserResponse, error) {
	return profile.UserResponse{}, nil
}

type requestServiceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  request.Service
	repo     *fakeRequestRepository
	timeline *fakeTimelineRepository
	outbox   *fakeOutboxRepository
	profiles *fakeProfileService
}

func setupRequestServiceTest(t *testing.T) *requestServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeRequestRepository{}
	tl := &fakeTimelineRepository{}
	outbox := &fakeOutboxRepository{}
	profiles := &fakeProfileService{}
	svc := request.NewService(db, repo, tl, outbox, profiles)

	return &requestServiceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		timeline: tl,
		outbox:   outbox,
		profiles: profiles,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func storedRequest(requesterID uuid.UUID, reqType domain.RequestType, status domain.RequestStatus) *request.Request {
	return &request.Request{
		ID:          uuid.New(),
		Title:       "New laptop",
		RequestType: reqType,
		Status:      status,
		Priority:    domain.PriorityMedium,
		RequesterID: requesterID,
		Department:  "Engineering",
		CreatedAt:   time.Now().UTC().Add(-time.Hour),
		UpdatedAt:   time.Now().UTC().Add(-time.Hour),
	}
}

func TestRequestService_Create(t *testing.T) {
	ctx := context.Background()
	requesterID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		req := request.CreateRequestRequest{
			Title:       "New laptop",
			Description: "MacBook for onboarding",
			RequestType: "purchase",
			Priority:    "high",
		}

		deps.profiles.getByUserIDFn = func(ctx context.Context, userID string) (*profile.Profile, error) {
			assert.Equal(t, requesterID, userID)
			return &profile.Profile{UserID: uuid.MustParse(userID), Department: "Finance Ops"}, nil
		}

		var timelineEntry *timeline.Entry
		deps.timeline.createFn = func(ctx context.Context, e *timeline.Entry) error {
			timelineEntry = e
			return nil
		}
		var outboxEvent *kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			outboxEvent = &event
			return nil
		}
		deps.repo.createFn = func(ctx context.Context, r *request.Request) error {
			assert.Equal(t, domain.StatusSubmitted, r.Status)
			assert.Equal(t, domain.TypePurchase, r.RequestType)
			assert.Equal(t, "Finance Ops", r.Department)
			assert.Equal(t, uuid.MustParse(requesterID), r.RequesterID)
			return nil
		}

		resp, err := deps.service.Create(ctx, requesterID, req)

		assert.NoError(t, err)
		assert.Equal(t, "submitted", resp.Status)
		assert.Equal(t, "Finance Ops", resp.Department)
		if assert.NotNil(t, timelineEntry) {
			assert.Equal(t, "created", timelineEntry.Action)
			assert.Nil(t, timelineEntry.PreviousStatus)
			assert.Equal(t, domain.StatusSubmitted, timelineEntry.NewStatus)
		}
		if assert.NotNil(t, outboxEvent) {
			assert.Equal(t, "request.created", outboxEvent.EventType)
			assert.Equal(t, "request", outboxEvent.AggregateType)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative invalid due date", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		due := "03/01/2026"
		_, err := deps.service.Create(ctx, requesterID, request.CreateRequestRequest{
			Title:       "Leave",
			RequestType: "leave",
			Priority:    "low",
			DueDate:     &due,
		})

		assert.ErrorIs(t, err, requesterrors.ErrInvalidDueDate)
	})

	t.Run("negative profile lookup fails", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.profiles.getByUserIDFn = func(ctx context.Context, userID string) (*profile.Profile, error) {
			return nil, errors.New("db error")
		}

		_, err := deps.service.Create(ctx, requesterID, request.CreateRequestRequest{
			Title:       "New laptop",
			RequestType: "purchase",
			Priority:    "medium",
		})

		assert.Error(t, err)
	})
}

func TestRequestService_Transition(t *testing.T) {
	ctx := context.Background()
	requesterID := uuid.New()

	t.Run("finance approves a purchase request", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypePurchase, domain.StatusSubmitted)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		expectTx(t, deps.sqlMock, true)
		var timelineEntry *timeline.Entry
		deps.timeline.createFn = func(ctx context.Context, e *timeline.Entry) error {
			timelineEntry = e
			return nil
		}

		approver := authz.Caller{ID: uuid.New().String(), Role: domain.RoleFinance}
		resp, err := deps.service.Transition(ctx, approver, stored.ID.String(), domain.StatusApproved, "budget ok")

		assert.NoError(t, err)
		assert.Equal(t, "approved", resp.Status)
		if assert.NotNil(t, timelineEntry) {
			assert.Equal(t, "approved", timelineEntry.Action)
			assert.Equal(t, domain.StatusSubmitted, *timelineEntry.PreviousStatus)
			assert.Equal(t, "budget ok", timelineEntry.Notes)
		}
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative requester cannot approve their own request", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypePurchase, domain.StatusSubmitted)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		// Role makes no difference: self-approval is banned outright.
		self := authz.Caller{ID: requesterID.String(), Role: domain.RoleManager}
		_, err := deps.service.Transition(ctx, self, stored.ID.String(), domain.StatusApproved, "")

		assert.ErrorIs(t, err, requesterrors.ErrForbidden)
	})

	t.Run("negative requester cannot start progress on own request", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypeITSupport, domain.StatusApproved)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		self := authz.Caller{ID: requesterID.String(), Role: domain.RoleEmployee}
		_, err := deps.service.Transition(ctx, self, stored.ID.String(), domain.StatusInProgress, "")

		assert.ErrorIs(t, err, requesterrors.ErrForbidden)
	})

	t.Run("negative it cannot start a purchase request", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypePurchase, domain.StatusApproved)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		itCaller := authz.Caller{ID: uuid.New().String(), Role: domain.RoleIT}
		_, err := deps.service.Transition(ctx, itCaller, stored.ID.String(), domain.StatusInProgress, "")

		assert.ErrorIs(t, err, requesterrors.ErrForbidden)
	})

	t.Run("negative unreachable target reported before authority", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypeLeave, domain.StatusSubmitted)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		// An employee with no authority still sees INVALID_STATE, not 403:
		// submitted cannot jump straight to completed for anyone.
		nobody := authz.Caller{ID: uuid.New().String(), Role: domain.RoleEmployee}
		_, err := deps.service.Transition(ctx, nobody, stored.ID.String(), domain.StatusCompleted, "")

		assert.ErrorIs(t, err, requesterrors.ErrInvalidTransition)
	})

	t.Run("negative terminal status accepts no transition", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypeLeave, domain.StatusCompleted)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		admin := authz.Caller{ID: uuid.New().String(), Role: domain.RoleAdmin}
		_, err := deps.service.Transition(ctx, admin, stored.ID.String(), domain.StatusCancelled, "")

		assert.ErrorIs(t, err, requesterrors.ErrInvalidTransition)
	})

	t.Run("negative concurrent transition loses with conflict", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypePurchase, domain.StatusSubmitted)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		expectTx(t, deps.sqlMock, false)
		// The conditional write touches zero rows: a racing approval already
		// moved the status after our read.
		deps.repo.updateStatusFn = func(ctx context.Context, id string, expected, target domain.RequestStatus, updatedAt time.Time) (int64, error) {
			assert.Equal(t, domain.StatusSubmitted, expected)
			return 0, nil
		}

		approver := authz.Caller{ID: uuid.New().String(), Role: domain.RoleFinance}
		_, err := deps.service.Transition(ctx, approver, stored.ID.String(), domain.StatusRejected, "over budget")

		assert.ErrorIs(t, err, requesterrors.ErrConflict)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("requester cancels their own submitted request", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypeLeave, domain.StatusSubmitted)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		expectTx(t, deps.sqlMock, true)
		self := authz.Caller{ID: requesterID.String(), Role: domain.RoleEmployee}
		resp, err := deps.service.Transition(ctx, self, stored.ID.String(), domain.StatusCancelled, "no longer needed")

		assert.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unrelated employee cannot cancel", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypeLeave, domain.StatusSubmitted)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		other := authz.Caller{ID: uuid.New().String(), Role: domain.RoleHR}
		_, err := deps.service.Transition(ctx, other, stored.ID.String(), domain.StatusCancelled, "")

		assert.ErrorIs(t, err, requesterrors.ErrForbidden)
	})

	t.Run("negative unknown request id", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return nil, gorm.ErrRecordNotFound
		}

		admin := authz.Caller{ID: uuid.New().String(), Role: domain.RoleAdmin}
		_, err := deps.service.Transition(ctx, admin, uuid.New().String(), domain.StatusApproved, "")

		assert.ErrorIs(t, err, requesterrors.ErrRequestNotFound)
	})
}

func TestRequestService_Assign(t *testing.T) {
	ctx := context.Background()
	requesterID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypeITSupport, domain.StatusApproved)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		assignee := uuid.New().String()
		deps.repo.updateAssigneeFn = func(ctx context.Context, id string, expected domain.RequestStatus, assigneeID string, updatedAt time.Time) (int64, error) {
			assert.Equal(t, domain.StatusApproved, expected)
			assert.Equal(t, assignee, assigneeID)
			return 1, nil
		}

		itCaller := authz.Caller{ID: uuid.New().String(), Role: domain.RoleIT}
		resp, err := deps.service.Assign(ctx, itCaller, stored.ID.String(), assignee)

		assert.NoError(t, err)
		if assert.NotNil(t, resp.AssignedTo) {
			assert.Equal(t, assignee, *resp.AssignedTo)
		}
	})

	t.Run("negative not assignable while submitted", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypeITSupport, domain.StatusSubmitted)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		itCaller := authz.Caller{ID: uuid.New().String(), Role: domain.RoleIT}
		_, err := deps.service.Assign(ctx, itCaller, stored.ID.String(), uuid.New().String())

		assert.ErrorIs(t, err, requesterrors.ErrNotAssignable)
	})

	t.Run("negative requester cannot assign", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypeITSupport, domain.StatusApproved)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		self := authz.Caller{ID: requesterID.String(), Role: domain.RoleIT}
		_, err := deps.service.Assign(ctx, self, stored.ID.String(), uuid.New().String())

		assert.ErrorIs(t, err, requesterrors.ErrForbidden)
	})
}

func TestRequestService_SetPriority(t *testing.T) {
	ctx := context.Background()
	requesterID := uuid.New()

	t.Run("requester raises priority", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypePurchase, domain.StatusSubmitted)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		var updated domain.RequestPriority
		deps.repo.updatePriorityFn = func(ctx context.Context, id string, priority domain.RequestPriority) error {
			updated = priority
			return nil
		}

		self := authz.Caller{ID: requesterID.String(), Role: domain.RoleEmployee}
		stale := stored.UpdatedAt
		resp, err := deps.service.SetPriority(ctx, self, stored.ID.String(), "urgent")

		assert.NoError(t, err)
		assert.Equal(t, "urgent", resp.Priority)
		assert.Equal(t, domain.PriorityUrgent, updated)

		// The response reflects the write, not the stale loaded row.
		refreshed, parseErr := time.Parse(time.RFC3339, resp.UpdatedAt)
		assert.NoError(t, parseErr)
		assert.True(t, refreshed.After(stale))
	})

	t.Run("negative bystander cannot change priority", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypePurchase, domain.StatusSubmitted)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		other := authz.Caller{ID: uuid.New().String(), Role: domain.RoleHR}
		_, err := deps.service.SetPriority(ctx, other, stored.ID.String(), "low")

		assert.ErrorIs(t, err, requesterrors.ErrForbidden)
	})

	t.Run("negative closed request is immutable", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		stored := storedRequest(requesterID, domain.TypePurchase, domain.StatusRejected)
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*request.Request, error) {
			return stored, nil
		}

		self := authz.Caller{ID: requesterID.String(), Role: domain.RoleEmployee}
		_, err := deps.service.SetPriority(ctx, self, stored.ID.String(), "low")

		assert.ErrorIs(t, err, requesterrors.ErrRequestClosed)
	})
}

func TestRequestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("scope and my filter are forwarded", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		financeID := uuid.New().String()
		deps.repo.listFn = func(ctx context.Context, scope authz.Scope, filter request.Filter) ([]request.Request, error) {
			assert.Equal(t, domain.TypePurchase, scope.RequestType)
			assert.False(t, scope.All)
			assert.Equal(t, financeID, filter.RequesterID)
			assert.Equal(t, domain.StatusSubmitted, filter.Status)
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, 20, filter.Limit)
			return []request.Request{*storedRequest(uuid.New(), domain.TypePurchase, domain.StatusSubmitted)}, nil
		}
		deps.repo.countFn = func(ctx context.Context, scope authz.Scope, filter request.Filter) (int64, error) {
			return 1, nil
		}

		financeCaller := authz.Caller{ID: financeID, Role: domain.RoleFinance}
		resp, meta, err := deps.service.List(ctx, financeCaller, request.ListRequestsFilter{Status: "submitted", My: true})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, int64(1), meta.Total)
		assert.Equal(t, 1, meta.Page)
	})

	t.Run("negative repo error", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		deps.repo.listFn = func(ctx context.Context, scope authz.Scope, filter request.Filter) ([]request.Request, error) {
			return nil, errors.New("db error")
		}

		_, _, err := deps.service.List(ctx, authz.Caller{ID: uuid.New().String(), Role: domain.RoleEmployee}, request.ListRequestsFilter{})

		assert.Error(t, err)
	})
}

func TestRequestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("negative not found", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, authz.Caller{ID: uuid.New().String(), Role: domain.RoleAdmin}, uuid.New().String())

		assert.ErrorIs(t, err, requesterrors.ErrRequestNotFound)
	})

	t.Run("negative malformed id", func(t *testing.T) {
		deps := setupRequestServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, authz.Caller{ID: uuid.New().String(), Role: domain.RoleAdmin}, "not-a-uuid")

		assert.ErrorIs(t, err, requesterrors.ErrInvalidRequestID)
	})
}
