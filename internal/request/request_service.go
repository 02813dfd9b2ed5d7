package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-workflow/internal/authz"
	"go-workflow/internal/domain"
	"go-workflow/internal/events"
	"go-workflow/internal/messaging/kafka"
	"go-workflow/internal/profile"
	requesterrors "go-workflow/internal/request/errors"
	"go-workflow/internal/shared/contextutil"
	"go-workflow/internal/shared/response"
	"go-workflow/internal/timeline"
)

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, callerID string, req CreateRequestRequest) (RequestResponse, error)
	List(ctx context.Context, caller authz.Caller, filter ListRequestsFilter) ([]RequestResponse, response.PaginationMeta, error)
	GetByID(ctx context.Context, caller authz.Caller, id string) (RequestResponse, error)
	Timeline(ctx context.Context, caller authz.Caller, id string) ([]timeline.EntryResponse, error)

	// Transition moves a request to target, enforcing reachability before
	// authority so an out-of-order action is reported as an invalid
	// transition even to a caller who could not perform it anyway.
	Transition(ctx context.Context, caller authz.Caller, id string, target domain.RequestStatus, notes string) (RequestResponse, error)

	Assign(ctx context.Context, caller authz.Caller, id string, assigneeID string) (RequestResponse, error)
	SetPriority(ctx context.Context, caller authz.Caller, id string, priority string) (RequestResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	timelineRepo timeline.Repository
	outboxRepo   kafka.OutboxRepository
	profiles     profile.Service
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	timelineRepo timeline.Repository,
	outboxRepo kafka.OutboxRepository,
	profiles profile.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		timelineRepo: timelineRepo,
		outboxRepo:   outboxRepo,
		profiles:     profiles,
		logger:       l,
	}
}

func (s *service) Create(ctx context.Context, callerID string, req CreateRequestRequest) (RequestResponse, error) {
	requesterID, err := uuid.Parse(callerID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidActorID
	}

	reqType := domain.RequestType(req.RequestType)
	if !reqType.Valid() {
		return RequestResponse{}, requesterrors.ErrInvalidRequestType
	}
	priority := domain.RequestPriority(req.Priority)
	if !priority.Valid() {
		return RequestResponse{}, requesterrors.ErrInvalidPriority
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return RequestResponse{}, requesterrors.ErrInvalidDueDate
		}
		dueDate = &parsed
	}

	// Department is frozen at creation from the requester's profile, not
	// taken from the payload.
	requesterProfile, err := s.profiles.GetByUserID(ctx, callerID)
	if err != nil {
		return RequestResponse{}, err
	}

	now := time.Now().UTC()
	entity := Request{
		ID:            uuid.New(),
		Title:         req.Title,
		Description:   req.Description,
		RequestType:   reqType,
		Status:        domain.StatusSubmitted,
		Priority:      priority,
		RequesterID:   requesterID,
		Department:    requesterProfile.Department,
		EstimatedCost: req.EstimatedCost,
		DueDate:       dueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, &entity); err != nil {
		s.logger.Error("create request failed", zap.Error(err))
		return RequestResponse{}, err
	}

	entry := timeline.Entry{
		ID:        uuid.New(),
		RequestID: entity.ID,
		Action:    "created",
		NewStatus: domain.StatusSubmitted,
		ActorID:   &requesterID,
		CreatedAt: now,
	}
	if err := s.timelineRepo.WithTx(tx).Create(ctx, &entry); err != nil {
		s.logger.Error("create timeline entry failed", zap.Error(err))
		return RequestResponse{}, err
	}

	if err := s.enqueueEvent(ctx, tx, events.EventRequestCreated, entity, nil, requesterID.String()); err != nil {
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.Error(err))
		return RequestResponse{}, err
	}

	s.logger.Info("request created",
		zap.String("request_id", entity.ID.String()),
		zap.String("request_type", string(reqType)),
		zap.String("requester_id", callerID),
	)
	return mapToResponse(entity), nil
}

func (s *service) List(ctx context.Context, caller authz.Caller, filter ListRequestsFilter) ([]RequestResponse, response.PaginationMeta, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	repoFilter := Filter{
		Type:     domain.RequestType(filter.Type),
		Status:   domain.RequestStatus(filter.Status),
		Priority: domain.RequestPriority(filter.Priority),
		Search:   filter.Search,
		Page:     page,
		Limit:    limit,
	}
	if filter.My {
		repoFilter.RequesterID = caller.ID
	}

	scope := authz.VisibleScope(caller)
	total, err := s.repo.Count(ctx, scope, repoFilter)
	if err != nil {
		s.logger.Error("count requests failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	requests, err := s.repo.List(ctx, scope, repoFilter)
	if err != nil {
		s.logger.Error("list requests failed", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}
	return mapToListResponse(requests), response.NewPaginationMeta(total, page, limit), nil
}

func (s *service) GetByID(ctx context.Context, caller authz.Caller, id string) (RequestResponse, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return RequestResponse{}, err
	}
	return mapToResponse(*entity), nil
}

func (s *service) Timeline(ctx context.Context, caller authz.Caller, id string) ([]timeline.EntryResponse, error) {
	entity, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.timelineRepo.FindByRequest(ctx, entity.ID.String())
	if err != nil {
		s.logger.Error("list timeline failed", zap.Error(err))
		return nil, err
	}
	return timeline.MapToListResponse(entries), nil
}

func (s *service) Transition(
	ctx context.Context,
	caller authz.Caller,
	id string,
	target domain.RequestStatus,
	notes string,
) (RequestResponse, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	if !target.Valid() {
		return RequestResponse{}, requesterrors.ErrInvalidStatus
	}

	entity, err := s.find(ctx, id)
	if err != nil {
		return RequestResponse{}, err
	}

	// Reachability first: a transition the machine does not allow is an
	// invalid-state error regardless of who asks.
	if !domain.CanTransition(entity.Status, target) {
		logger.Debug("transition rejected: not reachable",
			zap.String("request_id", id),
			zap.String("from", string(entity.Status)),
			zap.String("to", string(target)),
		)
		return RequestResponse{}, requesterrors.ErrInvalidTransition
	}

	if err := s.authorizeTransition(caller, entity, target); err != nil {
		logger.Warn("transition forbidden",
			zap.String("request_id", id),
			zap.String("actor_id", caller.ID),
			zap.String("role", string(caller.Role)),
			zap.String("to", string(target)),
		)
		return RequestResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("begin tx failed", zap.Error(err))
		return RequestResponse{}, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	affected, err := s.repo.WithTx(tx).UpdateStatus(ctx, id, entity.Status, target, now)
	if err != nil {
		logger.Error("update status failed", zap.Error(err))
		return RequestResponse{}, err
	}
	if affected == 0 {
		// Someone moved the request between our read and this write. The
		// loser of the race gets a conflict, never a double transition.
		logger.Warn("transition lost race",
			zap.String("request_id", id),
			zap.String("expected", string(entity.Status)),
			zap.String("to", string(target)),
		)
		return RequestResponse{}, requesterrors.ErrConflict
	}

	actorID, err := uuid.Parse(caller.ID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidActorID
	}
	previous := entity.Status
	entry := timeline.Entry{
		ID:             uuid.New(),
		RequestID:      entity.ID,
		Action:         transitionAction(target),
		PreviousStatus: &previous,
		NewStatus:      target,
		ActorID:        &actorID,
		Notes:          notes,
		CreatedAt:      now,
	}
	if err := s.timelineRepo.WithTx(tx).Create(ctx, &entry); err != nil {
		logger.Error("create timeline entry failed", zap.Error(err))
		return RequestResponse{}, err
	}

	entity.Status = target
	entity.UpdatedAt = now
	if err := s.enqueueEvent(ctx, tx, events.EventRequestTransitioned, *entity, &previous, caller.ID); err != nil {
		return RequestResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("commit failed", zap.Error(err))
		return RequestResponse{}, err
	}

	logger.Info("request transitioned",
		zap.String("request_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(target)),
		zap.String("actor_id", caller.ID),
	)
	return mapToResponse(*entity), nil
}

func (s *service) Assign(ctx context.Context, caller authz.Caller, id string, assigneeID string) (RequestResponse, error) {
	assignee, err := uuid.Parse(assigneeID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidAssignee
	}

	entity, err := s.find(ctx, id)
	if err != nil {
		return RequestResponse{}, err
	}

	if entity.Status != domain.StatusApproved && entity.Status != domain.StatusInProgress {
		return RequestResponse{}, requesterrors.ErrNotAssignable
	}

	decision := authz.Resolve(caller, entity.RequesterID.String(), entity.RequestType)
	if !decision.CanAct {
		return RequestResponse{}, requesterrors.ErrForbidden
	}

	// The assignee must exist; a dangling uuid would make an unroutable
	// request.
	if _, err := s.profiles.GetByUserID(ctx, assigneeID); err != nil {
		return RequestResponse{}, requesterrors.ErrInvalidAssignee
	}

	// Assignment has no timeline entry or event: the timeline is a status
	// history. The write is still conditional on the loaded status so a
	// racing transition invalidates it.
	now := time.Now().UTC()
	affected, err := s.repo.UpdateAssignee(ctx, id, entity.Status, assigneeID, now)
	if err != nil {
		s.logger.Error("update assignee failed", zap.Error(err))
		return RequestResponse{}, err
	}
	if affected == 0 {
		return RequestResponse{}, requesterrors.ErrConflict
	}

	entity.AssignedTo = &assignee
	entity.UpdatedAt = now
	return mapToResponse(*entity), nil
}

func (s *service) SetPriority(ctx context.Context, caller authz.Caller, id string, priority string) (RequestResponse, error) {
	p := domain.RequestPriority(priority)
	if !p.Valid() {
		return RequestResponse{}, requesterrors.ErrInvalidPriority
	}

	entity, err := s.find(ctx, id)
	if err != nil {
		return RequestResponse{}, err
	}
	if entity.Status.IsTerminal() {
		return RequestResponse{}, requesterrors.ErrRequestClosed
	}

	decision := authz.Resolve(caller, entity.RequesterID.String(), entity.RequestType)
	if caller.ID != entity.RequesterID.String() && !decision.CanAct {
		return RequestResponse{}, requesterrors.ErrForbidden
	}

	if err := s.repo.UpdatePriority(ctx, id, p); err != nil {
		s.logger.Error("update priority failed", zap.Error(err))
		return RequestResponse{}, err
	}

	entity.Priority = p
	entity.UpdatedAt = time.Now().UTC()
	return mapToResponse(*entity), nil
}

func (s *service) find(ctx context.Context, id string) (*Request, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, requesterrors.ErrInvalidRequestID
	}
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requesterrors.ErrRequestNotFound
		}
		s.logger.Error("find request failed", zap.Error(err))
		return nil, err
	}
	return entity, nil
}

// authorizeTransition applies per-target authority after reachability has
// already passed. Approval-gated targets need an eligible approver; the
// remaining targets have their own actor rules.
func (s *service) authorizeTransition(caller authz.Caller, entity *Request, target domain.RequestStatus) error {
	decision := authz.Resolve(caller, entity.RequesterID.String(), entity.RequestType)
	isRequester := caller.ID == entity.RequesterID.String()

	switch {
	case domain.ApprovalGated(target):
		if !decision.CanAct {
			return requesterrors.ErrForbidden
		}
	case target == domain.StatusCancelled:
		if !isRequester && caller.Role != domain.RoleAdmin {
			return requesterrors.ErrForbidden
		}
	case target == domain.StatusPendingApproval:
		if !isRequester && caller.Role != domain.RoleAdmin && !decision.CanAct {
			return requesterrors.ErrForbidden
		}
	}
	return nil
}

func (s *service) enqueueEvent(
	ctx context.Context,
	tx *sql.Tx,
	eventType string,
	entity Request,
	previous *domain.RequestStatus,
	actorID string,
) error {
	payload := events.RequestLifecycleEvent{
		EventType:   eventType,
		RequestID:   entity.ID.String(),
		Title:       entity.Title,
		RequestType: entity.RequestType,
		NewStatus:   entity.Status,
		RequesterID: entity.RequesterID.String(),
		ActorID:     actorID,
		OccurredAt:  entity.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if previous != nil {
		payload.PreviousStatus = *previous
	}
	if entity.AssignedTo != nil {
		payload.AssignedTo = entity.AssignedTo.String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		s.logger.Error("marshal lifecycle event failed", zap.Error(err))
		return err
	}

	event := kafka.OutboxEvent{
		ID:            uuid.New().String(),
		CorrelationID: contextutil.GetRequestID(ctx),
		AggregateType: "request",
		AggregateID:   entity.ID.String(),
		EventType:     eventType,
		Topic:         events.RequestLifecycleTopic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outboxRepo.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("create outbox event failed", zap.Error(err))
		return err
	}
	return nil
}

func transitionAction(target domain.RequestStatus) string {
	switch target {
	case domain.StatusPendingApproval:
		return "submitted for approval"
	case domain.StatusApproved:
		return "approved"
	case domain.StatusRejected:
		return "rejected"
	case domain.StatusInProgress:
		return "started progress"
	case domain.StatusCompleted:
		return "completed"
	case domain.StatusCancelled:
		return "cancelled"
	default:
		return string(target)
	}
}
