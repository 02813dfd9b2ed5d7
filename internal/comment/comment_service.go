package comment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-workflow/internal/authz"
	commenterrors "go-workflow/internal/comment/errors"
	"go-workflow/internal/domain"
	"go-workflow/internal/request"
)

//go:generate mockgen -source=comment_service.go -destination=mock/comment_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, caller authz.Caller, requestID string, req AddCommentRequest) (CommentResponse, error)
	// ListByRequest hides internal comments from callers who could not act
	// on the request and did not write them.
	ListByRequest(ctx context.Context, caller authz.Caller, requestID string) ([]CommentResponse, error)
}

type service struct {
	repo     Repository
	requests request.Service
	logger   *zap.Logger
}

func NewService(repo Repository, requests request.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("comment.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("comment.service")
	}
	return &service{repo: repo, requests: requests, logger: l}
}

func (s *service) Add(ctx context.Context, caller authz.Caller, requestID string, req AddCommentRequest) (CommentResponse, error) {
	authorID, err := uuid.Parse(caller.ID)
	if err != nil {
		return CommentResponse{}, commenterrors.ErrInvalidAuthorID
	}

	target, err := s.requests.GetByID(ctx, caller, requestID)
	if err != nil {
		return CommentResponse{}, err
	}

	if req.IsInternal {
		decision := authz.Resolve(caller, target.RequesterID, domain.RequestType(target.RequestType))
		if !decision.CanAct {
			return CommentResponse{}, commenterrors.ErrInternalNotAllowed
		}
	}

	entity := Comment{
		ID:         uuid.New(),
		RequestID:  uuid.MustParse(target.ID),
		AuthorID:   authorID,
		Body:       req.Body,
		IsInternal: req.IsInternal,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &entity); err != nil {
		s.logger.Error("create comment failed", zap.Error(err))
		return CommentResponse{}, err
	}

	return mapToResponse(entity), nil
}

func (s *service) ListByRequest(ctx context.Context, caller authz.Caller, requestID string) ([]CommentResponse, error) {
	target, err := s.requests.GetByID(ctx, caller, requestID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.FindByRequest(ctx, target.ID)
	if err != nil {
		s.logger.Error("list comments failed", zap.Error(err))
		return nil, err
	}

	decision := authz.Resolve(caller, target.RequesterID, domain.RequestType(target.RequestType))
	resp := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		if c.IsInternal && !decision.CanAct && c.AuthorID.String() != caller.ID {
			continue
		}
		resp = append(resp, mapToResponse(c))
	}
	return resp, nil
}
