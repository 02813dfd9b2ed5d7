package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-workflow/internal/events"
	notificationerrors "go-workflow/internal/notification/errors"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	// RecordLifecycleEvent fans a lifecycle event out into inbox rows. The
	// actor never notifies themselves.
	RecordLifecycleEvent(ctx context.Context, event events.RequestLifecycleEvent) error
	ListByUser(ctx context.Context, userID string, filter ListNotificationsFilter) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, userID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) RecordLifecycleEvent(ctx context.Context, event events.RequestLifecycleEvent) error {
	requestID, err := uuid.Parse(event.RequestID)
	if err != nil {
		s.logger.Warn("lifecycle event with bad request id", zap.String("request_id", event.RequestID))
		return nil
	}

	for _, target := range recipients(event) {
		userID, err := uuid.Parse(target)
		if err != nil {
			continue
		}

		n := Notification{
			ID:        uuid.New(),
			UserID:    userID,
			RequestID: requestID,
			EventType: event.EventType,
			Message:   message(event),
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.Create(ctx, &n); err != nil {
			s.logger.Error("create notification failed",
				zap.String("request_id", event.RequestID),
				zap.String("user_id", target),
				zap.Error(err),
			)
			return err
		}
	}
	return nil
}

func (s *service) ListByUser(ctx context.Context, userID string, filter ListNotificationsFilter) ([]NotificationResponse, error) {
	notifications, err := s.repo.FindByUser(ctx, userID, filter.Unread)
	if err != nil {
		s.logger.Error("list notifications failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(notifications), nil
}

func (s *service) MarkRead(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}

	affected, err := s.repo.MarkRead(ctx, id, userID, time.Now().UTC())
	if err != nil {
		s.logger.Error("mark notification read failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

// recipients picks who hears about an event: the requester, unless they
// caused it, and the assignee, unless they caused it.
func recipients(event events.RequestLifecycleEvent) []string {
	var targets []string
	if event.RequesterID != "" && event.RequesterID != event.ActorID {
		targets = append(targets, event.RequesterID)
	}
	if event.AssignedTo != "" && event.AssignedTo != event.ActorID && event.AssignedTo != event.RequesterID {
		targets = append(targets, event.AssignedTo)
	}
	return targets
}

func message(event events.RequestLifecycleEvent) string {
	switch event.EventType {
	case events.EventRequestCreated:
		return fmt.Sprintf("Request %q was created", event.Title)
	case events.EventRequestTransitioned:
		return fmt.Sprintf("Request %q moved from %s to %s", event.Title, event.PreviousStatus, event.NewStatus)
	default:
		return fmt.Sprintf("Request %q was updated", event.Title)
	}
}
