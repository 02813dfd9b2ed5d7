package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-workflow/internal/domain"
	profileerrors "go-workflow/internal/profile/errors"
)

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	// GetRole resolves the caller's role from the store. Called once per HTTP
	// request so a reassignment takes effect immediately.
	GetRole(ctx context.Context, userID string) (domain.AppRole, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
	AssignRole(ctx context.Context, userID string, role string) (UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetByUserID(ctx context.Context, userID string) (*Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, profileerrors.ErrInvalidUserID
	}
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profileerrors.ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) GetRole(ctx context.Context, userID string) (domain.AppRole, error) {
	role, err := s.repo.GetRole(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", profileerrors.ErrRoleNotFound
		}
		return "", err
	}
	return role, nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserResponse, error) {
	profiles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		userIDs = append(userIDs, p.UserID.String())
	}

	roles, err := s.repo.FindRoles(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	roleByUser := make(map[string]domain.AppRole, len(roles))
	for _, r := range roles {
		roleByUser[r.UserID.String()] = r.Role
	}

	resp := make([]UserResponse, 0, len(profiles))
	for _, p := range profiles {
		role := roleByUser[p.UserID.String()]
		if role == "" {
			role = domain.RoleEmployee
		}
		resp = append(resp, mapToUserResponse(p, role))
	}
	return resp, nil
}

func (s *service) AssignRole(ctx context.Context, userID string, role string) (UserResponse, error) {
	s.logger.Debug("assign role requested",
		zap.String("user_id", userID),
		zap.String("role", role),
	)

	if _, err := uuid.Parse(userID); err != nil {
		return UserResponse{}, profileerrors.ErrInvalidUserID
	}
	newRole := domain.AppRole(role)
	if !newRole.Valid() {
		return UserResponse{}, profileerrors.ErrInvalidRole
	}

	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, profileerrors.ErrProfileNotFound
		}
		return UserResponse{}, err
	}

	if err := s.repo.ReplaceRole(ctx, userID, newRole); err != nil {
		s.logger.Error("assign role persist failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return UserResponse{}, err
	}

	s.logger.Info("role assigned",
		zap.String("user_id", userID),
		zap.String("role", role),
	)
	return mapToUserResponse(*p, newRole), nil
}

func mapToUserResponse(p Profile, role domain.AppRole) UserResponse {
	return UserResponse{
		UserID:     p.UserID.String(),
		Email:      p.Email,
		FullName:   p.FullName,
		Department: p.Department,
		AvatarURL:  p.AvatarURL,
		Role:       string(role),
		CreatedAt:  p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
