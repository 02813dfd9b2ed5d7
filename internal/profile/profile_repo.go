package profile

import (
	"context"

	"gorm.io/gorm"

	"go-workflow/internal/domain"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, p *Profile) error
	FindByUserID(ctx context.Context, userID string) (*Profile, error)
	FindByUserIDs(ctx context.Context, userIDs []string) ([]Profile, error)
	FindAll(ctx context.Context) ([]Profile, error)

	CreateRole(ctx context.Context, r *UserRole) error
	GetRole(ctx context.Context, userID string) (domain.AppRole, error)
	ReplaceRole(ctx context.Context, userID string, role domain.AppRole) error
	FindRoles(ctx context.Context, userIDs []string) ([]UserRole, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).
		First(&p, "user_id = ?", userID).Error
	return &p, err
}

func (r *repository) FindByUserIDs(ctx context.Context, userIDs []string) ([]Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []Profile
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profiles).Error
	return profiles, err
}

func (r *repository) FindAll(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&profiles).Error
	return profiles, err
}

func (r *repository) CreateRole(ctx context.Context, role *UserRole) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *repository) GetRole(ctx context.Context, userID string) (domain.AppRole, error) {
	var ur UserRole
	err := r.db.WithContext(ctx).
		First(&ur, "user_id = ?", userID).Error
	if err != nil {
		return "", err
	}
	return ur.Role, nil
}

func (r *repository) ReplaceRole(ctx context.Context, userID string, role domain.AppRole) error {
	return r.db.WithContext(ctx).
		Model(&UserRole{}).
		Where("user_id = ?", userID).
		Update("role", role).Error
}

func (r *repository) FindRoles(ctx context.Context, userIDs []string) ([]UserRole, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var roles []UserRole
	err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&roles).Error
	return roles, err
}
