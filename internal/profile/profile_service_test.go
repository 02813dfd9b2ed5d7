package profile_test

import (
	"context"
	"testing"

	"go-workflow/internal/domain"
	"go-workflow/internal/profile"
	profileerrors "go-workflow/internal/profile/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeProfileRepository struct {
	createFn        func(ctx context.Context, p *profile.Profile) error
	findByUserIDFn  func(ctx context.Context, userID string) (*profile.Profile, error)
	findByUserIDsFn func(ctx context.Context, userIDs []string) ([]profile.Profile, error)
	findAllFn       func(ctx context.Context) ([]profile.Profile, error)
	createRoleFn    func(ctx context.Context, role *profile.UserRole) error
	getRoleFn       func(ctx context.Context, userID string) (domain.AppRole, error)
	replaceRoleFn   func(ctx context.Context, userID string, role domain.AppRole) error
	findRolesFn     func(ctx context.Context, userIDs []string) ([]profile.UserRole, error)
}

func (f *fakeProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakeProfileRepository) FindByUserID(ctx context.Context, userID string) (*profile.Profile, error) {
	if f.findByUserIDFn != nil {
		return f.findByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepository) FindByUserIDs(ctx context.Context, userIDs []string) ([]profile.Profile, error) {
	if f.findByUserIDsFn != nil {
		return f.findByUserIDsFn(ctx, userIDs)
	}
	return nil, nil
}

func (f *fakeProfileRepository) FindAll(ctx context.Context) ([]profile.Profile, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeProfileRepository) CreateRole(ctx context.Context, role *profile.UserRole) error {
	if f.createRoleFn != nil {
		return f.createRoleFn(ctx, role)
	}
	return nil
}

func (f *fakeProfileRepository) GetRole(ctx context.Context, userID string) (domain.AppRole, error) {
	if f.getRoleFn != nil {
		return f.getRoleFn(ctx, userID)
	}
	return "", gorm.ErrRecordNotFound
}

func (f *fakeProfileRepository) ReplaceRole(ctx context.Context, userID string, role domain.AppRole) error {
	if f.replaceRoleFn != nil {
		return f.replaceRoleFn(ctx, userID, role)
	}
	return nil
}

func (f *fakeProfileRepository) FindRoles(ctx context.Context, userIDs []string) ([]profile.UserRole, error) {
	if f.findRolesFn != nil {
		return f.findRolesFn(ctx, userIDs)
	}
	return nil, nil
}

func TestProfileService_AssignRole(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success replaces the stored role", func(t *testing.T) {
		repo := &fakeProfileRepository{
			findByUserIDFn: func(ctx context.Context, uid string) (*profile.Profile, error) {
				return &profile.Profile{UserID: userID, Email: "u@example.com", FullName: "U"}, nil
			},
		}
		var replaced domain.AppRole
		repo.replaceRoleFn = func(ctx context.Context, uid string, role domain.AppRole) error {
			assert.Equal(t, userID.String(), uid)
			replaced = role
			return nil
		}
		svc := profile.NewService(repo)

		resp, err := svc.AssignRole(ctx, userID.String(), "finance")

		assert.NoError(t, err)
		assert.Equal(t, "finance", resp.Role)
		assert.Equal(t, domain.RoleFinance, replaced)
	})

	t.Run("negative unknown role", func(t *testing.T) {
		svc := profile.NewService(&fakeProfileRepository{})

		_, err := svc.AssignRole(ctx, userID.String(), "superuser")

		assert.ErrorIs(t, err, profileerrors.ErrInvalidRole)
	})

	t.Run("negative unknown user", func(t *testing.T) {
		svc := profile.NewService(&fakeProfileRepository{})

		_, err := svc.AssignRole(ctx, uuid.New().String(), "hr")

		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})
}

func TestProfileService_GetRole(t *testing.T) {
	ctx := context.Background()

	t.Run("role is read from the store every call", func(t *testing.T) {
		calls := 0
		repo := &fakeProfileRepository{
			getRoleFn: func(ctx context.Context, userID string) (domain.AppRole, error) {
				calls++
				if calls == 1 {
					return domain.RoleEmployee, nil
				}
				return domain.RoleManager, nil
			},
		}
		svc := profile.NewService(repo)

		first, err := svc.GetRole(ctx, uuid.New().String())
		assert.NoError(t, err)
		second, err := svc.GetRole(ctx, uuid.New().String())
		assert.NoError(t, err)

		// A promotion between the two calls is visible immediately.
		assert.Equal(t, domain.RoleEmployee, first)
		assert.Equal(t, domain.RoleManager, second)
	})

	t.Run("negative no role row", func(t *testing.T) {
		svc := profile.NewService(&fakeProfileRepository{})

		_, err := svc.GetRole(ctx, uuid.New().String())

		assert.ErrorIs(t, err, profileerrors.ErrRoleNotFound)
	})
}

func TestProfileService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("missing role rows default to employee", func(t *testing.T) {
		withRole := uuid.New()
		withoutRole := uuid.New()
		repo := &fakeProfileRepository{
			findAllFn: func(ctx context.Context) ([]profile.Profile, error) {
				return []profile.Profile{
					{UserID: withRole, Email: "a@example.com"},
					{UserID: withoutRole, Email: "b@example.com"},
				}, nil
			},
			findRolesFn: func(ctx context.Context, userIDs []string) ([]profile.UserRole, error) {
				return []profile.UserRole{{UserID: withRole, Role: domain.RoleIT}}, nil
			},
		}
		svc := profile.NewService(repo)

		resp, err := svc.ListUsers(ctx)

		assert.NoError(t, err)
		if assert.Len(t, resp, 2) {
			assert.Equal(t, "it", resp[0].Role)
			assert.Equal(t, "employee", resp[1].Role)
		}
	})
}
