package profile

import (
	"time"

	"github.com/google/uuid"

	"go-workflow/internal/domain"
)

type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_profiles_user_id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_profiles_email"`
	FullName  string    `gorm:"type:varchar(255);not null"`
	Department string   `gorm:"type:varchar(100);not null;default:''"`
	AvatarURL *string   `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserRole binds a user to exactly one AppRole. Reassignment replaces the
// row; authorization reads it fresh on every check.
type UserRole struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_roles_user_id"`
	Role      domain.AppRole `gorm:"type:varchar(20);not null;default:'employee'"`
	CreatedAt time.Time
}
