package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a discussion entry on a request. Internal comments are visible
// only to the author and to callers who could act on the request.
type Comment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID  uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_request_created"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	Body       string    `gorm:"type:text;not null"`
	IsInternal bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"index:idx_comments_request_created"`
}
