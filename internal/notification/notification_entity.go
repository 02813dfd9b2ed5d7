package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a per-user inbox line derived from a request lifecycle
// event by the consumer. Delivery is at-least-once, so rows may duplicate
// under consumer retries; the inbox tolerates that.
type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_created"`
	RequestID uuid.UUID  `gorm:"type:uuid;not null"`
	EventType string     `gorm:"type:varchar(50);not null"`
	Message   string     `gorm:"type:text;not null"`
	ReadAt    *time.Time `gorm:"type:timestamptz"`
	CreatedAt time.Time  `gorm:"index:idx_notifications_user_created"`
}
