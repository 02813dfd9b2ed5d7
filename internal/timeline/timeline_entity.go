package timeline

import (
	"time"

	"github.com/google/uuid"

	"go-workflow/internal/domain"
)

// Entry is one append-only line of a request's history. Rows are written
// exclusively by the request service, inside the same transaction as the
// status change they describe, and never updated or deleted.
type Entry struct {
	ID             uuid.UUID             `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequestID      uuid.UUID             `gorm:"type:uuid;not null;index:idx_timeline_request_created"`
	Action         string                `gorm:"type:varchar(50);not null"`
	PreviousStatus *domain.RequestStatus `gorm:"type:varchar(20)"`
	NewStatus      domain.RequestStatus  `gorm:"type:varchar(20);not null"`
	ActorID        *uuid.UUID            `gorm:"type:uuid"`
	Notes          string                `gorm:"type:text"`
	CreatedAt      time.Time             `gorm:"index:idx_timeline_request_created"`
}
