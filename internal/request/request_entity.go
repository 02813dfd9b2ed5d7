package request

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-workflow/internal/domain"
)

// Request is the central workflow entity. Type, requester, department and the
// business payload are frozen at creation; status moves only through the
// service's transition path.
type Request struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`

	RequestType domain.RequestType     `gorm:"type:varchar(20);not null;index:idx_requests_type_status"`
	Status      domain.RequestStatus   `gorm:"type:varchar(20);not null;default:'submitted';index:idx_requests_type_status"`
	Priority    domain.RequestPriority `gorm:"type:varchar(10);not null;default:'medium'"`

	RequesterID uuid.UUID  `gorm:"type:uuid;not null;index:idx_requests_requester"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid"`
	Department  string     `gorm:"type:varchar(100);not null"`

	EstimatedCost *float64   `gorm:"type:numeric(12,2)"`
	DueDate       *time.Time `gorm:"type:date"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index:idx_requests_deleted_at"`
}
