package request

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"go-workflow/internal/authz"
	"go-workflow/internal/domain"
)

// Filter narrows a scoped listing further. Zero values mean "no filter".
type Filter struct {
	Type     domain.RequestType
	Status   domain.RequestStatus
	Priority domain.RequestPriority
	Search   string
	// RequesterID restricts to a single requester on top of the scope
	// (the "my requests" toggle).
	RequesterID string

	Page  int
	Limit int
}

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	List(ctx context.Context, scope authz.Scope, filter Filter) ([]Request, error)
	Count(ctx context.Context, scope authz.Scope, filter Filter) (int64, error)

	// UpdateStatus performs the conditional write that serializes racing
	// transitions: the row is only touched while its status still equals
	// expected. Returns the number of rows affected.
	UpdateStatus(ctx context.Context, id string, expected, target domain.RequestStatus, updatedAt time.Time) (int64, error)
	// UpdateAssignee is conditional on the loaded status for the same reason.
	UpdateAssignee(ctx context.Context, id string, expected domain.RequestStatus, assigneeID string, updatedAt time.Time) (int64, error)
	UpdatePriority(ctx context.Context, id string, priority domain.RequestPriority) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Create inserts through the enclosing sql.Tx when one is attached, so the
// row, its creation timeline entry and the outbox event commit together.
func (r *repository) Create(ctx context.Context, req *Request) error {
	query := `
        INSERT INTO requests (
            id, title, description, request_type, status, priority,
            requester_id, assigned_to, department, estimated_cost, due_date,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `

	exec := r.execer()
	_, err := exec.ExecContext(
		ctx, query,
		req.ID, req.Title, req.Description, req.RequestType, req.Status, req.Priority,
		req.RequesterID, req.AssignedTo, req.Department, req.EstimatedCost, req.DueDate,
		req.CreatedAt, req.UpdatedAt,
	)
	return err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).
		First(&req, "id = ?", id).Error
	return &req, err
}

func (r *repository) List(ctx context.Context, scope authz.Scope, filter Filter) ([]Request, error) {
	db := r.filtered(ctx, scope, filter).Order("created_at DESC")
	if filter.Limit > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.Limit
		}
		db = db.Offset(offset).Limit(filter.Limit)
	}

	var requests []Request
	err := db.Find(&requests).Error
	return requests, err
}

func (r *repository) Count(ctx context.Context, scope authz.Scope, filter Filter) (int64, error) {
	var count int64
	err := r.filtered(ctx, scope, filter).Count(&count).Error
	return count, err
}

func (r *repository) filtered(ctx context.Context, scope authz.Scope, filter Filter) *gorm.DB {
	db := ApplyScope(r.db.WithContext(ctx).Model(&Request{}), scope)

	if filter.Type != "" {
		db = db.Where("request_type = ?", filter.Type)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		db = db.Where("priority = ?", filter.Priority)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		db = db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.RequesterID != "" {
		db = db.Where("requester_id = ?", filter.RequesterID)
	}
	return db
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id string,
	expected, target domain.RequestStatus,
	updatedAt time.Time,
) (int64, error) {
	query := `
UPDATE requests
SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2 AND deleted_at IS NULL
`
	exec := r.execer()
	res, err := exec.ExecContext(ctx, query, id, expected, target, updatedAt)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) UpdateAssignee(
	ctx context.Context,
	id string,
	expected domain.RequestStatus,
	assigneeID string,
	updatedAt time.Time,
) (int64, error) {
	query := `
UPDATE requests
SET assigned_to = $3, updated_at = $4
WHERE id = $1 AND status = $2 AND deleted_at IS NULL
`
	exec := r.execer()
	res, err := exec.ExecContext(ctx, query, id, expected, assigneeID, updatedAt)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) UpdatePriority(ctx context.Context, id string, priority domain.RequestPriority) error {
	return r.db.WithContext(ctx).
		Model(&Request{}).
		Where("id = ?", id).
		Update("priority", priority).Error
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}

// ApplyScope translates a caller's visibility scope into WHERE clauses so
// scoped-down roles never pull the full table.
func ApplyScope(db *gorm.DB, scope authz.Scope) *gorm.DB {
	if scope.All {
		return db
	}
	if scope.RequestType != "" {
		db = db.Where("request_type = ?", scope.RequestType)
	}
	if scope.RequesterID != "" {
		db = db.Where("requester_id = ?", scope.RequesterID)
	}
	return db
}
