package timeline

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timeline_repo.go -destination=mock/timeline_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Entry) error
	FindByRequest(ctx context.Context, requestID string) ([]Entry, error)
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
// entry commits atomically with the request row it describes.
func (r *repository) Create(ctx context.Context, e *Entry) error {
	query := `
        INSERT INTO timeline_entries (
            id, request_id, action, previous_status, new_status, actor_id, notes, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `

	exec := r.execer()
	_, err := exec.ExecContext(
		ctx, query,
		e.ID, e.RequestID, e.Action, e.PreviousStatus, e.NewStatus, e.ActorID, e.Notes, e.CreatedAt,
	)
	return err
}

func (r *repository) FindByRequest(ctx context.Context, requestID string) ([]Entry, error) {
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
