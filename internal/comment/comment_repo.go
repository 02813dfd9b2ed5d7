package comment

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=comment_repo.go -destination=mock/comment_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, c *Comment) error
	FindByRequest(ctx context.Context, requestID string) ([]Comment, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindByRequest(ctx context.Context, requestID string) ([]Comment, error) {
	var comments []Comment
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
