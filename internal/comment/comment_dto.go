package comment

import "time"

type AddCommentRequest struct {
	Body       string `json:"body" binding:"required,max=2000"`
	IsInternal bool   `json:"is_internal"`
}

type CommentResponse struct {
	ID         string `json:"id"`
	RequestID  string `json:"request_id"`
	AuthorID   string `json:"author_id"`
	Body       string `json:"body"`
	IsInternal bool   `json:"is_internal"`
	CreatedAt  string `json:"created_at"`
}

func mapToResponse(c Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID.String(),
		RequestID:  c.RequestID.String(),
		AuthorID:   c.AuthorID.String(),
		Body:       c.Body,
		IsInternal: c.IsInternal,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
