package request

import "time"

type CreateRequestRequest struct {
	Title         string   `json:"title" binding:"required,max=255"`
	Description   string   `json:"description"`
	RequestType   string   `json:"request_type" binding:"required,oneof=purchase leave it_support"`
	Priority      string   `json:"priority" binding:"required,oneof=low medium high urgent"`
	EstimatedCost *float64 `json:"estimated_cost" binding:"omitempty,gte=0"`
	DueDate       *string  `json:"due_date"`
}

type ListRequestsFilter struct {
	Type     string `form:"type" binding:"omitempty,oneof=purchase leave it_support"`
	Status   string `form:"status" binding:"omitempty,oneof=submitted pending_approval approved rejected in_progress completed cancelled"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Search   string `form:"search"`
	My       bool   `form:"my"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type TransitionRequestRequest struct {
	Notes string `json:"notes"`
}

type RejectRequestRequest struct {
	Notes string `json:"notes" binding:"required"`
}

type SetPriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=low medium high urgent"`
}

type AssignRequestRequest struct {
	AssignedTo string `json:"assigned_to" binding:"required,uuid"`
}

type RequestResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	RequestType   string   `json:"request_type"`
	Status        string   `json:"status"`
	Priority      string   `json:"priority"`
	RequesterID   string   `json:"requester_id"`
	AssignedTo    *string  `json:"assigned_to,omitempty"`
	Department    string   `json:"department"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	DueDate       *string  `json:"due_date,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func mapToResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:            r.ID.String(),
		Title:         r.Title,
		Description:   r.Description,
		RequestType:   string(r.RequestType),
		Status:        string(r.Status),
		Priority:      string(r.Priority),
		RequesterID:   r.RequesterID.String(),
		Department:    r.Department,
		EstimatedCost: r.EstimatedCost,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.AssignedTo != nil {
		assignee := r.AssignedTo.String()
		resp.AssignedTo = &assignee
	}
	if r.DueDate != nil {
		due := r.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

func mapToListResponse(requests []Request) []RequestResponse {
	resp := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, mapToResponse(r))
	}
	return resp
}
