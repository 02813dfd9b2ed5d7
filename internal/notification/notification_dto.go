package notification

import "time"

type ListNotificationsFilter struct {
	Unread bool `form:"unread"`
}

type NotificationResponse struct {
	ID        string  `json:"id"`
	RequestID string  `json:"request_id"`
	EventType string  `json:"event_type"`
	Message   string  `json:"message"`
	ReadAt    *string `json:"read_at,omitempty"`
	CreatedAt string  `json:"created_at"`
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		RequestID: n.RequestID.String(),
		EventType: n.EventType,
		Message:   n.Message,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		read := n.ReadAt.UTC().Format(time.RFC3339)
		resp.ReadAt = &read
	}
	return resp
}

func mapToListResponse(notifications []Notification) []NotificationResponse {
	resp := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, mapToResponse(n))
	}
	return resp
}
