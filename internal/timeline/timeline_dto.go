package timeline

import "time"

type EntryResponse struct {
	ID             string  `json:"id"`
	RequestID      string  `json:"request_id"`
	Action         string  `json:"action"`
	PreviousStatus *string `json:"previous_status,omitempty"`
	NewStatus      string  `json:"new_status"`
	ActorID        *string `json:"actor_id,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func MapToResponse(e Entry) EntryResponse {
	resp := EntryResponse{
		ID:        e.ID.String(),
		RequestID: e.RequestID.String(),
		Action:    e.Action,
		NewStatus: string(e.NewStatus),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.PreviousStatus != nil {
		prev := string(*e.PreviousStatus)
		resp.PreviousStatus = &prev
	}
	if e.ActorID != nil {
		actor := e.ActorID.String()
		resp.ActorID = &actor
	}
	return resp
}

func MapToListResponse(entries []Entry) []EntryResponse {
	resp := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, MapToResponse(e))
	}
	return resp
}
