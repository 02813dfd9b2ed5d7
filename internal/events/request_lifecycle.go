package events

import "go-workflow/internal/domain"

const RequestLifecycleTopic = "workflow.request.lifecycle.v1"

const (
	EventRequestCreated      = "request.created"
	EventRequestTransitioned = "request.transitioned"
)

// RequestLifecycleEvent is the payload published for every successful
// lifecycle engine write. Consumers derive notifications from it.
type RequestLifecycleEvent struct {
	EventType      string               `json:"event_type"`
	RequestID      string               `json:"request_id"`
	Title          string               `json:"title"`
	RequestType    domain.RequestType   `json:"request_type"`
	PreviousStatus domain.RequestStatus `json:"previous_status,omitempty"`
	NewStatus      domain.RequestStatus `json:"new_status"`
	RequesterID    string               `json:"requester_id"`
	AssignedTo     string               `json:"assigned_to,omitempty"`
	ActorID        string               `json:"actor_id,omitempty"`
	OccurredAt     string               `json:"occurred_at"`
}
