package domain

// RequestType is the closed set of request categories. Immutable after creation.
type RequestType string

const (
	TypePurchase  RequestType = "purchase"
	TypeLeave     RequestType = "leave"
	TypeITSupport RequestType = "it_support"
)

func (t RequestType) Valid() bool {
	switch t {
	case TypePurchase, TypeLeave, TypeITSupport:
		return true
	}
	return false
}

// RequestTypes lists every type in stable order, for zero-filled breakdowns.
func RequestTypes() []RequestType {
	return []RequestType{TypePurchase, TypeLeave, TypeITSupport}
}

type RequestStatus string

const (
	StatusSubmitted       RequestStatus = "submitted"
	StatusPendingApproval RequestStatus = "pending_approval"
	StatusApproved        RequestStatus = "approved"
	StatusRejected        RequestStatus = "rejected"
	StatusInProgress      RequestStatus = "in_progress"
	StatusCompleted       RequestStatus = "completed"
	StatusCancelled       RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusPendingApproval, StatusApproved,
		StatusRejected, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// RequestStatuses lists every status in stable order, for zero-filled breakdowns.
func RequestStatuses() []RequestStatus {
	return []RequestStatus{
		StatusSubmitted, StatusPendingApproval, StatusApproved,
		StatusRejected, StatusInProgress, StatusCompleted, StatusCancelled,
	}
}

// IsTerminal reports whether no transition may ever leave s.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the status graph has an edge from -> to.
// Cancellation is reachable from every non-terminal status.
func CanTransition(from, to RequestStatus) bool {
	if from.IsTerminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}

	switch from {
	case StatusSubmitted:
		return to == StatusPendingApproval || to == StatusApproved || to == StatusRejected
	case StatusPendingApproval:
		return to == StatusApproved || to == StatusRejected
	case StatusApproved:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusCompleted
	default:
		return false
	}
}

// ApprovalGated reports whether moving a request into target requires
// approver authority rather than mere ownership.
func ApprovalGated(target RequestStatus) bool {
	switch target {
	case StatusApproved, StatusRejected, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type RequestPriority string

const (
	PriorityLow    RequestPriority = "low"
	PriorityMedium RequestPriority = "medium"
	PriorityHigh   RequestPriority = "high"
	PriorityUrgent RequestPriority = "urgent"
)

func (p RequestPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// AppRole is a user's single application role. It lives in the store, not in
// the session: a reassignment takes effect on the very next check.
type AppRole string

const (
	RoleEmployee AppRole = "employee"
	RoleManager  AppRole = "manager"
	RoleFinance  AppRole = "finance"
	RoleHR       AppRole = "hr"
	RoleIT       AppRole = "it"
	RoleAdmin    AppRole = "admin"
)

func (r AppRole) Valid() bool {
	switch r {
	case RoleEmployee, RoleManager, RoleFinance, RoleHR, RoleIT, RoleAdmin:
		return true
	}
	return false
}
