package authz

import "go-workflow/internal/domain"

// Caller identifies who is invoking an operation. The role is resolved from
// the store on every HTTP request, never carried over from a session.
type Caller struct {
	ID   string
	Role domain.AppRole
}

// Decision is the resolver's verdict for one caller on one request.
type Decision struct {
	CanView bool
	CanAct  bool
}

// Resolve applies the role-to-request-type routing policy. Rules are evaluated
// top to bottom, first match wins:
//
//  1. the requester never acts on their own request, regardless of role
//  2. admin acts on anything
//  3. manager acts on anything
//  4. finance acts on purchase requests
//  5. hr acts on leave requests
//  6. it acts on it_support requests
//  7. everyone else: no
//
// Viewing request metadata is open to every authenticated caller; listing is
// narrowed separately through VisibleScope.
func Resolve(caller Caller, requesterID string, requestType domain.RequestType) Decision {
	return Decision{
		CanView: true,
		CanAct:  canAct(caller, requesterID, requestType),
	}
}

func canAct(caller Caller, requesterID string, requestType domain.RequestType) bool {
	if caller.ID == requesterID {
		return false
	}

	switch caller.Role {
	case domain.RoleAdmin, domain.RoleManager:
		return true
	case domain.RoleFinance:
		return requestType == domain.TypePurchase
	case domain.RoleHR:
		return requestType == domain.TypeLeave
	case domain.RoleIT:
		return requestType == domain.TypeITSupport
	default:
		return false
	}
}

// Scope describes the subset of requests a caller may list and aggregate
// over. Repositories translate it into WHERE clauses so that scoped-down
// roles never materialize the full table.
type Scope struct {
	// All grants unrestricted visibility.
	All bool
	// RequestType, when set, limits visibility to a single type.
	RequestType domain.RequestType
	// RequesterID, when set, limits visibility to the caller's own requests.
	RequesterID string
}

// VisibleScope returns the listing scope for a caller. Approver roles with a
// type routing see every request of their type; admin sees everything;
// everyone else, managers included, sees only their own requests.
func VisibleScope(caller Caller) Scope {
	switch caller.Role {
	case domain.RoleAdmin:
		return Scope{All: true}
	case domain.RoleIT:
		return Scope{RequestType: domain.TypeITSupport}
	case domain.RoleFinance:
		return Scope{RequestType: domain.TypePurchase}
	case domain.RoleHR:
		return Scope{RequestType: domain.TypeLeave}
	default:
		return Scope{RequesterID: caller.ID}
	}
}
