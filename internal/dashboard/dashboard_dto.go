package dashboard

// DashboardStats is a single aggregate snapshot for the caller's visibility
// scope. Breakdown maps are zero-filled: every known status and type appears
// even when its count is zero.
type DashboardStats struct {
	Total              int64            `json:"total"`
	Pending            int64            `json:"pending"`
	InProgress         int64            `json:"in_progress"`
	CompletedThisMonth int64            `json:"completed_this_month"`
	ByStatus           map[string]int64 `json:"by_status"`
	ByType             map[string]int64 `json:"by_type"`
	Recent             []RecentRequest  `json:"recent"`
}

type RecentRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	RequestType string `json:"request_type"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	RequesterID string `json:"requester_id"`
	CreatedAt   string `json:"created_at"`
}
