package profile

type UserResponse struct {
	UserID     string  `json:"user_id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Department string  `json:"department"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	Role       string  `json:"role"`
	CreatedAt  string  `json:"created_at"`
}

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=employee manager finance hr it admin"`
}
