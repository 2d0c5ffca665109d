package dto

// ─── Auth DTOs ───────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionUser is the identity block returned by /login and /me.
type SessionUser struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Level     int    `json:"level"`
	Role      string `json:"role"`
	RoleIcon  string `json:"role_icon"`
	RoleColor string `json:"role_color"`
}

type LoginResponse struct {
	User        SessionUser `json:"user"`
	Permissions []string    `json:"permissions"`
}
