package dto

// ─── User DTOs ───────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Level    int    `json:"level"    validate:"required,oneof=1 2 3"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Level    int    `json:"level"    validate:"omitempty,oneof=1 2 3"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Role     string `json:"role"`
}

type UserFilter struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=10" validate:"min=1,max=100"`
}

type UserListResponse struct {
	Data  []UserResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ─── Profile DTOs ────────────────────────────────────────────────────────────

// UpdateProfileRequest edits the caller's own account. Name/username and the
// optional password change run inside one transaction.
type UpdateProfileRequest struct {
	Name     string `json:"name"     validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
