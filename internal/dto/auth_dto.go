package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Name     string  `json:"name"     validate:"required,min=2,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone"    validate:"omitempty,max=30"`
	Role     string  `json:"role"     validate:"omitempty,oneof=admin conductor cliente"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// AuthResponse is returned by register and login: the safe user view plus a
// signed bearer token. The password hash never appears here.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
