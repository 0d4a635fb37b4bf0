package dto

import (
	"time"

	"github.com/Fercho12s/Rutas/internal/model"
)

type CreateUserRequest struct {
	Name     string  `json:"name"     validate:"required,min=2,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role"     validate:"required,oneof=admin conductor cliente"`
	Phone    *string `json:"phone"    validate:"omitempty,max=30"`
}

type UpdateUserRequest struct {
	Name     string  `json:"name"     validate:"omitempty,min=2,max=100"`
	Email    string  `json:"email"    validate:"omitempty,email"`
	Password string  `json:"password" validate:"omitempty,min=6"`
	Role     string  `json:"role"     validate:"omitempty,oneof=admin conductor cliente"`
	Phone    *string `json:"phone"    validate:"omitempty,max=30"`
	Active   *bool   `json:"active"`
}

// UserResponse is the safe serialization of a user. No password field exists.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse maps a model row to its API view.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

func NewUserResponseList(users []model.User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = NewUserResponse(&users[i])
	}
	return resp
}
