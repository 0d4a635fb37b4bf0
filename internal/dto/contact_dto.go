package dto

import (
	"time"

	"github.com/Fercho12s/Rutas/internal/model"
)

type CreateContactRequest struct {
	Name    string  `json:"name"    validate:"required,min=2,max=100"`
	Email   string  `json:"email"   validate:"required,email"`
	Phone   *string `json:"phone"   validate:"omitempty,max=30"`
	Message string  `json:"message" validate:"required,min=5,max=2000"`
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewContactResponse(c *model.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func NewContactResponseList(contacts []model.Contact) []ContactResponse {
	resp := make([]ContactResponse, len(contacts))
	for i := range contacts {
		resp[i] = NewContactResponse(&contacts[i])
	}
	return resp
}
