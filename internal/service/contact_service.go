package service

import (
	"context"

	"github.com/Fercho12s/Rutas/internal/dto"
	"github.com/Fercho12s/Rutas/internal/model"
	"github.com/Fercho12s/Rutas/internal/repository"
)

type ContactService interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (*dto.ContactResponse, error)
	List(ctx context.Context) ([]dto.ContactResponse, error)
}

type contactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Create(ctx context.Context, req dto.CreateContactRequest) (*dto.ContactResponse, error) {
	contact := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	resp := dto.NewContactResponse(contact)
	return &resp, nil
}

func (s *contactService) List(ctx context.Context) ([]dto.ContactResponse, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewContactResponseList(contacts), nil
}
