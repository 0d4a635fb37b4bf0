package service

import (
	"context"
	"errors"

	"github.com/Fercho12s/Rutas/internal/dto"
	"github.com/Fercho12s/Rutas/internal/model"
	"github.com/Fercho12s/Rutas/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnitService interface {
	Create(ctx context.Context, req dto.CreateUnitRequest) (*dto.UnitResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UnitResponse, error)
	List(ctx context.Context) ([]dto.UnitResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUnitRequest) (*dto.UnitResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
}

type unitService struct {
	repo repository.UnitRepository
}

func NewUnitService(repo repository.UnitRepository) UnitService {
	return &unitService{repo: repo}
}

func (s *unitService) Create(ctx context.Context, req dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	if _, err := s.repo.FindByPlate(ctx, req.Plate); err == nil {
		return nil, ErrPlateTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.UnitStatusDisponible
	}
	unit := &model.Unit{
		Plate:          req.Plate,
		Brand:          req.Brand,
		Model:          req.Model,
		Capacity:       req.Capacity,
		Year:           req.Year,
		Status:         status,
		ImageURL:       req.ImageURL,
		CurrentRouteID: req.CurrentRouteID,
	}
	if err := s.repo.Create(ctx, unit); err != nil {
		return nil, err
	}
	resp := dto.NewUnitResponse(unit)
	return &resp, nil
}

func (s *unitService) GetByID(ctx context.Context, id uuid.UUID) (*dto.UnitResponse, error) {
	unit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := dto.NewUnitResponse(unit)
	return &resp, nil
}

func (s *unitService) List(ctx context.Context) ([]dto.UnitResponse, error) {
	units, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewUnitResponseList(units), nil
}

func (s *unitService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Plate != "" && req.Plate != unit.Plate {
		if _, err := s.repo.FindByPlate(ctx, req.Plate); err == nil {
			return nil, ErrPlateTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		unit.Plate = req.Plate
	}
	if req.Brand != "" {
		unit.Brand = req.Brand
	}
	if req.Model != "" {
		unit.Model = req.Model
	}
	if req.Capacity != nil {
		unit.Capacity = *req.Capacity
	}
	if req.Year != nil {
		unit.Year = *req.Year
	}
	if req.Status != "" {
		unit.Status = req.Status
	}
	if req.ImageURL != nil {
		unit.ImageURL = req.ImageURL
	}
	if req.CurrentRouteID != nil {
		unit.CurrentRouteID = req.CurrentRouteID
	}

	if err := s.repo.Update(ctx, unit); err != nil {
		return nil, err
	}
	resp := dto.NewUnitResponse(unit)
	return &resp, nil
}

func (s *unitService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *unitService) Reactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivate(ctx, id)
}
