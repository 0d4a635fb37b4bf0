package service_test

import (
	"context"
	"testing"

	"github.com/Fercho12s/Rutas/internal/dto"
	"github.com/Fercho12s/Rutas/internal/model"
	"github.com/Fercho12s/Rutas/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubUnitRepo struct {
	units       []*model.Unit
	createCalls int
}

func (r *stubUnitRepo) Create(_ context.Context, u *model.Unit) error {
	r.createCalls++
	u.ID = uuid.New()
	r.units = append(r.units, u)
	return nil
}

func (r *stubUnitRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Unit, error) {
	for _, u := range r.units {
		if u.ID == id && u.Status != model.UnitStatusInactivo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUnitRepo) FindByPlate(_ context.Context, plate string) (*model.Unit, error) {
	for _, u := range r.units {
		if u.Plate == plate {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUnitRepo) List(_ context.Context) ([]model.Unit, error) {
	var out []model.Unit
	for _, u := range r.units {
		if u.Status != model.UnitStatusInactivo {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUnitRepo) Update(_ context.Context, u *model.Unit) error {
	for i, existing := range r.units {
		if existing.ID == u.ID {
			r.units[i] = u
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubUnitRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	for _, u := range r.units {
		if u.ID == id {
			u.Status = model.UnitStatusInactivo
		}
	}
	return nil
}

func (r *stubUnitRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	for _, u := range r.units {
		if u.ID == id {
			u.Status = model.UnitStatusDisponible
		}
	}
	return nil
}

func (r *stubUnitRepo) Count(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.units {
		if u.Status != model.UnitStatusInactivo {
			n++
		}
	}
	return n, nil
}

func seedUnit(repo *stubUnitRepo, plate, status string) *model.Unit {
	u := &model.Unit{ID: uuid.New(), Plate: plate, Brand: "Mercedes", Model: "Sprinter", Capacity: 20, Year: 2022, Status: status}
	repo.units = append(repo.units, u)
	return u
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestUnitCreate_DefaultsToDisponible(t *testing.T) {
	repo := &stubUnitRepo{}
	svc := service.NewUnitService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateUnitRequest{
		Plate: "ABC-123", Brand: "Mercedes", Model: "Sprinter", Capacity: 20, Year: 2022,
	})
	require.NoError(t, err)
	assert.Equal(t, model.UnitStatusDisponible, resp.Status)
}

func TestUnitCreate_DuplicatePlate_NoWrite(t *testing.T) {
	repo := &stubUnitRepo{}
	seedUnit(repo, "ABC-123", model.UnitStatusDisponible)
	svc := service.NewUnitService(repo)

	_, err := svc.Create(context.Background(), dto.CreateUnitRequest{
		Plate: "ABC-123", Brand: "Volvo", Model: "9700", Capacity: 40, Year: 2021,
	})
	assert.ErrorIs(t, err, service.ErrPlateTaken)
	assert.Equal(t, 0, repo.createCalls)
}

func TestUnitCreate_PlateOfInactiveUnitStillConflicts(t *testing.T) {
	// The plate column is unique, soft-deleted rows keep their plate.
	repo := &stubUnitRepo{}
	seedUnit(repo, "ABC-123", model.UnitStatusInactivo)
	svc := service.NewUnitService(repo)

	_, err := svc.Create(context.Background(), dto.CreateUnitRequest{
		Plate: "ABC-123", Brand: "Volvo", Model: "9700", Capacity: 40, Year: 2021,
	})
	assert.ErrorIs(t, err, service.ErrPlateTaken)
}

func TestUnitUpdate_PlateConflict(t *testing.T) {
	repo := &stubUnitRepo{}
	seedUnit(repo, "ABC-123", model.UnitStatusDisponible)
	target := seedUnit(repo, "XYZ-789", model.UnitStatusDisponible)
	svc := service.NewUnitService(repo)

	_, err := svc.Update(context.Background(), target.ID, dto.UpdateUnitRequest{Plate: "ABC-123"})
	assert.ErrorIs(t, err, service.ErrPlateTaken)
}

func TestUnitUpdate_SamePlateIsNotAConflict(t *testing.T) {
	repo := &stubUnitRepo{}
	u := seedUnit(repo, "ABC-123", model.UnitStatusDisponible)
	svc := service.NewUnitService(repo)

	resp, err := svc.Update(context.Background(), u.ID, dto.UpdateUnitRequest{Plate: "ABC-123", Brand: "Volvo"})
	require.NoError(t, err)
	assert.Equal(t, "Volvo", resp.Brand)
}

func TestUnitDelete_ThenReactivate(t *testing.T) {
	repo := &stubUnitRepo{}
	u := seedUnit(repo, "ABC-123", model.UnitStatusEnRuta)
	svc := service.NewUnitService(repo)

	require.NoError(t, svc.Delete(context.Background(), u.ID))
	_, err := svc.GetByID(context.Background(), u.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	require.NoError(t, svc.Reactivate(context.Background(), u.ID))
	found, err := svc.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UnitStatusDisponible, found.Status, "reactivation resets status")
}

func TestUnitDelete_Unknown(t *testing.T) {
	svc := service.NewUnitService(&stubUnitRepo{})
	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}
