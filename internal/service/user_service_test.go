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
	"golang.org/x/crypto/bcrypt"
)

func TestUserCreate_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := service.NewUserService(repo)

	resp, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Carlos", Email: "carlos@x.com", Password: "chofer123", Role: model.RoleConductor,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleConductor, resp.Role)

	stored := repo.users["carlos@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "chofer123", stored.Password, "plaintext must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("chofer123")))
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "carlos@x.com", "chofer123", model.RoleConductor, true)
	svc := service.NewUserService(repo)

	_, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Name: "Otro", Email: "carlos@x.com", Password: "otra12345", Role: model.RoleCliente,
	})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestUserUpdate_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "uno@x.com", "password123", model.RoleCliente, true)
	target := seedUser(t, repo, "dos@x.com", "password123", model.RoleCliente, true)
	svc := service.NewUserService(repo)

	_, err := svc.Update(context.Background(), target.ID, dto.UpdateUserRequest{Email: "uno@x.com"})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestUserUpdate_RehashesNewPassword(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "ana@x.com", "vieja1234", model.RoleCliente, true)
	oldHash := u.Password
	svc := service.NewUserService(repo)

	_, err := svc.Update(context.Background(), u.ID, dto.UpdateUserRequest{Password: "nueva1234"})
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("nueva1234")))
}

func TestUserDeactivate_BlocksLogin(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "ana@x.com", "password123", model.RoleCliente, true)
	users := service.NewUserService(repo)
	auth := service.NewAuthService(repo, newTestCfg())

	require.NoError(t, users.Deactivate(context.Background(), u.ID))

	_, err := auth.Login(context.Background(), dto.LoginRequest{Email: "ana@x.com", Password: "password123"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	require.NoError(t, users.Reactivate(context.Background(), u.ID))
	_, err = auth.Login(context.Background(), dto.LoginRequest{Email: "ana@x.com", Password: "password123"})
	assert.NoError(t, err)
}

func TestUserDeactivate_Unknown(t *testing.T) {
	svc := service.NewUserService(newStubUserRepo())
	err := svc.Deactivate(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestListDrivers_OnlyActiveConductores(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "chofer@x.com", "password123", model.RoleConductor, true)
	seedUser(t, repo, "baja@x.com", "password123", model.RoleConductor, false)
	seedUser(t, repo, "cliente@x.com", "password123", model.RoleCliente, true)
	svc := service.NewUserService(repo)

	drivers, err := svc.ListDrivers(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, "chofer@x.com", drivers[0].Email)
}
