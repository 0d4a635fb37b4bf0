package handler

import (
	"net/http"

	"github.com/Fercho12s/Rutas/internal/audit"
	"github.com/Fercho12s/Rutas/internal/dto"
	"github.com/Fercho12s/Rutas/internal/service"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	svc   service.UserService
	audit *audit.Dispatcher
}

func NewUsersHandler(svc service.UserService, d *audit.Dispatcher) *UsersHandler {
	return &UsersHandler{svc: svc, audit: d}
}

func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionCreate, "user", nil, map[string]any{"email": resp.Email, "role": resp.Role})
	c.JSON(http.StatusCreated, resp)
}

func (h *UsersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListDrivers feeds the route-assignment picker: active conductors only.
func (h *UsersHandler) ListDrivers(c *gin.Context) {
	resp, err := h.svc.ListDrivers(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionUpdate, "user", &id, nil)
	c.JSON(http.StatusOK, resp)
}

func (h *UsersHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionDelete, "user", &id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado correctamente"})
}

func (h *UsersHandler) Reactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Reactivate(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionReactivate, "user", &id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Usuario reactivado correctamente"})
}
