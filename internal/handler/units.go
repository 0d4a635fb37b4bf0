package handler

import (
	"net/http"

	"github.com/Fercho12s/Rutas/internal/audit"
	"github.com/Fercho12s/Rutas/internal/dto"
	"github.com/Fercho12s/Rutas/internal/service"

	"github.com/gin-gonic/gin"
)

type UnitsHandler struct {
	svc   service.UnitService
	audit *audit.Dispatcher
}

func NewUnitsHandler(svc service.UnitService, d *audit.Dispatcher) *UnitsHandler {
	return &UnitsHandler{svc: svc, audit: d}
}

func (h *UnitsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UnitsHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UnitsHandler) Create(c *gin.Context) {
	var req dto.CreateUnitRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionCreate, "unit", nil, map[string]any{"plate": resp.Plate})
	c.JSON(http.StatusCreated, resp)
}

func (h *UnitsHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateUnitRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionUpdate, "unit", &id, nil)
	c.JSON(http.StatusOK, resp)
}

func (h *UnitsHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionDelete, "unit", &id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Unidad eliminada correctamente"})
}

func (h *UnitsHandler) Reactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Reactivate(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionReactivate, "unit", &id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Unidad reactivada correctamente"})
}
