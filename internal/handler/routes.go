package handler

import (
	"net/http"
	"strconv"

	"github.com/Fercho12s/Rutas/internal/apierror"
	"github.com/Fercho12s/Rutas/internal/audit"
	"github.com/Fercho12s/Rutas/internal/dto"
	"github.com/Fercho12s/Rutas/internal/service"

	"github.com/gin-gonic/gin"
)

type RoutesHandler struct {
	svc   service.RouteService
	audit *audit.Dispatcher
}

func NewRoutesHandler(svc service.RouteService, d *audit.Dispatcher) *RoutesHandler {
	return &RoutesHandler{svc: svc, audit: d}
}

// Search godoc
// @Summary Busqueda de rutas por origen y destino
// @Tags routes
// @Produce json
// @Param origin query string false "Origen (subcadena)"
// @Param destination query string false "Destino (subcadena)"
// @Param page query int false "Pagina"
// @Success 200 {object} dto.SearchRoutesResponse
// @Router /api/routes/search [get]
func (h *RoutesHandler) Search(c *gin.Context) {
	var q dto.SearchRoutesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros invalidos"))
		return
	}
	resp, err := h.svc.Search(c.Request.Context(), q)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoutesHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	resp, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoutesHandler) GetByID(c *gin.Context) {
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

func (h *RoutesHandler) Popular(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := h.svc.Popular(c.Request.Context(), limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RoutesHandler) SuggestOrigins(c *gin.Context) {
	origins, err := h.svc.SuggestOrigins(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, origins)
}

func (h *RoutesHandler) SuggestDestinations(c *gin.Context) {
	destinations, err := h.svc.SuggestDestinations(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *RoutesHandler) Create(c *gin.Context) {
	var req dto.CreateRouteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionCreate, "route", nil, map[string]any{"title": resp.Title})
	c.JSON(http.StatusCreated, resp)
}

func (h *RoutesHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdateRouteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionUpdate, "route", &id, nil)
	c.JSON(http.StatusOK, resp)
}

func (h *RoutesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionDelete, "route", &id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Ruta eliminada correctamente"})
}

func (h *RoutesHandler) Reactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Reactivate(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	recordAudit(c, h.audit, audit.ActionReactivate, "route", &id, nil)
	c.JSON(http.StatusOK, gin.H{"message": "Ruta reactivada correctamente"})
}
