package handler

import (
	"net/http"
	"strconv"

	"github.com/Fercho12s/Rutas/internal/dto"
	"github.com/Fercho12s/Rutas/internal/repository"

	"github.com/gin-gonic/gin"
)

const maxAuditEntries = 200

type AuditHandler struct{ repo repository.AuditLogRepository }

func NewAuditHandler(repo repository.AuditLogRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

func (h *AuditHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 {
		limit = 50
	}
	if limit > maxAuditEntries {
		limit = maxAuditEntries
	}

	logs, err := h.repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAuditLogResponseList(logs))
}
