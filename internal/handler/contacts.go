package handler

import (
	"net/http"

	"github.com/Fercho12s/Rutas/internal/dto"
	"github.com/Fercho12s/Rutas/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactsHandler struct{ svc service.ContactService }

func NewContactsHandler(svc service.ContactService) *ContactsHandler {
	return &ContactsHandler{svc: svc}
}

// Create receives a message from the public landing page. No authentication;
// the router puts a rate limiter in front.
func (h *ContactsHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Mensaje enviado correctamente",
		"contact": resp,
	})
}

func (h *ContactsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
