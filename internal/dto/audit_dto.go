package dto

import (
	"time"

	"github.com/Fercho12s/Rutas/internal/model"
)

type AuditLogResponse struct {
	ID        string         `json:"id"`
	ActorID   *string        `json:"actorId"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  *string        `json:"entityId"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}

func NewAuditLogResponse(a *model.AuditLog) AuditLogResponse {
	resp := AuditLogResponse{
		ID:        a.ID.String(),
		Action:    a.Action,
		Entity:    a.Entity,
		Metadata:  a.Metadata,
		CreatedAt: a.CreatedAt,
	}
	if a.ActorID != nil {
		s := a.ActorID.String()
		resp.ActorID = &s
	}
	if a.EntityID != nil {
		s := a.EntityID.String()
		resp.EntityID = &s
	}
	return resp
}

func NewAuditLogResponseList(logs []model.AuditLog) []AuditLogResponse {
	resp := make([]AuditLogResponse, len(logs))
	for i := range logs {
		resp[i] = NewAuditLogResponse(&logs[i])
	}
	return resp
}
