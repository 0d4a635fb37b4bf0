package handler

import (
	"github.com/Fercho12s/Rutas/internal/audit"
	"github.com/Fercho12s/Rutas/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// recordAudit dispatches an audit event for an admin mutation. Best effort:
// the dispatcher never blocks, and a nil dispatcher is a no-op (tests).
func recordAudit(c *gin.Context, d *audit.Dispatcher, action, entity string, entityID *uuid.UUID, metadata map[string]any) {
	if d == nil {
		return
	}
	var actorID *uuid.UUID
	if claims := middleware.GetClaims(c); claims != nil {
		if id, err := uuid.Parse(claims.UserID); err == nil {
			actorID = &id
		}
	}
	d.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metadata,
	})
}
