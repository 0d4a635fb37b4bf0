// Package audit records admin mutations asynchronously. Auditing must never
// block or fail the request that triggered it: events go through a buffered
// channel and are dropped (with a log line) when the buffer is full.
package audit

import (
	"context"

	"github.com/Fercho12s/Rutas/internal/model"
	"github.com/Fercho12s/Rutas/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Actions recorded by the dispatcher.
const (
	ActionCreate     = "create"
	ActionUpdate     = "update"
	ActionDelete     = "delete"
	ActionReactivate = "reactivate"
)

// Event is one admin mutation to be persisted as an audit_logs row.
type Event struct {
	ActorID  *uuid.UUID
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata map[string]any
}

type Dispatcher struct {
	repo  repository.AuditLogRepository
	queue chan Event
}

func NewDispatcher(repo repository.AuditLogRepository) *Dispatcher {
	d := &Dispatcher{
		repo:  repo,
		queue: make(chan Event, 100),
	}
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		row := &model.AuditLog{
			ActorID:  ev.ActorID,
			Action:   ev.Action,
			Entity:   ev.Entity,
			EntityID: ev.EntityID,
			Metadata: ev.Metadata,
		}
		if err := d.repo.Create(context.Background(), row); err != nil {
			log.Error().Err(err).
				Str("action", ev.Action).
				Str("entity", ev.Entity).
				Msg("audit write failed")
		}
	}
}

// Dispatch enqueues an event without blocking the caller.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("entity", ev.Entity).Str("action", ev.Action).
			Msg("audit queue full, dropping event")
	}
}
