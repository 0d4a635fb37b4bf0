package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Fercho12s/Rutas/internal/dto"
	"github.com/Fercho12s/Rutas/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	statsCacheKey = "stats:counts"
	statsCacheTTL = 60 * time.Second
)

// StatsService aggregates the dashboard entity counts.
type StatsService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	users    repository.UserRepository
	routes   repository.RouteRepository
	units    repository.UnitRepository
	contacts repository.ContactRepository
	rdb      *redis.Client
}

func NewStatsService(
	users repository.UserRepository,
	routes repository.RouteRepository,
	units repository.UnitRepository,
	contacts repository.ContactRepository,
	rdb *redis.Client,
) StatsService {
	return &statsService{users: users, routes: routes, units: units, contacts: contacts, rdb: rdb}
}

func (s *statsService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	if s.rdb != nil {
		if b, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var cached dto.StatsResponse
			if json.Unmarshal(b, &cached) == nil {
				return &cached, nil
			}
		}
	}

	var resp dto.StatsResponse
	var err error
	if resp.Users, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Routes, err = s.routes.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Units, err = s.units.Count(ctx); err != nil {
		return nil, err
	}
	if resp.Contacts, err = s.contacts.Count(ctx); err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if b, err := json.Marshal(resp); err == nil {
			_ = s.rdb.Set(ctx, statsCacheKey, b, statsCacheTTL).Err()
		}
	}
	return &resp, nil
}
