package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Fercho12s/Rutas/internal/dto"
	"github.com/Fercho12s/Rutas/internal/model"
	"github.com/Fercho12s/Rutas/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	maxPage       = 1000
	maxPopular    = 50
	suggestionTTL = 10 * time.Minute

	cacheKeyOrigins      = "routes:suggestions:origins"
	cacheKeyDestinations = "routes:suggestions:destinations"
)

type RouteService interface {
	Create(ctx context.Context, req dto.CreateRouteRequest) (*dto.RouteResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RouteResponse, error)
	List(ctx context.Context, page int) (*dto.RouteListResponse, error)
	Search(ctx context.Context, q dto.SearchRoutesQuery) (*dto.SearchRoutesResponse, error)
	Popular(ctx context.Context, limit int) ([]dto.RouteResponse, error)
	SuggestOrigins(ctx context.Context) ([]string, error)
	SuggestDestinations(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRouteRequest) (*dto.RouteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
}

type routeService struct {
	repo     repository.RouteRepository
	rdb      *redis.Client
	pageSize int
}

func NewRouteService(repo repository.RouteRepository, rdb *redis.Client, pageSize int) RouteService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &routeService{repo: repo, rdb: rdb, pageSize: pageSize}
}

// clampPage keeps the page number inside [1, maxPage].
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	if page > maxPage {
		return maxPage
	}
	return page
}

func (s *routeService) Create(ctx context.Context, req dto.CreateRouteRequest) (*dto.RouteResponse, error) {
	status := req.Status
	if status == "" {
		status = model.RouteStatusActivo
	}
	rt := &model.Route{
		Title:            req.Title,
		Origin:           req.Origin,
		Destination:      req.Destination,
		Stops:            req.Stops,
		Schedule:         req.Schedule,
		DistanceKm:       req.DistanceKm,
		Duration:         req.Duration,
		Status:           status,
		AssignedUnitID:   req.AssignedUnitID,
		AssignedDriverID: req.AssignedDriverID,
		ImageURL:         req.ImageURL,
	}
	if err := s.repo.Create(ctx, rt); err != nil {
		return nil, err
	}
	s.invalidateSuggestions(ctx)
	resp := dto.NewRouteResponse(rt)
	return &resp, nil
}

func (s *routeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.RouteResponse, error) {
	rt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := dto.NewRouteResponse(rt)
	return &resp, nil
}

func (s *routeService) List(ctx context.Context, page int) (*dto.RouteListResponse, error) {
	page = clampPage(page)
	routes, total, err := s.repo.List(ctx, page, s.pageSize)
	if err != nil {
		return nil, err
	}
	return &dto.RouteListResponse{
		Routes:     dto.NewRouteResponseList(routes),
		Pagination: dto.NewPagination(page, s.pageSize, total),
	}, nil
}

func (s *routeService) Search(ctx context.Context, q dto.SearchRoutesQuery) (*dto.SearchRoutesResponse, error) {
	page := clampPage(q.Page)
	routes, total, err := s.repo.Search(ctx, q.Origin, q.Destination, page, s.pageSize)
	if err != nil {
		return nil, err
	}
	return &dto.SearchRoutesResponse{
		Routes:     dto.NewRouteResponseList(routes),
		Pagination: dto.NewPagination(page, s.pageSize, total),
		Query:      dto.SearchEcho{Origin: q.Origin, Destination: q.Destination},
	}, nil
}

// Popular returns the most recently published active routes. Cached per limit
// because the landing page hits this on every visit.
func (s *routeService) Popular(ctx context.Context, limit int) ([]dto.RouteResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > maxPopular {
		limit = maxPopular
	}

	cacheKey := fmt.Sprintf("routes:popular:%d", limit)
	var resp []dto.RouteResponse
	if s.cacheGet(ctx, cacheKey, &resp) {
		return resp, nil
	}

	routes, err := s.repo.Popular(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp = dto.NewRouteResponseList(routes)
	s.cacheSet(ctx, cacheKey, resp)
	return resp, nil
}

func (s *routeService) SuggestOrigins(ctx context.Context) ([]string, error) {
	return s.suggestions(ctx, cacheKeyOrigins, s.repo.DistinctOrigins)
}

func (s *routeService) SuggestDestinations(ctx context.Context) ([]string, error) {
	return s.suggestions(ctx, cacheKeyDestinations, s.repo.DistinctDestinations)
}

func (s *routeService) suggestions(ctx context.Context, key string, load func(context.Context) ([]string, error)) ([]string, error) {
	var values []string
	if s.cacheGet(ctx, key, &values) {
		return values, nil
	}
	values, err := load(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, values)
	return values, nil
}

func (s *routeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRouteRequest) (*dto.RouteResponse, error) {
	rt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		rt.Title = req.Title
	}
	if req.Origin != "" {
		rt.Origin = req.Origin
	}
	if req.Destination != "" {
		rt.Destination = req.Destination
	}
	if req.Stops != nil {
		rt.Stops = req.Stops
	}
	if req.Schedule != nil {
		rt.Schedule = req.Schedule
	}
	if req.DistanceKm != nil {
		rt.DistanceKm = *req.DistanceKm
	}
	if req.Duration != nil {
		rt.Duration = req.Duration
	}
	if req.Status != "" {
		rt.Status = req.Status
	}
	if req.AssignedUnitID != nil {
		rt.AssignedUnitID = req.AssignedUnitID
	}
	if req.AssignedDriverID != nil {
		rt.AssignedDriverID = req.AssignedDriverID
	}
	if req.ImageURL != nil {
		rt.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(ctx, rt); err != nil {
		return nil, err
	}
	s.invalidateSuggestions(ctx)
	resp := dto.NewRouteResponse(rt)
	return &resp, nil
}

func (s *routeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidateSuggestions(ctx)
	return nil
}

func (s *routeService) Reactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Reactivate(ctx, id); err != nil {
		return err
	}
	s.invalidateSuggestions(ctx)
	return nil
}

// ── Cache helpers: best effort, a redis outage never fails a request ─────────

func (s *routeService) cacheGet(ctx context.Context, key string, out any) bool {
	if s.rdb == nil {
		return false
	}
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(b, out) == nil
}

func (s *routeService) cacheSet(ctx context.Context, key string, v any) {
	if s.rdb == nil {
		return
	}
	if b, err := json.Marshal(v); err == nil {
		_ = s.rdb.Set(ctx, key, b, suggestionTTL).Err()
	}
}

func (s *routeService) invalidateSuggestions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	keys := []string{cacheKeyOrigins, cacheKeyDestinations}
	if more, err := s.rdb.Keys(ctx, "routes:popular:*").Result(); err == nil {
		keys = append(keys, more...)
	}
	_ = s.rdb.Del(ctx, keys...).Err()
}
