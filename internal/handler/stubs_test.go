package handler_test

import (
	"context"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/Fercho12s/Rutas/internal/config"
	"github.com/Fercho12s/Rutas/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func init() { gin.SetMode(gin.TestMode) }

func newTestCfg() *config.Config {
	return &config.Config{JWTSecret: testSecret, JWTExpirationHours: 24, PageSize: 20}
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    uuid.NewString(),
		"email": "test@x.com",
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ── User repo stub ────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users       map[string]*model.User
	createCalls int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) seed(t *testing.T, email, password, role string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	require.NoError(t, err)
	u := &model.User{
		ID: uuid.New(), Name: "Test User", Email: email,
		Password: string(hash), Role: role, Active: true,
	}
	r.users[email] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.createCalls++
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	r.users[u.Email] = u
	return nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) ListDrivers(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Role == model.RoleConductor && u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Active = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubUserRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Active = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// ── Route repo stub ───────────────────────────────────────────────────────────

type stubRouteRepo struct {
	routes      []*model.Route
	createCalls int
}

func (r *stubRouteRepo) seed(origin, destination string) *model.Route {
	rt := &model.Route{
		ID: uuid.New(), Title: origin + " a " + destination,
		Origin: origin, Destination: destination,
		Status: model.RouteStatusActivo, CreatedAt: time.Now(),
	}
	r.routes = append(r.routes, rt)
	return rt
}

func (r *stubRouteRepo) activeRoutes() []*model.Route {
	var out []*model.Route
	for _, rt := range r.routes {
		if rt.Status != model.RouteStatusInactivo {
			out = append(out, rt)
		}
	}
	return out
}

func (r *stubRouteRepo) Create(_ context.Context, rt *model.Route) error {
	r.createCalls++
	rt.ID = uuid.New()
	rt.CreatedAt = time.Now()
	r.routes = append(r.routes, rt)
	return nil
}

func (r *stubRouteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Route, error) {
	for _, rt := range r.activeRoutes() {
		if rt.ID == id {
			return rt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRouteRepo) List(_ context.Context, page, perPage int) ([]model.Route, int64, error) {
	rows := r.activeRoutes()
	return pageOf(rows, page, perPage), int64(len(rows)), nil
}

func (r *stubRouteRepo) Search(_ context.Context, origin, destination string, page, perPage int) ([]model.Route, int64, error) {
	var matched []*model.Route
	for _, rt := range r.activeRoutes() {
		if strings.Contains(strings.ToLower(rt.Origin), strings.ToLower(origin)) ||
			strings.Contains(strings.ToLower(rt.Destination), strings.ToLower(destination)) {
			matched = append(matched, rt)
		}
	}
	return pageOf(matched, page, perPage), int64(len(matched)), nil
}

func pageOf(rows []*model.Route, page, perPage int) []model.Route {
	start := (page - 1) * perPage
	if start >= len(rows) {
		return nil
	}
	end := start + perPage
	if end > len(rows) {
		end = len(rows)
	}
	out := make([]model.Route, 0, end-start)
	for _, rt := range rows[start:end] {
		out = append(out, *rt)
	}
	return out
}

func (r *stubRouteRepo) Popular(_ context.Context, limit int) ([]model.Route, error) {
	rows := r.activeRoutes()
	if len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]model.Route, 0, len(rows))
	for _, rt := range rows {
		out = append(out, *rt)
	}
	return out, nil
}

func (r *stubRouteRepo) DistinctOrigins(_ context.Context) ([]string, error) {
	return r.distinct(func(rt *model.Route) string { return rt.Origin }), nil
}

func (r *stubRouteRepo) DistinctDestinations(_ context.Context) ([]string, error) {
	return r.distinct(func(rt *model.Route) string { return rt.Destination }), nil
}

func (r *stubRouteRepo) distinct(field func(*model.Route) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, rt := range r.activeRoutes() {
		if v := field(rt); !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func (r *stubRouteRepo) Update(_ context.Context, rt *model.Route) error {
	for i, existing := range r.routes {
		if existing.ID == rt.ID {
			r.routes[i] = rt
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubRouteRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	for _, rt := range r.routes {
		if rt.ID == id {
			rt.Status = model.RouteStatusInactivo
		}
	}
	return nil
}

func (r *stubRouteRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	for _, rt := range r.routes {
		if rt.ID == id {
			rt.Status = model.RouteStatusActivo
		}
	}
	return nil
}

func (r *stubRouteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.activeRoutes())), nil
}
