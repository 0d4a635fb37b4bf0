package router

import (
	"time"

	"github.com/Fercho12s/Rutas/internal/audit"
	"github.com/Fercho12s/Rutas/internal/config"
	"github.com/Fercho12s/Rutas/internal/handler"
	"github.com/Fercho12s/Rutas/internal/middleware"
	"github.com/Fercho12s/Rutas/internal/model"
	"github.com/Fercho12s/Rutas/internal/repository"
	"github.com/Fercho12s/Rutas/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	routeRepo := repository.NewRouteRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	contactRepo := repository.NewContactRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Audit dispatcher, injected into handlers that record admin mutations
	dispatcher := audit.NewDispatcher(auditRepo)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	routeSvc := service.NewRouteService(routeRepo, rdb, cfg.PageSize)
	unitSvc := service.NewUnitService(unitRepo)
	contactSvc := service.NewContactService(contactRepo)
	statsSvc := service.NewStatsService(userRepo, routeRepo, unitRepo, contactRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc, dispatcher)
	routesH := handler.NewRoutesHandler(routeSvc, dispatcher)
	unitsH := handler.NewUnitsHandler(unitSvc, dispatcher)
	contactsH := handler.NewContactsHandler(contactSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	auditH := handler.NewAuditHandler(auditRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")

	// Auth (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Public route discovery for the landing page, no auth required
	api.GET("/routes/search", routesH.Search)
	api.GET("/routes/popular", routesH.Popular)
	api.GET("/routes/suggestions/origins", routesH.SuggestOrigins)
	api.GET("/routes/suggestions/destinations", routesH.SuggestDestinations)

	// Contact intake (public, throttled)
	api.POST("/contacts", middleware.ContactRateLimiter(), contactsH.Create)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireRole(model.RoleAdmin)
	protected := api.Group("", jwtMW)
	{
		protected.GET("/auth/me", authH.Me)

		protected.GET("/routes", routesH.List)
		protected.GET("/routes/:id", routesH.GetByID)
		routes := protected.Group("/routes", adminMW)
		{
			routes.POST("", routesH.Create)
			routes.PATCH("/:id", routesH.Update)
			routes.DELETE("/:id", routesH.Delete)
			routes.PATCH("/:id/reactivar", routesH.Reactivate)
		}

		protected.GET("/units", unitsH.List)
		protected.GET("/units/:id", unitsH.GetByID)
		units := protected.Group("/units", adminMW)
		{
			units.POST("", unitsH.Create)
			units.PATCH("/:id", unitsH.Update)
			units.DELETE("/:id", unitsH.Delete)
			units.PATCH("/:id/reactivar", unitsH.Reactivate)
		}

		// Drivers listing feeds route assignment, any authenticated role
		protected.GET("/users/drivers", usersH.ListDrivers)
		users := protected.Group("/users", adminMW)
		{
			users.GET("", usersH.List)
			users.POST("", usersH.Create)
			users.PATCH("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.PATCH("/:id/reactivar", usersH.Reactivate)
		}

		protected.GET("/contacts", adminMW, contactsH.List)
		protected.GET("/stats", statsH.Get)
		protected.GET("/audit", adminMW, auditH.List)
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
