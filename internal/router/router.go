package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/pump-maintenance/internal/config"
    "github.com/iliyamo/pump-maintenance/internal/handler"
    "github.com/iliyamo/pump-maintenance/internal/middleware"
    "github.com/iliyamo/pump-maintenance/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints under /auth and
// applies the Redis token-bucket limiter to them.  Register and login are
// open; refresh and logout authenticate via the refresh token itself; /me
// requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rlCfg config.RateLimitConfig, rdb *redis.Client, jwtSecret string) {
    g := e.Group("/auth")
    g.Use(middleware.NewTokenBucket(rlCfg, rdb))
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    g.POST("/refresh", a.Refresh)
    g.POST("/logout", a.Logout)
    g.GET("/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterAPI registers every protected endpoint.  All routes in this
// group require a valid access token; the write tiers are layered on per
// route with RequireRole so each permission decision is visible at
// registration time:
//   - pump creation and any delete: admin
//   - maintenance scheduling and status updates: technician or admin
//   - reads, reports and predictions: any authenticated role
func RegisterAPI(e *echo.Echo, p *handler.PumpHandler, m *handler.MaintenanceHandler, r *handler.ReportHandler, pr *handler.PredictionHandler, jwtSecret string) {
    api := e.Group("")
    api.Use(middleware.JWTAuth(jwtSecret))

    adminOnly := middleware.RequireRole(model.RoleAdmin)
    lifecycle := middleware.RequireRole(model.RoleTechnician, model.RoleAdmin)

    api.POST("/pumps", p.Create, adminOnly)
    api.GET("/pumps", p.List)
    api.GET("/pumps/:id", p.Get)
    api.DELETE("/pumps/:id", p.Delete, adminOnly)

    api.POST("/maintenance", m.Schedule, lifecycle)
    api.PUT("/maintenance/:id", m.UpdateStatus, lifecycle)
    api.GET("/maintenance/pump/:id", m.ListByPump, lifecycle)
    api.DELETE("/maintenance/:id", m.Delete, adminOnly)

    api.GET("/reports/summary", r.Summary)
    api.POST("/prediction", pr.Predict)
}
