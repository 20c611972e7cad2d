package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/ladob/catalog-api/docs"
	"github.com/ladob/catalog-api/internal/api/handler"
	"github.com/ladob/catalog-api/internal/api/middleware"
	"github.com/ladob/catalog-api/internal/core/domain"
	"github.com/ladob/catalog-api/internal/core/ports"
	"github.com/ladob/catalog-api/internal/core/service"
)

// Deps carries the collaborators the router wires together. Mongo and Redis
// are optional; when either is nil the readiness probe is not registered.
type Deps struct {
	Users  ports.UserRepository
	Genres ports.GenreRepository
	Hasher ports.PasswordHasher
	Tokens ports.TokenService
	Log    zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client

	// Metrics overrides the Prometheus registerer for request metrics.
	// Defaults to the process-wide registry.
	Metrics prometheus.Registerer
}

// route declares one endpoint together with its access requirements. Keeping
// authorization in this table keeps the services unaware of transport.
type route struct {
	method      string
	path        string
	handler     echo.HandlerFunc
	requireAuth bool
	authority   string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	registerer := d.Metrics
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "catalog",
		Registerer: registerer,
	}))
	e.Use(middleware.Authenticate(d.Users, d.Tokens))

	// --- Services and handlers ---
	authService := service.NewAuthService(d.Users, d.Hasher, d.Tokens)
	genreService := service.NewGenreService(d.Genres)
	authHandler := handler.NewAuthHandler(authService)
	genreHandler := handler.NewGenreHandler(genreService, d.Log)

	routes := []route{
		{method: echo.POST, path: "/auth/register", handler: authHandler.Register},
		{method: echo.POST, path: "/auth/login", handler: authHandler.Login},

		{method: echo.GET, path: "/genres/", handler: genreHandler.List},
		{method: echo.GET, path: "/genres/:id", handler: genreHandler.Get},
		{method: echo.POST, path: "/genres/", handler: genreHandler.Create, requireAuth: true, authority: domain.RoleAdmin},
		{method: echo.PUT, path: "/genres/:id", handler: genreHandler.Update, requireAuth: true, authority: domain.RoleAdmin},
		{method: echo.DELETE, path: "/genres/:id", handler: genreHandler.Delete, requireAuth: true, authority: domain.RoleAdmin},
	}

	for _, r := range routes {
		var mws []echo.MiddlewareFunc
		switch {
		case r.authority != "":
			mws = append(mws, middleware.RequireAuthority(r.authority))
		case r.requireAuth:
			mws = append(mws, middleware.RequireAuth())
		}
		e.Add(r.method, r.path, r.handler, mws...)
	}

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if d.Mongo != nil && d.Redis != nil {
		e.GET("/health/ready", handler.NewHealthDependenciesHandler(d.Mongo, d.Redis).Readiness)
	}

	return e
}
