package routes

import (
	"log"

	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the route tree needs; the registry owns nothing.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

type Registry struct {
	deps Deps
}

func NewRegistry(deps Deps) *Registry {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return &Registry{deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	var cachePinger handler.Pinger
	if r.deps.Cache != nil {
		cachePinger = r.deps.Cache
	}
	handler.NewHealthHandler(r.deps.DB, cachePinger).RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.deps)
}
