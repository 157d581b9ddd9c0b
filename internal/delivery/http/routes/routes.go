package routes

import (
	"colab/internal/config"
	"colab/internal/database"
	"colab/internal/delivery/http/handler"
	"colab/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry() *Registry {
	return &Registry{health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App, cfg config.Config, db database.DB, cache usecase.MatchCache) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	RegisterAPI(app.Group("/api"), cfg, db, cache)
}
