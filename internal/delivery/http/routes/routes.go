package routes

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/delivery/http/handler"
	v1 "job-portal/internal/delivery/http/routes/v1"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	rdb    *redis.Client
	logger *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, rdb *redis.Client, logger *log.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		rdb:    rdb,
		logger: logger,
		health: handler.NewHealthHandler(db),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.rdb, r.logger)
}
