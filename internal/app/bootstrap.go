package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"job-portal/internal/config"
	"job-portal/internal/database/migration"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/delivery/http/routes"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, applies pending migrations and assembles
// the HTTP surface. The returned cleanup closes the shared clients.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("container: %w", err)
	}

	if err := runMigrations(container, cfg); err != nil {
		_ = container.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	errMw := middleware.NewErrorMiddleware()
	f.Use(errMw.Middleware())

	accessLog := middleware.NewAccessLogMiddleware(logger)
	f.Use(accessLog.Middleware())

	registry := routes.NewRegistry(cfg, container.DB, container.Redis, logger)
	registry.Register(f)

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func runMigrations(container *Container, cfg config.Config) error {
	sqlDB := container.DB.SQLDB()
	if sqlDB == nil {
		return fmt.Errorf("migration connection unavailable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	return runner.Run(ctx, sqlDB)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
