package v1

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/repository"
	"job-portal/internal/usecase"
)

// Register wires the v1 API surface. Job discovery stays public; candidate
// search and history-based recommendations sit behind the auth middleware.
func Register(r fiber.Router, cfg config.Config, db database.DB, rdb *redis.Client, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	sessionRepo := repository.NewRedisSessionRepository(rdb)
	jobRepo := repository.NewPostgresJobRepository(db)
	jobSearchRepo := repository.NewPostgresJobSearchRepository(db)
	candidateRepo := repository.NewPostgresCandidateSearchRepository(db)
	recRepo := repository.NewPostgresRecommendationRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, sessionRepo, jwtSvc, cfg.JWT.RefreshExpiresIn)
	jobUC := usecase.NewJobUsecase(jobRepo, logger)
	jobSearchUC := usecase.NewJobSearchUsecase(jobSearchRepo)
	candidateUC := usecase.NewCandidateSearchUsecase(candidateRepo)
	recUC := usecase.NewRecommendationUsecase(recRepo, jobRepo)

	authHandler := handler.NewAuthHandler(authUC)
	jobHandler := handler.NewJobHandler(jobSearchUC, jobUC)
	recHandler := handler.NewRecommendationHandler(recUC)
	candidateHandler := handler.NewCandidateHandler(candidateUC)

	authHandler.RegisterRoutes(r.Group("/auth"))

	// Static job paths must register ahead of the /:id detail route.
	jobs := r.Group("/jobs")
	recHandler.RegisterProtectedRoutes(jobs, authMw.Middleware())
	recHandler.RegisterPublicRoutes(jobs)
	jobHandler.RegisterRoutes(jobs)

	candidates := r.Group("/candidates", authMw.Middleware())
	candidateHandler.RegisterRoutes(candidates)
}
