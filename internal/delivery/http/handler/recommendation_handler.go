package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"
	"job-portal/internal/usecase"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

// RegisterPublicRoutes wires the endpoints that need no caller identity.
func (h *RecommendationHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/trending", h.Trending)
	r.Get("/suggestions", h.Suggestions)
	r.Get("/top-industries", h.TopIndustries)
	r.Get("/:id/similar", h.Similar)
}

// RegisterProtectedRoutes wires the endpoints keyed off the authenticated
// seeker's history. The auth guard attaches per route so the sibling public
// job routes on the same group stay open.
func (h *RecommendationHandler) RegisterProtectedRoutes(r fiber.Router, authGuard fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/suggested", h.Suggested, authGuard)
}

func (h *RecommendationHandler) Suggested(c fiber.Ctx) error {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	page, size, err := parsePaging(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.SuggestedJobs(c.Context(), p.UserID, page, size)
	if err != nil {
		return mapRecommendationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobPage(out))
}

func (h *RecommendationHandler) Similar(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.SimilarJobs(c.Context(), jobID)
	if err != nil {
		return mapRecommendationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobItems(items))
}

func (h *RecommendationHandler) Trending(c fiber.Ctx) error {
	items, err := h.uc.TrendingJobs(c.Context())
	if err != nil {
		return mapRecommendationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobItems(items))
}

func (h *RecommendationHandler) Suggestions(c fiber.Ctx) error {
	values, err := h.uc.SearchSuggestions(c.Context(), c.Query("keyword"))
	if err != nil {
		return mapRecommendationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, values)
}

func (h *RecommendationHandler) TopIndustries(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	industries, err := h.uc.TopIndustries(c.Context(), limit)
	if err != nil {
		return mapRecommendationError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, industries)
}

func mapRecommendationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrNoApplicationHistory):
		return middleware.NewAppError(fiber.StatusNotFound, "No application history", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
