package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/response"
	"job-portal/internal/query"
	"job-portal/internal/usecase"
)

type JobHandler struct {
	search usecase.JobSearchUsecase
	jobs   usecase.JobUsecase
}

func NewJobHandler(search usecase.JobSearchUsecase, jobs usecase.JobUsecase) *JobHandler {
	return &JobHandler{search: search, jobs: jobs}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/search", h.Search)
	r.Get("/filter", h.Filter)
	r.Get("/quick-search", h.QuickSearch)
	r.Get("/latest", h.Latest)
	r.Get("/industry/:industry", h.ByIndustry)
	r.Get("/company/:companyId", h.ByCompany)
	r.Get("/:id", h.Detail)
}

func (h *JobHandler) Search(c fiber.Ctx) error {
	f := query.JobSearchFilter{
		Keyword:     c.Query("keyword"),
		Location:    c.Query("location"),
		CompanyName: c.Query("company"),
	}

	var err error
	if f.MinExp, err = parseOptionalInt(c, "minExperience"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if f.MaxExp, err = parseOptionalInt(c, "maxExperience"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if f.JobType, err = parseOptionalJobType(c.Query("jobType")); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	page, size, err := parsePaging(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.search.SearchJobs(c.Context(), f, page, size)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobPage(out))
}

func (h *JobHandler) Filter(c fiber.Ctx) error {
	f := query.JobFilter{Location: c.Query("location")}

	var err error
	if f.JobType, err = parseOptionalJobType(c.Query("jobType")); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if f.MinExp, err = parseOptionalInt(c, "minExperience"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if f.MaxExp, err = parseOptionalInt(c, "maxExperience"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if st := c.Query("status"); st != "" {
		parsed, ok := job.ParseStatus(st)
		if !ok {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
		}
		f.Status = &parsed
	}

	page, size, err := parsePaging(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.search.FilterJobs(c.Context(), f, page, size)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobPage(out))
}

func (h *JobHandler) QuickSearch(c fiber.Ctx) error {
	page, size, err := parsePaging(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.search.QuickSearch(c.Context(), c.Query("keyword"), page, size)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobPage(out))
}

func (h *JobHandler) Latest(c fiber.Ctx) error {
	page, size, err := parsePaging(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.jobs.LatestJobs(c.Context(), page, size)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobPage(out))
}

func (h *JobHandler) ByIndustry(c fiber.Ctx) error {
	page, size, err := parsePaging(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.jobs.JobsByIndustry(c.Context(), c.Params("industry"), page, size)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobPage(out))
}

func (h *JobHandler) ByCompany(c fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	page, size, err := parsePaging(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.jobs.JobsByCompany(c.Context(), companyID, page, size)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobPage(out))
}

func (h *JobHandler) Detail(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	item, err := h.jobs.GetJob(c.Context(), jobID)
	if err != nil {
		return mapJobError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobItem(item))
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parsePaging(c fiber.Ctx) (int, int, error) {
	page, err := parseQueryIntStrict(c, "page", 0)
	if err != nil {
		return 0, 0, err
	}
	size, err := parseQueryIntStrict(c, "size", 0)
	if err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

func parseOptionalInt(c fiber.Ctx, key string) (*int, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalFloat(c fiber.Ctx, key string) (*float64, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalJobType(s string) (*job.Type, error) {
	if s == "" {
		return nil, nil
	}
	parsed, ok := job.ParseType(s)
	if !ok {
		return nil, errors.New("unknown job type")
	}
	return &parsed, nil
}

func mapJobError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
