package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/candidate"
	"job-portal/internal/pkg/response"
	"job-portal/internal/query"
	"job-portal/internal/usecase"
)

type CandidateHandler struct {
	uc usecase.CandidateSearchUsecase
}

func NewCandidateHandler(uc usecase.CandidateSearchUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/search", h.Search)
}

func (h *CandidateHandler) Search(c fiber.Ctx) error {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	f := query.CandidateSearchFilter{
		Keyword:           c.Query("keyword"),
		Skills:            splitCommaList(c.Query("skills")),
		CurrentLocation:   c.Query("currentLocation"),
		PreferredLocation: c.Query("preferredLocation"),
	}

	var err error
	if f.MinExperience, err = parseOptionalInt(c, "minExperience"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if f.MaxExperience, err = parseOptionalInt(c, "maxExperience"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if f.MinExpectedCTC, err = parseOptionalFloat(c, "minExpectedCtc"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if f.MaxExpectedCTC, err = parseOptionalFloat(c, "maxExpectedCtc"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if f.MaxNoticePeriod, err = parseOptionalInt(c, "maxNoticePeriod"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if ns := c.Query("noticeStatus"); ns != "" {
		parsed, ok := candidate.ParseNoticeStatus(ns)
		if !ok {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
		}
		f.NoticeStatus = &parsed
	}
	if ij := c.Query("immediateJoiner"); ij != "" {
		switch strings.ToLower(ij) {
		case "true":
			v := true
			f.ImmediateJoiner = &v
		case "false":
			v := false
			f.ImmediateJoiner = &v
		default:
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
		}
	}
	if ab := c.Query("availableBefore"); ab != "" {
		t, err := time.Parse(time.RFC3339, ab)
		if err != nil {
			t, err = time.Parse("2006-01-02", ab)
		}
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		f.AvailableBefore = &t
	}

	page, size, err := parsePaging(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.SearchCandidates(c.Context(), p, f, c.Query("sortBy"), c.Query("sortDir"), page, size)
	if err != nil {
		return mapCandidateError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCandidatePage(out))
}

func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func mapCandidateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
