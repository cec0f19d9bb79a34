package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"job-portal/internal/pkg/paging"
	"job-portal/internal/repository"
)

const (
	similarJobsLimit       = 6
	trendingJobsLimit      = 10
	suggestionsPerCategory = 3
	searchSuggestionCap    = 10
	topIndustriesDefault   = 5
	topIndustriesMaxLimit  = 50
)

type RecommendationUsecase interface {
	SuggestedJobs(ctx context.Context, userID uuid.UUID, page, size int) (paging.Page[JobItem], error)
	SimilarJobs(ctx context.Context, jobID uuid.UUID) ([]JobItem, error)
	TrendingJobs(ctx context.Context) ([]JobItem, error)
	SearchSuggestions(ctx context.Context, prefix string) ([]string, error)
	TopIndustries(ctx context.Context, limit int) ([]string, error)
}

type Recommendation struct {
	recs repository.RecommendationRepository
	jobs repository.JobRepository
}

func NewRecommendationUsecase(recs repository.RecommendationRepository, jobs repository.JobRepository) *Recommendation {
	return &Recommendation{recs: recs, jobs: jobs}
}

// SuggestedJobs keys relevance off the seeker's most recent application:
// open jobs sharing its industry or location, minus anything already applied
// to, industry matches ranked first.
func (u *Recommendation) SuggestedJobs(ctx context.Context, userID uuid.UUID, page, size int) (paging.Page[JobItem], error) {
	key, found, err := u.recs.LastAppliedJob(ctx, userID)
	if err != nil {
		return paging.Page[JobItem]{}, ErrInternal
	}
	if !found {
		return paging.Page[JobItem]{}, ErrNoApplicationHistory
	}

	w := paging.NewWindow(page, size, paging.DefaultSize)
	rows, total, err := u.recs.SuggestedJobs(ctx, userID, key, w)
	if err != nil {
		return paging.Page[JobItem]{}, ErrInternal
	}
	return paging.NewPage(toJobItems(rows), w, total), nil
}

// SimilarJobs returns open jobs sharing the anchor's industry and job type,
// excluding the anchor itself.
func (u *Recommendation) SimilarJobs(ctx context.Context, jobID uuid.UUID) ([]JobItem, error) {
	anchor, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}

	rows, err := u.recs.SimilarJobs(ctx, anchor.Industry, anchor.JobType, anchor.ID, similarJobsLimit)
	if err != nil {
		return nil, ErrInternal
	}
	return toJobItems(rows), nil
}

func (u *Recommendation) TrendingJobs(ctx context.Context) ([]JobItem, error) {
	rows, err := u.recs.TrendingJobs(ctx, trendingJobsLimit)
	if err != nil {
		return nil, ErrInternal
	}
	return toJobItems(rows), nil
}

// SearchSuggestions merges up to three distinct values per category (title,
// location, company, industry, in that order) starting with the prefix. A
// blank prefix yields an empty list rather than an error.
func (u *Recommendation) SearchSuggestions(ctx context.Context, prefix string) ([]string, error) {
	if strings.TrimSpace(prefix) == "" {
		return []string{}, nil
	}

	sources := []func(context.Context, string, int) ([]string, error){
		u.recs.TitleSuggestions,
		u.recs.LocationSuggestions,
		u.recs.CompanySuggestions,
		u.recs.IndustrySuggestions,
	}

	seen := make(map[string]struct{}, searchSuggestionCap)
	out := make([]string, 0, searchSuggestionCap)
	for _, source := range sources {
		values, err := source(ctx, prefix, suggestionsPerCategory)
		if err != nil {
			return nil, ErrInternal
		}
		for _, v := range values {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
			if len(out) == searchSuggestionCap {
				return out, nil
			}
		}
	}
	return out, nil
}

func (u *Recommendation) TopIndustries(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = topIndustriesDefault
	}
	if limit > topIndustriesMaxLimit {
		limit = topIndustriesMaxLimit
	}

	industries, err := u.recs.TopIndustries(ctx, limit)
	if err != nil {
		return nil, ErrInternal
	}
	if industries == nil {
		industries = []string{}
	}
	return industries, nil
}
