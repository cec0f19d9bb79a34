package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"job-portal/internal/pkg/paging"
	"job-portal/internal/repository"
)

type JobUsecase interface {
	GetJob(ctx context.Context, jobID uuid.UUID) (JobItem, error)
	LatestJobs(ctx context.Context, page, size int) (paging.Page[JobItem], error)
	JobsByIndustry(ctx context.Context, industry string, page, size int) (paging.Page[JobItem], error)
	JobsByCompany(ctx context.Context, companyID uuid.UUID, page, size int) (paging.Page[JobItem], error)
}

type Jobs struct {
	jobs   repository.JobRepository
	logger *log.Logger
}

func NewJobUsecase(jobs repository.JobRepository, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, logger: logger}
}

// GetJob fetches a single job and bumps its view counter. The bump is atomic
// in the database; a failed bump does not fail the read.
func (u *Jobs) GetJob(ctx context.Context, jobID uuid.UUID) (JobItem, error) {
	row, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobItem{}, ErrJobNotFound
		}
		return JobItem{}, ErrInternal
	}

	if err := u.jobs.IncrementViewCount(ctx, jobID); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] view count bump failed for %s: %v", jobID, err)
		}
	} else {
		row.ViewCount++
	}

	return toJobItem(row), nil
}

func (u *Jobs) LatestJobs(ctx context.Context, page, size int) (paging.Page[JobItem], error) {
	w := paging.NewWindow(page, size, paging.DefaultSize)
	rows, total, err := u.jobs.LatestJobs(ctx, w)
	if err != nil {
		return paging.Page[JobItem]{}, ErrInternal
	}
	return paging.NewPage(toJobItems(rows), w, total), nil
}

func (u *Jobs) JobsByIndustry(ctx context.Context, industry string, page, size int) (paging.Page[JobItem], error) {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return paging.Page[JobItem]{}, ErrInvalidInput
	}

	w := paging.NewWindow(page, size, paging.DefaultSize)
	rows, total, err := u.jobs.JobsByIndustry(ctx, industry, w)
	if err != nil {
		return paging.Page[JobItem]{}, ErrInternal
	}
	return paging.NewPage(toJobItems(rows), w, total), nil
}

func (u *Jobs) JobsByCompany(ctx context.Context, companyID uuid.UUID, page, size int) (paging.Page[JobItem], error) {
	w := paging.NewWindow(page, size, paging.DefaultSize)
	rows, total, err := u.jobs.JobsByCompany(ctx, companyID, w)
	if err != nil {
		return paging.Page[JobItem]{}, ErrInternal
	}
	return paging.NewPage(toJobItems(rows), w, total), nil
}
