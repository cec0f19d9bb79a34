package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/paging"
	"job-portal/internal/query"
	"job-portal/internal/repository"
)

// JobItem is the search-facing view of a job, including the company summary
// joined from the companies table.
type JobItem struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Location      string
	Industry      string
	Salary        *float64
	JobType       string
	MinExperience int
	MaxExperience *int
	Status        string
	ViewCount     int64
	CreatedAt     time.Time
	Company       job.CompanySummary
}

func toJobItem(r repository.JobRow) JobItem {
	return JobItem{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		Industry:      r.Industry,
		Salary:        r.Salary,
		JobType:       r.JobType,
		MinExperience: r.MinExperience,
		MaxExperience: r.MaxExperience,
		Status:        r.Status,
		ViewCount:     r.ViewCount,
		CreatedAt:     r.CreatedAt,
		Company: job.CompanySummary{
			ID:   r.CompanyID,
			Name: r.CompanyName,
			Logo: r.CompanyLogo,
		},
	}
}

func toJobItems(rows []repository.JobRow) []JobItem {
	out := make([]JobItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, toJobItem(r))
	}
	return out
}

type JobSearchUsecase interface {
	SearchJobs(ctx context.Context, f query.JobSearchFilter, page, size int) (paging.Page[JobItem], error)
	FilterJobs(ctx context.Context, f query.JobFilter, page, size int) (paging.Page[JobItem], error)
	QuickSearch(ctx context.Context, keyword string, page, size int) (paging.Page[JobItem], error)
}

type JobSearch struct {
	jobs repository.JobSearchRepository
}

func NewJobSearchUsecase(jobs repository.JobSearchRepository) *JobSearch {
	return &JobSearch{jobs: jobs}
}

// SearchJobs combines the optional criteria with AND semantics; the keyword
// fans out across title, location, company name and job type. Only open,
// non-deleted jobs are returned.
func (u *JobSearch) SearchJobs(ctx context.Context, f query.JobSearchFilter, page, size int) (paging.Page[JobItem], error) {
	w := paging.NewWindow(page, size, paging.DefaultSize)
	set := query.BuildJobSearch(f)

	rows, total, err := u.jobs.FindJobs(ctx, set, query.JobRecencySort(), w)
	if err != nil {
		return paging.Page[JobItem]{}, ErrInternal
	}
	return paging.NewPage(toJobItems(rows), w, total), nil
}

// FilterJobs matches locations exactly and applies no visibility filter:
// closed and soft-deleted jobs are included unless the caller constrains
// status explicitly.
func (u *JobSearch) FilterJobs(ctx context.Context, f query.JobFilter, page, size int) (paging.Page[JobItem], error) {
	w := paging.NewWindow(page, size, paging.DefaultSize)
	set := query.BuildJobFilter(f)

	rows, total, err := u.jobs.FindJobs(ctx, set, query.JobRecencySort(), w)
	if err != nil {
		return paging.Page[JobItem]{}, ErrInternal
	}
	return paging.NewPage(toJobItems(rows), w, total), nil
}

// QuickSearch requires a non-blank keyword; a blank one is rejected rather
// than treated as match-all.
func (u *JobSearch) QuickSearch(ctx context.Context, keyword string, page, size int) (paging.Page[JobItem], error) {
	if strings.TrimSpace(keyword) == "" {
		return paging.Page[JobItem]{}, ErrInvalidInput
	}

	w := paging.NewWindow(page, size, paging.DefaultSize)
	set := query.BuildJobQuickSearch(keyword)

	rows, total, err := u.jobs.FindJobs(ctx, set, query.JobRecencySort(), w)
	if err != nil {
		return paging.Page[JobItem]{}, ErrInternal
	}
	return paging.NewPage(toJobItems(rows), w, total), nil
}
