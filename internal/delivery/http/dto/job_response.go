package dto

import (
	"time"

	"github.com/google/uuid"

	"job-portal/internal/pkg/paging"
	"job-portal/internal/usecase"
)

type CompanySummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	Logo        string    `json:"logo"`
}

type JobResponse struct {
	ID            uuid.UUID              `json:"id"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description"`
	Location      string                 `json:"location"`
	Industry      string                 `json:"industry"`
	Salary        *float64               `json:"salary"`
	JobType       string                 `json:"jobType"`
	MinExperience int                    `json:"minExperience"`
	MaxExperience *int                   `json:"maxExperience"`
	Status        string                 `json:"status"`
	ViewCount     int64                  `json:"viewCount"`
	CreatedAt     string                 `json:"createdAt"`
	Company       CompanySummaryResponse `json:"company"`
}

func FromJobItem(it usecase.JobItem) JobResponse {
	return JobResponse{
		ID:            it.ID,
		Title:         it.Title,
		Description:   it.Description,
		Location:      it.Location,
		Industry:      it.Industry,
		Salary:        it.Salary,
		JobType:       it.JobType,
		MinExperience: it.MinExperience,
		MaxExperience: it.MaxExperience,
		Status:        it.Status,
		ViewCount:     it.ViewCount,
		CreatedAt:     it.CreatedAt.UTC().Format(time.RFC3339),
		Company: CompanySummaryResponse{
			ID:          it.Company.ID,
			CompanyName: it.Company.Name,
			Logo:        it.Company.Logo,
		},
	}
}

func FromJobItems(items []usecase.JobItem) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromJobItem(it))
	}
	return out
}

// FromJobPage rewraps a usecase page, keeping the envelope counters intact.
func FromJobPage(p paging.Page[usecase.JobItem]) paging.Page[JobResponse] {
	return paging.Page[JobResponse]{
		Content:       FromJobItems(p.Content),
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	}
}
