package dto

import (
	"time"

	"github.com/google/uuid"

	"job-portal/internal/pkg/paging"
	"job-portal/internal/usecase"
)

type CandidateResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	CurrentCompany    string    `json:"currentCompany"`
	CurrentLocation   string    `json:"currentLocation"`
	PreferredLocation string    `json:"preferredLocation"`
	TotalExperience   *int      `json:"totalExperience"`
	ExpectedCTC       *float64  `json:"expectedCtc"`
	NoticePeriod      *int      `json:"noticePeriod"`
	NoticeStatus      *string   `json:"noticeStatus"`
	ImmediateJoiner   *bool     `json:"immediateJoiner"`
	AvailableFrom     *string   `json:"availableFrom"`
	Skills            []string  `json:"skills"`
}

func FromCandidateItem(it usecase.CandidateItem) CandidateResponse {
	var available *string
	if it.AvailableFrom != nil {
		s := it.AvailableFrom.UTC().Format(time.RFC3339)
		available = &s
	}
	return CandidateResponse{
		ID:                it.ID,
		UserID:            it.UserID,
		FullName:          it.FullName,
		Email:             it.Email,
		CurrentCompany:    it.CurrentCompany,
		CurrentLocation:   it.CurrentLocation,
		PreferredLocation: it.PreferredLocation,
		TotalExperience:   it.TotalExperience,
		ExpectedCTC:       it.ExpectedCTC,
		NoticePeriod:      it.NoticePeriod,
		NoticeStatus:      it.NoticeStatus,
		ImmediateJoiner:   it.ImmediateJoiner,
		AvailableFrom:     available,
		Skills:            it.Skills,
	}
}

func FromCandidatePage(p paging.Page[usecase.CandidateItem]) paging.Page[CandidateResponse] {
	out := make([]CandidateResponse, 0, len(p.Content))
	for _, it := range p.Content {
		out = append(out, FromCandidateItem(it))
	}
	return paging.Page[CandidateResponse]{
		Content:       out,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	}
}
