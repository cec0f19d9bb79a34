package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/paging"
	"job-portal/internal/query"
	"job-portal/internal/repository"
)

// CandidateItem is the recruiter-facing view of a job seeker profile with the
// skill names resolved.
type CandidateItem struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	FullName          string
	Email             string
	CurrentCompany    string
	CurrentLocation   string
	PreferredLocation string
	TotalExperience   *int
	ExpectedCTC       *float64
	NoticePeriod      *int
	NoticeStatus      *string
	ImmediateJoiner   *bool
	AvailableFrom     *time.Time
	Skills            []string
}

type CandidateSearchUsecase interface {
	SearchCandidates(ctx context.Context, p user.Principal, f query.CandidateSearchFilter, sortField, sortDir string, page, size int) (paging.Page[CandidateItem], error)
}

type CandidateSearch struct {
	candidates repository.CandidateSearchRepository
}

func NewCandidateSearchUsecase(candidates repository.CandidateSearchRepository) *CandidateSearch {
	return &CandidateSearch{candidates: candidates}
}

// SearchCandidates is restricted to recruiting roles. Skill filters are
// normalized (trimmed, lowercased, deduplicated) before they reach the query,
// and a profile matching several requested skills still counts once.
func (u *CandidateSearch) SearchCandidates(ctx context.Context, p user.Principal, f query.CandidateSearchFilter, sortField, sortDir string, page, size int) (paging.Page[CandidateItem], error) {
	if !p.CanSearchCandidates() {
		return paging.Page[CandidateItem]{}, ErrForbidden
	}

	sort, err := query.CandidateSort(sortField, sortDir)
	if err != nil {
		if errors.Is(err, query.ErrUnknownSortField) || errors.Is(err, query.ErrInvalidSortDirection) {
			return paging.Page[CandidateItem]{}, ErrInvalidInput
		}
		return paging.Page[CandidateItem]{}, ErrInternal
	}

	f.Skills = query.NormalizeSkillNames(f.Skills)

	w := paging.NewWindow(page, size, paging.DefaultSize)
	set := query.BuildCandidateSearch(f)

	rows, total, err := u.candidates.FindCandidates(ctx, set, sort, w)
	if err != nil {
		return paging.Page[CandidateItem]{}, ErrInternal
	}

	items, err := u.attachSkills(ctx, rows)
	if err != nil {
		return paging.Page[CandidateItem]{}, ErrInternal
	}
	return paging.NewPage(items, w, total), nil
}

func (u *CandidateSearch) attachSkills(ctx context.Context, rows []repository.CandidateRow) ([]CandidateItem, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	skillsByID := map[uuid.UUID][]string{}
	if len(ids) > 0 {
		var err error
		skillsByID, err = u.candidates.SkillNamesByProfileIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	out := make([]CandidateItem, 0, len(rows))
	for _, r := range rows {
		skills := skillsByID[r.ID]
		if skills == nil {
			skills = []string{}
		}
		out = append(out, CandidateItem{
			ID:                r.ID,
			UserID:            r.UserID,
			FullName:          r.FullName,
			Email:             r.Email,
			CurrentCompany:    r.CurrentCompany,
			CurrentLocation:   r.CurrentLocation,
			PreferredLocation: r.PreferredLocation,
			TotalExperience:   r.TotalExperience,
			ExpectedCTC:       r.ExpectedCTC,
			NoticePeriod:      r.NoticePeriod,
			NoticeStatus:      r.NoticeStatus,
			ImmediateJoiner:   r.ImmediateJoiner,
			AvailableFrom:     r.AvailableFrom,
			Skills:            skills,
		})
	}
	return out, nil
}
