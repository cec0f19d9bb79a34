package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/paging"
	"job-portal/internal/query"
	"job-portal/internal/repository"
)

type mockCandidateSearchRepo struct {
	rows   []repository.CandidateRow
	total  int64
	skills map[uuid.UUID][]string
	err    error

	gotSet  *query.Set
	gotSort query.Sort
}

func (m *mockCandidateSearchRepo) FindCandidates(_ context.Context, set *query.Set, sort query.Sort, _ paging.Window) ([]repository.CandidateRow, int64, error) {
	m.gotSet = set
	m.gotSort = sort
	return m.rows, m.total, m.err
}

func (m *mockCandidateSearchRepo) SkillNamesByProfileIDs(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]string, error) {
	return m.skills, nil
}

func recruiter() user.Principal {
	return user.Principal{UserID: uuid.New(), Role: user.RoleRecruiter}
}

func TestCandidateSearchUsecase_SeekerForbidden(t *testing.T) {
	uc := NewCandidateSearchUsecase(&mockCandidateSearchRepo{})

	p := user.Principal{UserID: uuid.New(), Role: user.RoleJobSeeker}
	_, err := uc.SearchCandidates(context.Background(), p, query.CandidateSearchFilter{}, "", "", 0, 10)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCandidateSearchUsecase_UnknownSortField(t *testing.T) {
	uc := NewCandidateSearchUsecase(&mockCandidateSearchRepo{})

	_, err := uc.SearchCandidates(context.Background(), recruiter(), query.CandidateSearchFilter{}, "salary", "ASC", 0, 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCandidateSearchUsecase_DefaultSort(t *testing.T) {
	repo := &mockCandidateSearchRepo{}
	uc := NewCandidateSearchUsecase(repo)

	if _, err := uc.SearchCandidates(context.Background(), recruiter(), query.CandidateSearchFilter{}, "", "", 0, 10); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.gotSort.Column != "p.total_experience" || !repo.gotSort.Desc {
		t.Fatalf("expected default totalExperience DESC, got %+v", repo.gotSort)
	}
}

func TestCandidateSearchUsecase_AttachesSkills(t *testing.T) {
	profileID := uuid.New()
	other := uuid.New()
	repo := &mockCandidateSearchRepo{
		rows: []repository.CandidateRow{
			{ID: profileID, UserID: uuid.New(), FullName: "Asha"},
			{ID: other, UserID: uuid.New(), FullName: "Ravi"},
		},
		total:  2,
		skills: map[uuid.UUID][]string{profileID: {"Go", "PostgreSQL"}},
	}
	uc := NewCandidateSearchUsecase(repo)

	page, err := uc.SearchCandidates(context.Background(), recruiter(), query.CandidateSearchFilter{}, "", "", 0, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Content) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(page.Content))
	}
	if len(page.Content[0].Skills) != 2 {
		t.Fatalf("expected 2 skills on first candidate, got %d", len(page.Content[0].Skills))
	}
	if page.Content[1].Skills == nil || len(page.Content[1].Skills) != 0 {
		t.Fatalf("candidate without skills must get an empty list, got %v", page.Content[1].Skills)
	}
}

func TestCandidateSearchUsecase_NormalizesSkillFilter(t *testing.T) {
	repo := &mockCandidateSearchRepo{}
	uc := NewCandidateSearchUsecase(repo)

	f := query.CandidateSearchFilter{Skills: []string{" Go ", "go", "", "Kafka"}}
	if _, err := uc.SearchCandidates(context.Background(), recruiter(), f, "", "", 0, 10); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, args, _ := repo.gotSet.WhereSQL(1)
	if len(args) != 1 {
		t.Fatalf("expected a single skill list arg, got %v", args)
	}
	names, ok := args[0].([]string)
	if !ok || len(names) != 2 || names[0] != "go" || names[1] != "kafka" {
		t.Fatalf("expected normalized skill names, got %v", args[0])
	}
}
