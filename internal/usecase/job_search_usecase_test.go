package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"job-portal/internal/pkg/paging"
	"job-portal/internal/query"
	"job-portal/internal/repository"
)

type mockJobSearchRepo struct {
	rows  []repository.JobRow
	total int64
	err   error

	gotSet    *query.Set
	gotSort   query.Sort
	gotWindow paging.Window
}

func (m *mockJobSearchRepo) FindJobs(_ context.Context, set *query.Set, sort query.Sort, w paging.Window) ([]repository.JobRow, int64, error) {
	m.gotSet = set
	m.gotSort = sort
	m.gotWindow = w
	return m.rows, m.total, m.err
}

func sampleJobRow(title string) repository.JobRow {
	return repository.JobRow{
		ID:          uuid.New(),
		Title:       title,
		Location:    "Bengaluru",
		Industry:    "Software",
		JobType:     "FULL_TIME",
		Status:      "OPEN",
		CreatedAt:   time.Now().UTC(),
		CompanyID:   uuid.New(),
		CompanyName: "Acme",
	}
}

func TestJobSearchUsecase_SearchJobs_Envelope(t *testing.T) {
	repo := &mockJobSearchRepo{rows: []repository.JobRow{sampleJobRow("Backend Engineer")}, total: 11}
	uc := NewJobSearchUsecase(repo)

	page, err := uc.SearchJobs(context.Background(), query.JobSearchFilter{Keyword: "engineer"}, 0, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page.Content) != 1 {
		t.Fatalf("expected 1 item, got %d", len(page.Content))
	}
	if page.TotalElements != 11 || page.TotalPages != 2 || page.Last {
		t.Fatalf("unexpected envelope: %+v", page)
	}
	if page.Content[0].Company.Name != "Acme" {
		t.Fatalf("expected company summary to be mapped")
	}
	if !repo.gotSet.IsDistinct() {
		t.Fatalf("keyword search must deduplicate joined rows")
	}
	if repo.gotSort.Column != "j.created_at" || !repo.gotSort.Desc {
		t.Fatalf("expected recency sort, got %+v", repo.gotSort)
	}
}

func TestJobSearchUsecase_FilterJobs_NoVisibilityPredicate(t *testing.T) {
	repo := &mockJobSearchRepo{}
	uc := NewJobSearchUsecase(repo)

	if _, err := uc.FilterJobs(context.Background(), query.JobFilter{Location: "Pune"}, 0, 10); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	where, args, _ := repo.gotSet.WhereSQL(1)
	if where != "WHERE j.location = $1" {
		t.Fatalf("unexpected where clause: %q", where)
	}
	if len(args) != 1 || args[0] != "Pune" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestJobSearchUsecase_QuickSearch_BlankKeyword(t *testing.T) {
	uc := NewJobSearchUsecase(&mockJobSearchRepo{})

	_, err := uc.QuickSearch(context.Background(), "   ", 0, 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobSearchUsecase_SearchJobs_RepoError(t *testing.T) {
	uc := NewJobSearchUsecase(&mockJobSearchRepo{err: errors.New("boom")})

	_, err := uc.SearchJobs(context.Background(), query.JobSearchFilter{}, 0, 10)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobSearchUsecase_WindowClamping(t *testing.T) {
	repo := &mockJobSearchRepo{}
	uc := NewJobSearchUsecase(repo)

	if _, err := uc.SearchJobs(context.Background(), query.JobSearchFilter{}, -3, 500); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.gotWindow.Page != 0 {
		t.Fatalf("expected negative page clamped to 0, got %d", repo.gotWindow.Page)
	}
	if repo.gotWindow.Size != paging.MaxSize {
		t.Fatalf("expected size capped at %d, got %d", paging.MaxSize, repo.gotWindow.Size)
	}
}
