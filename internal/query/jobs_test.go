package query

import (
	"strings"
	"testing"

	"job-portal/internal/domain/job"
)

func intPtr(v int) *int { return &v }

func TestBuildJobSearch_EmptyFilterStillVisibleOnly(t *testing.T) {
	s := BuildJobSearch(JobSearchFilter{})

	where, args, _ := s.WhereSQL(1)
	if where != "WHERE j.deleted = FALSE AND j.status = $1" {
		t.Fatalf("unexpected clause: %q", where)
	}
	if len(args) != 1 || args[0] != "OPEN" {
		t.Fatalf("unexpected args: %v", args)
	}
	if !s.IsDistinct() {
		t.Fatalf("search sets must be distinct")
	}
}

func TestBuildJobSearch_KeywordFansOut(t *testing.T) {
	s := BuildJobSearch(JobSearchFilter{Keyword: "  Engineer "})

	where, args, _ := s.WhereSQL(1)
	if !strings.Contains(where, "(LOWER(j.title) LIKE $2 OR LOWER(j.location) LIKE $3 OR LOWER(c.company_name) LIKE $4 OR LOWER(j.job_type::text) LIKE $5)") {
		t.Fatalf("unexpected clause: %q", where)
	}
	for _, a := range args[1:] {
		if a != "%engineer%" {
			t.Fatalf("keyword must be trimmed and lowercased, got %v", a)
		}
	}
}

func TestBuildJobSearch_RangeAndType(t *testing.T) {
	jt := job.TypeContract
	s := BuildJobSearch(JobSearchFilter{MinExp: intPtr(2), MaxExp: intPtr(8), JobType: &jt})

	where, args, _ := s.WhereSQL(1)
	if !strings.Contains(where, "j.min_experience >= $2") ||
		!strings.Contains(where, "j.max_experience <= $3") ||
		!strings.Contains(where, "j.job_type = $4") {
		t.Fatalf("unexpected clause: %q", where)
	}
	if args[3] != "CONTRACT" {
		t.Fatalf("unexpected job type arg: %v", args[3])
	}
}

func TestBuildJobFilter_EmptyMatchesEverything(t *testing.T) {
	s := BuildJobFilter(JobFilter{})
	if !s.Empty() {
		t.Fatalf("filter without inputs must have no conditions")
	}
}

func TestBuildJobFilter_ExactLocationNoVisibility(t *testing.T) {
	s := BuildJobFilter(JobFilter{Location: "Pune"})

	where, args, _ := s.WhereSQL(1)
	if where != "WHERE j.location = $1" {
		t.Fatalf("unexpected clause: %q", where)
	}
	if args[0] != "Pune" {
		t.Fatalf("location must not be case folded, got %v", args[0])
	}
	if strings.Contains(where, "deleted") || strings.Contains(where, "status") {
		t.Fatalf("filter must not add implicit visibility: %q", where)
	}
}

func TestBuildJobFilter_ExplicitStatus(t *testing.T) {
	st := job.StatusClosed
	s := BuildJobFilter(JobFilter{Status: &st})

	where, args, _ := s.WhereSQL(1)
	if where != "WHERE j.status = $1" || args[0] != "CLOSED" {
		t.Fatalf("unexpected clause: %q args %v", where, args)
	}
}

func TestBuildJobQuickSearch_SharesCompanyJoin(t *testing.T) {
	s := BuildJobQuickSearch("acme")

	if s.JoinCount() != 1 {
		t.Fatalf("expected a single company join, got %d", s.JoinCount())
	}
	where, _, _ := s.WhereSQL(1)
	if !strings.Contains(where, "LOWER(j.industry) LIKE") {
		t.Fatalf("quick search must cover industry: %q", where)
	}
	if !strings.Contains(where, "j.deleted = FALSE") {
		t.Fatalf("quick search must stay visible-only: %q", where)
	}
}
