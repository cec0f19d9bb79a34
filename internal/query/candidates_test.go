package query

import (
	"errors"
	"strings"
	"testing"

	"job-portal/internal/domain/candidate"
)

func TestBuildCandidateSearch_EmptyFilter(t *testing.T) {
	s := BuildCandidateSearch(CandidateSearchFilter{})
	if !s.Empty() {
		t.Fatalf("empty filter must produce no conditions")
	}
	if s.JoinCount() != 1 {
		t.Fatalf("owner join must always be registered, got %d", s.JoinCount())
	}
}

func TestBuildCandidateSearch_KeywordCoversSkills(t *testing.T) {
	s := BuildCandidateSearch(CandidateSearchFilter{Keyword: "Java"})

	where, args, _ := s.WhereSQL(1)
	if !strings.Contains(where, "LOWER(u.name) LIKE $1") {
		t.Fatalf("keyword must cover the owner name: %q", where)
	}
	if !strings.Contains(where, "EXISTS (SELECT 1 FROM candidate_skills") {
		t.Fatalf("keyword must reach skills through a semi-join: %q", where)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 keyword args, got %v", args)
	}
}

func TestBuildCandidateSearch_SkillListSemiJoin(t *testing.T) {
	s := BuildCandidateSearch(CandidateSearchFilter{Skills: []string{"Go", "Kafka"}})

	where, args, _ := s.WhereSQL(1)
	if strings.Contains(where, "JOIN skills sk") && strings.Contains(where, "DISTINCT") {
		t.Fatalf("skill filter must not force DISTINCT: %q", where)
	}
	if !strings.Contains(where, "= ANY($1)") {
		t.Fatalf("skill list must bind as one array arg: %q", where)
	}
	names, ok := args[0].([]string)
	if !ok || len(names) != 2 {
		t.Fatalf("unexpected skill arg: %v", args[0])
	}
}

func TestBuildCandidateSearch_NoticeStatus(t *testing.T) {
	ns := candidate.NoticeStatusServing
	s := BuildCandidateSearch(CandidateSearchFilter{NoticeStatus: &ns})

	where, args, _ := s.WhereSQL(1)
	if where != "WHERE p.notice_status = $1" || args[0] != "SERVING_NOTICE" {
		t.Fatalf("unexpected clause: %q args %v", where, args)
	}
}

func TestNormalizeSkillNames(t *testing.T) {
	got := NormalizeSkillNames([]string{" Java ", "java", "", "Go"})
	if len(got) != 2 || got[0] != "java" || got[1] != "go" {
		t.Fatalf("unexpected normalization: %v", got)
	}
	if NormalizeSkillNames([]string{"  ", ""}) != nil {
		t.Fatalf("all-blank input must normalize to nil")
	}
}

func TestCandidateSort_Defaults(t *testing.T) {
	s, err := CandidateSort("", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Column != "p.total_experience" || !s.Desc {
		t.Fatalf("unexpected default sort: %+v", s)
	}
}

func TestCandidateSort_AllowList(t *testing.T) {
	if _, err := CandidateSort("expected_ctc; DROP TABLE jobs", "ASC"); !errors.Is(err, ErrUnknownSortField) {
		t.Fatalf("expected ErrUnknownSortField, got %v", err)
	}
	if _, err := CandidateSort("expectedCTC", "sideways"); !errors.Is(err, ErrInvalidSortDirection) {
		t.Fatalf("expected ErrInvalidSortDirection, got %v", err)
	}

	s, err := CandidateSort("noticePeriod", "asc")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.Column != "p.notice_period" || s.Desc {
		t.Fatalf("unexpected sort: %+v", s)
	}
}
