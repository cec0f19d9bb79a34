package query

import (
	"strings"

	"job-portal/internal/domain/job"
)

// JobAlias is the root alias every job predicate references.
const JobAlias = "j"

type JobSearchFilter struct {
	Keyword     string
	Location    string
	CompanyName string
	MinExp      *int
	MaxExp      *int
	JobType     *job.Type
}

type JobFilter struct {
	Location string
	JobType  *job.Type
	MinExp   *int
	MaxExp   *int
	Status   *job.Status
}

// CompanyJoin registers the shared company join. Every condition or selected
// column that touches the company goes through the alias returned here, so
// builder and executor end up on the same join handle.
func CompanyJoin(s *Set) string {
	return s.Join("company", "c", "LEFT JOIN companies c ON c.id = j.company_id")
}

// visibleOnly restricts a set to jobs that may surface publicly: not soft
// deleted and still open. Kept in one place so call sites cannot drift.
func visibleOnly(s *Set) {
	s.Where("j.deleted = FALSE")
	s.Where("j.status = ?", string(job.StatusOpen))
}

func likePattern(v string) string {
	return "%" + strings.ToLower(strings.TrimSpace(v)) + "%"
}

// BuildJobSearch assembles the free-text job search. The keyword, when
// present, ORs across title, location, company name and the job type rendered
// as text; the remaining inputs AND exact or range constraints on top.
func BuildJobSearch(f JobSearchFilter) *Set {
	s := NewSet(JobAlias).Distinct()
	c := CompanyJoin(s)
	visibleOnly(s)

	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		p := likePattern(kw)
		s.WhereAny(NewOrGroup().
			Or("LOWER(j.title) LIKE ?", p).
			Or("LOWER(j.location) LIKE ?", p).
			Or("LOWER("+c+".company_name) LIKE ?", p).
			Or("LOWER(j.job_type::text) LIKE ?", p))
	}

	if strings.TrimSpace(f.Location) != "" {
		s.Where("LOWER(j.location) LIKE ?", likePattern(f.Location))
	}
	if strings.TrimSpace(f.CompanyName) != "" {
		s.Where("LOWER("+c+".company_name) LIKE ?", likePattern(f.CompanyName))
	}
	if f.MinExp != nil {
		s.Where("j.min_experience >= ?", *f.MinExp)
	}
	if f.MaxExp != nil {
		s.Where("j.max_experience <= ?", *f.MaxExp)
	}
	if f.JobType != nil {
		s.Where("j.job_type = ?", string(*f.JobType))
	}
	return s
}

// BuildJobFilter is a pure AND of the supplied constraints. Unlike
// BuildJobSearch it matches location exactly and applies no implicit
// visibility restriction; status constrains only when the caller supplied
// one.
func BuildJobFilter(f JobFilter) *Set {
	s := NewSet(JobAlias)

	if f.Location != "" {
		s.Where("j.location = ?", f.Location)
	}
	if f.JobType != nil {
		s.Where("j.job_type = ?", string(*f.JobType))
	}
	if f.MinExp != nil {
		s.Where("j.min_experience >= ?", *f.MinExp)
	}
	if f.MaxExp != nil {
		s.Where("j.max_experience <= ?", *f.MaxExp)
	}
	if f.Status != nil {
		s.Where("j.status = ?", string(*f.Status))
	}
	return s
}

// BuildJobQuickSearch is the single free-text OR over title, industry and
// company name, always restricted to visible jobs. Callers must reject a
// blank keyword before reaching this builder.
func BuildJobQuickSearch(keyword string) *Set {
	s := NewSet(JobAlias).Distinct()
	c := CompanyJoin(s)
	visibleOnly(s)

	p := likePattern(keyword)
	s.WhereAny(NewOrGroup().
		Or("LOWER(j.title) LIKE ?", p).
		Or("LOWER(j.industry) LIKE ?", p).
		Or("LOWER("+c+".company_name) LIKE ?", p))
	return s
}

// JobRecencySort is the default ordering for job listings: newest first.
func JobRecencySort() Sort {
	return Sort{Column: "j.created_at", Desc: true}
}
