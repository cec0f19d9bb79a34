package query

import (
	"errors"
	"strings"
	"time"

	"job-portal/internal/domain/candidate"
)

// CandidateAlias is the root alias every candidate predicate references.
const CandidateAlias = "p"

var (
	ErrUnknownSortField     = errors.New("unknown sort field")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

type CandidateSearchFilter struct {
	Keyword           string
	Skills            []string
	CurrentLocation   string
	PreferredLocation string
	MinExperience     *int
	MaxExperience     *int
	MinExpectedCTC    *float64
	MaxExpectedCTC    *float64
	NoticeStatus      *candidate.NoticeStatus
	MaxNoticePeriod   *int
	ImmediateJoiner   *bool
	AvailableBefore   *time.Time
}

// Skill matching goes through EXISTS semi-joins rather than a skills join on
// the root query: a profile with N matching skills still produces one row, so
// pagination counts stay correct without a DISTINCT over the whole select.
const (
	skillNameLikeExists = "EXISTS (SELECT 1 FROM candidate_skills cs JOIN skills sk ON sk.id = cs.skill_id WHERE cs.candidate_id = p.id AND LOWER(sk.name) LIKE ?)"
	skillNameInExists   = "EXISTS (SELECT 1 FROM candidate_skills cs JOIN skills sk ON sk.id = cs.skill_id WHERE cs.candidate_id = p.id AND LOWER(sk.name) = ANY(?))"
)

// OwnerJoin registers the join to the owning user record, shared between the
// name-keyword predicate and the selected identity columns.
func OwnerJoin(s *Set) string {
	return s.Join("user", "u", "LEFT JOIN users u ON u.id = p.user_id")
}

// BuildCandidateSearch assembles the job-seeker search predicate set.
func BuildCandidateSearch(f CandidateSearchFilter) *Set {
	s := NewSet(CandidateAlias)
	u := OwnerJoin(s)

	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		p := likePattern(kw)
		s.WhereAny(NewOrGroup().
			Or("LOWER("+u+".name) LIKE ?", p).
			Or(skillNameLikeExists, p).
			Or("LOWER(p.current_company) LIKE ?", p).
			Or("LOWER(p.current_location) LIKE ?", p))
	}

	if names := NormalizeSkillNames(f.Skills); len(names) > 0 {
		s.Where(skillNameInExists, names)
	}

	if strings.TrimSpace(f.CurrentLocation) != "" {
		s.Where("LOWER(p.current_location) LIKE ?", likePattern(f.CurrentLocation))
	}
	if strings.TrimSpace(f.PreferredLocation) != "" {
		s.Where("LOWER(p.preferred_location) LIKE ?", likePattern(f.PreferredLocation))
	}

	if f.MinExperience != nil {
		s.Where("p.total_experience >= ?", *f.MinExperience)
	}
	if f.MaxExperience != nil {
		s.Where("p.total_experience <= ?", *f.MaxExperience)
	}

	if f.MinExpectedCTC != nil {
		s.Where("p.expected_ctc >= ?", *f.MinExpectedCTC)
	}
	if f.MaxExpectedCTC != nil {
		s.Where("p.expected_ctc <= ?", *f.MaxExpectedCTC)
	}

	if f.NoticeStatus != nil {
		s.Where("p.notice_status = ?", string(*f.NoticeStatus))
	}
	if f.MaxNoticePeriod != nil {
		s.Where("p.notice_period <= ?", *f.MaxNoticePeriod)
	}
	if f.ImmediateJoiner != nil {
		s.Where("p.immediate_joiner = ?", *f.ImmediateJoiner)
	}
	if f.AvailableBefore != nil {
		s.Where("p.available_from <= ?", *f.AvailableBefore)
	}
	return s
}

// NormalizeSkillNames trims, lowercases and de-duplicates filter skill names,
// dropping empties. ["Java", "java "] collapses to ["java"].
func NormalizeSkillNames(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, n := range in {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

var candidateSortColumns = map[string]string{
	"totalExperience": "p.total_experience",
	"expectedCTC":     "p.expected_ctc",
	"noticePeriod":    "p.notice_period",
	"availableFrom":   "p.available_from",
	"currentLocation": "p.current_location",
}

// CandidateSort resolves caller-supplied sort inputs against the allow-list.
// Defaults are totalExperience descending; anything outside the list is
// rejected, never passed through to the store.
func CandidateSort(field, direction string) (Sort, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		field = "totalExperience"
	}
	col, ok := candidateSortColumns[field]
	if !ok {
		return Sort{}, ErrUnknownSortField
	}

	desc := true
	switch strings.ToUpper(strings.TrimSpace(direction)) {
	case "", "DESC":
		desc = true
	case "ASC":
		desc = false
	default:
		return Sort{}, ErrInvalidSortDirection
	}

	return Sort{Column: col, Desc: desc}, nil
}
