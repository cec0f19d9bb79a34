package repository

import (
	"context"
	"time"

	"job-portal/internal/database"
	"job-portal/internal/pkg/paging"
	"job-portal/internal/query"

	"github.com/google/uuid"
)

// CandidateRow is one job-seeker search result before the skill list is
// attached.
type CandidateRow struct {
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
}

const candidateColumns = `p.id, p.user_id, COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(p.current_company, ''), COALESCE(p.current_location, ''), COALESCE(p.preferred_location, ''), p.total_experience, p.expected_ctc, p.notice_period, p.notice_status, p.immediate_joiner, p.available_from`

type CandidateSearchRepository interface {
	FindCandidates(ctx context.Context, set *query.Set, sort query.Sort, w paging.Window) ([]CandidateRow, int64, error)
	SkillNamesByProfileIDs(ctx context.Context, profileIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}

type PostgresCandidateSearchRepository struct {
	db database.DB
}

func NewPostgresCandidateSearchRepository(db database.DB) *PostgresCandidateSearchRepository {
	return &PostgresCandidateSearchRepository{db: db}
}

func (r *PostgresCandidateSearchRepository) FindCandidates(ctx context.Context, set *query.Set, sort query.Sort, w paging.Window) ([]CandidateRow, int64, error) {
	// The identity columns come from the owning user; reuse the builder's
	// join handle.
	query.OwnerJoin(set)

	where, args, next := set.WhereSQL(1)

	countSQL := joinSQL(`SELECT COUNT(*) FROM job_seeker_profiles p`, set.JoinSQL(), where)
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []CandidateRow{}, 0, nil
	}

	listSQL := joinSQL(
		`SELECT `+candidateColumns+` FROM job_seeker_profiles p`,
		set.JoinSQL(),
		where,
		sort.OrderSQL("p.id"),
		`LIMIT $`+itoa(next)+` OFFSET $`+itoa(next+1),
	)
	listArgs := append(append([]any{}, args...), w.Limit(), w.Offset())

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]CandidateRow, 0)
	for rows.Next() {
		var c CandidateRow
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.FullName, &c.Email,
			&c.CurrentCompany, &c.CurrentLocation, &c.PreferredLocation,
			&c.TotalExperience, &c.ExpectedCTC, &c.NoticePeriod,
			&c.NoticeStatus, &c.ImmediateJoiner, &c.AvailableFrom,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresCandidateSearchRepository) SkillNamesByProfileIDs(ctx context.Context, profileIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	out := make(map[uuid.UUID][]string, len(profileIDs))
	if len(profileIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT cs.candidate_id, sk.name
		 FROM candidate_skills cs
		 JOIN skills sk ON sk.id = cs.skill_id
		 WHERE cs.candidate_id = ANY($1)
		 ORDER BY sk.name ASC`,
		profileIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = append(out[id], name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
