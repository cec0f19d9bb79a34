package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"job-portal/internal/database"
	"job-portal/internal/pkg/paging"
	"job-portal/internal/query"

	"github.com/google/uuid"
)

// JobRow is one job result with its company summary eagerly resolved.
type JobRow struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Location      string
	Industry      string
	Salary        *float64
	JobType       string
	MinExperience int
	MaxExperience *int
	Status        string
	ViewCount     int64
	CreatedAt     time.Time
	CompanyID     uuid.UUID
	CompanyName   string
	CompanyLogo   string
}

const jobColumns = `j.id, j.title, COALESCE(j.description, ''), COALESCE(j.location, ''), COALESCE(j.industry, ''), j.salary, j.job_type, j.min_experience, j.max_experience, j.status, j.view_count, j.created_at, c.id, COALESCE(c.company_name, ''), COALESCE(c.logo_url, '')`

type scanner interface {
	Scan(dest ...any) error
}

func scanJobRow(s scanner) (JobRow, error) {
	var j JobRow
	err := s.Scan(
		&j.ID, &j.Title, &j.Description, &j.Location, &j.Industry,
		&j.Salary, &j.JobType, &j.MinExperience, &j.MaxExperience,
		&j.Status, &j.ViewCount, &j.CreatedAt,
		&j.CompanyID, &j.CompanyName, &j.CompanyLogo,
	)
	return j, err
}

func collectJobRows(rows database.Rows) ([]JobRow, error) {
	defer rows.Close()

	out := make([]JobRow, 0)
	for rows.Next() {
		j, err := scanJobRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// JobSearchRepository executes an assembled job predicate set with a sort and
// a page window, returning the page plus the total match count.
type JobSearchRepository interface {
	FindJobs(ctx context.Context, set *query.Set, sort query.Sort, w paging.Window) ([]JobRow, int64, error)
}

type PostgresJobSearchRepository struct {
	db database.DB
}

func NewPostgresJobSearchRepository(db database.DB) *PostgresJobSearchRepository {
	return &PostgresJobSearchRepository{db: db}
}

func (r *PostgresJobSearchRepository) FindJobs(ctx context.Context, set *query.Set, sort query.Sort, w paging.Window) ([]JobRow, int64, error) {
	// Selected columns include the company summary, so the company join is
	// required even when no condition referenced it. Join registration is
	// idempotent per entity.
	query.CompanyJoin(set)

	where, args, next := set.WhereSQL(1)

	countExpr := "COUNT(*)"
	if set.IsDistinct() {
		countExpr = "COUNT(DISTINCT j.id)"
	}
	countSQL := joinSQL("SELECT "+countExpr+" FROM jobs j", set.JoinSQL(), where)

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []JobRow{}, 0, nil
	}

	sel := "SELECT "
	if set.IsDistinct() {
		sel += "DISTINCT "
	}
	listSQL := joinSQL(
		sel+jobColumns+" FROM jobs j",
		set.JoinSQL(),
		where,
		sort.OrderSQL("j.id"),
		"LIMIT $"+strconv.Itoa(next)+" OFFSET $"+strconv.Itoa(next+1),
	)
	listArgs := append(append([]any{}, args...), w.Limit(), w.Offset())

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	out, err := collectJobRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func joinSQL(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, " ")
}
