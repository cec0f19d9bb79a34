package repository

import (
	"context"
	"errors"
	"strings"

	"job-portal/internal/database"
	"job-portal/internal/pkg/paging"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (JobRow, error)
	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
	IncrementViewCount(ctx context.Context, jobID uuid.UUID) error
	LatestJobs(ctx context.Context, w paging.Window) ([]JobRow, int64, error)
	JobsByIndustry(ctx context.Context, industry string, w paging.Window) ([]JobRow, int64, error)
	JobsByCompany(ctx context.Context, companyID uuid.UUID, w paging.Window) ([]JobRow, int64, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobFrom = ` FROM jobs j LEFT JOIN companies c ON c.id = j.company_id `

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (JobRow, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+jobFrom+`WHERE j.id = $1 AND j.deleted = FALSE`,
		jobID,
	)
	j, err := scanJobRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return JobRow{}, ErrJobNotFound
		}
		return JobRow{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1 AND deleted = FALSE)`, jobID)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// IncrementViewCount is a single atomic counter bump at the store; concurrent
// detail views never read-modify-write in this layer.
func (r *PostgresJobRepository) IncrementViewCount(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE jobs SET view_count = view_count + 1 WHERE id = $1 AND deleted = FALSE`,
		jobID,
	)
	return err
}

func (r *PostgresJobRepository) LatestJobs(ctx context.Context, w paging.Window) ([]JobRow, int64, error) {
	return r.pagedJobs(ctx, `j.deleted = FALSE AND j.status = 'OPEN'`, nil, w)
}

func (r *PostgresJobRepository) JobsByIndustry(ctx context.Context, industry string, w paging.Window) ([]JobRow, int64, error) {
	return r.pagedJobs(ctx,
		`j.deleted = FALSE AND j.status = 'OPEN' AND LOWER(j.industry) = $1`,
		[]any{strings.ToLower(strings.TrimSpace(industry))},
		w,
	)
}

func (r *PostgresJobRepository) JobsByCompany(ctx context.Context, companyID uuid.UUID, w paging.Window) ([]JobRow, int64, error) {
	return r.pagedJobs(ctx, `j.deleted = FALSE AND j.company_id = $1`, []any{companyID}, w)
}

func (r *PostgresJobRepository) pagedJobs(ctx context.Context, where string, args []any, w paging.Window) ([]JobRow, int64, error) {
	var total int64
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs j WHERE `+where, args...)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []JobRow{}, 0, nil
	}

	n := len(args)
	listArgs := append(append([]any{}, args...), w.Limit(), w.Offset())
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+jobFrom+
			`WHERE `+where+
			` ORDER BY j.created_at DESC, j.id DESC`+
			` LIMIT $`+itoa(n+1)+` OFFSET $`+itoa(n+2),
		listArgs...,
	)
	if err != nil {
		return nil, 0, err
	}
	out, err := collectJobRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
