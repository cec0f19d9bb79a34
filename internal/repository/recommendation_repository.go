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

// RelevanceKey is what the suggestion heuristic extracts from the caller's
// most recent application.
type RelevanceKey struct {
	Industry string
	Location string
}

type RecommendationRepository interface {
	LastAppliedJob(ctx context.Context, userID uuid.UUID) (RelevanceKey, bool, error)
	SuggestedJobs(ctx context.Context, userID uuid.UUID, key RelevanceKey, w paging.Window) ([]JobRow, int64, error)
	SimilarJobs(ctx context.Context, industry, jobType string, excludeID uuid.UUID, limit int) ([]JobRow, error)
	TrendingJobs(ctx context.Context, limit int) ([]JobRow, error)
	TitleSuggestions(ctx context.Context, prefix string, limit int) ([]string, error)
	LocationSuggestions(ctx context.Context, prefix string, limit int) ([]string, error)
	CompanySuggestions(ctx context.Context, prefix string, limit int) ([]string, error)
	IndustrySuggestions(ctx context.Context, prefix string, limit int) ([]string, error)
	TopIndustries(ctx context.Context, limit int) ([]string, error)
}

type PostgresRecommendationRepository struct {
	db database.DB
}

func NewPostgresRecommendationRepository(db database.DB) *PostgresRecommendationRepository {
	return &PostgresRecommendationRepository{db: db}
}

func (r *PostgresRecommendationRepository) LastAppliedJob(ctx context.Context, userID uuid.UUID) (RelevanceKey, bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(j.industry, ''), COALESCE(j.location, '')
		 FROM job_applications a
		 JOIN job_seeker_profiles sp ON sp.id = a.candidate_id
		 JOIN jobs j ON j.id = a.job_id
		 WHERE sp.user_id = $1
		 ORDER BY a.applied_at DESC
		 LIMIT 1`,
		userID,
	)
	var key RelevanceKey
	if err := row.Scan(&key.Industry, &key.Location); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RelevanceKey{}, false, nil
		}
		return RelevanceKey{}, false, err
	}
	return key, true, nil
}

// Already-applied jobs are excluded and industry matches always rank ahead of
// location-only matches; within a bucket, newest first.
const suggestedWhere = `j.deleted = FALSE
	 AND j.status = 'OPEN'
	 AND j.id NOT IN (
		SELECT a.job_id FROM job_applications a
		JOIN job_seeker_profiles sp ON sp.id = a.candidate_id
		WHERE sp.user_id = $1
	 )
	 AND (j.industry = $2 OR j.location = $3)`

func (r *PostgresRecommendationRepository) SuggestedJobs(ctx context.Context, userID uuid.UUID, key RelevanceKey, w paging.Window) ([]JobRow, int64, error) {
	var total int64
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs j WHERE `+suggestedWhere,
		userID, key.Industry, key.Location,
	)
	if err := row.Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []JobRow{}, 0, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+jobFrom+
			`WHERE `+suggestedWhere+`
		 ORDER BY CASE WHEN j.industry = $2 THEN 0 ELSE 1 END, j.created_at DESC, j.id DESC
		 LIMIT $4 OFFSET $5`,
		userID, key.Industry, key.Location, w.Limit(), w.Offset(),
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

func (r *PostgresRecommendationRepository) SimilarJobs(ctx context.Context, industry, jobType string, excludeID uuid.UUID, limit int) ([]JobRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+jobFrom+
			`WHERE j.deleted = FALSE
		   AND j.status = 'OPEN'
		   AND j.industry = $1
		   AND j.job_type = $2
		   AND j.id <> $3
		 ORDER BY j.created_at DESC, j.id DESC
		 LIMIT $4`,
		industry, jobType, excludeID, limit,
	)
	if err != nil {
		return nil, err
	}
	return collectJobRows(rows)
}

func (r *PostgresRecommendationRepository) TrendingJobs(ctx context.Context, limit int) ([]JobRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+jobFrom+
			`WHERE j.deleted = FALSE AND j.status = 'OPEN'
		 ORDER BY j.view_count DESC, j.id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return collectJobRows(rows)
}

func (r *PostgresRecommendationRepository) TitleSuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	return r.suggestions(ctx,
		`SELECT DISTINCT j.title FROM jobs j
		 WHERE j.deleted = FALSE AND LOWER(j.title) LIKE $1
		 ORDER BY j.title ASC LIMIT $2`,
		prefix, limit,
	)
}

func (r *PostgresRecommendationRepository) LocationSuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	return r.suggestions(ctx,
		`SELECT DISTINCT j.location FROM jobs j
		 WHERE j.deleted = FALSE AND j.location <> '' AND LOWER(j.location) LIKE $1
		 ORDER BY j.location ASC LIMIT $2`,
		prefix, limit,
	)
}

func (r *PostgresRecommendationRepository) CompanySuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	return r.suggestions(ctx,
		`SELECT DISTINCT c.company_name FROM jobs j
		 JOIN companies c ON c.id = j.company_id
		 WHERE j.deleted = FALSE AND LOWER(c.company_name) LIKE $1
		 ORDER BY c.company_name ASC LIMIT $2`,
		prefix, limit,
	)
}

func (r *PostgresRecommendationRepository) IndustrySuggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	return r.suggestions(ctx,
		`SELECT DISTINCT j.industry FROM jobs j
		 WHERE j.deleted = FALSE AND j.industry <> '' AND LOWER(j.industry) LIKE $1
		 ORDER BY j.industry ASC LIMIT $2`,
		prefix, limit,
	)
}

func (r *PostgresRecommendationRepository) suggestions(ctx context.Context, sqlText, prefix string, limit int) ([]string, error) {
	pattern := strings.ToLower(strings.TrimSpace(prefix)) + "%"

	rows, err := r.db.Query(ctx, sqlText, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, limit)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRecommendationRepository) TopIndustries(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.industry FROM jobs j
		 WHERE j.deleted = FALSE AND j.status = 'OPEN' AND j.industry <> ''
		 GROUP BY j.industry
		 ORDER BY COUNT(*) DESC, j.industry ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0, limit)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
