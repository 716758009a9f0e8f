package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ananya/intern-match/internal/types"
)

const opportunityColumns = `id, title, company, category, location, duration, type, stipend,
	required_skills, preferred_skills, description, difficulty_level,
	min_qualification, current_applications, max_applications, is_active,
	application_deadline, start_date, created_at, updated_at`

// OpportunityFilters narrows ListOpportunities results. Zero values are
// ignored.
type OpportunityFilters struct {
	Search   string
	Category string
	Location string
	Limit    int
}

// ActiveOpportunities returns all opportunities open for applications,
// newest first. Satisfies the catalog Provider interface.
func (db *DB) ActiveOpportunities(ctx context.Context) ([]types.Opportunity, error) {
	query := `SELECT ` + opportunityColumns + `
		FROM internships WHERE is_active = true
		ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active opportunities: %w", err)
	}
	defer rows.Close()

	return scanOpportunities(rows)
}

// ListOpportunities retrieves opportunities with optional filters
func (db *DB) ListOpportunities(ctx context.Context, filters OpportunityFilters) ([]types.Opportunity, error) {
	query, args := buildListQuery(filters)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}
	defer rows.Close()

	return scanOpportunities(rows)
}

// buildListQuery assembles the filtered list query and its arguments
func buildListQuery(filters OpportunityFilters) (string, []any) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + opportunityColumns + ` FROM internships WHERE is_active = true`
	args := []any{}
	argNum := 1

	if filters.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR company ILIKE $%d OR description ILIKE $%d)", argNum, argNum, argNum)
		args = append(args, "%"+filters.Search+"%")
		argNum++
	}
	if filters.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filters.Category)
		argNum++
	}
	if filters.Location != "" {
		query += fmt.Sprintf(" AND location ILIKE $%d", argNum)
		args = append(args, "%"+filters.Location+"%")
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)
	return query, args
}

// GetOpportunity retrieves one opportunity by ID, or nil if absent
func (db *DB) GetOpportunity(ctx context.Context, id uuid.UUID) (*types.Opportunity, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+opportunityColumns+` FROM internships WHERE id = $1`, id)

	opp, err := scanOpportunity(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get opportunity: %w", err)
	}
	return opp, nil
}

// UpsertOpportunity inserts or updates an opportunity keyed by title and
// company, returning its ID. Used by the catalog import tool.
func (db *DB) UpsertOpportunity(ctx context.Context, opp *types.Opportunity) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO internships (title, company, category, location, duration, type, stipend,
			required_skills, preferred_skills, description, difficulty_level,
			min_qualification, max_applications, is_active, application_deadline, start_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		 ON CONFLICT (title, company) DO UPDATE SET
			category = EXCLUDED.category,
			location = EXCLUDED.location,
			duration = EXCLUDED.duration,
			type = EXCLUDED.type,
			stipend = EXCLUDED.stipend,
			required_skills = EXCLUDED.required_skills,
			preferred_skills = EXCLUDED.preferred_skills,
			description = EXCLUDED.description,
			difficulty_level = EXCLUDED.difficulty_level,
			min_qualification = EXCLUDED.min_qualification,
			max_applications = EXCLUDED.max_applications,
			is_active = EXCLUDED.is_active,
			application_deadline = EXCLUDED.application_deadline,
			start_date = EXCLUDED.start_date,
			updated_at = NOW()
		 RETURNING id`,
		opp.Title, opp.Company, opp.Category, opp.Location, opp.Duration, opp.Type,
		opp.Stipend, opp.RequiredSkills, opp.PreferredSkills, opp.Description,
		opp.DifficultyLevel, opp.MinQualification, opp.MaxApplications, opp.IsActive,
		opp.ApplicationDeadline, opp.StartDate,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert opportunity: %w", err)
	}
	return id, nil
}

// DeactivateExpired closes applications for opportunities whose deadline has
// passed and returns how many rows changed.
func (db *DB) DeactivateExpired(ctx context.Context) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE internships SET is_active = false, updated_at = NOW()
		 WHERE is_active = true AND application_deadline IS NOT NULL AND application_deadline < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired opportunities: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanOpportunities(rows pgx.Rows) ([]types.Opportunity, error) {
	var opportunities []types.Opportunity
	for rows.Next() {
		opp, err := scanOpportunity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opportunity: %w", err)
		}
		opportunities = append(opportunities, *opp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading opportunity rows: %w", err)
	}
	return opportunities, nil
}

func scanOpportunity(row pgx.Row) (*types.Opportunity, error) {
	var opp types.Opportunity
	err := row.Scan(&opp.ID, &opp.Title, &opp.Company, &opp.Category, &opp.Location,
		&opp.Duration, &opp.Type, &opp.Stipend, &opp.RequiredSkills, &opp.PreferredSkills,
		&opp.Description, &opp.DifficultyLevel, &opp.MinQualification,
		&opp.CurrentApplications, &opp.MaxApplications, &opp.IsActive,
		&opp.ApplicationDeadline, &opp.StartDate, &opp.CreatedAt, &opp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &opp, nil
}
