package repository

import (
	"context"
	"errors"
	"time"

	"tunitech/internal/database"
	"tunitech/internal/domain/match"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrMatchExists   = errors.New("match already exists for this pair")
)

// MatchRepository owns all writes to project_matches. Every mutation is a
// single conditional UPDATE guarded on the current status, so concurrent
// customer and developer sessions cannot produce lost updates: the store's
// per-row atomicity decides which write lands, and a write that no longer
// applies affects zero rows. The boolean result reports whether the row was
// touched; callers disambiguate false via GetByID.
type MatchRepository interface {
	Insert(ctx context.Context, m match.ProjectMatch) error
	GetByID(ctx context.Context, id uuid.UUID) (match.ProjectMatch, error)
	GetByPair(ctx context.Context, requirementID, developerID uuid.UUID) (match.ProjectMatch, error)
	SetCustomerInterested(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	SetDeveloperApproved(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	SetRejected(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	SetHired(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	ListByRequirement(ctx context.Context, requirementID uuid.UUID) ([]match.ProjectMatch, error)
	ListByDeveloper(ctx context.Context, developerID uuid.UUID) ([]match.ProjectMatch, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

const matchColumns = `id, project_requirement_id, developer_id, match_score, status, customer_interested_at, developer_approved_at, meeting_scheduled_at, created_at, updated_at`

// Insert enforces at most one match per (requirement, developer) pair via the
// unique index: a conflicting insert affects zero rows and surfaces as
// ErrMatchExists instead of a second row.
func (r *PostgresMatchRepository) Insert(ctx context.Context, m match.ProjectMatch) error {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO project_matches (id, project_requirement_id, developer_id, match_score, status, customer_interested_at, developer_approved_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (project_requirement_id, developer_id) DO NOTHING`,
		m.ID, m.ProjectRequirementID, m.DeveloperID, m.MatchScore, string(m.Status), m.CustomerInterestedAt, m.DeveloperApprovedAt,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrMatchExists
	}
	return nil
}

func (r *PostgresMatchRepository) GetByID(ctx context.Context, id uuid.UUID) (match.ProjectMatch, error) {
	row := r.db.QueryRow(ctx, `SELECT `+matchColumns+` FROM project_matches WHERE id = $1`, id)
	return scanMatch(row)
}

func (r *PostgresMatchRepository) GetByPair(ctx context.Context, requirementID, developerID uuid.UUID) (match.ProjectMatch, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM project_matches WHERE project_requirement_id = $1 AND developer_id = $2`,
		requirementID, developerID,
	)
	return scanMatch(row)
}

// SetCustomerInterested stamps customer_interested_at once (COALESCE keeps
// the first timestamp on re-application) and advances pending to
// customer_interested. Closed matches are filtered by the status guard.
func (r *PostgresMatchRepository) SetCustomerInterested(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE project_matches
		 SET customer_interested_at = COALESCE(customer_interested_at, $2),
		     status = CASE WHEN status = 'pending' THEN 'customer_interested' ELSE status END,
		     updated_at = $2
		 WHERE id = $1 AND status NOT IN ('rejected','hired')`,
		id, at,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresMatchRepository) SetDeveloperApproved(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE project_matches
		 SET developer_approved_at = COALESCE(developer_approved_at, $2),
		     updated_at = $2
		 WHERE id = $1 AND status NOT IN ('rejected','hired')`,
		id, at,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresMatchRepository) SetRejected(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE project_matches
		 SET status = 'rejected', updated_at = $2
		 WHERE id = $1 AND status NOT IN ('rejected','hired')`,
		id, at,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SetHired additionally requires both approval timestamps, so a race with a
// rejection or a missing approval cannot promote the match.
func (r *PostgresMatchRepository) SetHired(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE project_matches
		 SET status = 'hired', updated_at = $2
		 WHERE id = $1 AND status NOT IN ('rejected','hired')
		   AND customer_interested_at IS NOT NULL
		   AND developer_approved_at IS NOT NULL`,
		id, at,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresMatchRepository) ListByRequirement(ctx context.Context, requirementID uuid.UUID) ([]match.ProjectMatch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+matchColumns+` FROM project_matches
		 WHERE project_requirement_id = $1
		 ORDER BY match_score DESC, created_at ASC`,
		requirementID,
	)
	if err != nil {
		return nil, err
	}
	return collectMatches(rows)
}

func (r *PostgresMatchRepository) ListByDeveloper(ctx context.Context, developerID uuid.UUID) ([]match.ProjectMatch, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+matchColumns+` FROM project_matches
		 WHERE developer_id = $1
		 ORDER BY created_at DESC`,
		developerID,
	)
	if err != nil {
		return nil, err
	}
	return collectMatches(rows)
}

func collectMatches(rows database.Rows) ([]match.ProjectMatch, error) {
	defer rows.Close()

	out := make([]match.ProjectMatch, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMatch(row database.Row) (match.ProjectMatch, error) {
	var m match.ProjectMatch
	var status string
	err := row.Scan(&m.ID, &m.ProjectRequirementID, &m.DeveloperID, &m.MatchScore, &status, &m.CustomerInterestedAt, &m.DeveloperApprovedAt, &m.MeetingScheduledAt, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.ProjectMatch{}, ErrMatchNotFound
		}
		return match.ProjectMatch{}, err
	}
	m.Status = match.Status(status)
	return m, nil
}
