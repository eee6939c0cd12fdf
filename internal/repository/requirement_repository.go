package repository

import (
	"context"
	"errors"

	"tunitech/internal/database"
	"tunitech/internal/domain/experience"
	"tunitech/internal/domain/requirement"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRequirementNotFound = errors.New("project requirement not found")

type RequirementRepository interface {
	Create(ctx context.Context, pr requirement.ProjectRequirement) error
	GetByID(ctx context.Context, id uuid.UUID) (requirement.ProjectRequirement, error)
	Update(ctx context.Context, pr requirement.ProjectRequirement) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]requirement.ProjectRequirement, error)
	ListActive(ctx context.Context) ([]requirement.ProjectRequirement, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresRequirementRepository struct {
	db database.DB
}

func NewPostgresRequirementRepository(db database.DB) *PostgresRequirementRepository {
	return &PostgresRequirementRepository{db: db}
}

const requirementColumns = `id, customer_id, title, COALESCE(description, ''), experience_level, COALESCE(technical_skills, ''), COALESCE(employment_type, ''), is_active, created_at, updated_at`

func (r *PostgresRequirementRepository) Create(ctx context.Context, pr requirement.ProjectRequirement) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO project_requirements (id, customer_id, title, description, experience_level, technical_skills, employment_type, is_active)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		pr.ID, pr.CustomerID, pr.Title, pr.Description, string(pr.ExperienceLevel), pr.TechnicalSkills, pr.EmploymentType, pr.IsActive,
	)
	return err
}

func (r *PostgresRequirementRepository) GetByID(ctx context.Context, id uuid.UUID) (requirement.ProjectRequirement, error) {
	row := r.db.QueryRow(ctx, `SELECT `+requirementColumns+` FROM project_requirements WHERE id = $1`, id)
	return scanRequirement(row)
}

func (r *PostgresRequirementRepository) Update(ctx context.Context, pr requirement.ProjectRequirement) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE project_requirements
		 SET title = $2, description = $3, experience_level = $4, technical_skills = $5, employment_type = $6, updated_at = NOW()
		 WHERE id = $1`,
		pr.ID, pr.Title, pr.Description, string(pr.ExperienceLevel), pr.TechnicalSkills, pr.EmploymentType,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRequirementNotFound
	}
	return nil
}

// Deactivate soft-deletes: requirements are never removed, only flagged off.
func (r *PostgresRequirementRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE project_requirements SET is_active = FALSE, updated_at = NOW() WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRequirementNotFound
	}
	return nil
}

func (r *PostgresRequirementRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]requirement.ProjectRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+requirementColumns+` FROM project_requirements WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, err
	}
	return collectRequirements(rows)
}

func (r *PostgresRequirementRepository) ListActive(ctx context.Context) ([]requirement.ProjectRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+requirementColumns+` FROM project_requirements WHERE is_active = TRUE ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	return collectRequirements(rows)
}

func (r *PostgresRequirementRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM project_requirements WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func collectRequirements(rows database.Rows) ([]requirement.ProjectRequirement, error) {
	defer rows.Close()

	out := make([]requirement.ProjectRequirement, 0)
	for rows.Next() {
		pr, err := scanRequirement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRequirement(row database.Row) (requirement.ProjectRequirement, error) {
	var pr requirement.ProjectRequirement
	var level string
	err := row.Scan(&pr.ID, &pr.CustomerID, &pr.Title, &pr.Description, &level, &pr.TechnicalSkills, &pr.EmploymentType, &pr.IsActive, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return requirement.ProjectRequirement{}, ErrRequirementNotFound
		}
		return requirement.ProjectRequirement{}, err
	}
	pr.ExperienceLevel = experience.Normalize(level)
	return pr, nil
}
