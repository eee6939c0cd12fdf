package repository

import (
	"context"
	"errors"

	"tunitech/internal/database"
	"tunitech/internal/domain/requirement"

	"github.com/google/uuid"
)

var ErrSkillRequirementExists = errors.New("skill already required by this requirement")

type RequirementSkillRepository interface {
	FindByRequirementID(ctx context.Context, requirementID uuid.UUID) ([]requirement.SkillRequirement, error)
	Create(ctx context.Context, sr requirement.SkillRequirement) error
	Delete(ctx context.Context, requirementID, skillID uuid.UUID) error
}

type PostgresRequirementSkillRepository struct {
	db database.DB
}

func NewPostgresRequirementSkillRepository(db database.DB) *PostgresRequirementSkillRepository {
	return &PostgresRequirementSkillRepository{db: db}
}

func (r *PostgresRequirementSkillRepository) FindByRequirementID(ctx context.Context, requirementID uuid.UUID) ([]requirement.SkillRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rs.id, rs.project_requirement_id, rs.skill_id, s.name, rs.importance, rs.minimum_years
		 FROM project_required_skills rs
		 JOIN skills s ON s.id = rs.skill_id
		 WHERE rs.project_requirement_id = $1
		 ORDER BY rs.importance DESC, s.name ASC`,
		requirementID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]requirement.SkillRequirement, 0)
	for rows.Next() {
		var sr requirement.SkillRequirement
		if err := rows.Scan(&sr.ID, &sr.ProjectRequirementID, &sr.SkillID, &sr.SkillName, &sr.Importance, &sr.MinimumYears); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRequirementSkillRepository) Create(ctx context.Context, sr requirement.SkillRequirement) error {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO project_required_skills (id, project_requirement_id, skill_id, importance, minimum_years)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (project_requirement_id, skill_id) DO NOTHING`,
		sr.ID, sr.ProjectRequirementID, sr.SkillID, sr.Importance, sr.MinimumYears,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSkillRequirementExists
	}
	return nil
}

func (r *PostgresRequirementSkillRepository) Delete(ctx context.Context, requirementID, skillID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM project_required_skills WHERE project_requirement_id = $1 AND skill_id = $2`,
		requirementID, skillID,
	)
	return err
}
