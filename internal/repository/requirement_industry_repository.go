package repository

import (
	"context"
	"errors"

	"tunitech/internal/database"
	"tunitech/internal/domain/requirement"

	"github.com/google/uuid"
)

var ErrIndustryRequirementExists = errors.New("industry already required by this requirement")

type RequirementIndustryRepository interface {
	FindByRequirementID(ctx context.Context, requirementID uuid.UUID) ([]requirement.IndustryRequirement, error)
	Create(ctx context.Context, ir requirement.IndustryRequirement) error
	Delete(ctx context.Context, requirementID, industryID uuid.UUID) error
}

type PostgresRequirementIndustryRepository struct {
	db database.DB
}

func NewPostgresRequirementIndustryRepository(db database.DB) *PostgresRequirementIndustryRepository {
	return &PostgresRequirementIndustryRepository{db: db}
}

func (r *PostgresRequirementIndustryRepository) FindByRequirementID(ctx context.Context, requirementID uuid.UUID) ([]requirement.IndustryRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ir.id, ir.project_requirement_id, ir.industry_id, i.name, ir.required
		 FROM project_industry_requirements ir
		 JOIN industries i ON i.id = ir.industry_id
		 WHERE ir.project_requirement_id = $1
		 ORDER BY ir.required DESC, i.name ASC`,
		requirementID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]requirement.IndustryRequirement, 0)
	for rows.Next() {
		var ir requirement.IndustryRequirement
		if err := rows.Scan(&ir.ID, &ir.ProjectRequirementID, &ir.IndustryID, &ir.IndustryName, &ir.Required); err != nil {
			return nil, err
		}
		out = append(out, ir)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresRequirementIndustryRepository) Create(ctx context.Context, ir requirement.IndustryRequirement) error {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO project_industry_requirements (id, project_requirement_id, industry_id, required)
		 VALUES ($1,$2,$3,$4)
		 ON CONFLICT (project_requirement_id, industry_id) DO NOTHING`,
		ir.ID, ir.ProjectRequirementID, ir.IndustryID, ir.Required,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrIndustryRequirementExists
	}
	return nil
}

func (r *PostgresRequirementIndustryRepository) Delete(ctx context.Context, requirementID, industryID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM project_industry_requirements WHERE project_requirement_id = $1 AND industry_id = $2`,
		requirementID, industryID,
	)
	return err
}
