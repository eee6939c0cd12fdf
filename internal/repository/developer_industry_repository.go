package repository

import (
	"context"
	"errors"

	"tunitech/internal/database"
	"tunitech/internal/domain/developer"

	"github.com/google/uuid"
)

var ErrDeveloperIndustryExists = errors.New("developer already declared this industry")

type DeveloperIndustryRepository interface {
	FindByDeveloperID(ctx context.Context, developerID uuid.UUID) ([]developer.DeveloperIndustry, error)
	Create(ctx context.Context, di developer.DeveloperIndustry) error
	Delete(ctx context.Context, developerID, industryID uuid.UUID) error
}

type PostgresDeveloperIndustryRepository struct {
	db database.DB
}

func NewPostgresDeveloperIndustryRepository(db database.DB) *PostgresDeveloperIndustryRepository {
	return &PostgresDeveloperIndustryRepository{db: db}
}

func (r *PostgresDeveloperIndustryRepository) FindByDeveloperID(ctx context.Context, developerID uuid.UUID) ([]developer.DeveloperIndustry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT di.id, di.developer_id, di.industry_id, i.name, di.years_experience
		 FROM developer_industries di
		 JOIN industries i ON i.id = di.industry_id
		 WHERE di.developer_id = $1
		 ORDER BY i.name ASC`,
		developerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]developer.DeveloperIndustry, 0)
	for rows.Next() {
		var di developer.DeveloperIndustry
		if err := rows.Scan(&di.ID, &di.DeveloperID, &di.IndustryID, &di.IndustryName, &di.YearsExperience); err != nil {
			return nil, err
		}
		out = append(out, di)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresDeveloperIndustryRepository) Create(ctx context.Context, di developer.DeveloperIndustry) error {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO developer_industries (id, developer_id, industry_id, years_experience)
		 VALUES ($1,$2,$3,$4)
		 ON CONFLICT (developer_id, industry_id) DO NOTHING`,
		di.ID, di.DeveloperID, di.IndustryID, di.YearsExperience,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeveloperIndustryExists
	}
	return nil
}

func (r *PostgresDeveloperIndustryRepository) Delete(ctx context.Context, developerID, industryID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM developer_industries WHERE developer_id = $1 AND industry_id = $2`,
		developerID, industryID,
	)
	return err
}
