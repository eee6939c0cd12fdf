package repository

import (
	"context"
	"errors"

	"tunitech/internal/database"
	"tunitech/internal/domain/developer"

	"github.com/google/uuid"
)

var ErrDeveloperSkillExists = errors.New("developer already declared this skill")

type DeveloperSkillRepository interface {
	FindByDeveloperID(ctx context.Context, developerID uuid.UUID) ([]developer.DeveloperSkill, error)
	Create(ctx context.Context, ds developer.DeveloperSkill) error
	Update(ctx context.Context, ds developer.DeveloperSkill) error
	Delete(ctx context.Context, developerID, skillID uuid.UUID) error
}

type PostgresDeveloperSkillRepository struct {
	db database.DB
}

func NewPostgresDeveloperSkillRepository(db database.DB) *PostgresDeveloperSkillRepository {
	return &PostgresDeveloperSkillRepository{db: db}
}

func (r *PostgresDeveloperSkillRepository) FindByDeveloperID(ctx context.Context, developerID uuid.UUID) ([]developer.DeveloperSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ds.id, ds.developer_id, ds.skill_id, s.name, ds.proficiency, ds.years_experience
		 FROM developer_skills ds
		 JOIN skills s ON s.id = ds.skill_id
		 WHERE ds.developer_id = $1
		 ORDER BY s.name ASC`,
		developerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]developer.DeveloperSkill, 0)
	for rows.Next() {
		var ds developer.DeveloperSkill
		if err := rows.Scan(&ds.ID, &ds.DeveloperID, &ds.SkillID, &ds.SkillName, &ds.Proficiency, &ds.YearsExperience); err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create relies on the (developer_id, skill_id) unique index: a conflicting
// insert affects zero rows and is reported as ErrDeveloperSkillExists.
func (r *PostgresDeveloperSkillRepository) Create(ctx context.Context, ds developer.DeveloperSkill) error {
	affected, err := r.db.Exec(ctx,
		`INSERT INTO developer_skills (id, developer_id, skill_id, proficiency, years_experience)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (developer_id, skill_id) DO NOTHING`,
		ds.ID, ds.DeveloperID, ds.SkillID, ds.Proficiency, ds.YearsExperience,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeveloperSkillExists
	}
	return nil
}

func (r *PostgresDeveloperSkillRepository) Update(ctx context.Context, ds developer.DeveloperSkill) error {
	_, err := r.db.Exec(ctx,
		`UPDATE developer_skills SET proficiency = $3, years_experience = $4
		 WHERE developer_id = $1 AND skill_id = $2`,
		ds.DeveloperID, ds.SkillID, ds.Proficiency, ds.YearsExperience,
	)
	return err
}

func (r *PostgresDeveloperSkillRepository) Delete(ctx context.Context, developerID, skillID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM developer_skills WHERE developer_id = $1 AND skill_id = $2`,
		developerID, skillID,
	)
	return err
}
