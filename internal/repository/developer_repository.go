package repository

import (
	"context"
	"errors"

	"tunitech/internal/database"
	"tunitech/internal/domain/developer"
	"tunitech/internal/domain/experience"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrDeveloperNotFound = errors.New("developer not found")

type DeveloperRepository interface {
	Create(ctx context.Context, d developer.Developer) error
	GetByID(ctx context.Context, id uuid.UUID) (developer.Developer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (developer.Developer, error)
	Update(ctx context.Context, d developer.Developer) error
	ListAvailable(ctx context.Context) ([]developer.Developer, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresDeveloperRepository struct {
	db database.DB
}

func NewPostgresDeveloperRepository(db database.DB) *PostgresDeveloperRepository {
	return &PostgresDeveloperRepository{db: db}
}

const developerColumns = `id, user_id, full_name, experience_level, years_experience, technical_skills, hourly_rate, is_approved, available_for_work, created_at, updated_at`

func (r *PostgresDeveloperRepository) Create(ctx context.Context, d developer.Developer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO developers (id, user_id, full_name, experience_level, years_experience, technical_skills, hourly_rate, is_approved, available_for_work)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		d.ID, d.UserID, d.FullName, string(d.ExperienceLevel), d.YearsExperience, d.TechnicalSkills, d.HourlyRate, d.IsApproved, d.AvailableForWork,
	)
	return err
}

func (r *PostgresDeveloperRepository) GetByID(ctx context.Context, id uuid.UUID) (developer.Developer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+developerColumns+` FROM developers WHERE id = $1`, id)
	return scanDeveloper(row)
}

func (r *PostgresDeveloperRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (developer.Developer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+developerColumns+` FROM developers WHERE user_id = $1`, userID)
	return scanDeveloper(row)
}

func (r *PostgresDeveloperRepository) Update(ctx context.Context, d developer.Developer) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE developers
		 SET full_name = $2, experience_level = $3, years_experience = $4, technical_skills = $5, hourly_rate = $6, available_for_work = $7, updated_at = NOW()
		 WHERE id = $1`,
		d.ID, d.FullName, string(d.ExperienceLevel), d.YearsExperience, d.TechnicalSkills, d.HourlyRate, d.AvailableForWork,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDeveloperNotFound
	}
	return nil
}

func (r *PostgresDeveloperRepository) ListAvailable(ctx context.Context) ([]developer.Developer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+developerColumns+`
		 FROM developers
		 WHERE is_approved = TRUE AND available_for_work = TRUE
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]developer.Developer, 0)
	for rows.Next() {
		d, err := scanDeveloper(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresDeveloperRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM developers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func scanDeveloper(row database.Row) (developer.Developer, error) {
	var d developer.Developer
	var level string
	err := row.Scan(&d.ID, &d.UserID, &d.FullName, &level, &d.YearsExperience, &d.TechnicalSkills, &d.HourlyRate, &d.IsApproved, &d.AvailableForWork, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return developer.Developer{}, ErrDeveloperNotFound
		}
		return developer.Developer{}, err
	}
	d.ExperienceLevel = experience.Normalize(level)
	return d, nil
}
