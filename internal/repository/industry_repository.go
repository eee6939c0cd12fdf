package repository

import (
	"context"

	"tunitech/internal/database"

	"github.com/google/uuid"
)

type Industry struct {
	ID   uuid.UUID
	Name string
}

type IndustryRepository interface {
	GetAllIndustries(ctx context.Context) ([]Industry, error)
	CreateIndustry(ctx context.Context, name string) (Industry, error)
	IndustryExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresIndustryRepository struct {
	db database.DB
}

func NewPostgresIndustryRepository(db database.DB) *PostgresIndustryRepository {
	return &PostgresIndustryRepository{db: db}
}

func (r *PostgresIndustryRepository) GetAllIndustries(ctx context.Context) ([]Industry, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM industries ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Industry, 0)
	for rows.Next() {
		var it Industry
		if err := rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresIndustryRepository) CreateIndustry(ctx context.Context, name string) (Industry, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, `INSERT INTO industries (id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		return Industry{}, err
	}
	return Industry{ID: id, Name: name}, nil
}

func (r *PostgresIndustryRepository) IndustryExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM industries WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
