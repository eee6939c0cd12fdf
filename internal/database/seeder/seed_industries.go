package seeder

import (
	"context"
	"fmt"

	"tunitech/internal/database"
)

type IndustriesSeeder struct{}

func (IndustriesSeeder) Name() string { return "industries" }

func (IndustriesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "industries", "id", "name", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	names := []string{
		"Fintech",
		"Healthcare",
		"E-commerce",
		"Telecom",
		"Logistics",
		"Education",
		"Tourism",
		"Government",
	}

	for _, name := range names {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO industries (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
			name,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
