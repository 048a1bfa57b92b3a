package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrms/internal/platform/config"
)

// Seed inserts a handful of demo employees for local development. It only
// runs when SEED_SAMPLE_DATA is enabled and the table is empty.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if !cfg.SeedSampleData {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := [][]any{
		{"Alice", "Tan", "S1111111A", "alice.tan@example.com", "HR Executive", "Human Resources", "2021-03-01", int64(4200), "Full-time"},
		{"Ben", "Ong", "S2222222B", "ben.ong@example.com", "Software Engineer", "Engineering", "2022-07-15", int64(6500), "Full-time"},
		{"Chloe", "Lim", "S3333333C", "chloe.lim@example.com", "Accountant", "Finance", "2023-01-09", int64(5100), "Contract"},
	}

	for _, row := range rows {
		if _, err := pool.Exec(ctx, `
      INSERT INTO employees (first_name, last_name, nric, email, position, department, date_of_joining, salary, employment_type)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
    `, row...); err != nil {
			return err
		}
	}
	return nil
}
