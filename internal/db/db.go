// Package db provides PostgreSQL storage for resumes and analysis results.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS resumes (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		filename TEXT NOT NULL,
		raw_text TEXT NOT NULL,
		cleaned_text TEXT,
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS resume_analysis (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
		category_id INTEGER REFERENCES categories(id),
		category_name TEXT NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		analyzed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS skills (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS resume_skills (
		resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
		skill_id UUID NOT NULL REFERENCES skills(id) ON DELETE CASCADE,
		extraction_method TEXT NOT NULL,
		PRIMARY KEY (resume_id, skill_id)
	)`,
	`CREATE TABLE IF NOT EXISTS job_descriptions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		raw_text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS resume_jd_matches (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
		jd_id UUID NOT NULL REFERENCES job_descriptions(id) ON DELETE CASCADE,
		score DOUBLE PRECISION NOT NULL,
		matching_skills JSONB NOT NULL,
		missing_skills JSONB NOT NULL,
		matched_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates the tables if they do not exist and seeds the
// category taxonomy.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return db.seedCategories(ctx)
}

// seedCategories inserts the fixed category taxonomy. Existing rows keep
// their names in sync with the current mapping.
func (db *DB) seedCategories(ctx context.Context) error {
	for _, cat := range taxonomy.All() {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO categories (id, name) VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET name = $2`,
			cat.ID, cat.Name,
		)
		if err != nil {
			return fmt.Errorf("failed to seed category %d: %w", cat.ID, err)
		}
	}
	return nil
}
