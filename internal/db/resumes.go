package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveResume stores a resume document and returns its ID
func (db *DB) SaveResume(ctx context.Context, filename, rawText, cleanedText string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (filename, raw_text, cleaned_text)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		filename, rawText, cleanedText,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns nil when no row exists.
func (db *DB) GetResume(ctx context.Context, resumeID uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, raw_text, COALESCE(cleaned_text, ''), uploaded_at
		 FROM resumes WHERE id = $1`,
		resumeID,
	).Scan(&r.ID, &r.Filename, &r.RawText, &r.CleanedText, &r.UploadedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// ListResumes retrieves recent resumes, newest first
func (db *DB) ListResumes(ctx context.Context, limit int) ([]Resume, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, raw_text, COALESCE(cleaned_text, ''), uploaded_at
		 FROM resumes ORDER BY uploaded_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.Filename, &r.RawText, &r.CleanedText, &r.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, nil
}

// DeleteResume deletes a resume and its dependent rows via cascade
func (db *DB) DeleteResume(ctx context.Context, resumeID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, resumeID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", resumeID)
	}
	return nil
}
