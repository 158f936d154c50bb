package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveAnalysis stores a categorization result for a resume
func (db *DB) SaveAnalysis(ctx context.Context, resumeID uuid.UUID, categoryID *int, categoryName string, confidence float64) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resume_analysis (resume_id, category_id, category_name, confidence)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		resumeID, categoryID, categoryName, confidence,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// LatestAnalysis retrieves the most recent analysis for a resume.
// Returns nil when the resume has never been analyzed.
func (db *DB) LatestAnalysis(ctx context.Context, resumeID uuid.UUID) (*Analysis, error) {
	var a Analysis
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_id, category_id, category_name, confidence, analyzed_at
		 FROM resume_analysis WHERE resume_id = $1
		 ORDER BY analyzed_at DESC LIMIT 1`,
		resumeID,
	).Scan(&a.ID, &a.ResumeID, &a.CategoryID, &a.CategoryName, &a.Confidence, &a.AnalyzedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return &a, nil
}

// findOrCreateSkill returns the ID of the named skill, inserting it if needed.
// Skill names are stored lowercase so matching is case-insensitive.
func (db *DB) findOrCreateSkill(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO skills (name) VALUES ($1)
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id`,
		name,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert skill %q: %w", name, err)
	}
	return id, nil
}

// SaveResumeSkills links extracted skills to a resume, deduplicating by skill.
// A skill found by both methods keeps the first recorded method.
func (db *DB) SaveResumeSkills(ctx context.Context, resumeID uuid.UUID, skills []ResumeSkill) error {
	for _, skill := range skills {
		skillID, err := db.findOrCreateSkill(ctx, skill.Name)
		if err != nil {
			return err
		}
		_, err = db.pool.Exec(ctx,
			`INSERT INTO resume_skills (resume_id, skill_id, extraction_method)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (resume_id, skill_id) DO NOTHING`,
			resumeID, skillID, skill.Method,
		)
		if err != nil {
			return fmt.Errorf("failed to link skill %q: %w", skill.Name, err)
		}
	}
	return nil
}

// ListResumeSkills retrieves the skills linked to a resume, sorted by name
func (db *DB) ListResumeSkills(ctx context.Context, resumeID uuid.UUID) ([]ResumeSkill, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT s.name, rs.extraction_method
		 FROM resume_skills rs
		 JOIN skills s ON s.id = rs.skill_id
		 WHERE rs.resume_id = $1
		 ORDER BY s.name`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume skills: %w", err)
	}
	defer rows.Close()

	var skills []ResumeSkill
	for rows.Next() {
		var s ResumeSkill
		if err := rows.Scan(&s.Name, &s.Method); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// SaveJobDescription stores a job description and returns its ID
func (db *DB) SaveJobDescription(ctx context.Context, rawText string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_descriptions (raw_text) VALUES ($1) RETURNING id`,
		rawText,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job description: %w", err)
	}
	return id, nil
}

// SaveMatch stores a resume/job-description match report
func (db *DB) SaveMatch(ctx context.Context, resumeID, jdID uuid.UUID, score float64, matching, missing []string) (uuid.UUID, error) {
	matchingJSON, err := json.Marshal(matching)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal matching skills: %w", err)
	}
	missingJSON, err := json.Marshal(missing)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal missing skills: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resume_jd_matches (resume_id, jd_id, score, matching_skills, missing_skills)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		resumeID, jdID, score, matchingJSON, missingJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match: %w", err)
	}
	return id, nil
}

// ListMatches retrieves stored matches for a resume, newest first
func (db *DB) ListMatches(ctx context.Context, resumeID uuid.UUID) ([]Match, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, jd_id, score, matching_skills, missing_skills, matched_at
		 FROM resume_jd_matches WHERE resume_id = $1
		 ORDER BY matched_at DESC`,
		resumeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var matchingJSON, missingJSON []byte
		if err := rows.Scan(&m.ID, &m.ResumeID, &m.JDID, &m.Score, &matchingJSON, &missingJSON, &m.MatchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		if err := json.Unmarshal(matchingJSON, &m.MatchingSkills); err != nil {
			return nil, fmt.Errorf("failed to decode matching skills: %w", err)
		}
		if err := json.Unmarshal(missingJSON, &m.MissingSkills); err != nil {
			return nil, fmt.Errorf("failed to decode missing skills: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, nil
}
