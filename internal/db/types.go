package db

import (
	"time"

	"github.com/google/uuid"
)

// Resume represents a stored resume document
type Resume struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	RawText     string    `json:"raw_text"`
	CleanedText string    `json:"cleaned_text,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Analysis represents a categorization result for a resume
type Analysis struct {
	ID           uuid.UUID `json:"id"`
	ResumeID     uuid.UUID `json:"resume_id"`
	CategoryID   *int      `json:"category_id,omitempty"`
	CategoryName string    `json:"category_name"`
	Confidence   float64   `json:"confidence"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
}

// Match represents a stored resume/job-description comparison
type Match struct {
	ID             uuid.UUID `json:"id"`
	ResumeID       uuid.UUID `json:"resume_id"`
	JDID           uuid.UUID `json:"jd_id"`
	Score          float64   `json:"score"`
	MatchingSkills []string  `json:"matching_skills"`
	MissingSkills  []string  `json:"missing_skills"`
	MatchedAt      time.Time `json:"matched_at"`
}

// ResumeSkill pairs a skill name with the method that found it
type ResumeSkill struct {
	Name   string `json:"name"`
	Method string `json:"method"`
}

// Extraction method constants for resume_skills rows
const (
	MethodRuleBased = "rule_based"
	MethodNER       = "ner"
	MethodCombined  = "combined"
)
