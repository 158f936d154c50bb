// Package types defines the data structures shared across the analysis
// pipeline: classification results, match reports and the aggregate returned
// to callers. All values are plain data; once produced they are never
// mutated.
package types

// Sentinel category names used when a real prediction is unavailable.
const (
	CategoryUnknown         = "Unknown"
	CategoryPredictionError = "Prediction Error"
)

// ClassificationResult is the outcome of one categorization call.
// CategoryID is nil when no prediction was made (degraded mode, empty input,
// or inference failure). Confidence is a percentage in [0,100] and is 0
// whenever the underlying classifier has no probability output.
type ClassificationResult struct {
	Category   string  `json:"category"`
	CategoryID *int    `json:"category_id"`
	Confidence float64 `json:"confidence"`
}

// Failed reports whether this result is one of the sentinel outcomes rather
// than a real category prediction.
func (r ClassificationResult) Failed() bool {
	return r.CategoryID == nil
}

// MatchReport is the reconciliation of a resume skill set against a job
// description skill set. Matching and Missing are lowercase, sorted, and
// disjoint; their union is exactly the JD skill set.
type MatchReport struct {
	Score         float64  `json:"score"`
	Matching      []string `json:"matching"`
	Missing       []string `json:"missing"`
	MatchedCount  int      `json:"matched_count"`
	TotalJDSkills int      `json:"total_jd_skills"`
}

// AnalysisResult is the single aggregate the pipeline hands back to callers:
// everything needed to render, score, and persist one resume/JD pair.
type AnalysisResult struct {
	Classification ClassificationResult `json:"classification"`
	ResumeSkills   []string             `json:"resume_skills"`
	JDSkills       []string             `json:"jd_skills"`
	Match          MatchReport          `json:"match"`
	ResumeText     string               `json:"resume_text"`
	JDText         string               `json:"jd_text"`
	Summary        string               `json:"summary,omitempty"`
}
