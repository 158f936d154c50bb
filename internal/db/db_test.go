package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractionMethodConstants(t *testing.T) {
	methods := []string{
		MethodRuleBased,
		MethodNER,
		MethodCombined,
	}

	for _, method := range methods {
		assert.NotEmpty(t, method, "method constant should not be empty")
	}
}

func TestResumeType(t *testing.T) {
	r := Resume{
		Filename: "resume.pdf",
		RawText:  "Python developer",
	}

	assert.Equal(t, "resume.pdf", r.Filename)
	assert.Equal(t, "Python developer", r.RawText)
	assert.Empty(t, r.CleanedText)
}

func TestAnalysisType(t *testing.T) {
	id := 6
	a := Analysis{
		CategoryID:   &id,
		CategoryName: "Data Science",
		Confidence:   87.5,
	}

	assert.Equal(t, 6, *a.CategoryID)
	assert.Equal(t, "Data Science", a.CategoryName)
	assert.InDelta(t, 87.5, a.Confidence, 1e-9)
}

func TestSchemaStatementsCoverAllTables(t *testing.T) {
	tables := []string{
		"resumes",
		"categories",
		"resume_analysis",
		"skills",
		"resume_skills",
		"job_descriptions",
		"resume_jd_matches",
	}

	assert.Len(t, schemaStatements, len(tables))
	for i, table := range tables {
		assert.Contains(t, schemaStatements[i], table)
	}
}
