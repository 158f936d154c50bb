package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/resume-analyzer/internal/courses"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestPrintClassification(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	id := 6
	p.PrintClassification(types.ClassificationResult{
		Category:   "Data Science",
		CategoryID: &id,
		Confidence: 87.5,
	})
	output := buf.String()

	assert.Contains(t, output, "CATEGORIZATION")
	assert.Contains(t, output, "Data Science")
	assert.Contains(t, output, "87.50%")
	assert.NotContains(t, output, "could not produce")
}

func TestPrintClassification_Failed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClassification(types.ClassificationResult{
		Category:   types.CategoryPredictionError,
		Confidence: 0,
	})

	assert.Contains(t, buf.String(), "could not produce a prediction")
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills("RESUME SKILLS", []string{"aws", "python", "sql"})
	output := buf.String()

	assert.Contains(t, output, "RESUME SKILLS (3)")
	assert.Contains(t, output, "python")
}

func TestPrintSkills_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills("RESUME SKILLS", nil)

	assert.Contains(t, buf.String(), "(none found)")
}

func TestPrintSkills_Truncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := make([]string, 13)
	for i := range skills {
		skills[i] = "skill"
	}
	p.PrintSkills("RESUME SKILLS", skills)

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintMatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchReport(types.MatchReport{
		Score:         66.67,
		Matching:      []string{"aws", "python"},
		Missing:       []string{"docker"},
		MatchedCount:  2,
		TotalJDSkills: 3,
	})
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH")
	assert.Contains(t, output, "66.67%")
	assert.Contains(t, output, "2 of 3")
	assert.Contains(t, output, "✓ aws")
	assert.Contains(t, output, "✗ docker")
}

func TestPrintContact(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContact([]string{"jane@corp.io"}, []string{"+1-555-010-2030"}, nil)
	output := buf.String()

	assert.Contains(t, output, "CONTACT")
	assert.Contains(t, output, "jane@corp.io")
	assert.Contains(t, output, "+1-555-010-2030")
}

func TestPrintContact_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintContact(nil, nil, nil)
	require.Empty(t, buf.String())
}

func TestPrintCourses(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCourses([]courses.Course{
		{Name: "Machine Learning by Andrew NG", Link: "https://www.coursera.org/learn/machine-learning"},
	})
	output := buf.String()

	assert.Contains(t, output, "RECOMMENDED COURSES")
	assert.Contains(t, output, "Machine Learning by Andrew NG")
}

func TestPrintCourses_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCourses(nil)
	require.Empty(t, buf.String())
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.AnalysisResult{
		Classification: types.ClassificationResult{Category: "Data Science", Confidence: 90},
		ResumeSkills:   []string{"python"},
		JDSkills:       []string{"python", "docker"},
		JDText:         "python and docker",
		Match: types.MatchReport{
			Score:         50,
			Matching:      []string{"python"},
			Missing:       []string{"docker"},
			MatchedCount:  1,
			TotalJDSkills: 2,
		},
		Summary: "Strong data science profile.",
	}

	p.PrintAnalysis(result)
	output := buf.String()

	assert.Contains(t, output, "CATEGORIZATION")
	assert.Contains(t, output, "JOB MATCH")
	assert.Contains(t, output, "SUMMARY")
	assert.Contains(t, output, "Strong data science profile.")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)
	require.Empty(t, buf.String())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(false, false)
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger, err = NewLogger(true, true)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
