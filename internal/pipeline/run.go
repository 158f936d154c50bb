// Package pipeline provides the high-level orchestration for resume
// analysis: normalization, categorization, skill extraction and job
// description matching for one (resume, JD) pair. After the one-time model
// loads, every step is pure in-memory computation; the pipeline never
// raises past its boundary and always hands callers a renderable result.
package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/classifier"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/summary"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analyzer sequences the analysis steps. It holds only read-only
// collaborators, so a single Analyzer serves concurrent callers.
type Analyzer struct {
	classifier *classifier.Classifier
	extractor  *extraction.Extractor
	summarizer summary.Summarizer
	logger     *zap.Logger
}

// Options configures optional collaborators for an Analyzer.
type Options struct {
	// Summarizer, when non-nil, adds an abstractive summary to results.
	// Its failures are logged and leave the summary empty.
	Summarizer summary.Summarizer
	Logger     *zap.Logger
}

// NewAnalyzer builds the orchestrator from its two required collaborators.
func NewAnalyzer(clf *classifier.Classifier, ext *extraction.Extractor, opts Options) *Analyzer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		classifier: clf,
		extractor:  ext,
		summarizer: opts.Summarizer,
		logger:     logger,
	}
}

// CategorizerReady reports whether the classification capability is
// available. When false, Analyze still runs but classification comes back
// as the Unknown sentinel.
func (a *Analyzer) CategorizerReady() bool {
	return a.classifier.Loaded()
}

// Analyze runs the full pipeline for one resume and one job description:
//
//  1. Categorize the resume text.
//  2. Extract resume skills with both methods combined.
//  3. Extract JD skills rule-based only; entity recognition is not applied
//     to job descriptions.
//  4. Score the two skill sets against each other.
//
// The context is used only by the optional summarization call; everything
// else is synchronous in-memory work.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jdText string) *types.AnalysisResult {
	classification := a.classifier.Predict(resumeText)

	resumeSkills := a.extractor.ExtractCombined(resumeText)
	jdSkills := a.extractor.ExtractRuleBased(jdText)

	match := extraction.MatchWithJD(resumeSkills, jdSkills)

	a.logger.Info("analysis complete",
		zap.String("category", classification.Category),
		zap.Float64("confidence", classification.Confidence),
		zap.Int("resume_skills", len(resumeSkills)),
		zap.Int("jd_skills", len(jdSkills)),
		zap.Float64("match_score", match.Score))

	result := &types.AnalysisResult{
		Classification: classification,
		ResumeSkills:   resumeSkills,
		JDSkills:       jdSkills,
		Match:          match,
		ResumeText:     resumeText,
		JDText:         jdText,
	}

	if a.summarizer != nil {
		text, err := a.summarizer.Summarize(ctx, resumeText)
		if err != nil {
			a.logger.Warn("summarization failed", zap.Error(err))
		} else {
			result.Summary = text
		}
	}

	return result
}

// Categorize runs only the categorization step, for callers that do not
// have a job description.
func (a *Analyzer) Categorize(resumeText string) types.ClassificationResult {
	return a.classifier.Predict(resumeText)
}

// BatchCategorize categorizes each text independently, preserving order.
func (a *Analyzer) BatchCategorize(texts []string) []types.ClassificationResult {
	return a.classifier.BatchPredict(texts)
}

// ExtractSkills exposes the extractor's combined method for callers that
// only need a skill list.
func (a *Analyzer) ExtractSkills(text string) []string {
	return a.extractor.ExtractCombined(text)
}

// ExtractSkillsRuleBased exposes the lexicon-only method. Job description
// text goes through this one; entity recognition applies to resumes only.
func (a *Analyzer) ExtractSkillsRuleBased(text string) []string {
	return a.extractor.ExtractRuleBased(text)
}
