// Package classifier wraps the pretrained vectorizer/classifier pair behind
// a degraded-mode aware prediction API. Load problems are recorded, never
// thrown: a classifier that failed to load still answers every call, with
// the Unknown sentinel.
package classifier

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/model"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Classifier predicts the professional category of a resume. The underlying
// model bundle is loaded once and read-only afterwards; prediction never
// mutates state, so one Classifier serves any number of concurrent callers.
type Classifier struct {
	bundle  *model.Bundle
	loaded  bool
	loadErr string
	logger  *zap.Logger
}

// New loads the model files and returns a classifier. Loading never fails
// the constructor: if either file is missing, corrupt or unfitted, the
// classifier comes up in degraded mode with the error recorded, and every
// prediction returns the Unknown sentinel.
func New(vectorizerPath, classifierPath string, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Classifier{logger: logger}
	bundle, err := model.Load(vectorizerPath, classifierPath)
	if err != nil {
		c.loadErr = err.Error()
		logger.Warn("classifier models unavailable, running degraded",
			zap.String("vectorizer", vectorizerPath),
			zap.String("classifier", classifierPath),
			zap.Error(err))
		return c
	}

	c.bundle = bundle
	c.loaded = true
	logger.Info("classifier models loaded",
		zap.Int("features", bundle.Vectorizer.NumFeatures()))
	return c
}

// NewFromBundle wraps an already-loaded bundle; used by tests and by callers
// that manage model loading themselves.
func NewFromBundle(bundle *model.Bundle, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{bundle: bundle, loaded: bundle != nil, logger: logger}
}

// Loaded reports whether the model bundle is available. Callers should
// treat false as "categorization capability unavailable", not as an error.
func (c *Classifier) Loaded() bool {
	return c.loaded
}

// LoadError returns the recorded load failure, empty when loaded.
func (c *Classifier) LoadError() string {
	return c.loadErr
}

func unknownResult() types.ClassificationResult {
	return types.ClassificationResult{Category: types.CategoryUnknown, Confidence: 0}
}

// Predict categorizes one resume text. It never returns an error: degraded
// mode, empty cleaned text, and inference failures all map to sentinel
// results the caller can render.
func (c *Classifier) Predict(resumeText string) types.ClassificationResult {
	if !c.loaded {
		return unknownResult()
	}

	cleaned := textnorm.CleanForCategorization(resumeText, false)
	if strings.TrimSpace(cleaned) == "" {
		c.logger.Debug("cleaned resume text is empty")
		return unknownResult()
	}

	result, err := c.predictCleaned(cleaned)
	if err != nil {
		c.logger.Error("prediction failed", zap.Error(err))
		return types.ClassificationResult{Category: types.CategoryPredictionError, Confidence: 0}
	}
	return result
}

func (c *Classifier) predictCleaned(cleaned string) (types.ClassificationResult, error) {
	features, err := c.bundle.Vectorizer.Transform(cleaned)
	if err != nil {
		return types.ClassificationResult{}, fmt.Errorf("transform: %w", err)
	}

	id, err := c.bundle.Classifier.Predict(features)
	if err != nil {
		return types.ClassificationResult{}, fmt.Errorf("predict: %w", err)
	}

	confidence := 0.0
	if estimator, ok := c.bundle.Classifier.(model.ProbabilityEstimator); ok {
		probs, err := estimator.PredictProba(features)
		if err != nil {
			return types.ClassificationResult{}, fmt.Errorf("predict proba: %w", err)
		}
		best := 0.0
		for _, p := range probs {
			if p > best {
				best = p
			}
		}
		confidence = best * 100
	}

	name := taxonomy.Name(id)
	c.logger.Debug("predicted category",
		zap.String("category", name),
		zap.Int("category_id", id),
		zap.Float64("confidence", confidence))

	return types.ClassificationResult{
		Category:   name,
		CategoryID: &id,
		Confidence: confidence,
	}, nil
}

// BatchPredict applies Predict to each text independently, preserving input
// order. One item's failure is as isolated as any other sentinel result and
// never aborts the batch.
func (c *Classifier) BatchPredict(texts []string) []types.ClassificationResult {
	results := make([]types.ClassificationResult, len(texts))
	for i, text := range texts {
		results[i] = c.Predict(text)
	}
	return results
}
