package model

import (
	"fmt"
	"math"
)

// LinearClassifier is a multiclass linear model: one weight row and
// intercept per class, prediction by highest decision score. It does not
// expose probabilities; see ProbabilisticLinearClassifier.
type LinearClassifier struct {
	classes    []int
	weights    [][]float64
	intercepts []float64
}

// NewLinearClassifier constructs a linear classifier and verifies its fitted
// state: a weight row and intercept per class, with every row the same
// width.
func NewLinearClassifier(classes []int, weights [][]float64, intercepts []float64) (*LinearClassifier, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("no classes defined")
	}
	if len(weights) != len(classes) {
		return nil, fmt.Errorf("weight rows %d do not match class count %d", len(weights), len(classes))
	}
	if len(intercepts) != len(classes) {
		return nil, fmt.Errorf("intercepts %d do not match class count %d", len(intercepts), len(classes))
	}
	width := len(weights[0])
	for i, row := range weights {
		if len(row) != width {
			return nil, fmt.Errorf("weight row %d has %d features, expected %d", i, len(row), width)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("weight rows are empty")
	}

	return &LinearClassifier{
		classes:    classes,
		weights:    weights,
		intercepts: intercepts,
	}, nil
}

// NumFeatures returns the width of the weight matrix.
func (c *LinearClassifier) NumFeatures() int {
	return len(c.weights[0])
}

// NumClasses returns the number of output classes.
func (c *LinearClassifier) NumClasses() int {
	return len(c.classes)
}

// decisionScores computes the per-class decision function values.
func (c *LinearClassifier) decisionScores(features *FeatureVector) []float64 {
	scores := make([]float64, len(c.classes))
	for i := range c.classes {
		scores[i] = features.Dot(c.weights[i]) + c.intercepts[i]
	}
	return scores
}

// Predict returns the class ID with the highest decision score. Ties break
// toward the class listed first, which keeps prediction deterministic.
func (c *LinearClassifier) Predict(features *FeatureVector) (int, error) {
	if features == nil {
		return 0, fmt.Errorf("nil feature vector")
	}
	if features.N != c.NumFeatures() {
		return 0, fmt.Errorf("feature vector has %d dimensions, classifier expects %d", features.N, c.NumFeatures())
	}

	scores := c.decisionScores(features)
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return c.classes[best], nil
}

// ProbabilisticLinearClassifier extends LinearClassifier with a softmax over
// decision scores, giving a per-class probability distribution.
type ProbabilisticLinearClassifier struct {
	*LinearClassifier
}

// NewProbabilisticLinearClassifier wraps a linear classifier with
// probability output.
func NewProbabilisticLinearClassifier(classes []int, weights [][]float64, intercepts []float64) (*ProbabilisticLinearClassifier, error) {
	base, err := NewLinearClassifier(classes, weights, intercepts)
	if err != nil {
		return nil, err
	}
	return &ProbabilisticLinearClassifier{LinearClassifier: base}, nil
}

// PredictProba returns the softmax of the decision scores, ordered the same
// as the class list. The values sum to 1.
func (c *ProbabilisticLinearClassifier) PredictProba(features *FeatureVector) ([]float64, error) {
	if features == nil {
		return nil, fmt.Errorf("nil feature vector")
	}
	if features.N != c.NumFeatures() {
		return nil, fmt.Errorf("feature vector has %d dimensions, classifier expects %d", features.N, c.NumFeatures())
	}

	scores := c.decisionScores(features)

	// Shift by the max score before exponentiating to avoid overflow.
	maxScore := scores[0]
	for _, s := range scores[1:] {
		if s > maxScore {
			maxScore = s
		}
	}

	probs := make([]float64, len(scores))
	sum := 0.0
	for i, s := range scores {
		probs[i] = math.Exp(s - maxScore)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, nil
}

// Classes returns the class IDs in score order. The returned slice is a copy.
func (c *LinearClassifier) Classes() []int {
	out := make([]int, len(c.classes))
	copy(out, c.classes)
	return out
}
