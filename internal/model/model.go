// Package model provides the pretrained model capability consumed by the
// classifier: a document vectorizer and a category classifier loaded once at
// process start from serialized model files. The rest of the system depends
// only on the interfaces here, never on the file format.
package model

// FeatureVector is a sparse fixed-length numeric vector. Indices absent from
// Elems are zero; N is the full dimensionality of the trained feature space.
type FeatureVector struct {
	N     int
	Elems map[int]float64
}

// Dot computes the dot product with a dense weight row.
func (v *FeatureVector) Dot(weights []float64) float64 {
	sum := 0.0
	for idx, val := range v.Elems {
		if idx < len(weights) {
			sum += val * weights[idx]
		}
	}
	return sum
}

// Vectorizer transforms cleaned text into the classifier's feature space
// using a vocabulary fixed at training time. Tokens outside the vocabulary
// contribute nothing.
type Vectorizer interface {
	Transform(text string) (*FeatureVector, error)
	// NumFeatures returns the dimensionality of the feature space.
	NumFeatures() int
}

// Classifier predicts an integer category ID from a feature vector.
type Classifier interface {
	Predict(features *FeatureVector) (int, error)
}

// ProbabilityEstimator is optionally implemented by classifiers that can
// produce a per-class probability distribution summing to 1. Callers probe
// for it with a type assertion.
type ProbabilityEstimator interface {
	PredictProba(features *FeatureVector) ([]float64, error)
}

// Bundle holds the loaded vectorizer/classifier pair. It is read-only for
// the life of the process; concurrent use is safe because inference never
// mutates state.
type Bundle struct {
	Vectorizer Vectorizer
	Classifier Classifier
}
