package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// vectorizerFile is the on-disk document for a serialized TF-IDF vectorizer.
// Model files are produced by the training-side export tooling; this package
// only consumes them.
type vectorizerFile struct {
	Format     string         `json:"format"`
	Version    int            `json:"version"`
	Lowercase  *bool          `json:"lowercase,omitempty"`
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// classifierFile is the on-disk document for a serialized linear classifier.
type classifierFile struct {
	Format       string      `json:"format"`
	Version      int         `json:"version"`
	Classes      []int       `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
	Probability  bool        `json:"probability"`
}

// LoadVectorizer reads, validates and constructs a vectorizer from a model
// file. Fitted-state problems surface as UnfittedError so callers can mark
// the capability unavailable rather than attempting repair.
func LoadVectorizer(path string) (Vectorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	if err := validateAgainstSchema(vectorizerSchema, data); err != nil {
		return nil, &SchemaError{Path: path, Detail: err.Error()}
	}

	var doc vectorizerFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	lowercase := true
	if doc.Lowercase != nil {
		lowercase = *doc.Lowercase
	}

	vec, err := NewTFIDFVectorizer(doc.Vocabulary, doc.IDF, lowercase)
	if err != nil {
		return nil, &UnfittedError{Path: path, Reason: err.Error()}
	}
	return vec, nil
}

// LoadClassifier reads, validates and constructs a classifier from a model
// file. When the file declares probability output the returned classifier
// also implements ProbabilityEstimator.
func LoadClassifier(path string) (Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	if err := validateAgainstSchema(classifierSchema, data); err != nil {
		return nil, &SchemaError{Path: path, Detail: err.Error()}
	}

	var doc classifierFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	if doc.Probability {
		clf, err := NewProbabilisticLinearClassifier(doc.Classes, doc.Coefficients, doc.Intercepts)
		if err != nil {
			return nil, &UnfittedError{Path: path, Reason: err.Error()}
		}
		return clf, nil
	}

	clf, err := NewLinearClassifier(doc.Classes, doc.Coefficients, doc.Intercepts)
	if err != nil {
		return nil, &UnfittedError{Path: path, Reason: err.Error()}
	}
	return clf, nil
}

// Load reads both model files and cross-checks that the classifier weight
// matrix matches the vectorizer's feature space. The bundle is loaded once
// at process start and held read-only afterwards.
func Load(vectorizerPath, classifierPath string) (*Bundle, error) {
	vectorizer, err := LoadVectorizer(vectorizerPath)
	if err != nil {
		return nil, err
	}
	classifier, err := LoadClassifier(classifierPath)
	if err != nil {
		return nil, err
	}

	type featureSized interface{ NumFeatures() int }
	if sized, ok := classifier.(featureSized); ok {
		if sized.NumFeatures() != vectorizer.NumFeatures() {
			return nil, &UnfittedError{
				Path: classifierPath,
				Reason: fmt.Sprintf("classifier expects %d features but vectorizer produces %d",
					sized.NumFeatures(), vectorizer.NumFeatures()),
			}
		}
	}

	return &Bundle{Vectorizer: vectorizer, Classifier: classifier}, nil
}
