package model

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches tokens of two or more word characters, the same
// tokenization rule the vectorizer vocabulary was fitted with. Single-letter
// tokens never reach the feature space.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// TFIDFVectorizer maps text onto a fixed vocabulary with inverse document
// frequency weighting and L2 normalization. All fields are fixed at training
// time; Transform is read-only and safe for concurrent use.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
	lowercase  bool
}

// NewTFIDFVectorizer constructs a vectorizer and verifies the fitted state:
// the vocabulary must be non-empty, every vocabulary index must be a valid
// unique column, and the IDF weighting must cover the whole feature space.
func NewTFIDFVectorizer(vocabulary map[string]int, idf []float64, lowercase bool) (*TFIDFVectorizer, error) {
	if len(vocabulary) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	if len(idf) != len(vocabulary) {
		return nil, fmt.Errorf("idf length %d does not match vocabulary size %d", len(idf), len(vocabulary))
	}

	seen := make([]bool, len(vocabulary))
	for term, idx := range vocabulary {
		if idx < 0 || idx >= len(vocabulary) {
			return nil, fmt.Errorf("vocabulary index %d for term %q out of range", idx, term)
		}
		if seen[idx] {
			return nil, fmt.Errorf("duplicate vocabulary index %d", idx)
		}
		seen[idx] = true
	}

	return &TFIDFVectorizer{
		vocabulary: vocabulary,
		idf:        idf,
		lowercase:  lowercase,
	}, nil
}

// NumFeatures returns the vocabulary size.
func (v *TFIDFVectorizer) NumFeatures() int {
	return len(v.vocabulary)
}

// Transform converts text into a sparse TF-IDF feature vector. Terms outside
// the vocabulary are dropped; the resulting vector is L2-normalized unless
// it is all zeros.
func (v *TFIDFVectorizer) Transform(text string) (*FeatureVector, error) {
	if v.lowercase {
		text = strings.ToLower(text)
	}

	counts := make(map[int]float64)
	for _, token := range tokenPattern.FindAllString(text, -1) {
		if idx, ok := v.vocabulary[token]; ok {
			counts[idx]++
		}
	}

	vec := &FeatureVector{N: len(v.vocabulary), Elems: make(map[int]float64, len(counts))}
	sumSquares := 0.0
	for idx, count := range counts {
		weighted := count * v.idf[idx]
		vec.Elems[idx] = weighted
		sumSquares += weighted * weighted
	}

	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for idx := range vec.Elems {
			vec.Elems[idx] /= norm
		}
	}

	return vec, nil
}
