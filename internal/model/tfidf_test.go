package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVectorizer(t *testing.T) *TFIDFVectorizer {
	t.Helper()
	vec, err := NewTFIDFVectorizer(
		map[string]int{"aws": 0, "developer": 1, "python": 2},
		[]float64{1.0, 2.0, 3.0},
		true,
	)
	require.NoError(t, err)
	return vec
}

func TestNewTFIDFVectorizer_FittedChecks(t *testing.T) {
	_, err := NewTFIDFVectorizer(map[string]int{}, nil, true)
	assert.ErrorContains(t, err, "vocabulary is empty")

	_, err = NewTFIDFVectorizer(map[string]int{"go": 0}, []float64{1, 2}, true)
	assert.ErrorContains(t, err, "does not match vocabulary size")

	_, err = NewTFIDFVectorizer(map[string]int{"go": 5}, []float64{1}, true)
	assert.ErrorContains(t, err, "out of range")

	_, err = NewTFIDFVectorizer(map[string]int{"go": 0, "rust": 0}, []float64{1, 2}, true)
	assert.ErrorContains(t, err, "duplicate vocabulary index")
}

func TestTransform_WeightsAndNormalization(t *testing.T) {
	vec := testVectorizer(t)

	fv, err := vec.Transform("python developer python")
	require.NoError(t, err)
	require.Equal(t, 3, fv.N)
	require.Len(t, fv.Elems, 2)

	// Raw weights: python 2*3.0=6, developer 1*2.0=2; L2 norm sqrt(40).
	norm := math.Sqrt(40)
	assert.InDelta(t, 6/norm, fv.Elems[2], 1e-9)
	assert.InDelta(t, 2/norm, fv.Elems[1], 1e-9)

	// Unit length after normalization.
	sumSq := 0.0
	for _, v := range fv.Elems {
		sumSq += v * v
	}
	assert.InDelta(t, 1.0, sumSq, 1e-9)
}

func TestTransform_OutOfVocabularyContributesNothing(t *testing.T) {
	vec := testVectorizer(t)

	fv, err := vec.Transform("blockchain kubernetes terraform")
	require.NoError(t, err)
	assert.Empty(t, fv.Elems)
}

func TestTransform_ShortTokensIgnored(t *testing.T) {
	vec, err := NewTFIDFVectorizer(map[string]int{"r": 0, "go": 1}, []float64{1, 1}, true)
	require.NoError(t, err)

	// The token pattern requires at least two word characters, so a
	// single-letter vocabulary term can never match.
	fv, err := vec.Transform("r go r go")
	require.NoError(t, err)
	assert.NotContains(t, fv.Elems, 0)
	assert.Contains(t, fv.Elems, 1)
}

func TestTransform_LowercaseFlag(t *testing.T) {
	vec := testVectorizer(t)
	fv, err := vec.Transform("PYTHON Developer")
	require.NoError(t, err)
	assert.Len(t, fv.Elems, 2)
}

func TestTransform_EmptyText(t *testing.T) {
	vec := testVectorizer(t)
	fv, err := vec.Transform("")
	require.NoError(t, err)
	assert.Empty(t, fv.Elems)
	assert.Equal(t, 3, fv.N)
}
