package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validVectorizerJSON = `{
	"format": "tfidf_vectorizer",
	"version": 1,
	"lowercase": true,
	"vocabulary": {"aws": 0, "python": 1},
	"idf": [1.5, 2.0]
}`

const validClassifierJSON = `{
	"format": "linear_classifier",
	"version": 1,
	"classes": [6, 20],
	"coefficients": [[0.1, 0.2], [0.3, 0.4]],
	"intercepts": [0.0, 0.1],
	"probability": true
}`

func TestLoadVectorizer_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "tfidf.json", validVectorizerJSON)

	vec, err := LoadVectorizer(path)
	require.NoError(t, err)
	assert.Equal(t, 2, vec.NumFeatures())
}

func TestLoadVectorizer_MissingFile(t *testing.T) {
	_, err := LoadVectorizer(filepath.Join(t.TempDir(), "nope.json"))
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
}

func TestLoadVectorizer_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"format": "tfidf_vectorizer", "version": 1, "vocabulary": {"a": 0}}`)

	_, err := LoadVectorizer(path)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Detail, "idf")
}

func TestLoadVectorizer_Unfitted(t *testing.T) {
	dir := t.TempDir()
	// idf length disagrees with the vocabulary: structurally valid JSON but
	// not a fitted model.
	path := writeFile(t, dir, "unfitted.json", `{
		"format": "tfidf_vectorizer",
		"version": 1,
		"vocabulary": {"aws": 0, "python": 1},
		"idf": [1.5]
	}`)

	_, err := LoadVectorizer(path)
	var unfitted *UnfittedError
	require.ErrorAs(t, err, &unfitted)
}

func TestLoadClassifier_ProbabilityFlag(t *testing.T) {
	dir := t.TempDir()

	withProba := writeFile(t, dir, "clf.json", validClassifierJSON)
	clf, err := LoadClassifier(withProba)
	require.NoError(t, err)
	_, ok := clf.(ProbabilityEstimator)
	assert.True(t, ok)

	withoutProba := writeFile(t, dir, "clf2.json", `{
		"format": "linear_classifier",
		"version": 1,
		"classes": [0],
		"coefficients": [[0.1, 0.2]],
		"intercepts": [0.0]
	}`)
	clf, err = LoadClassifier(withoutProba)
	require.NoError(t, err)
	_, ok = clf.(ProbabilityEstimator)
	assert.False(t, ok)
}

func TestLoad_Bundle(t *testing.T) {
	dir := t.TempDir()
	vecPath := writeFile(t, dir, "tfidf.json", validVectorizerJSON)
	clfPath := writeFile(t, dir, "model.json", validClassifierJSON)

	bundle, err := Load(vecPath, clfPath)
	require.NoError(t, err)
	require.NotNil(t, bundle.Vectorizer)
	require.NotNil(t, bundle.Classifier)

	fv, err := bundle.Vectorizer.Transform("python aws python")
	require.NoError(t, err)
	id, err := bundle.Classifier.Predict(fv)
	require.NoError(t, err)
	assert.Contains(t, []int{6, 20}, id)
}

func TestLoad_FeatureDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	vecPath := writeFile(t, dir, "tfidf.json", validVectorizerJSON)
	clfPath := writeFile(t, dir, "model.json", `{
		"format": "linear_classifier",
		"version": 1,
		"classes": [0],
		"coefficients": [[0.1, 0.2, 0.3]],
		"intercepts": [0.0]
	}`)

	_, err := Load(vecPath, clfPath)
	var unfitted *UnfittedError
	require.ErrorAs(t, err, &unfitted)
	assert.Contains(t, unfitted.Reason, "features")
}
