package ner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGazetteer_Recognize(t *testing.T) {
	g, err := NewGazetteer([]Entity{
		{Text: "Docker", Label: LabelProduct},
		{Text: "Amazon Web Services", Label: LabelOrg},
	})
	require.NoError(t, err)

	entities, err := g.Recognize("Deployed with docker on Amazon Web Services infrastructure.")
	require.NoError(t, err)
	require.Len(t, entities, 2)

	byLabel := map[string]string{}
	for _, e := range entities {
		byLabel[e.Label] = e.Text
	}
	// Matched spans keep the document's casing.
	assert.Equal(t, "docker", byLabel[LabelProduct])
	assert.Equal(t, "Amazon Web Services", byLabel[LabelOrg])
}

func TestGazetteer_WordBoundaries(t *testing.T) {
	g, err := NewGazetteer([]Entity{{Text: "java", Label: LabelProduct}})
	require.NoError(t, err)

	entities, err := g.Recognize("Expert in javascripting frameworks.")
	require.NoError(t, err)
	assert.Empty(t, entities)

	entities, err = g.Recognize("Expert in Java and more.")
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Java", entities[0].Text)
}

func TestGazetteer_LongestPhraseWins(t *testing.T) {
	g, err := NewGazetteer([]Entity{
		{Text: "spring", Label: LabelProduct},
		{Text: "spring boot", Label: LabelProduct},
	})
	require.NoError(t, err)

	entities, err := g.Recognize("Built services on Spring Boot.")
	require.NoError(t, err)
	require.NotEmpty(t, entities)
	assert.Equal(t, "Spring Boot", entities[0].Text)
}

func TestLoadGazetteer(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "entities.json")
	content := `{"entities": [
		{"text": "Kubernetes", "label": "PRODUCT"},
		{"text": "Google", "label": "ORG"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := LoadGazetteer(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())

	_, err = LoadGazetteer(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestLoadGazetteer_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"entities": []}`), 0o644))

	_, err := LoadGazetteer(path)
	assert.ErrorContains(t, err, "no entities")
}
