package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/classifier"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/lexicon"
	"github.com/jonathan/resume-analyzer/internal/model"
	"github.com/jonathan/resume-analyzer/internal/ner"
	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

// newTestServer builds a server around a tiny in-memory model bundle that
// separates Data Science texts (python, data) from Java Developer texts
// (java).
func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newTestServerWithRecognizer(t, nil)
}

func newTestServerWithRecognizer(t *testing.T, recognizer ner.Recognizer) *Server {
	t.Helper()

	vec, err := model.NewTFIDFVectorizer(
		map[string]int{"python": 0, "data": 1, "java": 2},
		[]float64{1, 1, 1},
		true,
	)
	require.NoError(t, err)

	clf, err := model.NewProbabilisticLinearClassifier(
		[]int{6, 15},
		[][]float64{
			{1, 1, 0},
			{0, 0, 1},
		},
		[]float64{0, 0},
	)
	require.NoError(t, err)

	bundle := &model.Bundle{Vectorizer: vec, Classifier: clf}
	analyzer := pipeline.NewAnalyzer(
		classifier.NewFromBundle(bundle, nil),
		extraction.New(lexicon.New(), recognizer, nil),
		pipeline.Options{},
	)

	return New(Config{}, analyzer, nil, nil)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["classifier_ready"])
	assert.Equal(t, false, body["storage_enabled"])
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/analyze", AnalyzeRequest{
		ResumeText:     "Experienced Python developer working with data and SQL",
		JobDescription: "Looking for Python and Docker experience",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	classification := body["classification"].(map[string]any)
	assert.Equal(t, "Data Science", classification["category"])

	skills := body["resume_skills"].([]any)
	assert.Contains(t, skills, "python")

	match := body["match"].(map[string]any)
	assert.InDelta(t, 50.0, match["score"].(float64), 1e-9)

	recommended := body["recommended_courses"].([]any)
	assert.Len(t, recommended, 5)
}

func TestAnalyze_MissingResumeText(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/analyze", map[string]string{
		"job_description": "anything",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation error")
}

func TestAnalyze_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategorize_Batch(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/categorize", CategorizeRequest{
		Texts: []string{
			"python data analysis",
			"java spring services",
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	results := body["results"].([]any)
	require.Len(t, results, 2)

	first := results[0].(map[string]any)
	second := results[1].(map[string]any)
	assert.Equal(t, "Data Science", first["category"])
	assert.Equal(t, "Java Developer", second["category"])
}

func TestCategorize_EmptyBatch(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/categorize", CategorizeRequest{Texts: []string{}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractSkills(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/skills/extract", ExtractSkillsRequest{
		Text: "Built services in Python with Django and Docker",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	skills := body["skills"].([]any)
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "django")
	assert.Contains(t, skills, "docker")
}

func TestMatch(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/match", MatchRequest{
		ResumeText:     "Python and SQL experience",
		JobDescription: "Need Python and Docker",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	match := body["match"].(map[string]any)
	assert.InDelta(t, 50.0, match["score"].(float64), 1e-9)
	assert.Contains(t, body["jd_skills"].([]any), "docker")
}

// staticRecognizer reports the same entities for any input.
type staticRecognizer struct{ entities []ner.Entity }

func (r *staticRecognizer) Recognize(string) ([]ner.Entity, error) {
	return r.entities, nil
}

func TestMatch_JDSkillsExcludeRecognizerEntities(t *testing.T) {
	recognizer := &staticRecognizer{entities: []ner.Entity{
		{Text: "Kubernetes", Label: ner.LabelProduct},
	}}
	s := newTestServerWithRecognizer(t, recognizer)

	rec := doJSON(t, s, http.MethodPost, "/match", MatchRequest{
		ResumeText:     "Python and SQL experience",
		JobDescription: "Need Python experience",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)

	// Recognizer output reaches the resume side through the combined method
	// but never the job description side, which stays rule based.
	assert.Contains(t, body["resume_skills"].([]any), "kubernetes")
	jdSkills := body["jd_skills"].([]any)
	assert.Contains(t, jdSkills, "python")
	assert.NotContains(t, jdSkills, "kubernetes")

	match := body["match"].(map[string]any)
	assert.InDelta(t, 100.0, match["score"].(float64), 1e-9)
}

func TestListCategories(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	categories := body["categories"].([]any)
	assert.Len(t, categories, 25)
}

func TestUploadResume_Text(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Python developer with data pipelines. Reach me at jane@corp.io"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resumes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "resume.txt", body["filename"])

	result := body["result"].(map[string]any)
	classification := result["classification"].(map[string]any)
	assert.Equal(t, "Data Science", classification["category"])

	contact := body["contact"].(map[string]any)
	assert.Contains(t, contact["emails"].([]any), "jane@corp.io")

	// No database configured, so no resume ID is assigned
	_, hasID := body["resume_id"]
	assert.False(t, hasID)
}

// stubStore records writes in memory; SaveAnalysis fails when analysisErr
// is set.
type stubStore struct {
	analysisErr error
	savedSkills []db.ResumeSkill
	savedJD     bool
	savedMatch  bool
}

func (s *stubStore) SaveResume(context.Context, string, string, string) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (s *stubStore) GetResume(context.Context, uuid.UUID) (*db.Resume, error) { return nil, nil }

func (s *stubStore) ListResumes(context.Context, int) ([]db.Resume, error) { return nil, nil }

func (s *stubStore) SaveAnalysis(context.Context, uuid.UUID, *int, string, float64) (uuid.UUID, error) {
	return uuid.Nil, s.analysisErr
}

func (s *stubStore) LatestAnalysis(context.Context, uuid.UUID) (*db.Analysis, error) {
	return nil, nil
}

func (s *stubStore) SaveResumeSkills(_ context.Context, _ uuid.UUID, skills []db.ResumeSkill) error {
	s.savedSkills = skills
	return nil
}

func (s *stubStore) ListResumeSkills(context.Context, uuid.UUID) ([]db.ResumeSkill, error) {
	return nil, nil
}

func (s *stubStore) SaveJobDescription(context.Context, string) (uuid.UUID, error) {
	s.savedJD = true
	return uuid.New(), nil
}

func (s *stubStore) SaveMatch(context.Context, uuid.UUID, uuid.UUID, float64, []string, []string) (uuid.UUID, error) {
	s.savedMatch = true
	return uuid.New(), nil
}

func (s *stubStore) ListMatches(context.Context, uuid.UUID) ([]db.Match, error) { return nil, nil }

func (s *stubStore) Close() {}

func TestUploadResume_AnalysisWriteFailureIsBestEffort(t *testing.T) {
	s := newTestServer(t)
	store := &stubStore{analysisErr: errors.New("insert failed")}
	s.db = store

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Python developer with data pipelines"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("job_description", "Need Python"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resumes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	_, hasID := body["resume_id"]
	assert.True(t, hasID)

	// The failed analysis write did not block the later writes.
	assert.NotEmpty(t, store.savedSkills)
	assert.True(t, store.savedJD)
	assert.True(t, store.savedMatch)
}

func TestUploadResume_UnsupportedFormat(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.odt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("irrelevant"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resumes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestUploadResume_MissingField(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("unrelated", "x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resumes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStorageEndpoints_WithoutDatabase(t *testing.T) {
	s := newTestServer(t)

	paths := []string{
		"/resumes",
		"/resumes/550e8400-e29b-41d4-a716-446655440000",
		"/resumes/550e8400-e29b-41d4-a716-446655440000/skills",
		"/resumes/550e8400-e29b-41d4-a716-446655440000/matches",
	}

	for _, path := range paths {
		rec := doJSON(t, s, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
