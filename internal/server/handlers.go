package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/courses"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/textnorm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// AnalyzeRequest is the payload for POST /analyze
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description,omitempty"`
}

// CategorizeRequest is the payload for POST /categorize
type CategorizeRequest struct {
	Texts []string `json:"texts" validate:"required,min=1,dive,required"`
}

// ExtractSkillsRequest is the payload for POST /skills/extract
type ExtractSkillsRequest struct {
	Text string `json:"text" validate:"required"`
}

// MatchRequest is the payload for POST /match
type MatchRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// analyzeResponse augments the pipeline result with course recommendations
// for categories that have a course track.
type analyzeResponse struct {
	*types.AnalysisResult
	RecommendedCourses []courses.Course `json:"recommended_courses,omitempty"`
}

// handleAnalyze runs the full pipeline on raw text.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result := s.analyzer.Analyze(r.Context(), req.ResumeText, req.JobDescription)

	resp := analyzeResponse{AnalysisResult: result}
	if !result.Classification.Failed() {
		resp.RecommendedCourses = courses.Recommend(result.Classification.Category, 5)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCategorize predicts categories for a batch of texts.
func (s *Server) handleCategorize(w http.ResponseWriter, r *http.Request) {
	var req CategorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	results := s.analyzer.BatchCategorize(req.Texts)
	s.jsonResponse(w, http.StatusOK, map[string]any{"results": results})
}

// handleExtractSkills extracts skills from arbitrary text.
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractSkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	skills := s.analyzer.ExtractSkills(req.Text)
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// handleMatch compares resume skills against a job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resumeSkills := s.analyzer.ExtractSkills(req.ResumeText)
	jdSkills := s.analyzer.ExtractSkillsRuleBased(req.JobDescription)
	report := extraction.MatchWithJD(resumeSkills, jdSkills)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume_skills": resumeSkills,
		"jd_skills":     jdSkills,
		"match":         report,
	})
}

// handleListCategories returns the category taxonomy.
func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": taxonomy.All()})
}

// handleUploadResume accepts a multipart upload, extracts its text, runs the
// pipeline, and persists the outcome when storage is available.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxFileSize)
	if err := r.ParseMultipartForm(s.maxFileSize); err != nil {
		s.errorResponse(w, http.StatusRequestEntityTooLarge,
			(&ErrFileTooLarge{Limit: s.maxFileSize}).Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing 'resume' file field")
		return
	}
	defer file.Close()

	if header.Size > s.maxFileSize {
		e := &ErrFileTooLarge{Size: header.Size, Limit: s.maxFileSize}
		s.errorResponse(w, HTTPStatus(e), e.Error())
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	filename := filepath.Base(header.Filename)
	text, err := ingestion.ExtractText(filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jdText := r.FormValue("job_description")
	result := s.analyzer.Analyze(r.Context(), text, jdText)

	response := map[string]any{
		"filename": filename,
		"result":   result,
		"contact": map[string]any{
			"emails": textnorm.ExtractEmails(text),
			"phones": textnorm.ExtractPhoneNumbers(text),
			"urls":   textnorm.ExtractURLs(text),
		},
	}

	// Persistence is best effort; analysis results are returned even when
	// the database write fails.
	if s.db != nil {
		resumeID, err := s.persistAnalysis(r.Context(), filename, text, jdText, result)
		if err != nil {
			s.logger.Warn("persisting analysis", zap.Error(err))
		} else {
			response["resume_id"] = resumeID
		}
	}

	s.jsonResponse(w, http.StatusOK, response)
}

// persistAnalysis stores the upload and its analysis outcome. Only the
// resume row is required; the writes after it are independently best effort,
// so one failure is logged without blocking the others.
func (s *Server) persistAnalysis(ctx context.Context, filename, text, jdText string, result *types.AnalysisResult) (uuid.UUID, error) {
	resumeID, err := s.db.SaveResume(ctx, filename, text, textnorm.CleanGeneral(text))
	if err != nil {
		return uuid.Nil, err
	}

	if !result.Classification.Failed() {
		_, err = s.db.SaveAnalysis(ctx, resumeID,
			result.Classification.CategoryID,
			result.Classification.Category,
			result.Classification.Confidence,
		)
		if err != nil {
			s.logger.Warn("saving analysis", zap.Error(err))
		}
	}

	skills := make([]db.ResumeSkill, 0, len(result.ResumeSkills))
	for _, name := range result.ResumeSkills {
		skills = append(skills, db.ResumeSkill{Name: name, Method: db.MethodCombined})
	}
	if err := s.db.SaveResumeSkills(ctx, resumeID, skills); err != nil {
		s.logger.Warn("saving resume skills", zap.Error(err))
	}

	if jdText != "" {
		jdID, err := s.db.SaveJobDescription(ctx, jdText)
		if err != nil {
			s.logger.Warn("saving job description", zap.Error(err))
		} else if _, err := s.db.SaveMatch(ctx, resumeID, jdID,
			result.Match.Score, result.Match.Matching, result.Match.Missing); err != nil {
			s.logger.Warn("saving match report", zap.Error(err))
		}
	}

	return resumeID, nil
}

// handleListResumes returns recent stored resumes.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		e := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(e), e.Error())
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetResume returns a stored resume with its latest analysis.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		e := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(e), e.Error())
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return
	}

	resume, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if resume == nil {
		e := &ErrResumeNotFound{ResumeID: resumeID}
		s.errorResponse(w, HTTPStatus(e), e.Error())
		return
	}

	analysis, err := s.db.LatestAnalysis(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"resume":   resume,
		"analysis": analysis,
	})
}

// handleGetResumeSkills returns the stored skills for a resume.
func (s *Server) handleGetResumeSkills(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		e := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(e), e.Error())
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return
	}

	skills, err := s.db.ListResumeSkills(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills})
}

// handleGetResumeMatches returns stored job-description matches.
func (s *Server) handleGetResumeMatches(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		e := &ErrStorageDisabled{}
		s.errorResponse(w, HTTPStatus(e), e.Error())
		return
	}

	resumeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return
	}

	matches, err := s.db.ListMatches(r.Context(), resumeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}
