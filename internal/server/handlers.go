package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/surendra-bolla/NeuralScan/internal/ingestion"
	"github.com/surendra-bolla/NeuralScan/internal/screening"
	"github.com/surendra-bolla/NeuralScan/internal/types"
)

// ScreenResponse is the envelope for single-resume screening results.
type ScreenResponse struct {
	Status        string                    `json:"status"`
	MatchScore    float64                   `json:"match_score"`
	Verdict       types.Verdict             `json:"verdict"`
	VerdictReason string                    `json:"verdict_reason"`
	Explanation   types.Explanation         `json:"explanation"`
	MatchedSkills types.CategorizedSkillSet `json:"matched_skills"`
	MissingSkills types.CategorizedSkillSet `json:"missing_skills"`
	Analysis      types.ScreeningAnalysis   `json:"analysis"`
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "Running",
		"service": "NeuralScan Resume Screening",
	})
}

// handleScreen screens a resume supplied as JSON text against a job
// description.
func (s *Server) handleScreen(w http.ResponseWriter, r *http.Request) {
	var req types.ScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	result, err := s.screener.ScreenWithTopK(r.Context(), req.ResumeText, req.JobDescription, req.TopK)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, screenResponse(result))
}

// handleScreenUpload screens an uploaded resume file (PDF/DOCX/TXT) against
// a job description form field.
func (s *Server) handleScreenUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	jobDescription := r.FormValue("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Job description is required")
		return
	}

	resumeText, _, err := s.extractUpload(r, "resume")
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.screener.Screen(r.Context(), resumeText, jobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, screenResponse(result))
}

// handleBatchScreen screens multiple uploaded resumes against one job
// description. Items that fail extraction or screening are skipped; the
// response reports how many were processed.
func (s *Server) handleBatchScreen(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	jobDescription := r.FormValue("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Job description is required")
		return
	}

	files := r.MultipartForm.File["resumes"]
	if len(files) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one resume is required")
		return
	}

	items := make([]screening.BatchItem, 0, len(files))
	for _, header := range files {
		text, err := extractMultipartFile(header)
		if err != nil {
			// Partial-failure semantics: log and continue with the rest.
			log.Printf("batch upload: skipping %s: %v", header.Filename, err)
			continue
		}
		items = append(items, screening.BatchItem{Filename: header.Filename, Text: text})
	}

	result, err := s.screener.ScreenBatch(r.Context(), items, jobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":          "success",
		"total_processed": result.TotalProcessed,
		"results":         result.Results,
	})
}

// handleExtractResumeData returns the structured signals extracted from an
// uploaded resume, without scoring.
func (s *Server) handleExtractResumeData(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	resumeText, _, err := s.extractUpload(r, "resume")
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	data := s.screener.ParseResume(resumeText)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":              "success",
		"skills":              data.Skills,
		"education":           data.Education,
		"experience_years":    data.ExperienceYears,
		"entities":            data.Entities,
		"sentences_extracted": len(data.Sentences),
		"raw_text_length":     len(data.RawText),
	})
}

// handleExtractJobRequirements extracts skills, education, and sentence
// counts from a job description.
func (s *Server) handleExtractJobRequirements(w http.ResponseWriter, r *http.Request) {
	var req types.JobRequirementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Job description must be at least 50 characters long")
		return
	}

	data := s.screener.ParseResume(req.JobDescription)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":              "success",
		"skills":              data.Skills,
		"education":           data.Education,
		"sentences_extracted": len(data.Sentences),
		"text_length":         len(req.JobDescription),
	})
}

// handleCompareResumes returns relative rankings for two or more uploaded
// resumes.
func (s *Server) handleCompareResumes(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	files := r.MultipartForm.File["resumes"]
	items := make([]screening.BatchItem, 0, len(files))
	for _, header := range files {
		text, err := extractMultipartFile(header)
		if err != nil {
			log.Printf("compare: skipping %s: %v", header.Filename, err)
			continue
		}
		items = append(items, screening.BatchItem{Filename: header.Filename, Text: text})
	}

	comparisons, err := s.screener.CompareResumes(items)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":        "success",
		"total_resumes": len(comparisons),
		"comparison":    comparisons,
	})
}

// handleSkillCategories returns the active skill taxonomy.
func (s *Server) handleSkillCategories(w http.ResponseWriter, _ *http.Request) {
	tax := s.screener.Taxonomy()

	categories := make(map[string][]string, len(tax.Categories()))
	for _, cat := range tax.Categories() {
		categories[cat.Name] = cat.Keywords
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"categories":   categories,
		"total_skills": tax.TotalKeywords(),
	})
}

// extractUpload reads the named multipart file field and extracts its text.
func (s *Server) extractUpload(r *http.Request, field string) (string, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", "", fmt.Errorf("resume file is required: %w", err)
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !ingestion.IsSupported(header.Filename) {
		return "", "", &ingestion.UnsupportedFormatError{Extension: ext}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read upload: %w", err)
	}

	text, err := ingestion.ExtractTextFromBytes(data, ext)
	if err != nil {
		return "", "", err
	}
	return text, header.Filename, nil
}

// extractMultipartFile extracts text from one file header in a multi-file
// upload.
func extractMultipartFile(header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !ingestion.IsSupported(header.Filename) {
		return "", &ingestion.UnsupportedFormatError{Extension: ext}
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	return ingestion.ExtractTextFromBytes(data, ext)
}

// screenResponse shapes a screening result for the API.
func screenResponse(result *types.ScreeningResult) ScreenResponse {
	return ScreenResponse{
		Status:        "success",
		MatchScore:    result.MatchScore,
		Verdict:       result.Verdict,
		VerdictReason: result.VerdictReason,
		Explanation:   result.Explanation,
		MatchedSkills: result.SkillGap.Matched,
		MissingSkills: result.SkillGap.Missing,
		Analysis:      result.Analysis,
	}
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
