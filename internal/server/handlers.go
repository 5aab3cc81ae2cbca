package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/Rick03098/recruitment-matcher/internal/ingestion"
	"github.com/Rick03098/recruitment-matcher/internal/pipeline"
	"github.com/Rick03098/recruitment-matcher/internal/types"
)

// maxUploadBytes caps résumé file uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// CreateResumeRequest is the body for pasted-text résumé intake.
type CreateResumeRequest struct {
	Text       string `json:"text" validate:"required"`
	SourceName string `json:"source_name,omitempty"`
}

// MatchRequest is the body for a match run.
type MatchRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
}

// IngestResponse reports one ingested résumé. SaveError carries a
// persistence failure as partial success: the record was extracted but not
// stored.
type IngestResponse struct {
	Record    types.CandidateRecord `json:"record"`
	RecordID  string                `json:"record_id,omitempty"`
	Usable    bool                  `json:"usable"`
	UsedLLM   bool                  `json:"used_llm"`
	SaveError string                `json:"save_error,omitempty"`
}

// handleUploadResume ingests a résumé from a multipart file upload.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Form field 'file' is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file: "+err.Error())
		return
	}

	text, err := ingestion.ExtractText(header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.service.IngestDocument(r.Context(), types.RawDocument{
		Text:       text,
		SourceName: header.Filename,
		SourceKind: types.SourceFile,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, ingestResponse(result))
}

// handleCreateResume ingests a résumé from pasted text.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	result, err := s.service.IngestDocument(r.Context(), types.RawDocument{
		Text:       req.Text,
		SourceName: req.SourceName,
		SourceKind: types.SourcePasted,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, ingestResponse(result))
}

// handleListResumes returns the full candidate pool.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	records, err := s.service.Candidates(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": records, "count": len(records)})
}

// handleMatch runs the candidate pool against a job description.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "job_description is required")
		return
	}

	outcome, err := s.service.MatchPool(r.Context(), req.JobDescription)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, outcome)
}

// ingestResponse converts a pipeline result to the transport shape.
func ingestResponse(result *pipeline.IngestResult) IngestResponse {
	resp := IngestResponse{
		Record:  result.Record,
		Usable:  result.Usable,
		UsedLLM: result.UsedLLM,
	}
	if result.RecordID != uuid.Nil {
		resp.RecordID = result.RecordID.String()
	}
	if result.SaveErr != nil {
		resp.SaveError = result.SaveErr.Error()
	}
	return resp
}
