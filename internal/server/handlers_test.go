package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rick03098/recruitment-matcher/internal/matching"
	"github.com/Rick03098/recruitment-matcher/internal/pipeline"
	"github.com/Rick03098/recruitment-matcher/internal/store"
	"github.com/Rick03098/recruitment-matcher/internal/types"
)

// stubService fakes the pipeline for transport tests.
type stubService struct {
	ingestResult *pipeline.IngestResult
	ingestErr    error
	outcome      *types.MatchOutcome
	matchErr     error
	pool         []types.CandidateRecord
	poolErr      error

	lastDoc types.RawDocument
}

func (s *stubService) IngestDocument(_ context.Context, doc types.RawDocument) (*pipeline.IngestResult, error) {
	s.lastDoc = doc
	return s.ingestResult, s.ingestErr
}

func (s *stubService) MatchPool(_ context.Context, _ string) (*types.MatchOutcome, error) {
	return s.outcome, s.matchErr
}

func (s *stubService) Candidates(_ context.Context) ([]types.CandidateRecord, error) {
	return s.pool, s.poolErr
}

func newTestServer(service Service) *Server {
	return New(Config{Port: 8080}, service)
}

func TestHandleCreateResume_Success(t *testing.T) {
	service := &stubService{ingestResult: &pipeline.IngestResult{
		Record: types.CandidateRecord{Name: "张三", Skills: []string{"React"}},
		Usable: true,
	}}
	srv := newTestServer(service)

	body := `{"text": "姓名：张三，精通React，具有多年前端开发经验", "source_name": "粘贴文本"}`
	req := httptest.NewRequest(http.MethodPost, "/api/resumes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.handleCreateResume(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, types.SourcePasted, service.lastDoc.SourceKind)

	var resp IngestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "张三", resp.Record.Name)
	assert.True(t, resp.Usable)
}

func TestHandleCreateResume_MissingText(t *testing.T) {
	srv := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/resumes", strings.NewReader(`{"source_name": "x"}`))
	rec := httptest.NewRecorder()
	srv.handleCreateResume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateResume_InvalidJSON(t *testing.T) {
	srv := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/resumes", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	srv.handleCreateResume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateResume_SaveFailureReportedAsPartialSuccess(t *testing.T) {
	service := &stubService{ingestResult: &pipeline.IngestResult{
		Record:  types.CandidateRecord{Name: "张三"},
		SaveErr: &store.StoreError{Op: "save", Cause: assert.AnError},
	}}
	srv := newTestServer(service)

	body := `{"text": "姓名：张三，精通React，具有多年前端开发经验"}`
	req := httptest.NewRequest(http.MethodPost, "/api/resumes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.handleCreateResume(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp IngestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "张三", resp.Record.Name)
	assert.Contains(t, resp.SaveError, "save")
}

func TestHandleUploadResume_Success(t *testing.T) {
	service := &stubService{ingestResult: &pipeline.IngestResult{
		Record: types.CandidateRecord{Name: "李四"},
		Usable: true,
	}}
	srv := newTestServer(service)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "李四的简历.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("姓名：李四\n后端工程师\n精通 Python 和 MySQL，具有多年开发经验"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.handleUploadResume(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "李四的简历.txt", service.lastDoc.SourceName)
	assert.Equal(t, types.SourceFile, service.lastDoc.SourceKind)
}

func TestHandleUploadResume_MissingFileField(t *testing.T) {
	srv := newTestServer(&stubService{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.handleUploadResume(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUploadResume_UnsupportedFormat(t *testing.T) {
	srv := newTestServer(&stubService{})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "photo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte{0x89, 0x50, 0x4E, 0x47})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/resumes/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.handleUploadResume(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleListResumes(t *testing.T) {
	service := &stubService{pool: []types.CandidateRecord{
		{Name: "张三"}, {Name: "李四"},
	}}
	srv := newTestServer(service)

	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	rec := httptest.NewRecorder()
	srv.handleListResumes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestHandleMatch_Success(t *testing.T) {
	service := &stubService{outcome: &types.MatchOutcome{
		Matches: []types.MatchResult{{
			CandidateRecord: types.CandidateRecord{Name: "张三"},
			MatchScore:      50,
		}},
		JobRequirements: types.JobRequirements{Skills: []string{"React"}},
	}}
	srv := newTestServer(service)

	body := `{"job_description": "招聘前端工程师，精通React"}`
	req := httptest.NewRequest(http.MethodPost, "/api/match", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.handleMatch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome types.MatchOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	require.Len(t, outcome.Matches, 1)
	assert.Equal(t, 50, outcome.Matches[0].MatchScore)
}

func TestHandleMatch_MissingJobDescription(t *testing.T) {
	srv := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/match", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	srv.handleMatch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMatch_InputErrorMapsToBadRequest(t *testing.T) {
	service := &stubService{matchErr: &matching.InputError{Message: "candidate pool is empty"}}
	srv := newTestServer(service)

	body := `{"job_description": "招聘前端工程师"}`
	req := httptest.NewRequest(http.MethodPost, "/api/match", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.handleMatch(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPStatus_ErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&matching.InputError{Message: "x"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&pipeline.EmptyDocumentError{Source: "x"}))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(&store.StoreError{Op: "save", Cause: assert.AnError}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
