package server

import (
	"errors"
	"net/http"

	"github.com/Rick03098/recruitment-matcher/internal/ingestion"
	"github.com/Rick03098/recruitment-matcher/internal/matching"
	"github.com/Rick03098/recruitment-matcher/internal/pipeline"
	"github.com/Rick03098/recruitment-matcher/internal/store"
)

// HTTPStatus maps pipeline error types to HTTP status codes. Caller-input
// errors are 4xx; collaborator failures are 5xx.
func HTTPStatus(err error) int {
	var inputErr *matching.InputError
	var emptyErr *pipeline.EmptyDocumentError
	var extractionErr *ingestion.ExtractionError
	var storeErr *store.StoreError

	switch {
	case errors.As(err, &inputErr), errors.As(err, &emptyErr):
		return http.StatusBadRequest
	case errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &storeErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
