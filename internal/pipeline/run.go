// Package pipeline sequences normalization, extraction, assembly, persistence
// and matching. The orchestrator holds no cross-request state: each call is
// independent and idempotent given the same inputs and candidate pool.
package pipeline

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Rick03098/recruitment-matcher/internal/assemble"
	"github.com/Rick03098/recruitment-matcher/internal/matching"
	"github.com/Rick03098/recruitment-matcher/internal/normalize"
	"github.com/Rick03098/recruitment-matcher/internal/store"
	"github.com/Rick03098/recruitment-matcher/internal/types"
)

// ingestConcurrency bounds parallel document ingestion in batch runs. Each
// document may hit the extraction service, so the fan-out stays small.
const ingestConcurrency = 4

// Extractor is the optional structured-extraction collaborator. A nil
// Extractor means the heuristic path runs alone.
type Extractor interface {
	ExtractResume(ctx context.Context, text string) (*types.ExtractedResume, error)
}

// Orchestrator wires the pipeline stages together.
type Orchestrator struct {
	store     store.Store
	extractor Extractor
}

// New creates an orchestrator. extractor may be nil to disable the external
// extraction path.
func New(st store.Store, extractor Extractor) *Orchestrator {
	return &Orchestrator{store: st, extractor: extractor}
}

// IngestResult reports one document ingestion, including partial success:
// when persistence fails the record is still populated and SaveErr carries
// the failure.
type IngestResult struct {
	Record   types.CandidateRecord `json:"record"`
	RecordID uuid.UUID             `json:"record_id,omitempty"`
	Usable   bool                  `json:"usable"`
	UsedLLM  bool                  `json:"used_llm"`
	SaveErr  error                 `json:"-"`
}

// IngestDocument runs one document through normalize → (optional external
// extraction) → assemble → save. An external-extraction failure downgrades
// to heuristic extraction; a save failure is reported alongside the
// already-computed record rather than dropping it.
func (o *Orchestrator) IngestDocument(ctx context.Context, doc types.RawDocument) (*IngestResult, error) {
	sourceName := doc.SourceName
	if sourceName == "" {
		sourceName = types.ManualSource
	}

	norm := normalize.Normalize(doc.Text)
	if norm.Text == "" {
		return nil, &EmptyDocumentError{Source: sourceName}
	}

	var external *types.ExtractedResume
	if o.extractor != nil {
		extracted, err := o.extractor.ExtractResume(ctx, norm.Text)
		if err != nil {
			log.Printf("structured extraction failed for %s, falling back to heuristics: %v", sourceName, err)
		} else {
			external = extracted
		}
	}

	result := &IngestResult{
		Record:  assemble.Assemble(norm.Text, sourceName, external),
		Usable:  norm.Usable,
		UsedLLM: external != nil,
	}

	id, err := o.store.Save(ctx, result.Record)
	if err != nil {
		result.SaveErr = err
		return result, nil
	}
	result.RecordID = id
	return result, nil
}

// IngestDocuments runs a batch of documents with bounded concurrency,
// preserving input order in the results. The first hard failure cancels the
// remaining work; save failures are per-result partial successes and do not
// cancel anything.
func (o *Orchestrator) IngestDocuments(ctx context.Context, docs []types.RawDocument) ([]*IngestResult, error) {
	results := make([]*IngestResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ingestConcurrency)
	for i, doc := range docs {
		g.Go(func() error {
			result, err := o.IngestDocument(gctx, doc)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Candidates returns the current candidate pool from the store.
func (o *Orchestrator) Candidates(ctx context.Context) ([]types.CandidateRecord, error) {
	return o.store.FetchAll(ctx)
}

// MatchPool re-fetches the candidate pool and matches it against the job
// description text. The pool is read fresh on every call so newly ingested
// résumés are always considered.
func (o *Orchestrator) MatchPool(ctx context.Context, jobDescription string) (*types.MatchOutcome, error) {
	pool, err := o.store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return o.MatchAgainstPool(jobDescription, pool)
}

// MatchAgainstPool matches an explicit candidate pool without touching the
// store. This is the pure core boundary: no I/O, no shared state.
func (o *Orchestrator) MatchAgainstPool(jobDescription string, pool []types.CandidateRecord) (*types.MatchOutcome, error) {
	norm := normalize.Normalize(jobDescription)
	return matching.Match(norm.Text, pool)
}
