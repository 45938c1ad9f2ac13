// Package pipeline orchestrates batch resume ingestion: document text
// extraction, normalization, field extraction, and candidate persistence.
package pipeline

import (
	"context"
	"errors"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hr-screener/internal/db"
	"github.com/jonathan/hr-screener/internal/ingestion"
	"github.com/jonathan/hr-screener/internal/parsing"
	"github.com/jonathan/hr-screener/internal/types"
)

// CandidateStore is the subset of storage the importer needs.
type CandidateStore interface {
	CreateCandidate(ctx context.Context, c db.NewCandidate) (uuid.UUID, error)
}

// Document is one resume file queued for import.
type Document struct {
	Filename string
	Data     []byte
}

// ItemResult records the outcome for a single document. Exactly one of
// Profile or Err is meaningful.
type ItemResult struct {
	Filename string
	Profile  types.CandidateProfile
	Saved    bool
	Err      error
}

// BatchResult aggregates the outcomes of an import run.
type BatchResult struct {
	Items      []ItemResult
	Imported   int
	Duplicates int
	Failed     int
}

// Importer runs resume documents through the extraction pipeline and stores
// the resulting candidates.
type Importer struct {
	store    CandidateStore
	keywords *parsing.RoleKeywordMap
	logger   *zap.Logger
}

// NewImporter constructs an importer. A nil keyword map falls back to the
// built-in role keywords; a nil logger is replaced with a no-op.
func NewImporter(store CandidateStore, keywords *parsing.RoleKeywordMap, logger *zap.Logger) *Importer {
	if keywords == nil {
		keywords = parsing.DefaultRoleKeywords()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{store: store, keywords: keywords, logger: logger}
}

// Keywords exposes the role detection mappings in use.
func (imp *Importer) Keywords() *parsing.RoleKeywordMap {
	return imp.keywords
}

// ImportOne extracts fields from a single document and persists the
// candidate. Duplicate phone numbers are reported via db.ErrDuplicatePhone.
func (imp *Importer) ImportOne(ctx context.Context, doc Document) ItemResult {
	res := ItemResult{Filename: doc.Filename}

	text, err := ingestion.ExtractDocumentText(doc.Filename, doc.Data)
	if err != nil {
		res.Err = err
		return res
	}

	normalized := parsing.NormalizeText(text)
	profile := parsing.ExtractFields(normalized, imp.keywords)
	res.Profile = profile
	if profile.IsEmpty() {
		imp.logger.Warn("no fields extracted from resume", zap.String("file", doc.Filename))
	}

	if imp.store != nil {
		_, err := imp.store.CreateCandidate(ctx, db.NewCandidate{
			Name:       profile.Name,
			Phone:      profile.Phone,
			Email:      profile.Email,
			JobTitle:   profile.DetectedRole,
			ResumeText: normalized,
		})
		if err != nil {
			res.Err = err
			return res
		}
		res.Saved = true
	}
	return res
}

// ImportBatch processes documents concurrently. Each document succeeds or
// fails on its own; one bad file never aborts the batch. Results are returned
// in input order.
func (imp *Importer) ImportBatch(ctx context.Context, docs []Document) BatchResult {
	items := make([]ItemResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, doc := range docs {
		// Each goroutine owns its slot, so no locking is needed.
		g.Go(func() error {
			items[i] = imp.ImportOne(gctx, doc)
			return nil
		})
	}
	_ = g.Wait()

	result := BatchResult{Items: items}
	for _, item := range items {
		switch {
		case item.Err == nil:
			result.Imported++
		case isDuplicate(item.Err):
			result.Duplicates++
		default:
			result.Failed++
		}
	}

	imp.logger.Info("resume batch imported",
		zap.Int("total", len(docs)),
		zap.Int("imported", result.Imported),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("failed", result.Failed))
	return result
}

func isDuplicate(err error) bool {
	return errors.Is(err, db.ErrDuplicatePhone)
}
