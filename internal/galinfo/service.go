// Package galinfo orchestrates the lookup pipeline: keyword resolution,
// publisher enrichment, summary rendering and cover conversion.
package galinfo

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Hxfrzc/galinfo/internal/cover"
	apperrors "github.com/Hxfrzc/galinfo/internal/errors"
	"github.com/Hxfrzc/galinfo/internal/summary"
	"github.com/Hxfrzc/galinfo/internal/ymgal"
)

const defaultTimeout = 30 * time.Second

// Result is one display-ready lookup outcome. The caller owns ImagePath and
// removes it after use (see Cleanup).
type Result struct {
	Keyword   string
	Text      string
	ImagePath string
}

// FuzzyResult pairs a fuzzy lookup's corrected keyword with the result of
// the follow-up accurate lookup.
type FuzzyResult struct {
	Corrected string
	Result    *Result
}

// Service resolves keywords into display-ready results.
type Service struct {
	client          *ymgal.Client
	workDir         string
	strictPublisher bool
	timeout         time.Duration
}

// New creates a Service and ensures the cover work directory exists.
func New(client *ymgal.Client, workDir string, opts ...ServiceOption) (*Service, error) {
	if err := cover.EnsureWorkDir(workDir); err != nil {
		return nil, err
	}

	s := &Service{
		client:          client,
		workDir:         workDir,
		strictPublisher: true,
		timeout:         defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ServiceOption is a functional option for configuring the Service.
type ServiceOption func(*Service)

// WithStrictPublisher controls the policy when a publisher lookup fails:
// strict aborts the whole lookup, non-strict degrades the record to an
// unknown publisher.
func WithStrictPublisher(strict bool) ServiceOption {
	return func(s *Service) {
		s.strictPublisher = strict
	}
}

// WithTimeout bounds a single lookup pipeline end to end.
func WithTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// Lookup resolves a keyword via accurate search, then runs publisher
// enrichment plus summary rendering in parallel with the cover pipeline.
func (s *Service) Lookup(ctx context.Context, keyword string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rec, err := s.client.SearchGame(ctx, keyword)
	if err != nil {
		return nil, err
	}

	var text, imagePath string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		merged, err := s.enrich(gctx, rec)
		if err != nil {
			return err
		}
		text = summary.Render(merged)
		return nil
	})
	g.Go(func() error {
		path, err := cover.FetchAndConvert(gctx, rec.CoverURL, s.workDir)
		imagePath = path
		return err
	})

	if err := g.Wait(); err != nil {
		// The cover may have been converted before the other branch failed;
		// nobody will consume it, so reclaim it now.
		s.Cleanup(imagePath)
		return nil, err
	}

	return &Result{Keyword: keyword, Text: text, ImagePath: imagePath}, nil
}

// FuzzyLookup resolves an approximate keyword to the catalog's top candidate
// and runs an accurate lookup with that exact name.
func (s *Service) FuzzyLookup(ctx context.Context, keyword string) (*FuzzyResult, error) {
	listCtx, cancel := context.WithTimeout(ctx, s.timeout)
	corrected, err := s.client.ListSearch(listCtx, keyword, 1, 10)
	cancel()
	if err != nil {
		return nil, err
	}

	result, err := s.Lookup(ctx, corrected)
	if err != nil {
		return nil, err
	}

	return &FuzzyResult{Corrected: corrected, Result: result}, nil
}

// PublisherInfo fetches a standalone organization record, the info-only
// counterpart to the merge performed during Lookup.
func (s *Service) PublisherInfo(ctx context.Context, orgID int64) (*ymgal.Publisher, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.OrgInfo(ctx, orgID)
}

// enrich resolves the record's publisher reference, if any, into a merged
// record. A record without a reference merges against the unknown sentinel
// without touching the network.
func (s *Service) enrich(ctx context.Context, rec *ymgal.GameRecord) (*ymgal.MergedRecord, error) {
	if rec.PublisherID == 0 {
		return rec.WithPublisher(ymgal.Unknown, ymgal.Unknown), nil
	}

	merged, err := s.client.MergeOrg(ctx, rec)
	if err != nil {
		if !s.strictPublisher && apperrors.IsOrgNotFoundError(err) {
			slog.Warn("Publisher lookup failed, degrading to unknown", "org_id", rec.PublisherID, "error", err)
			return rec.WithPublisher(ymgal.Unknown, ymgal.Unknown), nil
		}
		return nil, err
	}
	return merged, nil
}

// Cleanup removes a converted cover once the caller is done with it.
// Failure costs disk space, not correctness, so it is logged and swallowed.
func (s *Service) Cleanup(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		slog.Error("Failed to remove converted cover", "path", path, "error", err)
	}
}
