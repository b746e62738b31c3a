// Package extract orchestrates the menu build pipeline: fetch, prepare,
// extract, parse, normalize.
package extract

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/images"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/menu"
)

// Fetcher downloads and classifies one menu URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*domain.SourceDocument, error)
}

// Rasterizer renders PDF bytes into page images.
type Rasterizer interface {
	Rasterize(ctx context.Context, data []byte) ([]image.Image, error)
}

// Corrector fixes image orientation, falling back to the original on failure.
type Corrector interface {
	Correct(ctx context.Context, img image.Image) image.Image
}

// MenuExtractor performs the visual extraction over the prepared images.
type MenuExtractor interface {
	ExtractMenu(ctx context.Context, imgs []domain.EncodedImage) (string, error)
}

// Service runs menu builds.
type Service struct {
	fetcher    Fetcher
	rasterizer Rasterizer
	corrector  Corrector
	extractor  MenuExtractor
	workers    int
	logger     zerolog.Logger
}

// NewService creates a build service. workers bounds concurrent document
// preparation.
func NewService(fetcher Fetcher, rasterizer Rasterizer, corrector Corrector, extractor MenuExtractor, workers int, logger zerolog.Logger) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		fetcher:    fetcher,
		rasterizer: rasterizer,
		corrector:  corrector,
		extractor:  extractor,
		workers:    workers,
		logger:     logger.With().Str("component", "extract").Logger(),
	}
}

// Result is the outcome of one menu build run.
type Result struct {
	RunID          uuid.UUID           `json:"run_id"`
	IsValidMenu    string              `json:"is_valid_menu"`
	InputQuality   int                 `json:"input_quality"`
	MenuComplexity string              `json:"menu_complexity"`
	Confidence     int                 `json:"confidence"`
	Menu           domain.Menu         `json:"menu"`
	Raw            *domain.Extraction  `json:"-"`
	Skipped        []domain.SkippedURL `json:"skipped_urls"`
	Duration       time.Duration       `json:"duration"`
}

// urlResult holds the prepared images or skip reason for one URL. Results
// are indexed by URL position so output order never depends on completion
// order.
type urlResult struct {
	images  []domain.EncodedImage
	skipped *domain.SkippedURL
}

// Build runs the full pipeline over the given URLs. Per-URL failures skip
// that URL and are reported in the result; schema and capability failures
// abort the run with no partial output.
func (s *Service) Build(ctx context.Context, urls []string) (*Result, error) {
	if len(urls) == 0 {
		return nil, domain.ValidationError("at least one menu URL is required", nil)
	}

	runID := uuid.New()
	start := time.Now()
	logger := s.logger.With().Str("run_id", runID.String()).Logger()

	logger.Info().Int("urls", len(urls)).Msg("Starting menu build")

	results := s.prepareDocuments(ctx, urls, logger)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var encoded []domain.EncodedImage
	var skipped []domain.SkippedURL
	for _, res := range results {
		if res.skipped != nil {
			skipped = append(skipped, *res.skipped)
			continue
		}
		encoded = append(encoded, res.images...)
	}

	if len(encoded) == 0 {
		return nil, domain.ValidationError("no usable menu documents among the given URLs", nil)
	}

	logger.Info().
		Int("images", len(encoded)).
		Int("skipped", len(skipped)).
		Msg("Documents prepared, requesting extraction")

	raw, err := s.extractor.ExtractMenu(ctx, encoded)
	if err != nil {
		return nil, err
	}

	extraction, err := menu.ParseExtraction(raw)
	if err != nil {
		return nil, err
	}

	if n := menu.CountSingleOptionExtras(extraction.MenuOutput); n > 0 {
		logger.Warn().Int("count", n).Msg("Extraction contains extras with fewer than two options")
	}

	normalized := menu.Normalize(extraction.MenuOutput)

	result := &Result{
		RunID:          runID,
		IsValidMenu:    extraction.IsValidMenu,
		InputQuality:   extraction.InputQuality,
		MenuComplexity: extraction.MenuComplexity,
		Confidence:     extraction.Confidence,
		Menu:           normalized,
		Raw:            extraction,
		Skipped:        skipped,
		Duration:       time.Since(start),
	}

	logger.Info().
		Str("is_valid_menu", result.IsValidMenu).
		Str("menu_complexity", result.MenuComplexity).
		Int("confidence", result.Confidence).
		Int("categories", len(result.Menu.Categories)).
		Dur("duration", result.Duration).
		Msg("Menu build finished")

	return result, nil
}

// prepareDocuments fetches and encodes every URL under a bounded worker
// pool. The returned slice is indexed by URL position.
func (s *Service) prepareDocuments(ctx context.Context, urls []string, logger zerolog.Logger) []urlResult {
	results := make([]urlResult, len(urls))
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return
			}

			results[idx] = s.prepareOne(ctx, idx, url, logger)
		}(i, url)
	}

	wg.Wait()
	return results
}

// prepareOne turns one URL into encoded page images or a skip record.
func (s *Service) prepareOne(ctx context.Context, idx int, url string, logger zerolog.Logger) urlResult {
	skip := func(reason string) urlResult {
		logger.Warn().Str("url", url).Str("reason", reason).Msg("Skipping URL")
		return urlResult{skipped: &domain.SkippedURL{URL: url, Reason: reason}}
	}

	doc, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return skip(err.Error())
	}

	switch doc.Kind {
	case domain.KindImage:
		img, err := images.Decode(doc.Data)
		if err != nil {
			return skip(err.Error())
		}
		img = s.corrector.Correct(ctx, img)
		encoded, err := images.EncodePNGBase64(img)
		if err != nil {
			return skip(err.Error())
		}
		return urlResult{images: []domain.EncodedImage{{URLIndex: idx, PageIndex: 0, Base64PNG: encoded}}}

	case domain.KindPDF:
		pages, err := s.rasterizer.Rasterize(ctx, doc.Data)
		if err != nil {
			return skip(err.Error())
		}
		out := make([]domain.EncodedImage, 0, len(pages))
		for pageIdx, page := range pages {
			encoded, err := images.EncodePNGBase64(page)
			if err != nil {
				return skip(err.Error())
			}
			out = append(out, domain.EncodedImage{URLIndex: idx, PageIndex: pageIdx, Base64PNG: encoded})
		}
		return urlResult{images: out}

	default:
		return skip("unsupported content type")
	}
}
