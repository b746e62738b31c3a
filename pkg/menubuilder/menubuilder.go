// Package menubuilder is the public entry point for building structured
// menus from menu document URLs.
package menubuilder

import (
	"context"
	"image"
	"io"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/config"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/extract"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/fetch"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/images"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/llm"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/menu"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/observability"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/pdf"
)

// Re-export result types for the public API
type (
	Result     = extract.Result
	SkippedURL = domain.SkippedURL
	Menu       = domain.Menu
	FlatRow    = menu.FlatRow
)

// Client is the main entry point for the menu builder library
type Client struct {
	service *extract.Service
	logger  zerolog.Logger
}

// NewClient creates a client from environment configuration. A .env file is
// loaded when present; OPENAI_API_KEY is required.
func NewClient() (*Client, error) {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}

	return NewClientWithConfig(cfg)
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(cfg *config.Config) (*Client, error) {
	if cfg.LLM.APIKey == "" {
		return nil, domain.ConfigError("OPENAI_API_KEY not set", nil)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: "menu-builder",
	})

	fetcher := fetch.NewClient(cfg.Fetch, logger)
	rasterizer := pdf.NewRasterizer(cfg.Pipeline.RenderDPI)
	extractor := llm.NewClient(cfg.LLM, logger)

	var detector images.Detector = images.NewTesseractDetector(cfg.Orientation.TesseractPath)
	if !cfg.Orientation.Enabled {
		detector = noopDetector{}
	}
	corrector := images.NewCorrector(detector, cfg.Orientation.ConfidenceThreshold, logger)

	service := extract.NewService(fetcher, rasterizer, corrector, extractor, cfg.Pipeline.Workers, logger)

	return &Client{service: service, logger: logger}, nil
}

// Build fetches the given menu URLs and returns the structured, normalized
// menu along with the run report.
func (c *Client) Build(ctx context.Context, urls []string) (*Result, error) {
	return c.service.Build(ctx, urls)
}

// Flatten converts a menu into tabular report rows.
func Flatten(m Menu) []FlatRow {
	return menu.Flatten(m)
}

// WriteCSV writes report rows as CSV, header included.
func WriteCSV(w io.Writer, rows []FlatRow) error {
	return menu.WriteCSV(w, rows)
}

// noopDetector disables orientation correction by never being confident.
type noopDetector struct{}

func (noopDetector) DetectOrientation(ctx context.Context, img image.Image) (images.OSD, error) {
	return images.OSD{}, nil
}
