package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/extract"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/menu"
)

// Builder runs a menu build over a set of URLs.
type Builder interface {
	Build(ctx context.Context, urls []string) (*extract.Result, error)
}

// BuildHandler serves POST /v1/menus/build.
type BuildHandler struct {
	logger  zerolog.Logger
	builder Builder
}

// NewBuildHandler creates a build handler.
func NewBuildHandler(logger zerolog.Logger, builder Builder) *BuildHandler {
	return &BuildHandler{
		logger:  logger.With().Str("handler", "build").Logger(),
		builder: builder,
	}
}

// BuildRequest is the request body for a menu build.
type BuildRequest struct {
	URLs []string `json:"urls"`
}

// BuildResponse is the response body for a successful build.
type BuildResponse struct {
	RunID          string              `json:"run_id"`
	IsValidMenu    string              `json:"is_valid_menu"`
	InputQuality   int                 `json:"input_quality"`
	MenuComplexity string              `json:"menu_complexity"`
	Confidence     int                 `json:"confidence"`
	Menu           domain.Menu         `json:"menu"`
	Rows           []menu.FlatRow      `json:"rows"`
	SkippedURLs    []domain.SkippedURL `json:"skipped_urls"`
	DurationMillis int64               `json:"duration_ms"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Build handles a menu build request.
func (h *BuildHandler) Build(w http.ResponseWriter, r *http.Request) {
	var req BuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.URLs) == 0 {
		h.writeError(w, http.StatusBadRequest, "at least one URL is required")
		return
	}

	result, err := h.builder.Build(r.Context(), req.URLs)
	if err != nil {
		h.logger.Error().Err(err).Strs("urls", req.URLs).Msg("Menu build failed")
		h.writeError(w, statusForError(err), err.Error())
		return
	}

	resp := BuildResponse{
		RunID:          result.RunID.String(),
		IsValidMenu:    result.IsValidMenu,
		InputQuality:   result.InputQuality,
		MenuComplexity: result.MenuComplexity,
		Confidence:     result.Confidence,
		Menu:           result.Menu,
		Rows:           menu.Flatten(result.Menu),
		SkippedURLs:    result.Skipped,
		DurationMillis: result.Duration.Milliseconds(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *BuildHandler) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// statusForError maps domain error types onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case domain.IsErrorType(err, domain.ErrorTypeValidation):
		return http.StatusBadRequest
	case domain.IsErrorType(err, domain.ErrorTypeCapabilityTimeout):
		return http.StatusGatewayTimeout
	case domain.IsErrorType(err, domain.ErrorTypeCapability),
		domain.IsErrorType(err, domain.ErrorTypeSchema):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
