// Package llm talks to the OpenAI-style chat completions API that performs
// the visual menu extraction.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/config"
	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
)

// Client handles communication with the chat completions API
type Client struct {
	baseURL        string
	apiKey         string
	model          string
	requestTimeout time.Duration
	maxRetries     int
	httpClient     *http.Client
	logger         zerolog.Logger
}

// Message represents a chat message
type Message struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// ContentPart represents a part of message content (text or image)
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL represents an image URL in the message
type ImageURL struct {
	URL string `json:"url"`
}

// ResponseFormat requests a specific output format from the API
type ResponseFormat struct {
	Type string `json:"type"`
}

// Request represents the API request structure
type Request struct {
	Model          string         `json:"model"`
	Messages       []Message      `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat ResponseFormat `json:"response_format"`
}

// Response represents the API response structure
type Response struct {
	ID      string   `json:"id"`
	Choices []Choice `json:"choices"`
}

// Choice represents a single completion choice
type Choice struct {
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

// ChoiceMessage is the assistant message inside a choice
type ChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewClient creates a new capability client from configuration.
func NewClient(cfg config.LLMConfig, logger zerolog.Logger) *Client {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	return &Client{
		baseURL:        cfg.BaseURL,
		apiKey:         cfg.APIKey,
		model:          cfg.Model,
		requestTimeout: cfg.RequestTimeout,
		maxRetries:     maxRetries,
		httpClient:     &http.Client{},
		logger:         logger.With().Str("component", "llm").Logger(),
	}
}

// ExtractMenu sends the prepared page images to the capability and returns
// the raw response text. Extraction is deterministic: temperature is pinned
// to zero and a JSON object response is requested. A deadline expiry maps to
// a capability timeout error; other terminal failures map to capability
// errors. Both are fatal for the run.
func (c *Client) ExtractMenu(ctx context.Context, images []domain.EncodedImage) (string, error) {
	if len(images) == 0 {
		return "", domain.ValidationError("no images to extract from", nil)
	}

	if c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	body, err := json.Marshal(c.buildRequest(images))
	if err != nil {
		return "", domain.CapabilityError("failed to marshal request", err)
	}

	c.logger.Debug().
		Int("images", len(images)).
		Str("model", c.model).
		Str("prompt_version", PromptVersion).
		Msg("Sending extraction request")

	resp, err := c.retryWithBackoff(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		return c.httpClient.Do(req)
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", domain.CapabilityTimeoutError("extraction request timed out", err)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", domain.CapabilityError("extraction request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.CapabilityError("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", domain.CapabilityError(fmt.Sprintf("API returned status %d: %s", resp.StatusCode, string(respBody)), nil)
	}

	var parsed Response
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", domain.CapabilityError("failed to decode response", err)
	}
	if len(parsed.Choices) == 0 {
		return "", domain.CapabilityError("response contained no choices", nil)
	}

	return parsed.Choices[0].Message.Content, nil
}

// buildRequest assembles the system instruction plus one user message whose
// content is the extraction prompt followed by the page images, in order.
func (c *Client) buildRequest(images []domain.EncodedImage) *Request {
	userContent := make([]ContentPart, 0, len(images)+1)
	userContent = append(userContent, ContentPart{
		Type: "text",
		Text: menuExtractionPrompt,
	})

	for _, img := range images {
		userContent = append(userContent, ContentPart{
			Type: "image_url",
			ImageURL: &ImageURL{
				URL: "data:image/png;base64," + img.Base64PNG,
			},
		})
	}

	return &Request{
		Model: c.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: []ContentPart{{Type: "text", Text: systemInstructionPrompt}},
			},
			{
				Role:    "user",
				Content: userContent,
			},
		},
		Temperature:    0,
		ResponseFormat: ResponseFormat{Type: "json_object"},
	}
}
