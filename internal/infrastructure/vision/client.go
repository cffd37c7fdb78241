// Package vision implements the text-recognition collaborator on the
// Gemini API: it transcribes a photographed beverage label into plain
// text for the verification engine.
package vision

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/labelcheck/backend/internal/domain"
)

const transcriptionPrompt = `Transcribe all text visible on this beverage label image. Return the printed text exactly as it appears, with a line break between label sections. Do not describe the image, do not add commentary. If no readable text is present, return an empty response.`

// Client handles label-text extraction through the Gemini vision API
type Client struct {
	genaiClient *genai.Client
	model       string
	rateLimiter *rate.Limiter
	timeout     time.Duration
	debug       bool
}

// NewClient creates a new vision client
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("vision API key is required")
	}
	if model == "" {
		return nil, fmt.Errorf("vision model name is required")
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	// Stay well inside the Gemini per-minute quota
	limiter := rate.NewLimiter(rate.Limit(0.5), 5)

	return &Client{
		genaiClient: genaiClient,
		model:       model,
		rateLimiter: limiter,
		timeout:     60 * time.Second,
	}, nil
}

// SetDebug enables debug logging for API calls
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// ExtractText transcribes the label image to plain text. A blank
// transcription maps to domain.ErrNoTextDetected so callers can treat
// it the same as empty extracted text.
func (c *Client) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("%w: empty image payload", domain.ErrVisionFailure)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
				{Text: transcriptionPrompt},
			},
		},
	}

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter error: %w", err)
		}

		text, err := c.generate(ctx, contents)
		if err == nil {
			if c.debug {
				log.Printf("[VISION] attempt %d: transcribed %d characters", attempt, len(text))
			}
			if text == "" {
				return "", domain.ErrNoTextDetected
			}
			return text, nil
		}

		lastErr = err
		if c.debug {
			log.Printf("[VISION] attempt %d failed: %v", attempt, err)
		}
		if attempt < 3 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(exponentialBackoff(attempt)):
			}
		}
	}

	return "", fmt.Errorf("%w: %v", domain.ErrVisionFailure, lastErr)
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.Text()), nil
}

// exponentialBackoff returns the wait duration before the next retry
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}
