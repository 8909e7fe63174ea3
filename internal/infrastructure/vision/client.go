package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/vinolens/backend/internal/domain"
)

// Client handles communication with the external label-text-recognition
// service. One attempt per image: retry management for the remote OCR
// collaborator is explicitly out of scope, a failed recognition surfaces
// upstream as a missing text.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new recognition service client
func NewClient(apiKey, baseURL string) *Client {
	// Recognition quotas are per minute; 60/min with a small burst keeps
	// a full batch under the limit
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request/response logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// RecognizeText asks the recognition service for the text blocks of one
// photographed label
func (c *Client) RecognizeText(ctx context.Context, imageRef string) (*domain.RecognitionResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/recognize", c.baseURL)
	params := url.Values{}
	params.Add("image_ref", imageRef)
	params.Add("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	if c.debug {
		log.Printf("[VISION] RecognizeText for image: %s", imageRef)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "VinoLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVisionAPIFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNoTextRecognized
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if c.debug {
			log.Printf("[VISION] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrVisionAPIFailure, resp.StatusCode)
	}

	var recognition domain.RecognitionResponse
	if err := json.NewDecoder(resp.Body).Decode(&recognition); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(recognition.Blocks) == 0 {
		return nil, domain.ErrNoTextRecognized
	}

	if c.debug {
		log.Printf("[VISION] %d text blocks for image: %s", len(recognition.Blocks), imageRef)
	}

	return &recognition, nil
}
