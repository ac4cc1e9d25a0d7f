// Package claude implements a minimal Anthropic Claude API client covering
// the single non-streaming messages call the review pipeline needs.
package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tildaslashalef/prmind/internal/loggy"
)

// Config holds the settings needed to construct a Client
type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Model      string
	MaxTokens  int
	Timeout    time.Duration
}

// Client represents an Anthropic Claude API client.
// It issues exactly one request per call; there is no retry layer.
type Client struct {
	apiKey           string
	baseURL          string
	defaultModel     string
	defaultMaxTokens int
	apiVersion       string
	httpClient       *http.Client
}

// NewClient creates a new Claude client from config
func NewClient(cfg Config) *Client {
	// Ensure baseURL doesn't end with a slash
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "2023-06-01"
	}

	defaultModel := cfg.Model
	if defaultModel == "" {
		defaultModel = "claude-3-sonnet-20240229"
	}

	defaultMaxTokens := cfg.MaxTokens
	if defaultMaxTokens <= 0 {
		defaultMaxTokens = 4000
	}

	return &Client{
		apiKey:           cfg.APIKey,
		baseURL:          baseURL,
		defaultModel:     defaultModel,
		defaultMaxTokens: defaultMaxTokens,
		apiVersion:       apiVersion,
		httpClient:       &http.Client{Timeout: cfg.Timeout},
	}
}

// HasAPIKey reports whether the client was constructed with a credential.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// Messages sends a messages completion request to Claude
func (c *Client) Messages(ctx context.Context, req MessagesRequest) (*MessagesResponse, error) {
	if req.Model == "" {
		req.Model = c.defaultModel
	}

	if req.MaxTokens <= 0 {
		req.MaxTokens = c.defaultMaxTokens
	}

	var resp MessagesResponse
	if err := c.makeRequest(ctx, "POST", "/v1/messages", req, &resp); err != nil {
		return nil, fmt.Errorf("generating completion: %w", err)
	}

	return &resp, nil
}

// makeRequest is a helper function to make a single HTTP request
func (c *Client) makeRequest(ctx context.Context, method, path string, body interface{}, response interface{}) error {
	var bodyReader io.Reader

	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", c.apiVersion)

	loggy.Debug("Sending Claude request", "method", method, "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	loggy.Debug("Claude API response",
		"status", resp.Status,
		"content_length", len(respBody))

	if resp.StatusCode != http.StatusOK {
		loggy.Error("Claude API error response",
			"status", resp.Status,
			"body", string(respBody))
		return c.handleErrorResponse(resp, respBody)
	}

	if err := json.Unmarshal(respBody, response); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// handleErrorResponse processes error responses from the API.
// It attempts to parse the error JSON and return a structured error.
func (c *Client) handleErrorResponse(resp *http.Response, body []byte) error {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.ErrorDetails.Message == "" {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	return &apiErr
}
