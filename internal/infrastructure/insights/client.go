// Package insights is the adapter for the external generative-text service.
// It sends a prompt together with a JSON response schema and parses the
// structured reply. One attempt per call, no retries: the caller treats any
// error as "no insights available".
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bizscale/bizscale-api/internal/config"
	"github.com/bizscale/bizscale-api/internal/domain/entity"
)

// ErrNoAPIKey is returned when the service is called without a configured key.
var ErrNoAPIKey = errors.New("insights: no API key configured")

// Client calls the Gemini generateContent REST endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates an insights client from configuration.
func NewClient(cfg *config.InsightsConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// insightSchema is the response schema the service is asked to conform to:
// an object with a string summary and an array of string recommendations.
var insightSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"summary": map[string]any{"type": "STRING"},
		"recommendations": map[string]any{
			"type":  "ARRAY",
			"items": map[string]any{"type": "STRING"},
		},
	},
	"required": []string{"summary", "recommendations"},
}

// Generate sends the prompt and parses the JSON-shaped reply into an Insight.
func (c *Client) Generate(ctx context.Context, prompt string) (*entity.Insight, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   insightSchema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("insights: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("insights: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insights: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("insights: service returned status %d", resp.StatusCode)
	}

	var reply generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("insights: decode response: %w", err)
	}
	if len(reply.Candidates) == 0 || len(reply.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("insights: empty response")
	}

	var insight entity.Insight
	if err := json.Unmarshal([]byte(reply.Candidates[0].Content.Parts[0].Text), &insight); err != nil {
		return nil, fmt.Errorf("insights: reply did not match schema: %w", err)
	}
	if insight.Summary == "" {
		return nil, errors.New("insights: reply missing summary")
	}
	if insight.Recommendations == nil {
		insight.Recommendations = []string{}
	}
	return &insight, nil
}
