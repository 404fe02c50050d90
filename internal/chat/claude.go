// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// systemPrompt frames the assistant for visitors of the site.
const systemPrompt = "Eres el asistente de Casa Pjoxante, una organización " +
	"sin fines de lucro dedicada a la educación popular, la investigación y " +
	"el buen vivir. Responde en español, con calidez y brevedad, sobre los " +
	"cursos, proyectos y servicios de la casa."

// claudeResponder implements Responder using the Anthropic Messages API
// (POST /v1/messages).
type claudeResponder struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewClaude creates an Anthropic-backed responder. Returns nil when no
// API key is configured, which makes the Service fall back to the canned
// reply.
func NewClaude(apiKey, model, baseURL string) Responder {
	if apiKey == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	return &claudeResponder{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Reply sends the visitor message to the Anthropic Messages API and
// returns the first text block of the response.
func (c *claudeResponder) Reply(ctx context.Context, message string) (string, error) {
	body := claudeRequest{
		Model:     c.model,
		MaxTokens: 1024,
		System:    systemPrompt,
		Messages: []claudeMessage{
			{Role: "user", Content: message},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("claude marshal: %w", err)
	}

	url := c.baseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("claude request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("claude read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("claude API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result claudeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("claude unmarshal: %w", err)
	}

	for _, block := range result.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", fmt.Errorf("claude: no text content in response")
}

// --- Anthropic Messages API types ---

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	System    string          `json:"system,omitempty"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeResponse struct {
	Content []claudeContentBlock `json:"content"`
}
