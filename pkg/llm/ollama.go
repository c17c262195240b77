// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/filesearch-dev/filesearch/pkg/httpclientutil"
)

const DefaultOllamaURL = "http://localhost:11434"

// OllamaClient completes prompts with the native Ollama generate API,
// asking for JSON output.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaClient(baseURL, model string, hc *http.Client) (*OllamaClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("ollama client requires a model identifier")
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &OllamaClient{
		baseURL: normalizeOllamaBaseURL(baseURL),
		model:   model,
		client:  hc,
	}, nil
}

func normalizeOllamaBaseURL(baseURL string) string {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		return DefaultOllamaURL
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "http://" + u
	}
	return strings.TrimRight(u, "/")
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Format string `json:"format,omitempty"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
	Error    string `json:"error,omitempty"`
}

func (c *OllamaClient) BaseURL() string {
	return c.baseURL
}

func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	s, err := c.generate(ctx, prompt)
	if err != nil {
		return "", &BackendError{Backend: Ollama, URL: c.baseURL, Err: err}
	}
	return s, nil
}

func (c *OllamaClient) generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(ollamaGenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Format: "json",
	})
	if err != nil {
		return "", err
	}
	resp, err := httpclientutil.Post(ctx, c.client, c.baseURL+"/api/generate", "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var res ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if res.Error != "" {
		return "", errors.New(res.Error)
	}
	return res.Response, nil
}
