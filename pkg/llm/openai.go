// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const DefaultOpenAIURL = "https://api.openai.com/v1/"

// OpenAIClient completes prompts with an OpenAI-compatible chat completions
// endpoint, such as OpenAI itself, Ollama's /v1 or llama.cpp's server.
type OpenAIClient struct {
	baseURL string
	model   string
	client  openai.Client
}

// NewOpenAIClient creates a client for the chat completions API at baseURL.
// extra options are applied after the ones derived from the arguments.
func NewOpenAIClient(baseURL, model, apiKey string, hc *http.Client, extra ...option.RequestOption) (*OpenAIClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("openai client requires a model identifier")
	}
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = DefaultOpenAIURL
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	opts := []option.RequestOption{option.WithBaseURL(u)}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if hc != nil {
		opts = append(opts, option.WithHTTPClient(hc))
	}
	opts = append(opts, extra...)
	return &OpenAIClient{
		baseURL: u,
		model:   model,
		client:  openai.NewClient(opts...),
	}, nil
}

func (c *OpenAIClient) BaseURL() string {
	return c.baseURL
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(0),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", &BackendError{Backend: OpenAI, URL: c.baseURL, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &BackendError{Backend: OpenAI, URL: c.baseURL, Err: errors.New("no choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}
