// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package llm provides the text completion backends used to plan user queries.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Completer returns the completion of a single prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Backend = string

const (
	Ollama Backend = "ollama"
	OpenAI Backend = "openai"
)

const (
	DefaultBackend = Ollama
	DefaultModel   = "llama3.2:latest"
)

// Backends lists the supported backends.
func Backends() []Backend {
	return []Backend{Ollama, OpenAI}
}

type Options struct {
	Backend Backend
	// BaseURL is the endpoint of the backend; empty means the backend default.
	BaseURL string
	Model   string
	APIKey  string
	// Timeout bounds a single completion; zero means no timeout.
	Timeout time.Duration
	// HTTPClient overrides the HTTP client; Timeout is ignored when set.
	HTTPClient *http.Client
}

// New creates the Completer selected by opts.Backend.
func New(opts Options) (Completer, error) {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	switch strings.ToLower(opts.Backend) {
	case "", Ollama:
		c, err := NewOllamaClient(opts.BaseURL, model, hc)
		if err != nil {
			return nil, err
		}
		return c, nil
	case OpenAI:
		c, err := NewOpenAIClient(opts.BaseURL, model, opts.APIKey, hc)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q (expected one of %s)", opts.Backend, strings.Join(Backends(), ", "))
	}
}

// BackendError is returned when the completion backend cannot be reached or
// answers with an error.
type BackendError struct {
	Backend Backend
	URL     string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s completion at %s failed: %v", e.Backend, e.URL, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
