// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/option"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

func TestOllamaComplete(t *testing.T) {
	var got ollamaGenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, cmp.Equal("/api/generate", r.URL.Path))
		assert.Check(t, cmp.Equal(http.MethodPost, r.Method))
		assert.Check(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(ollamaGenerateResponse{
			Model:    got.Model,
			Response: `{"action":"answer","answer":"hi"}`,
			Done:     true,
		})
	}))
	defer srv.Close()

	c, err := NewOllamaClient(srv.URL+"/", "llama3.2:latest", nil)
	assert.NilError(t, err)
	assert.Equal(t, srv.URL, c.BaseURL())

	out, err := c.Complete(context.Background(), "where is my cv?")
	assert.NilError(t, err)
	assert.Equal(t, `{"action":"answer","answer":"hi"}`, out)
	assert.DeepEqual(t, ollamaGenerateRequest{
		Model:  "llama3.2:latest",
		Prompt: "where is my cv?",
		Format: "json",
	}, got)
}

func TestOllamaError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"model not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewOllamaClient(srv.URL, "missing", nil)
	assert.NilError(t, err)
	_, err = c.Complete(context.Background(), "q")
	var berr *BackendError
	assert.Assert(t, errors.As(err, &berr))
	assert.Equal(t, Ollama, berr.Backend)
	assert.Equal(t, srv.URL, berr.URL)
	assert.ErrorContains(t, err, "unexpected HTTP status 404")
}

func TestNormalizeOllamaBaseURL(t *testing.T) {
	cases := map[string]string{
		"":                          DefaultOllamaURL,
		"  ":                        DefaultOllamaURL,
		"10.0.0.5:11434":            "http://10.0.0.5:11434",
		"https://ollama.example/":   "https://ollama.example",
		"http://localhost:11434///": "http://localhost:11434",
	}
	for in, expected := range cases {
		assert.Check(t, cmp.Equal(expected, normalizeOllamaBaseURL(in)), "input %q", in)
	}
}

func TestOpenAIComplete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Check(t, cmp.Equal("/v1/chat/completions", r.URL.Path))
		assert.Check(t, cmp.Equal("Bearer sk-test", r.Header.Get("Authorization")))
		assert.Check(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 0,
  "model": "gpt-test",
  "choices": [
    {"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "{\"action\":\"clarify\",\"question\":\"Which folder?\"}"}}
  ]
}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient(srv.URL+"/v1", "gpt-test", "sk-test", srv.Client(), option.WithMaxRetries(0))
	assert.NilError(t, err)
	assert.Equal(t, srv.URL+"/v1/", c.BaseURL())

	out, err := c.Complete(context.Background(), "find it")
	assert.NilError(t, err)
	assert.Equal(t, `{"action":"clarify","question":"Which folder?"}`, out)

	assert.Equal(t, "gpt-test", got["model"])
	assert.DeepEqual(t, map[string]any{"type": "json_object"}, got["response_format"])
	messages, ok := got["messages"].([]any)
	assert.Assert(t, ok)
	assert.Assert(t, cmp.Len(messages, 1))
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "find it", msg["content"])
}

func TestOpenAIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	c, err := NewOpenAIClient(srv.URL, "gpt-test", "sk-bad", srv.Client(), option.WithMaxRetries(0))
	assert.NilError(t, err)
	_, err = c.Complete(context.Background(), "q")
	var berr *BackendError
	assert.Assert(t, errors.As(err, &berr))
	assert.Equal(t, OpenAI, berr.Backend)
}

func TestNew(t *testing.T) {
	c, err := New(Options{})
	assert.NilError(t, err)
	oc, ok := c.(*OllamaClient)
	assert.Assert(t, ok)
	assert.Equal(t, DefaultModel, oc.model)

	c, err = New(Options{Backend: "OpenAI", BaseURL: "http://127.0.0.1:8080/v1", Model: "local"})
	assert.NilError(t, err)
	_, ok = c.(*OpenAIClient)
	assert.Assert(t, ok)

	_, err = New(Options{Backend: "bard"})
	assert.ErrorContains(t, err, `unknown llm backend "bard"`)
}
