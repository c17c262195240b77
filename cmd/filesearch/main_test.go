// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
	"gotest.tools/v3/fs"

	"github.com/filesearch-dev/filesearch/pkg/chat"
	"github.com/filesearch-dev/filesearch/pkg/filesearch"
	"github.com/filesearch-dev/filesearch/pkg/filesearch/api/server"
	"github.com/filesearch-dev/filesearch/pkg/sandbox"
)

// startDaemon serves a FileSearcher over loopback TCP for the duration of the test.
func startDaemon(t *testing.T, table *sandbox.Table) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NilError(t, err)
	srv := server.New(filesearch.New(table), server.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		assert.NilError(t, <-done)
	})
	return lis.Addr().String()
}

// startOllama answers every generate call with plan.
func startOllama(t *testing.T, plan string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    req.Model,
			"response": plan,
			"done":     true,
		})
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func writeConfig(t *testing.T, llmURL string) string {
	t.Helper()
	y := "llm:\n  backend: ollama\n  model: test-model\n"
	if llmURL != "" {
		y += "  baseURL: " + llmURL + "\n"
	}
	dir := fs.NewDir(t, "config", fs.WithFile("config.yaml", y))
	return dir.Join("config.yaml")
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.SetIn(strings.NewReader(stdin))
	app.SetOut(&out)
	app.SetErr(io.Discard)
	app.SetArgs(args)
	err := app.Execute()
	return out.String(), err
}

func newDocs(t *testing.T) (*fs.Dir, *sandbox.Table) {
	t.Helper()
	docs := fs.NewDir(t, "Documents",
		fs.WithFile("main.py", "print('hi')\n"),
		fs.WithFile("notes{1}.txt", "braces\n"),
		fs.WithDir("src", fs.WithFile("util.PY", "")),
	)
	return docs, sandbox.NewTable(sandbox.Entry{Key: sandbox.Docs, Path: docs.Path()})
}

func TestSearchCommand(t *testing.T) {
	docs, table := newDocs(t)
	addr := startDaemon(t, table)

	out, err := run(t, "", "search", "*.py", "--in", "docs", "--address", addr, "--config", writeConfig(t, ""))
	assert.NilError(t, err)
	assert.Equal(t, "Found 2 matches:\n  - "+docs.Join("main.py")+"\n  - "+docs.Join("src", "util.PY")+"\n", out)

	out, err = run(t, "", "search", "../*", "--address", addr, "--config", writeConfig(t, ""))
	assert.NilError(t, err)
	assert.Equal(t, "Server error: Invalid pattern.\n", out)

	out, err = run(t, "", "search", "*.py", "--in", "music", "--address", addr, "--config", writeConfig(t, ""))
	assert.NilError(t, err)
	assert.Check(t, cmp.Contains(out, "Server error: Invalid base path key."))
}

func TestShowCommand(t *testing.T) {
	docs, table := newDocs(t)
	addr := startDaemon(t, table)

	out, err := run(t, "", "show", "notes{1}.txt", "--address", addr, "--config", writeConfig(t, ""))
	assert.NilError(t, err)
	assert.Equal(t, "Showing full content of: "+docs.Join("notes{1}.txt")+"\n"+
		"Size: 7 bytes\n"+
		"--- BEGIN FILE ---\n"+
		"braces\n"+
		"--- END FILE ---\n", out)

	out, err = run(t, "", "show", "missing.txt", "--in", "docs", "--address", addr, "--config", writeConfig(t, ""))
	assert.NilError(t, err)
	assert.Equal(t, "No file found matching the exact name \"missing.txt\".\n", out)
}

func TestRootsCommand(t *testing.T) {
	docs, table := newDocs(t)
	addr := startDaemon(t, table)

	out, err := run(t, "", "roots", "--address", addr, "--config", writeConfig(t, ""))
	assert.NilError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, 2, len(lines))
	assert.DeepEqual(t, []string{"KEY", "PATH"}, strings.Fields(lines[0]))
	assert.DeepEqual(t, []string{"docs", docs.Path()}, strings.Fields(lines[1]))
}

func TestPlanCommand(t *testing.T) {
	testCases := []struct {
		name     string
		plan     string
		expected map[string]any
	}{
		{
			name: "search",
			plan: `{"action":"search","search":{"file_pattern":"*.py","base_path_key":"docs","include_hidden":false}}`,
			expected: map[string]any{
				"action": "search",
				"search": map[string]any{"file_pattern": "*.py", "base_path_key": "docs", "include_hidden": false},
			},
		},
		{
			name: "show recovered from the query",
			plan: `Sure! {"action":"show","show":{"file_name":"*.md"}}`,
			expected: map[string]any{
				"action": "show",
				"show":   map[string]any{"file_name": "README.md", "include_hidden": false},
			},
		},
		{
			name:     "free text",
			plan:     "I can only search files.",
			expected: map[string]any{"action": "answer", "answer": "I can only search files."},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := writeConfig(t, startOllama(t, tc.plan))
			out, err := run(t, "", "plan", "--config", cfg, "show", "README.md", "please")
			assert.NilError(t, err)
			var got map[string]any
			assert.NilError(t, json.Unmarshal([]byte(out), &got))
			assert.DeepEqual(t, tc.expected, got)
		})
	}
}

func TestPlanCommandInvalidKey(t *testing.T) {
	cfg := writeConfig(t, startOllama(t, `{"action":"search","search":{"file_pattern":"*","base_path_key":"home"}}`))
	_, err := run(t, "", "plan", "--config", cfg, "everything at home")
	assert.ErrorContains(t, err, "invalid base_path_key")
}

func TestChatFromPipe(t *testing.T) {
	docs, table := newDocs(t)
	addr := startDaemon(t, table)
	cfg := writeConfig(t, startOllama(t, `{"action":"search","search":{"file_pattern":"main.*","base_path_key":"docs"}}`))

	out, err := run(t, "find main in docs\n\nexit\nnot reached\n", "--address", addr, "--config", cfg)
	assert.NilError(t, err)
	assert.Equal(t, "Found 1 match:\n  - "+docs.Join("main.py")+"\n", out)
}

func TestChatReportsUnreachableBackend(t *testing.T) {
	_, table := newDocs(t)
	addr := startDaemon(t, table)
	llmURL := startOllama(t, "")
	cfg := writeConfig(t, llmURL+"/missing")

	out, err := run(t, "find anything\n", "--address", addr, "--config", cfg)
	assert.NilError(t, err)
	assert.Check(t, cmp.Contains(out, "Planning failed:"))
	assert.Check(t, cmp.Contains(out, "404"))
	assert.Check(t, !strings.Contains(out, chat.NoFilesFound))
}
