// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"

	"github.com/filesearch-dev/filesearch/pkg/llm"
	"github.com/filesearch-dev/filesearch/pkg/sandbox"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(nil, "empty")
	assert.NilError(t, err)
	assert.Equal(t, ":50051", *c.Server.Listen)
	assert.Equal(t, 10, *c.Server.Workers)
	assert.Equal(t, "localhost:50051", *c.Client.Address)
	assert.Equal(t, time.Duration(0), c.ClientTimeout())
	assert.Equal(t, "ollama", *c.LLM.Backend)
	assert.Equal(t, "llama3.2:latest", *c.LLM.Model)
	assert.Equal(t, "", *c.LLM.APIKeyEnv)
	assert.Equal(t, 2*time.Minute, c.LLMTimeout())
	assert.Equal(t, 0, len(c.Roots))
}

func TestLoad(t *testing.T) {
	const y = `
server:
  listen: "127.0.0.1:6000"
  workers: 3
roots:
  docs: /srv/docs
  Music: ~/Audio
client:
  timeout: 30s
llm:
  backend: openai
  baseURL: http://127.0.0.1:8080/v1
  model: qwen2.5
`
	c, err := Load([]byte(y), "test")
	assert.NilError(t, err)
	assert.Equal(t, "127.0.0.1:6000", *c.Server.Listen)
	assert.Equal(t, 3, *c.Server.Workers)
	assert.Equal(t, 30*time.Second, c.ClientTimeout())
	assert.Equal(t, "OPENAI_API_KEY", *c.LLM.APIKeyEnv)

	home, err := os.UserHomeDir()
	assert.NilError(t, err)
	overrides, err := c.RootOverrides()
	assert.NilError(t, err)
	assert.DeepEqual(t, map[sandbox.LocationKey]string{
		sandbox.Docs:  filepath.Clean("/srv/docs"),
		sandbox.Music: filepath.Join(home, "Audio"),
	}, overrides)

	t.Setenv("OPENAI_API_KEY", "sk-test")
	assert.DeepEqual(t, llm.Options{
		Backend: "openai",
		BaseURL: "http://127.0.0.1:8080/v1",
		Model:   "qwen2.5",
		APIKey:  "sk-test",
		Timeout: 2 * time.Minute,
	}, c.LLMOptions())
}

func TestLoadInvalid(t *testing.T) {
	testCases := map[string]string{
		"unknown root key":   "roots:\n  home: /home\n",
		"bad duration":       "client:\n  timeout: soon\n",
		"negative duration":  "llm:\n  timeout: -1s\n",
		"zero workers":       "server:\n  workers: 0\n",
		"unknown backend":    "llm:\n  backend: bard\n",
		"empty listen":       "server:\n  listen: \"\"\n",
		"duplicate key":      "server:\n  workers: 1\n  workers: 2\n",
		"not a mapping":      "- a\n- b\n",
		"unexpandable root":  "roots:\n  docs: ~other/docs\n",
		"relative root home": "roots:\n  docs: \"\"\n",
	}
	for name, y := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(y), name)
			assert.Assert(t, err != nil)
		})
	}
}

func TestUnmarshalDuplicateKey(t *testing.T) {
	_, err := Unmarshal([]byte("client:\n  address: a:1\n  address: b:2\n"), "dup")
	assert.ErrorContains(t, err, `duplicate key "address"`)
	assert.ErrorContains(t, err, "(dup)")
}

func TestLoadFile(t *testing.T) {
	dir := fs.NewDir(t, "config", fs.WithFile("config.yaml", "server:\n  workers: 7\n"))

	c, err := LoadFile(dir.Join("config.yaml"))
	assert.NilError(t, err)
	assert.Equal(t, 7, *c.Server.Workers)

	c, err = LoadFile(dir.Join("missing.yaml"))
	assert.NilError(t, err)
	assert.Equal(t, 10, *c.Server.Workers)

	t.Setenv(EnvConfig, dir.Join("config.yaml"))
	p, err := DefaultPath()
	assert.NilError(t, err)
	assert.Equal(t, dir.Join("config.yaml"), p)
	c, err = LoadFile("")
	assert.NilError(t, err)
	assert.Equal(t, 7, *c.Server.Workers)
}
