// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"github.com/filesearch-dev/filesearch/pkg/llm"
	"github.com/filesearch-dev/filesearch/pkg/localpathutil"
	"github.com/filesearch-dev/filesearch/pkg/ptr"
	"github.com/filesearch-dev/filesearch/pkg/sandbox"
)

// RootOverrides returns the configured directories by location key, with
// "~" expanded and relative paths made absolute.
func (c *Config) RootOverrides() (map[sandbox.LocationKey]string, error) {
	res := make(map[sandbox.LocationKey]string, len(c.Roots))
	for k, dir := range c.Roots {
		key, err := sandbox.ParseKey(k)
		if err != nil {
			return nil, err
		}
		expanded, err := localpathutil.Expand(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to expand root %q: %w", dir, err)
		}
		res[key] = expanded
	}
	return res, nil
}

// LLMOptions returns the options of the completion backend.
// The API key is read from the environment variable named by llm.apiKeyEnv.
func (c *Config) LLMOptions() llm.Options {
	opts := llm.Options{
		Backend: ptr.Deref(c.LLM.Backend, llm.DefaultBackend),
		BaseURL: ptr.Deref(c.LLM.BaseURL, ""),
		Model:   ptr.Deref(c.LLM.Model, llm.DefaultModel),
		Timeout: c.LLMTimeout(),
	}
	if env := ptr.Deref(c.LLM.APIKeyEnv, ""); env != "" {
		opts.APIKey = os.Getenv(env)
	}
	return opts
}
