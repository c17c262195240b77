// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/filesearch-dev/filesearch/pkg/filesearch/api/client"
	"github.com/filesearch-dev/filesearch/pkg/filesearch/api/server"
	"github.com/filesearch-dev/filesearch/pkg/llm"
	"github.com/filesearch-dev/filesearch/pkg/ptr"
)

// FillDefault sets every unset field to its default value.
func FillDefault(c *Config) {
	if c.Server.Listen == nil {
		c.Server.Listen = ptr.Of(server.DefaultListen)
	}
	if c.Server.Workers == nil {
		c.Server.Workers = ptr.Of(server.DefaultWorkers)
	}
	if c.Client.Address == nil {
		c.Client.Address = ptr.Of(client.DefaultAddress)
	}
	if c.Client.Timeout == nil {
		c.Client.Timeout = ptr.Of("")
	}
	if c.LLM.Backend == nil {
		c.LLM.Backend = ptr.Of(llm.DefaultBackend)
	}
	if c.LLM.BaseURL == nil {
		c.LLM.BaseURL = ptr.Of("")
	}
	if c.LLM.Model == nil {
		c.LLM.Model = ptr.Of(llm.DefaultModel)
	}
	if c.LLM.APIKeyEnv == nil {
		apiKeyEnv := ""
		if strings.EqualFold(*c.LLM.Backend, llm.OpenAI) {
			apiKeyEnv = "OPENAI_API_KEY"
		}
		c.LLM.APIKeyEnv = ptr.Of(apiKeyEnv)
	}
	if c.LLM.Timeout == nil {
		c.LLM.Timeout = ptr.Of("2m")
	}
}
