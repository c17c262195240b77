// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the YAML configuration shared by filesearchd,
// filesearch and filesearch-mcp.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
)

// EnvConfig overrides the default configuration path.
const EnvConfig = "FILESEARCH_CONFIG"

type Config struct {
	Server ServerConfig `yaml:"server,omitempty" json:"server,omitempty"`
	// Roots overrides the directory of a location key.
	Roots  map[string]string `yaml:"roots,omitempty" json:"roots,omitempty"`
	Client ClientConfig      `yaml:"client,omitempty" json:"client,omitempty"`
	LLM    LLMConfig         `yaml:"llm,omitempty" json:"llm,omitempty"`
}

type ServerConfig struct {
	Listen  *string `yaml:"listen,omitempty" json:"listen,omitempty"`
	Workers *int    `yaml:"workers,omitempty" json:"workers,omitempty"`
}

type ClientConfig struct {
	Address *string `yaml:"address,omitempty" json:"address,omitempty"`
	// Timeout is a duration string such as "30s". Empty means no timeout.
	Timeout *string `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

type LLMConfig struct {
	Backend *string `yaml:"backend,omitempty" json:"backend,omitempty"`
	BaseURL *string `yaml:"baseURL,omitempty" json:"baseURL,omitempty"`
	Model   *string `yaml:"model,omitempty" json:"model,omitempty"`
	// APIKeyEnv is the name of the environment variable holding the API key.
	APIKeyEnv *string `yaml:"apiKeyEnv,omitempty" json:"apiKeyEnv,omitempty"`
	Timeout   *string `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

// DefaultPath returns $FILESEARCH_CONFIG, or config.yaml in the
// "filesearch" directory of the user configuration directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "filesearch", "config.yaml"), nil
}

// Unmarshal decodes data into a Config without filling defaults.
// comment identifies the source in error messages.
func Unmarshal(data []byte, comment string) (*Config, error) {
	var c Config
	if len(bytes.TrimSpace(data)) == 0 {
		return &c, nil
	}
	// Duplicate keys are rejected by default.
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML (%s): %w", comment, err)
	}
	var strict Config
	if err := yaml.UnmarshalWithOptions(data, &strict, yaml.Strict()); err != nil {
		logrus.WithField("comment", comment).WithError(err).Warn("Ignoring unknown fields in the configuration")
	}
	return &c, nil
}

// Load decodes data, fills the defaults and validates the result.
func Load(data []byte, comment string) (*Config, error) {
	c, err := Unmarshal(data, comment)
	if err != nil {
		return nil, err
	}
	FillDefault(c)
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("invalid configuration (%s): %w", comment, err)
	}
	return c, nil
}

// LoadFile loads the configuration at path. An empty path means DefaultPath.
// A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		logrus.Debugf("No configuration file at %q, using the defaults", path)
		b = nil
	}
	return Load(b, path)
}

// ClientTimeout returns the per-call timeout of the client, zero for none.
func (c *Config) ClientTimeout() time.Duration {
	return parseDuration(c.Client.Timeout)
}

// LLMTimeout returns the timeout of a single completion, zero for none.
func (c *Config) LLMTimeout() time.Duration {
	return parseDuration(c.LLM.Timeout)
}

// parseDuration expects a value that passed Validate.
func parseDuration(s *string) time.Duration {
	if s == nil || *s == "" {
		return 0
	}
	d, err := time.ParseDuration(*s)
	if err != nil {
		return 0
	}
	return d
}
