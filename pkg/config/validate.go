// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/filesearch-dev/filesearch/pkg/llm"
	"github.com/filesearch-dev/filesearch/pkg/localpathutil"
	"github.com/filesearch-dev/filesearch/pkg/sandbox"
)

// Validate checks a Config whose defaults have been filled.
func Validate(c *Config) error {
	var errs []error
	if c.Server.Listen == nil || *c.Server.Listen == "" {
		errs = append(errs, errors.New("field `server.listen` must be set"))
	}
	if c.Server.Workers == nil || *c.Server.Workers <= 0 {
		errs = append(errs, errors.New("field `server.workers` must be a positive integer"))
	}
	for key, dir := range c.Roots {
		if _, err := sandbox.ParseKey(key); err != nil {
			errs = append(errs, fmt.Errorf("field `roots` has an invalid key: %w", err))
			continue
		}
		if _, err := localpathutil.Expand(dir); err != nil {
			errs = append(errs, fmt.Errorf("field `roots.%s` refers to an invalid local path %q: %w", key, dir, err))
		}
	}
	if c.Client.Address == nil || *c.Client.Address == "" {
		errs = append(errs, errors.New("field `client.address` must be set"))
	}
	if err := validateDuration("client.timeout", c.Client.Timeout); err != nil {
		errs = append(errs, err)
	}
	if c.LLM.Backend == nil || !slices.Contains(llm.Backends(), strings.ToLower(*c.LLM.Backend)) {
		errs = append(errs, fmt.Errorf("field `llm.backend` must be one of %v", llm.Backends()))
	}
	if c.LLM.Model == nil || *c.LLM.Model == "" {
		errs = append(errs, errors.New("field `llm.model` must be set"))
	}
	if err := validateDuration("llm.timeout", c.LLM.Timeout); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func validateDuration(field string, s *string) error {
	if s == nil || *s == "" {
		return nil
	}
	d, err := time.ParseDuration(*s)
	if err != nil {
		return fmt.Errorf("field `%s` has an invalid duration %q: %w", field, *s, err)
	}
	if d < 0 {
		return fmt.Errorf("field `%s` must not be negative, got %q", field, *s)
	}
	return nil
}
