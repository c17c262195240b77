// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package router turns a free-text query into a single validated Action
// with one completion call.
package router

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/filesearch-dev/filesearch/pkg/llm"
)

type Router struct {
	completer llm.Completer
}

func New(completer llm.Completer) *Router {
	return &Router{completer: completer}
}

// Route plans query. Errors from the completion backend are returned as is;
// validation failures wrap ErrInvalidLocationKey, ErrMissingPattern or
// ErrMissingFileName. Malformed planner output is never an error.
func (r *Router) Route(ctx context.Context, query string) (Action, error) {
	prompt, err := Prompt(query)
	if err != nil {
		return nil, err
	}
	raw, err := r.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Raw plan: %s", raw)
	return Validate(ParsePlan(raw), query)
}
