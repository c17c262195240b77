// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package filesearch implements the FileSearcher service on top of the
// sandbox table and the search engine.
package filesearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/filesearch-dev/filesearch/pkg/filesearch/api"
	"github.com/filesearch-dev/filesearch/pkg/sandbox"
	"github.com/filesearch-dev/filesearch/pkg/search"
)

var _ api.Searcher = (*Service)(nil)

const (
	// ErrInvalidPattern is returned in error_message for patterns that try to
	// escape a root.
	ErrInvalidPattern = "Invalid pattern."

	// DefaultRootConcurrency is the number of roots walked at the same time
	// for a request without a location key.
	DefaultRootConcurrency = 4
)

// Service answers search requests within the sandbox table.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	table *sandbox.Table

	// RootConcurrency bounds the number of roots walked in parallel.
	RootConcurrency int
}

func New(table *sandbox.Table) *Service {
	if table == nil {
		table = sandbox.NewTable()
	}
	return &Service{
		table:           table,
		RootConcurrency: DefaultRootConcurrency,
	}
}

// Table returns the sandbox table the service searches.
func (s *Service) Table() *sandbox.Table {
	return s.table
}

// IsTraversalPattern reports whether pattern could reach outside of a root.
func IsTraversalPattern(pattern string) bool {
	return strings.Contains(pattern, "..") || strings.HasPrefix(pattern, "/") || strings.HasPrefix(pattern, `\`)
}

// InvalidKeyMessage is the error_message for a location key missing from the table.
func (s *Service) InvalidKeyMessage() string {
	keys := s.table.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return "Invalid base path key. Allowed keys are: " + strings.Join(names, ", ")
}

// Handle validates req and runs the search.
//
// Validation failures are reported in the ErrorMessage of the response,
// never as an error. The returned error is non-nil only when ctx is done
// before the walk completes.
func (s *Service) Handle(ctx context.Context, req *api.SearchRequest) (*api.SearchResponse, error) {
	pattern := req.FilePattern
	if IsTraversalPattern(pattern) {
		return &api.SearchResponse{ErrorMessage: ErrInvalidPattern}, nil
	}

	roots := s.table.Entries()
	if key := req.GetBasePathKey(); key != "" {
		path, ok := s.table.Lookup(key)
		if !ok {
			return &api.SearchResponse{ErrorMessage: s.InvalidKeyMessage()}, nil
		}
		roots = []sandbox.Entry{{Key: sandbox.LocationKey(strings.ToLower(key)), Path: path}}
	}

	logrus.Debugf("Searching %d root(s) for %q (include_hidden=%v)", len(roots), pattern, req.IncludeHidden)
	found, err := search.SearchRoots(ctx, roots, pattern, req.IncludeHidden, s.RootConcurrency)
	if err != nil {
		return nil, fmt.Errorf("search for %q canceled: %w", pattern, err)
	}
	if found == nil {
		found = []string{}
	}
	return &api.SearchResponse{FoundFiles: found}, nil
}

// SearchFiles implements api.Searcher.
func (s *Service) SearchFiles(ctx context.Context, req *api.SearchRequest) (*api.SearchResponse, error) {
	return s.Handle(ctx, req)
}

// ListRoots implements api.Searcher.
func (s *Service) ListRoots(context.Context, *api.ListRootsRequest) (*api.ListRootsResponse, error) {
	return s.Roots(), nil
}

// Roots lists the allowed locations in table order.
func (s *Service) Roots() *api.ListRootsResponse {
	entries := s.table.Entries()
	res := &api.ListRootsResponse{Roots: make([]api.Root, len(entries))}
	for i, e := range entries {
		res.Roots[i] = api.Root{Key: string(e.Key), Path: e.Path}
	}
	return res
}
