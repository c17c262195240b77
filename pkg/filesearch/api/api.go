// SPDX-FileCopyrightText: Copyright The Filesearch Authors
// SPDX-License-Identifier: Apache-2.0

// Package api defines the FileSearcher gRPC contract.
//
// Messages are plain Go structs encoded with the JSON codec registered by
// this package (content-subtype "json"), so no code generation is involved.
package api

import "context"

// SearchRequest is the request of SearchFiles.
type SearchRequest struct {
	// FilePattern is a glob matched against entry names, ignoring case.
	FilePattern string `json:"file_pattern"`
	// BasePathKey restricts the search to one location key.
	// nil (or "") searches every allowed location.
	BasePathKey   *string `json:"base_path_key,omitempty"`
	IncludeHidden bool    `json:"include_hidden"`
}

// GetBasePathKey returns BasePathKey, or "" when unset.
func (x *SearchRequest) GetBasePathKey() string {
	if x == nil || x.BasePathKey == nil {
		return ""
	}
	return *x.BasePathKey
}

// SearchResponse is the response of SearchFiles.
// When ErrorMessage is set, FoundFiles is empty.
// An empty FoundFiles without ErrorMessage means zero matches.
type SearchResponse struct {
	FoundFiles   []string `json:"found_files"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// HasError reports whether the request was rejected.
func (x *SearchResponse) HasError() bool {
	return x != nil && x.ErrorMessage != ""
}

type ListRootsRequest struct{}

// Root is one allowed location.
type Root struct {
	Key  string `json:"key"`
	Path string `json:"path"`
}

type ListRootsResponse struct {
	Roots []Root `json:"roots"`
}

// Keys returns the keys of the roots, in order.
func (x *ListRootsResponse) Keys() []string {
	if x == nil {
		return nil
	}
	keys := make([]string, len(x.Roots))
	for i, r := range x.Roots {
		keys[i] = r.Key
	}
	return keys
}

// Searcher runs searches, either in-process or against a remote daemon.
// SearchFiles reports validation failures in SearchResponse.ErrorMessage;
// the returned error is reserved for transport and cancellation failures.
type Searcher interface {
	SearchFiles(ctx context.Context, req *SearchRequest) (*SearchResponse, error)
	ListRoots(ctx context.Context, req *ListRootsRequest) (*ListRootsResponse, error)
}
